package constant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xeptore/counted/constant"
)

func TestBuildInfo(t *testing.T) {
	t.Parallel()

	assert.NotEmpty(t, constant.Version)
	assert.NotContains(t, constant.Version, "\n")
	assert.False(t, constant.CompileTime.IsZero())
}
