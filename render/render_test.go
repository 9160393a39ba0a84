package render_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/xeptore/counted/iterutil"
	"github.com/xeptore/counted/render"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestText(t *testing.T) {
	t.Parallel()

	t.Run("AutoWidth", func(t *testing.T) {
		t.Parallel()
		own := iterutil.CountedLiteral([]string{"a", "b", "c"}, iterutil.StartAt(9))
		var buf bytes.Buffer
		require.NoError(t, render.Text(&buf, own.All(), render.TextOptions{Separator: ": "}))
		assert.Equal(t, " 9: a\n10: b\n11: c\n", buf.String())
	})

	t.Run("FixedWidth", func(t *testing.T) {
		t.Parallel()
		own := iterutil.CountedLiteral([]string{"a", "b"})
		var buf bytes.Buffer
		require.NoError(t, render.Text(&buf, own.All(), render.TextOptions{Separator: "\t", Width: 3}))
		assert.Equal(t, "  0\ta\n  1\tb\n", buf.String())
	})

	t.Run("Backward", func(t *testing.T) {
		t.Parallel()
		own := iterutil.CountedLiteral([]string{"11", "22", "33", "44"}, iterutil.StartAt(4), iterutil.StepBy(-1))
		var buf bytes.Buffer
		require.NoError(t, render.Text(&buf, own.Backward().All(), render.TextOptions{Separator: " "}))
		assert.Equal(t, "4 44\n3 33\n2 22\n1 11\n", buf.String())
	})

	t.Run("Empty", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		require.NoError(t, render.Text(&buf, iterutil.CountedConst([]string(nil)).All(), render.TextOptions{}))
		assert.Empty(t, buf.String())
	})

	t.Run("WriteError", func(t *testing.T) {
		t.Parallel()
		own := iterutil.CountedLiteral([]string{"a"})
		err := render.Text(failingWriter{}, own.All(), render.TextOptions{})
		require.ErrorContains(t, err, "disk full")
	})
}

func TestJSON(t *testing.T) {
	t.Parallel()

	own := iterutil.CountedLiteral([]string{"<a>", "b"}, iterutil.StepBy(2))
	var buf bytes.Buffer
	require.NoError(t, render.JSON(&buf, "items.txt", own.All()))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "items.txt", gjson.Get(lines[0], "input").String())
	assert.Equal(t, int64(0), gjson.Get(lines[0], "count").Int())
	assert.Equal(t, "<a>", gjson.Get(lines[0], "value").String())
	assert.Contains(t, lines[0], "<a>")
	assert.Equal(t, int64(2), gjson.Get(lines[1], "count").Int())

	buf.Reset()
	require.NoError(t, render.JSON(&buf, "", iterutil.CountedLiteral([]string{"x"}).All()))
	assert.False(t, gjson.Get(buf.String(), "input").Exists())
}
