package cache

import (
	"sync"
	"time"

	"github.com/karlseguin/ccache/v3"
)

var DefaultDocumentTTL = 5 * time.Minute

// Documents caches decoded input elements. Fetches are serialized so that
// concurrent loads of one key decode it once.
type Documents struct {
	c   *ccache.Cache[[]string]
	mux sync.Mutex
}

func NewDocuments(maxSize int64) *Documents {
	c := ccache.New(
		ccache.Configure[[]string]().
			MaxSize(maxSize).
			GetsPerPromote(3).
			ItemsToPrune(1),
	)
	return &Documents{
		c:   c,
		mux: sync.Mutex{},
	}
}

func (c *Documents) Fetch(k string, ttl time.Duration, fetch func() ([]string, error)) ([]string, error) {
	c.mux.Lock()
	defer c.mux.Unlock()
	item, err := c.c.Fetch(k, ttl, fetch)
	if nil != err {
		return nil, err
	}
	return item.Value(), nil
}

func (c *Documents) Close() {
	c.c.Stop()
}
