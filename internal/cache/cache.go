package cache

import (
	"github.com/dgraph-io/ristretto"
)

// URLCache holds key -> original URL pairs. Entries never change once
// created, so there is no invalidation.
type URLCache struct {
	cache *ristretto.Cache
}

func New(maxSizePow2 int) (*URLCache, error) {
	maxCost := max(1, int64(1)<<maxSizePow2)
	numCounters := max(1, maxCost/100) // ~100 bytes per entry estimate

	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: numCounters,
		MaxCost:     maxCost,
		BufferItems: 64,
		Metrics:     true,
	})
	if err != nil {
		return nil, err
	}

	return &URLCache{cache: c}, nil
}

func (c *URLCache) Get(key string) (string, bool) {
	val, found := c.cache.Get(key)
	if !found {
		return "", false
	}
	original, ok := val.(string)
	return original, ok
}

func (c *URLCache) Set(key, original string) {
	c.cache.Set(key, original, int64(len(key)+len(original)))
}

// Wait blocks until buffered writes are applied.
func (c *URLCache) Wait() {
	c.cache.Wait()
}

func (c *URLCache) Close() {
	c.cache.Close()
}

func (c *URLCache) Stats() (hits, misses uint64, ratio float64) {
	m := c.cache.Metrics
	return m.Hits(), m.Misses(), m.Ratio()
}
