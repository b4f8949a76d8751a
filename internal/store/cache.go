package store

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// ttlCache is the go-cache backed implementation of [Cache]. It is shared by
// the enrichment services; entries are written without request-level
// coordination, so concurrent misses on the same key may both compute and
// write (last-writer-wins, the values are equivalent).
type ttlCache struct {
	cache *gocache.Cache
}

// NewTTLCache constructs a [Cache] with the given default expiration.
// Expired entries are swept every ten minutes.
func NewTTLCache(defaultTTL time.Duration) Cache {
	return &ttlCache{
		cache: gocache.New(defaultTTL, 10*time.Minute),
	}
}

func (c *ttlCache) Get(key string) (string, bool) {
	value, ok := c.cache.Get(key)
	if !ok {
		return "", false
	}

	s, ok := value.(string)
	return s, ok
}

func (c *ttlCache) Set(key, value string, ttl time.Duration) {
	c.cache.Set(key, value, ttl)
}
