package cache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

type Cache struct {
	cache *cache.Cache
}

// New creates a cache whose entries expire after ttl and are swept every
// 2*ttl.
func New(ttl time.Duration) *Cache {
	return &Cache{
		cache: cache.New(ttl, 2*ttl),
	}
}

func (c *Cache) Get(key string) (interface{}, bool) {
	return c.cache.Get(key)
}

func (c *Cache) SetDefault(key string, value interface{}) {
	c.cache.Set(key, value, cache.DefaultExpiration)
}

func (c *Cache) ItemCount() int {
	return c.cache.ItemCount()
}
