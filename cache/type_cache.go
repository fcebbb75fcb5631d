package cache

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// TypeCache remembers resolved type OIDs by type name. It is safe for
// concurrent use; the LRU does its own locking.
type TypeCache struct {
	cache *lru.Cache[string, uint32]
}

func NewTypeCache(size int) (*TypeCache, error) {
	c, err := lru.New[string, uint32](size)
	if err != nil {
		return nil, fmt.Errorf("type cache: %w", err)
	}
	return &TypeCache{cache: c}, nil
}

func (c *TypeCache) Get(name string) (uint32, bool) {
	return c.cache.Get(name)
}

func (c *TypeCache) Set(name string, oid uint32) {
	c.cache.Add(name, oid)
}

func (c *TypeCache) Len() int {
	return c.cache.Len()
}

func (c *TypeCache) Purge() {
	c.cache.Purge()
}
