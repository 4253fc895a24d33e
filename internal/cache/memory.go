package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache holds serialized query results with per-entry TTLs.
// Entries expire on their own; nothing survives the process.
type MemoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache creates a cache with the given default TTL and
// expired-entry sweep interval.
func NewMemoryCache(defaultTTL time.Duration, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{
		cache: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Get returns the payload stored under key, if present and unexpired.
func (c *MemoryCache) Get(key string) ([]byte, bool) {
	val, found := c.cache.Get(key)
	if !found {
		return nil, false
	}
	data, ok := val.([]byte)
	if !ok {
		// Only []byte payloads go in; anything else counts as a miss.
		return nil, false
	}
	return data, true
}

// Set stores payload under key for the given TTL.
func (c *MemoryCache) Set(key string, value []byte, ttl time.Duration) error {
	c.cache.Set(key, value, ttl)
	return nil
}

// Delete removes one entry.
func (c *MemoryCache) Delete(key string) error {
	c.cache.Delete(key)
	return nil
}

// Clear removes every entry.
func (c *MemoryCache) Clear() error {
	c.cache.Flush()
	return nil
}
