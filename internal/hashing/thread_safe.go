package hashing

import (
	"sync"
)

// ThreadSafePerftCache wraps PerftCache with mutex protection for concurrent access.
type ThreadSafePerftCache struct {
	cache *PerftCache
	mu    sync.RWMutex
}

// NewThreadSafePerftCache creates a new thread-safe cache.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafePerftCache(maxCapacity int) *ThreadSafePerftCache {
	return &ThreadSafePerftCache{
		cache: NewPerftCache(maxCapacity),
	}
}

// Lookup returns the stored count for key at depth.
func (c *ThreadSafePerftCache) Lookup(key uint64, depth int) (uint64, bool) {
	// Lookup updates the hit counter, so it needs the write lock
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Lookup(key, depth)
}

// Store records a count.
func (c *ThreadSafePerftCache) Store(key uint64, depth int, nodes uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Store(key, depth, nodes)
}

// Len returns the number of stored entries.
func (c *ThreadSafePerftCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cache.Len()
}

// Hits returns the number of successful lookups.
func (c *ThreadSafePerftCache) Hits() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cache.Hits()
}

// IsFull returns true if the cache has reached its capacity limit.
func (c *ThreadSafePerftCache) IsFull() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cache.IsFull()
}
