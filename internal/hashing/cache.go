package hashing

import (
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// Table stores perft counts by position key and remaining depth.
type Table interface {
	Lookup(key uint64, depth int) (uint64, bool)
	Store(key uint64, depth int, nodes uint64)
}

type entryKey struct {
	key   uint64
	depth int
}

// PerftCache is a Table for single-goroutine use.
type PerftCache struct {
	// entries stores counts by key and depth
	entries map[entryKey]uint64
	// maxCapacity limits stored entries (0 = unlimited)
	maxCapacity int
	// hits counts successful lookups
	hits int
}

// NewPerftCache creates a new cache. maxCapacity of 0 means unlimited.
func NewPerftCache(maxCapacity int) *PerftCache {
	return &PerftCache{
		entries:     make(map[entryKey]uint64),
		maxCapacity: maxCapacity,
	}
}

// Lookup returns the stored count for key at depth.
func (c *PerftCache) Lookup(key uint64, depth int) (uint64, bool) {
	n, ok := c.entries[entryKey{key, depth}]
	if ok {
		c.hits++
	}
	return n, ok
}

// Store records a count. Once the cache is full new entries are dropped.
func (c *PerftCache) Store(key uint64, depth int, nodes uint64) {
	if c.IsFull() {
		return
	}
	c.entries[entryKey{key, depth}] = nodes
}

// Len returns the number of stored entries.
func (c *PerftCache) Len() int {
	return len(c.entries)
}

// Hits returns the number of successful lookups.
func (c *PerftCache) Hits() int {
	return c.hits
}

// IsFull returns true if the cache has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (c *PerftCache) IsFull() bool {
	return c.maxCapacity > 0 && len(c.entries) >= c.maxCapacity
}

// Reset clears the cache.
func (c *PerftCache) Reset() {
	c.entries = make(map[entryKey]uint64)
	c.hits = 0
}

// Perft is engine.Perft with subtree counts looked up in and stored to t.
// Leaves one ply from the horizon are counted directly.
func Perft(t Table, p *engine.Position, depth int) (uint64, error) {
	if depth <= 0 {
		return 1, nil
	}
	choices, err := p.LegalMoveChoices()
	if err != nil {
		return 0, err
	}
	if depth == 1 {
		return uint64(len(choices)), nil
	}

	key := ZobristKey(p)
	if n, ok := t.Lookup(key, depth); ok {
		return n, nil
	}

	var nodes uint64
	for _, c := range choices {
		n, err := Perft(t, p.Successor(c), depth-1)
		if err != nil {
			return 0, err
		}
		nodes += n
	}
	t.Store(key, depth, nodes)
	return nodes, nil
}
