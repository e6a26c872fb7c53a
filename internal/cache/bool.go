package cache

import (
	"strconv"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// Key identifies one cached scan result: the canonical search fragment
// plus the numeric id of the item it was evaluated against.
type Key struct {
	Fragment string
	Item     uint32
}

// flight returns the singleflight key. '\x1f' cannot appear in a
// fragment, so the encoding is collision-free.
func (k Key) flight() string {
	return k.Fragment + "\x1f" + strconv.FormatUint(uint64(k.Item), 10)
}

// BoolCache memoizes expensive boolean lookups. The fragment space is a
// small fixed keyword set and the item space is bounded by a session's
// inventory, so there is no eviction. Concurrent lookups of a missing
// key collapse into a single computation.
type BoolCache struct {
	mu    sync.RWMutex
	items map[Key]bool
	group singleflight.Group

	hits   atomic.Int64
	misses atomic.Int64
}

// NewBoolCache creates an empty cache.
func NewBoolCache() *BoolCache {
	return &BoolCache{
		items: make(map[Key]bool),
	}
}

// Get returns a cached result. ok=false if missing.
func (c *BoolCache) Get(key Key) (v, ok bool) {
	c.mu.RLock()
	v, ok = c.items[key]
	c.mu.RUnlock()

	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return v, ok
}

// GetOrCompute returns the cached result for key, computing and storing
// it on first use.
func (c *BoolCache) GetOrCompute(key Key, compute func() bool) bool {
	if v, ok := c.Get(key); ok {
		return v
	}

	v, _, _ := c.group.Do(key.flight(), func() (any, error) {
		// Re-check under the flight: a concurrent caller may have
		// stored the result between our miss and the Do.
		c.mu.RLock()
		v, ok := c.items[key]
		c.mu.RUnlock()
		if ok {
			return v, nil
		}

		result := compute()

		c.mu.Lock()
		c.items[key] = result
		c.mu.Unlock()

		return result, nil
	})

	return v.(bool)
}

// Len returns the number of cached entries.
func (c *BoolCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.items)
}

// Stats returns cache hit/miss counters.
func (c *BoolCache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}
