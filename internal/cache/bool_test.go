package cache

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoolCacheGetOrCompute(t *testing.T) {
	c := NewBoolCache()
	key := Key{Fragment: "Soulbound", Item: 123}

	var calls atomic.Int64
	compute := func() bool {
		calls.Add(1)
		return true
	}

	assert.True(t, c.GetOrCompute(key, compute))
	assert.True(t, c.GetOrCompute(key, compute))
	assert.Equal(t, int64(1), calls.Load())
	assert.Equal(t, 1, c.Len())

	// A different item id is a different entry.
	assert.True(t, c.GetOrCompute(Key{Fragment: "Soulbound", Item: 456}, compute))
	assert.Equal(t, int64(2), calls.Load())
	assert.Equal(t, 2, c.Len())

	v, ok := c.Get(key)
	assert.True(t, ok)
	assert.True(t, v)

	_, ok = c.Get(Key{Fragment: "Quest Item", Item: 123})
	assert.False(t, ok)

	hits, misses := c.Stats()
	assert.Positive(t, hits)
	assert.Positive(t, misses)
}

func TestBoolCacheFalseResultIsCached(t *testing.T) {
	c := NewBoolCache()
	key := Key{Fragment: "Binds when equipped", Item: 9}

	var calls int
	compute := func() bool {
		calls++
		return false
	}

	assert.False(t, c.GetOrCompute(key, compute))
	assert.False(t, c.GetOrCompute(key, compute))
	assert.Equal(t, 1, calls)
}

func TestBoolCacheConcurrent(t *testing.T) {
	c := NewBoolCache()
	key := Key{Fragment: "Soulbound", Item: 77}

	var calls atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.GetOrCompute(key, func() bool {
				calls.Add(1)
				return true
			})
		}()
	}
	wg.Wait()

	// Singleflight collapses the stampede; at most one goroutine that
	// missed before the first store recomputes.
	assert.LessOrEqual(t, calls.Load(), int64(2))
	assert.Equal(t, 1, c.Len())
}
