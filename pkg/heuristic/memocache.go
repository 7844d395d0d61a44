package heuristic

import (
	"context"
	"sync"

	"github.com/aretw0/skyplan/pkg/observability"
	"github.com/aretw0/skyplan/pkg/ports"
)

// DefaultCacheCapacity bounds the in-memory memoization cache.
const DefaultCacheCapacity = 8192

// MemoCache is a bounded in-memory HeuristicCache with FIFO eviction:
// once the capacity is exceeded the oldest-computed entry goes first.
// All operations are safe for concurrent use; an entry can never be
// evicted while a reader holds it, because reads and writes share one
// critical section.
type MemoCache struct {
	mu       sync.Mutex
	capacity int
	values   map[string]int
	queue    []string
	metrics  *observability.CacheMetrics
}

var _ ports.HeuristicCache = (*MemoCache)(nil)

// MemoOption configures a MemoCache.
type MemoOption func(*MemoCache)

// WithCapacity overrides the default entry bound.
func WithCapacity(n int) MemoOption {
	return func(c *MemoCache) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// WithCacheMetrics enables hit/miss/eviction counters.
func WithCacheMetrics(m *observability.CacheMetrics) MemoOption {
	return func(c *MemoCache) {
		c.metrics = m
	}
}

// NewMemoCache creates an empty cache with the default capacity.
func NewMemoCache(opts ...MemoOption) *MemoCache {
	c := &MemoCache{
		capacity: DefaultCacheCapacity,
		values:   make(map[string]int),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached value for key and whether it was present.
func (c *MemoCache) Get(_ context.Context, key string) (int, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.values[key]
	if ok {
		c.metrics.IncHit()
	} else {
		c.metrics.IncMiss()
	}
	return v, ok, nil
}

// Put stores value under key. A full cache evicts its oldest entries; a
// Put is never rejected.
func (c *MemoCache) Put(_ context.Context, key string, value int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.values[key]; !exists {
		c.queue = append(c.queue, key)
	}
	c.values[key] = value

	for len(c.queue) > c.capacity {
		oldest := c.queue[0]
		c.queue = c.queue[1:]
		delete(c.values, oldest)
		c.metrics.IncEviction()
	}
	return nil
}

// Len returns the number of cached entries.
func (c *MemoCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.values)
}
