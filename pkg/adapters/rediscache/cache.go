// Package rediscache backs the heuristic-cache port with Redis.
//
// Level-sum estimates are deterministic per (problem, state) key, so a
// shared cache lets multiple search workers or processes reuse each
// other's planning-graph computations. Eviction is delegated to Redis
// (TTL and the server's own maxmemory policy).
package rediscache

import (
	"context"
	"errors"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/aretw0/skyplan/pkg/ports"
)

// Cache implements ports.HeuristicCache on a Redis client.
type Cache struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

var _ ports.HeuristicCache = (*Cache)(nil)

// Option configures the cache.
type Option func(*Cache)

// WithTTL sets the expiration for cached estimates.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// WithPrefix sets the key prefix for cached estimates.
func WithPrefix(prefix string) Option {
	return func(c *Cache) {
		c.prefix = prefix
	}
}

// New creates a Redis cache with its own client.
func New(address, password string, db int, opts ...Option) *Cache {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a Redis cache from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Cache {
	cache := &Cache{
		client: client,
		prefix: "skyplan:heuristic:",
		ttl:    0, // No expiration by default
	}
	for _, opt := range opts {
		opt(cache)
	}
	return cache
}

// Get returns the cached estimate for key and whether it was present.
func (c *Cache) Get(ctx context.Context, key string) (int, bool, error) {
	v, err := c.client.Get(ctx, c.prefix+key).Int()
	if errors.Is(err, backend.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("redis error reading estimate: %w", err)
	}
	return v, true, nil
}

// Put stores the estimate under key.
func (c *Cache) Put(ctx context.Context, key string, value int) error {
	if err := c.client.Set(ctx, c.prefix+key, value, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis error writing estimate: %w", err)
	}
	return nil
}
