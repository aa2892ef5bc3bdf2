package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/target/storefront-admin/internal/ports"
)

var _ ports.QueryCache = (*QueryCache)(nil)

// QueryCache stores backend responses under <prefix><family>:<key> and keeps a
// set per family listing its live keys so a family can be dropped at once.
type QueryCache struct {
	client redis.UniversalClient
	prefix string
}

// NewQueryCache creates a QueryCache. An empty prefix defaults to "query:".
func NewQueryCache(client redis.UniversalClient, prefix string) *QueryCache {
	if prefix == "" {
		prefix = "query:"
	}
	return &QueryCache{client: client, prefix: prefix}
}

func (c *QueryCache) entryKey(family, key string) string { return c.prefix + family + ":" + key }

func (c *QueryCache) indexKey(family string) string { return c.prefix + "idx:" + family }

func (c *QueryCache) familiesKey() string { return c.prefix + "families" }

// Get retrieves a cached value.
func (c *QueryCache) Get(ctx context.Context, family, key string) ([]byte, bool, error) {
	if family == "" || key == "" {
		return nil, false, errors.New("family and key cannot be empty")
	}
	b, err := c.client.Get(ctx, c.entryKey(family, key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	return b, true, nil
}

// Set stores value and records it in the family index.
// The index outlives its entries by ttl so it never forgets a live key.
func (c *QueryCache) Set(ctx context.Context, family, key string, value []byte, ttl time.Duration) error {
	if family == "" || key == "" {
		return errors.New("family and key cannot be empty")
	}
	if ttl <= 0 {
		ttl = time.Second
	}
	entry := c.entryKey(family, key)
	idx := c.indexKey(family)

	_, err := c.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Set(ctx, entry, value, ttl)
		p.SAdd(ctx, idx, entry)
		p.Expire(ctx, idx, 2*ttl)
		p.SAdd(ctx, c.familiesKey(), family)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis cache set: %w", err)
	}
	return nil
}

// Invalidate drops every entry of the named families, or of all families when none are named.
func (c *QueryCache) Invalidate(ctx context.Context, families ...string) error {
	if len(families) == 0 {
		all, err := c.client.SMembers(ctx, c.familiesKey()).Result()
		if err != nil {
			return fmt.Errorf("redis list families: %w", err)
		}
		families = all
	}
	for _, family := range families {
		if err := c.invalidateFamily(ctx, family); err != nil {
			return err
		}
	}
	return nil
}

func (c *QueryCache) invalidateFamily(ctx context.Context, family string) error {
	idx := c.indexKey(family)
	keys, err := c.client.SMembers(ctx, idx).Result()
	if err != nil {
		return fmt.Errorf("redis members %s: %w", family, err)
	}
	// Entries are deleted one by one; in cluster mode they may live in different slots.
	for _, k := range keys {
		if err := c.client.Del(ctx, k).Err(); err != nil {
			return fmt.Errorf("redis del %s: %w", k, err)
		}
	}
	if err := c.client.Del(ctx, idx).Err(); err != nil {
		return fmt.Errorf("redis del index %s: %w", family, err)
	}
	return nil
}

// Health checks the health of the Redis connection.
func (c *QueryCache) Health(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
