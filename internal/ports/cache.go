package ports

import (
	"context"
	"time"
)

// QueryCache stores encoded backend responses grouped into families.
// Invalidating a family drops every key stored under it.
type QueryCache interface {
	// Get returns the cached value; ok is false on a miss.
	Get(ctx context.Context, family, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, family, key string, value []byte, ttl time.Duration) error
	// Invalidate drops the named families. No families means all of them.
	Invalidate(ctx context.Context, families ...string) error
}
