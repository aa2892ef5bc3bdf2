// Package redis provides Redis-based adapters for session tokens and cached backend reads.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/target/storefront-admin/internal/ports"
)

var (
	_ ports.TokenStores = (*TokenStores)(nil)
	_ ports.TokenStore  = (*tokenStore)(nil)
)

// TokenStores keeps one raw session token per browser session under <prefix><sessionID>.
type TokenStores struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// TokenStoresOptions configures NewTokenStores.
type TokenStoresOptions struct {
	Prefix string
	// TTL bounds how long an idle token survives. The token's exp claim still decides validity.
	TTL time.Duration
}

// NewTokenStores creates a Redis-backed token store set.
func NewTokenStores(client redis.UniversalClient, opts TokenStoresOptions) *TokenStores {
	if opts.Prefix == "" {
		opts.Prefix = "session:"
	}
	if opts.TTL <= 0 {
		opts.TTL = 24 * time.Hour
	}
	return &TokenStores{client: client, prefix: opts.Prefix, ttl: opts.TTL}
}

// For returns the store for one session id.
func (s *TokenStores) For(sessionID string) ports.TokenStore {
	return &tokenStore{parent: s, key: s.prefix + sessionID, empty: sessionID == ""}
}

type tokenStore struct {
	parent *TokenStores
	key    string
	empty  bool
}

func (t *tokenStore) Get(ctx context.Context) (string, bool, error) {
	if t.empty {
		return "", false, nil
	}
	tok, err := t.parent.client.Get(ctx, t.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("redis get token: %w", err)
	}
	return tok, tok != "", nil
}

func (t *tokenStore) Set(ctx context.Context, token string) error {
	if t.empty {
		return errors.New("session ID cannot be empty")
	}
	if token == "" {
		return errors.New("token cannot be empty")
	}
	return t.parent.client.Set(ctx, t.key, token, t.parent.ttl).Err()
}

func (t *tokenStore) Clear(ctx context.Context) error {
	if t.empty {
		return nil
	}
	return t.parent.client.Del(ctx, t.key).Err()
}
