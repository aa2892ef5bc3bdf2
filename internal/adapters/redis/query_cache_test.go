package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/target/storefront-admin/internal/testutil"
)

func TestQueryCache_SetGet(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	defer client.Close()

	cache := NewQueryCache(client, "")
	ctx := context.Background()

	_, ok, err := cache.Get(ctx, "products", "1:10:us")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, "products", "1:10:us", []byte(`[1]`), time.Minute))
	v, ok, err := cache.Get(ctx, "products", "1:10:us")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[1]`, string(v))
}

func TestQueryCache_InvalidateFamily(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	defer client.Close()

	cache := NewQueryCache(client, "q:")
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "products", "1:10:us", []byte("a"), time.Minute))
	require.NoError(t, cache.Set(ctx, "products", "2:10:us", []byte("b"), time.Minute))
	require.NoError(t, cache.Set(ctx, "brands", "all", []byte("c"), time.Minute))

	require.NoError(t, cache.Invalidate(ctx, "products"))

	for _, key := range []string{"1:10:us", "2:10:us"} {
		_, ok, err := cache.Get(ctx, "products", key)
		require.NoError(t, err)
		assert.False(t, ok, key)
	}
	_, ok, err := cache.Get(ctx, "brands", "all")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestQueryCache_InvalidateAll(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	defer client.Close()

	cache := NewQueryCache(client, "")
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "orders", "ordered", []byte("a"), time.Minute))
	require.NoError(t, cache.Set(ctx, "voucher", "o-1", []byte("b"), time.Minute))
	require.NoError(t, cache.Invalidate(ctx))

	_, ok, err := cache.Get(ctx, "orders", "ordered")
	require.NoError(t, err)
	assert.False(t, ok)
	_, ok, err = cache.Get(ctx, "voucher", "o-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestQueryCache_RejectsEmptyKeys(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	defer client.Close()

	cache := NewQueryCache(client, "")
	_, _, err := cache.Get(context.Background(), "", "k")
	assert.Error(t, err)
	assert.Error(t, cache.Set(context.Background(), "f", "", nil, time.Second))
}
