package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/target/storefront-admin/internal/domain/model"
	"github.com/target/storefront-admin/internal/mocks"
	"github.com/target/storefront-admin/internal/ports"
)

const testBearer = "tok-admin"

func bearerCtx() context.Context {
	return ports.WithBearer(context.Background(), testBearer)
}

// scoped returns key as stored for testBearer.
func scoped(t *testing.T, key string) string {
	t.Helper()
	scope, ok := cacheScope(bearerCtx())
	require.True(t, ok)
	return scopedKey(scope, key)
}

func TestCachedQuery_DisabledCallsThrough(t *testing.T) {
	calls := 0
	fetch := func(context.Context) ([]model.Brand, error) {
		calls++
		return []model.Brand{{BrandName: "Acme"}}, nil
	}

	var q *QueryCache
	for range 2 {
		got, err := cachedQuery(context.Background(), q, FamilyBrands, "all", fetch)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	}
	assert.Equal(t, 2, calls)

	ctrl := gomock.NewController(t)
	zeroTTL := NewQueryCache(QueryCacheOptions{Cache: mocks.NewMockQueryCache(ctrl), TTL: 0})
	_, err := cachedQuery(context.Background(), zeroTTL, FamilyBrands, "all", fetch)
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestCachedQuery_HitSkipsFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockQueryCache(ctrl)
	cache.EXPECT().Get(gomock.Any(), FamilyBrands, scoped(t, "all")).Return([]byte(`[{"brandName":"Cached"}]`), true, nil)

	q := NewQueryCache(QueryCacheOptions{Cache: cache, TTL: time.Minute})
	got, err := cachedQuery(bearerCtx(), q, FamilyBrands, "all", func(context.Context) ([]model.Brand, error) {
		t.Fatal("fetch must not run on a cache hit")
		return nil, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []model.Brand{{BrandName: "Cached"}}, got)
}

func TestCachedQuery_MissFillsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockQueryCache(ctrl)
	gomock.InOrder(
		cache.EXPECT().Get(gomock.Any(), FamilyUsers, scoped(t, "all")).Return(nil, false, nil),
		cache.EXPECT().Set(gomock.Any(), FamilyUsers, scoped(t, "all"), []byte(`[{"email":"a@b.c","userName":"A","age":3,"roleName":"Admin"}]`), time.Minute).Return(nil),
	)

	q := NewQueryCache(QueryCacheOptions{Cache: cache, TTL: time.Minute})
	got, err := cachedQuery(bearerCtx(), q, FamilyUsers, "all", func(context.Context) ([]model.User, error) {
		return []model.User{{Email: "a@b.c", UserName: "A", Age: 3, RoleName: "Admin"}}, nil
	})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestCachedQuery_CacheErrorsAreBypassed(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockQueryCache(ctrl)
	cache.EXPECT().Get(gomock.Any(), FamilyDoctors, scoped(t, "all")).Return(nil, false, errors.New("redis down"))
	cache.EXPECT().Set(gomock.Any(), FamilyDoctors, scoped(t, "all"), gomock.Any(), time.Minute).Return(errors.New("redis down"))

	q := NewQueryCache(QueryCacheOptions{Cache: cache, TTL: time.Minute})
	got, err := cachedQuery(bearerCtx(), q, FamilyDoctors, "all", func(context.Context) ([]model.Doctor, error) {
		return []model.Doctor{{Name: "Dr. Who"}}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Dr. Who", got[0].Name)
}

func TestCachedQuery_FetchErrorIsNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockQueryCache(ctrl)
	cache.EXPECT().Get(gomock.Any(), FamilyBookings, scoped(t, "all")).Return(nil, false, nil)

	q := NewQueryCache(QueryCacheOptions{Cache: cache, TTL: time.Minute})
	boom := errors.New("boom")
	_, err := cachedQuery(bearerCtx(), q, FamilyBookings, "all", func(context.Context) ([]model.Booking, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
}

// memoryCache is a ports.QueryCache over a map.
type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newMemoryCache() *memoryCache { return &memoryCache{entries: map[string][]byte{}} }

func (m *memoryCache) Get(_ context.Context, family, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.entries[family+"|"+key]
	return v, ok, nil
}

func (m *memoryCache) Set(_ context.Context, family, key string, value []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[family+"|"+key] = value
	return nil
}

func (m *memoryCache) Invalidate(_ context.Context, families ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = map[string][]byte{}
	return nil
}

func (m *memoryCache) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

func TestCachedQuery_NoBearerIsNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	// No expectations: any Get or Set fails the test.
	q := NewQueryCache(QueryCacheOptions{Cache: mocks.NewMockQueryCache(ctrl), TTL: time.Minute})

	calls := 0
	for range 2 {
		_, err := cachedQuery(context.Background(), q, FamilyBrands, "all", func(context.Context) ([]model.Brand, error) {
			calls++
			return nil, nil
		})
		require.NoError(t, err)
	}
	assert.Equal(t, 2, calls)
}

func TestOrderService_OrdersCacheIsScopedPerBearer(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockOrderAPI(ctrl)
	mem := newMemoryCache()
	svc := NewOrderService(OrderServiceOptions{
		API:  api,
		Deps: ResourceDeps{Cache: NewQueryCache(QueryCacheOptions{Cache: mem, TTL: time.Minute})},
	})

	var seen []string
	api.EXPECT().OrdersByStatus(gomock.Any(), model.OrderDelivering).
		DoAndReturn(func(ctx context.Context, _ model.OrderStatus) ([]model.Order, error) {
			tok := ports.BearerFrom(ctx)
			seen = append(seen, tok)
			id := "order-of-" + tok
			return []model.Order{{OrderID: &id}}, nil
		}).Times(2)

	ctxA := ports.WithBearer(context.Background(), "courier-A")
	ctxB := ports.WithBearer(context.Background(), "courier-B")

	gotA, err := svc.Orders(ctxA, model.OrderDelivering)
	require.NoError(t, err)
	gotB, err := svc.Orders(ctxB, model.OrderDelivering)
	require.NoError(t, err)

	assert.Equal(t, "order-of-courier-A", gotA[0].ID())
	assert.Equal(t, "order-of-courier-B", gotB[0].ID())
	assert.Equal(t, []string{"courier-A", "courier-B"}, seen)
	assert.Equal(t, 2, mem.len())

	// Second reads are served from each bearer's own entry.
	again, err := svc.Orders(ctxB, model.OrderDelivering)
	require.NoError(t, err)
	assert.Equal(t, "order-of-courier-B", again[0].ID())

	// Invalidation still spans the whole family.
	svc.cache.Invalidate(ctxA, FamilyOrders)
	assert.Equal(t, 0, mem.len())
}

func TestCachedQuery_CancelledCallerDoesNotFailSharedFill(t *testing.T) {
	mem := newMemoryCache()
	q := NewQueryCache(QueryCacheOptions{Cache: mem, TTL: time.Minute})

	started := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	fetch := func(ctx context.Context) ([]model.Brand, error) {
		once.Do(func() { close(started) })
		<-release
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return []model.Brand{{BrandName: "Acme"}}, nil
	}

	ctxA, cancelA := context.WithCancel(bearerCtx())
	errA := make(chan error, 1)
	go func() {
		_, err := cachedQuery(ctxA, q, FamilyBrands, "all", fetch)
		errA <- err
	}()
	<-started

	type result struct {
		brands []model.Brand
		err    error
	}
	resB := make(chan result, 1)
	go func() {
		got, err := cachedQuery(bearerCtx(), q, FamilyBrands, "all", fetch)
		resB <- result{got, err}
	}()

	cancelA()
	assert.ErrorIs(t, <-errA, context.Canceled)

	time.Sleep(20 * time.Millisecond)
	close(release)

	select {
	case res := <-resB:
		require.NoError(t, res.err)
		assert.Equal(t, []model.Brand{{BrandName: "Acme"}}, res.brands)
	case <-time.After(5 * time.Second):
		t.Fatal("joined caller never returned")
	}
	assert.Equal(t, 1, mem.len())
}

func TestQueryCache_InvalidateSwallowsErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockQueryCache(ctrl)
	cache.EXPECT().Invalidate(gomock.Any(), FamilyBrands).Return(errors.New("redis down"))

	q := NewQueryCache(QueryCacheOptions{Cache: cache, TTL: time.Minute})
	q.Invalidate(context.Background(), FamilyBrands)
	q.Invalidate(context.Background())

	var nilCache *QueryCache
	nilCache.Invalidate(context.Background(), FamilyBrands)
}

func TestIsCacheFamily(t *testing.T) {
	for _, f := range CacheFamilies {
		assert.True(t, IsCacheFamily(f), f)
	}
	assert.False(t, IsCacheFamily("sessions"))
}
