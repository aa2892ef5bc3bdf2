package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/target/storefront-admin/internal/ports"
)

// Cache families. Each names one kind of backend read; mutations invalidate whole families.
const (
	FamilyProducts          = "products"
	FamilyProduct           = "product"
	FamilyBrands            = "brands"
	FamilyCategories        = "categories"
	FamilyCategoryInstances = "category-instances"
	FamilySupplierHistory   = "supplier-history"
	FamilyUsers             = "users"
	FamilyDoctors           = "doctors"
	FamilyBookings          = "bookings"
	FamilyOrders            = "orders"
	FamilyVoucher           = "voucher"
	FamilyDashboard         = "dashboard"
)

// CacheFamilies lists every family in display order.
var CacheFamilies = []string{
	FamilyProducts, FamilyProduct, FamilyBrands, FamilyCategories, FamilyCategoryInstances,
	FamilySupplierHistory, FamilyUsers, FamilyDoctors, FamilyBookings, FamilyOrders,
	FamilyVoucher, FamilyDashboard,
}

// IsCacheFamily reports whether name is a known family.
func IsCacheFamily(name string) bool {
	for _, f := range CacheFamilies {
		if f == name {
			return true
		}
	}
	return false
}

// QueryCacheOptions configures the read cache shared by the resource services.
type QueryCacheOptions struct {
	Cache  ports.QueryCache // Optional: nil disables caching
	TTL    time.Duration
	Logger *slog.Logger
}

// QueryCache fronts backend reads with a ports.QueryCache and collapses
// concurrent fills of the same key. Cache failures are logged and bypassed.
type QueryCache struct {
	cache  ports.QueryCache
	ttl    time.Duration
	group  singleflight.Group
	logger *slog.Logger
}

// NewQueryCache builds a QueryCache. A nil cache or non-positive TTL yields a passthrough.
func NewQueryCache(opts QueryCacheOptions) *QueryCache {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	qc := &QueryCache{ttl: opts.TTL, logger: logger.With("component", "query_cache")}
	if opts.TTL > 0 {
		qc.cache = opts.Cache
	}
	return qc
}

func (q *QueryCache) enabled() bool { return q != nil && q.cache != nil }

// Invalidate drops the named families. Failures are logged; stale reads expire with the TTL.
func (q *QueryCache) Invalidate(ctx context.Context, families ...string) {
	if !q.enabled() || len(families) == 0 {
		return
	}
	if err := q.cache.Invalidate(ctx, families...); err != nil {
		q.logger.WarnContext(ctx, "cache invalidation failed", "families", families, "error", err)
	}
}

// fillTimeout bounds a shared fill once it no longer follows any one caller's context.
const fillTimeout = 30 * time.Second

// cacheScope names whose view of the store API a read is. The store API
// authorizes per bearer token, so entries are never shared between tokens.
// Reads without a bearer are not cached.
func cacheScope(ctx context.Context) (string, bool) {
	tok := ports.BearerFrom(ctx)
	if tok == "" {
		return "", false
	}
	sum := sha256.Sum256([]byte(tok))
	return hex.EncodeToString(sum[:16]), true
}

func scopedKey(scope, key string) string { return scope + ":" + key }

// cachedQuery returns the cached value for family/key under the caller's
// bearer scope or fills it with fetch. Concurrent fills of one scoped key
// share a single fetch; each caller still returns when its own ctx ends.
func cachedQuery[T any](ctx context.Context, q *QueryCache, family, key string, fetch func(context.Context) (T, error)) (T, error) {
	var zero T
	if !q.enabled() {
		return fetch(ctx)
	}
	scope, ok := cacheScope(ctx)
	if !ok {
		return fetch(ctx)
	}
	key = scopedKey(scope, key)

	if raw, ok, err := q.cache.Get(ctx, family, key); err != nil {
		q.logger.WarnContext(ctx, "cache read failed", "family", family, "error", err)
	} else if ok {
		var v T
		if err := json.Unmarshal(raw, &v); err == nil {
			return v, nil
		}
		q.logger.WarnContext(ctx, "cache entry unreadable", "family", family, "key", key)
	}

	ch := q.group.DoChan(family+"\x00"+key, func() (any, error) {
		// Detached so one caller leaving does not fail the others; values
		// (bearer, actor) are kept and match every caller in this scope.
		fillCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), fillTimeout)
		defer cancel()

		val, err := fetch(fillCtx)
		if err != nil {
			return nil, err
		}
		raw, err := json.Marshal(val)
		if err != nil {
			q.logger.WarnContext(fillCtx, "cache encode failed", "family", family, "error", err)
			return val, nil
		}
		if err := q.cache.Set(fillCtx, family, key, raw, q.ttl); err != nil {
			q.logger.WarnContext(fillCtx, "cache write failed", "family", family, "error", err)
		}
		return val, nil
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	}
}
