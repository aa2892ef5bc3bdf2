package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/target/storefront-admin/config"
	"github.com/target/storefront-admin/internal/adapters/backend"
	"github.com/target/storefront-admin/internal/adapters/devauth"
	redisadapter "github.com/target/storefront-admin/internal/adapters/redis"
	"github.com/target/storefront-admin/internal/data"
	"github.com/target/storefront-admin/internal/ports"
	"github.com/target/storefront-admin/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Auth      *service.AuthService
	Catalog   *service.CatalogService
	People    *service.PeopleService
	Orders    *service.OrderService
	Dashboard *service.DashboardService

	// Cache is the raw Redis query cache, used by /healthz and the CLI purge.
	Cache *redisadapter.QueryCache
	Audit ports.AuditTrail
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB // Optional: nil disables the audit trail
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// newAuditTrail returns the Postgres audit repo, or a no-op when there is no database.
//
//nolint:ireturn // the no-op and Postgres trails share the port.
func newAuditTrail(db *sql.DB) ports.AuditTrail {
	if db == nil {
		return data.NoopAuditTrail{}
	}
	return data.NewAuditRepo(db)
}

// newBackendClient builds the store API client shared by every resource service.
func newBackendClient(cfg config.BackendConfig, logger *slog.Logger) (*backend.Client, error) {
	client, err := backend.New(backend.Config{
		BaseURL:            cfg.BaseURL,
		Timeout:            cfg.Timeout,
		EnvelopePath:       cfg.EnvelopePath,
		InsecureSkipVerify: cfg.InsecureSkipVerify,
		Logger:             logger,
	})
	if err != nil {
		return nil, fmt.Errorf("backend client: %w", err)
	}
	return client, nil
}

// newAuthenticator returns the store API login, or the dev authenticator when
// AUTH_DEV_LOGIN is set. Dev tokens are signed with the HMAC secret so they
// verify in hmac mode too.
//
//nolint:ireturn // both logins satisfy the same port.
func newAuthenticator(cfg config.AuthConfig, api *backend.Client, logger *slog.Logger) (ports.Authenticator, error) {
	if !cfg.DevLogin {
		return api, nil
	}
	users := make([]devauth.User, 0, len(cfg.DevUsers))
	for _, entry := range cfg.DevUsers {
		u, err := devauth.ParseUser(entry)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	logger.Warn("dev login enabled; the store API login endpoint is bypassed", "users", len(users))
	dev, err := devauth.New(devauth.Config{
		Users:  users,
		Secret: []byte(cfg.HMACSecret),
		Logger: logger,
	})
	if err != nil {
		return nil, err
	}
	return dev, nil
}

// NewServices wires the adapters into the services the console runs on.
// ctx bounds background work such as JWKS key refreshes.
func NewServices(ctx context.Context, deps *ServiceDeps) (ServiceContainer, error) {
	if deps == nil || deps.Config == nil {
		return ServiceContainer{}, errors.New("service deps with config are required")
	}
	if deps.RedisClient == nil {
		return ServiceContainer{}, errors.New("redis client is required")
	}
	cfg := deps.Config
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	api, err := newBackendClient(cfg.Backend, logger)
	if err != nil {
		return ServiceContainer{}, err
	}
	decoder, err := BuildDecoder(ctx, cfg.Auth, logger)
	if err != nil {
		return ServiceContainer{}, err
	}

	audit := newAuditTrail(deps.DB)
	rawCache := redisadapter.NewQueryCache(deps.RedisClient, cfg.Cache.Prefix)

	cacheTTL := cfg.Cache.TTL
	if !cfg.Cache.Enabled {
		cacheTTL = 0
	}
	resources := service.ResourceDeps{
		Cache: service.NewQueryCache(service.QueryCacheOptions{
			Cache:  rawCache,
			TTL:    cacheTTL,
			Logger: logger,
		}),
		Audit:  audit,
		Logger: logger,
	}

	authenticator, err := newAuthenticator(cfg.Auth, api, logger)
	if err != nil {
		return ServiceContainer{}, err
	}
	auth, err := BuildAuthService(AuthConfig{
		Auth:        cfg.Auth,
		RedisClient: deps.RedisClient,
		Decoder:     decoder,
		Backend:     authenticator,
		Audit:       audit,
		Logger:      logger,
	})
	if err != nil {
		return ServiceContainer{}, err
	}

	orders := service.NewOrderService(service.OrderServiceOptions{API: api, Deps: resources})
	return ServiceContainer{
		Auth: auth,
		Catalog: service.NewCatalogService(service.CatalogServiceOptions{
			API:      api,
			Language: cfg.Backend.Language,
			Deps:     resources,
		}),
		People: service.NewPeopleService(service.PeopleServiceOptions{API: api, Deps: resources}),
		Orders: orders,
		Dashboard: service.NewDashboardService(service.DashboardServiceOptions{
			API:    api,
			Orders: orders,
			Deps:   resources,
		}),
		Cache: rawCache,
		Audit: audit,
	}, nil
}
