package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/target/storefront-admin/config"
	"github.com/target/storefront-admin/internal/adapters/jwtclaims"
	redisadapter "github.com/target/storefront-admin/internal/adapters/redis"
	"github.com/target/storefront-admin/internal/ports"
	"github.com/target/storefront-admin/internal/service"
)

// BuildDecoder creates the session token decoder for the configured verify mode.
// ctx bounds background JWKS refreshes and should live as long as the process.
func BuildDecoder(ctx context.Context, cfg config.AuthConfig, logger *slog.Logger) (*jwtclaims.Decoder, error) {
	opts := jwtclaims.Options{Logger: logger}
	switch cfg.VerifyMode {
	case config.VerifyModeNone, "":
		opts.Mode = jwtclaims.ModeNone
		if logger != nil {
			logger.WarnContext(ctx, "session tokens are decoded without signature verification")
		}
	case config.VerifyModeHMAC:
		opts.Mode = jwtclaims.ModeHMAC
		opts.Secret = []byte(cfg.HMACSecret)
	case config.VerifyModeJWKS:
		keys, err := jwtclaims.NewRemoteKeySet(ctx, cfg.JWKSURL)
		if err != nil {
			return nil, fmt.Errorf("jwks key set: %w", err)
		}
		opts.Mode = jwtclaims.ModeJWKS
		opts.KeySet = keys
	default:
		return nil, fmt.Errorf("unsupported verify mode %q", cfg.VerifyMode)
	}

	dec, err := jwtclaims.New(opts)
	if err != nil {
		return nil, fmt.Errorf("build decoder: %w", err)
	}
	return dec, nil
}

// AuthConfig contains configuration for auth service.
type AuthConfig struct {
	Auth        config.AuthConfig
	RedisClient redis.UniversalClient
	Decoder     ports.TokenDecoder
	Backend     ports.Authenticator
	Audit       ports.AuditTrail
	Logger      *slog.Logger
}

// BuildAuthService wires the Redis token stores, decoder and store API login
// into an AuthService.
func BuildAuthService(cfg AuthConfig) (*service.AuthService, error) {
	switch {
	case cfg.RedisClient == nil:
		return nil, errors.New("auth service requires redis for session tokens")
	case cfg.Decoder == nil:
		return nil, errors.New("auth service requires a token decoder")
	case cfg.Backend == nil:
		return nil, errors.New("auth service requires the store API authenticator")
	}

	stores := redisadapter.NewTokenStores(cfg.RedisClient, redisadapter.TokenStoresOptions{
		Prefix: cfg.Auth.KeyPrefix,
		TTL:    cfg.Auth.SessionTTL,
	})
	return service.NewAuthService(service.AuthServiceOptions{
		Sessions: service.SessionDeps{Stores: stores, Decoder: cfg.Decoder},
		Backend:  cfg.Backend,
		Audit:    cfg.Audit,
		Logger:   cfg.Logger,
	}), nil
}
