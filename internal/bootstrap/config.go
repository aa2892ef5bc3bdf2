package bootstrap

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/target/storefront-admin/config"
)

// InitLogger initializes the structured logger at level (debug, info, warn, error).
// Unknown levels fall back to info.
func InitLogger(level string) *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(level),
	}))
	slog.SetDefault(logger)
	return logger
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (config.AppConfig, error) {
	// Load .env file if it exists (development)
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return config.AppConfig{}, fmt.Errorf("load .env file: %w", err)
		}
	}

	var cfg config.AppConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	cfg.Sanitize()
	return cfg, nil
}

// ValidateConfig rejects combinations the console cannot start with.
func ValidateConfig(cfg *config.AppConfig) error {
	if cfg == nil {
		return errors.New("config is required")
	}
	switch cfg.Auth.VerifyMode {
	case config.VerifyModeHMAC:
		if cfg.Auth.HMACSecret == "" {
			return errors.New("AUTH_HMAC_SECRET is required when AUTH_VERIFY_MODE=hmac")
		}
	case config.VerifyModeJWKS:
		if cfg.Auth.JWKSURL == "" {
			return errors.New("AUTH_JWKS_URL is required when AUTH_VERIFY_MODE=jwks")
		}
	}
	if cfg.Auth.DevLogin {
		if !cfg.IsDev {
			return errors.New("AUTH_DEV_LOGIN is only allowed in development mode")
		}
		if len(cfg.Auth.DevUsers) == 0 {
			return errors.New("AUTH_DEV_USERS is required when AUTH_DEV_LOGIN=true")
		}
		if cfg.Auth.VerifyMode == config.VerifyModeJWKS {
			return errors.New("AUTH_DEV_LOGIN cannot sign tokens for AUTH_VERIFY_MODE=jwks")
		}
	}
	if cfg.Backend.BaseURL == "" {
		return errors.New("BACKEND_BASE_URL is required")
	}
	if cfg.Backend.InsecureSkipVerify && !cfg.IsDev {
		return errors.New("BACKEND_INSECURE_SKIP_VERIFY is only allowed in development mode")
	}
	return nil
}
