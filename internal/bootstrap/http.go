package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/target/storefront-admin/config"
	"github.com/target/storefront-admin/internal/adapters/backend"
	httpx "github.com/target/storefront-admin/internal/http"
)

const shutdownWaitTimeout = 10 * time.Second

// HTTPServerConfig contains configuration for HTTP server.
type HTTPServerConfig struct {
	Config   *config.AppConfig
	Services ServiceContainer
	DB       *sql.DB // Optional: adds the database to /healthz
	Logger   *slog.Logger
}

// routerServices maps the service container and config onto the router's inputs.
func routerServices(cfg *HTTPServerConfig, logger *slog.Logger) httpx.RouterServices {
	appCfg := cfg.Config
	if appCfg == nil {
		appCfg = &config.AppConfig{}
	}

	health := map[string]httpx.HealthChecker{}
	if cfg.Services.Cache != nil {
		health["redis"] = cfg.Services.Cache
	}
	if cfg.DB != nil {
		health["database"] = dbHealth{db: cfg.DB}
	}

	return httpx.RouterServices{
		Auth:      cfg.Services.Auth,
		Catalog:   cfg.Services.Catalog,
		People:    cfg.Services.People,
		Orders:    cfg.Services.Orders,
		Dashboard: cfg.Services.Dashboard,
		Cookie: httpx.CookieOptions{
			Name:   appCfg.Auth.CookieName,
			Domain: appCfg.HTTP.CookieDomain,
			MaxAge: appCfg.Auth.SessionTTL,
		},
		CSRF:          httpx.CSRFConfig{CookieDomain: appCfg.HTTP.CookieDomain},
		BearerContext: backend.WithToken,
		Health:        health,
		IsDev:         appCfg.IsDev,
		Logger:        logger,
	}
}

// StartHTTPServer creates and starts the HTTP server.
// Returns the server instance for graceful shutdown; listen failures are sent on errCh.
func StartHTTPServer(cfg *HTTPServerConfig, errCh chan<- error) (*http.Server, error) {
	if cfg == nil {
		return nil, errors.New("http server config is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	handler, err := httpx.NewRouter(routerServices(cfg, logger))
	if err != nil {
		return nil, fmt.Errorf("build router: %w", err)
	}

	addr := ":8080"
	if cfg.Config != nil && cfg.Config.HTTP.Addr != "" {
		addr = cfg.Config.HTTP.Addr
	}
	return startServer(logger, handler, addr, errCh), nil
}

func startServer(logger *slog.Logger, handler http.Handler, addr string, errCh chan<- error) *http.Server {
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		logger.Info("starting HTTP server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server failed", "error", err)
			if errCh != nil {
				errCh <- err
			}
		}
	}()

	return server
}

// ShutdownHTTPServer gracefully shuts down the HTTP server.
func ShutdownHTTPServer(ctx context.Context, server *http.Server, logger *slog.Logger) error {
	if server == nil {
		return nil
	}
	if logger != nil {
		logger.InfoContext(ctx, "shutting down HTTP server")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownWaitTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	if logger != nil {
		logger.InfoContext(ctx, "HTTP server stopped")
	}
	return nil
}

// RunHTTPWithShutdown serves the console until SIGINT/SIGTERM or a listen
// failure, then drains in-flight requests.
func RunHTTPWithShutdown(ctx context.Context, cfg *HTTPServerConfig) error {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	errCh := make(chan error, 1)
	server, err := StartHTTPServer(cfg, errCh)
	if err != nil {
		return err
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case sig := <-quit:
		logger.InfoContext(ctx, "shutdown signal received", "signal", sig.String())
		// Shutdown gets a fresh context; ctx may already be done.
		return ShutdownHTTPServer(context.WithoutCancel(ctx), server, logger)
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return ShutdownHTTPServer(context.WithoutCancel(ctx), server, logger)
	}
}
