package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/net/netutil"

	"github.com/meinblog/blog-api/config"
	httpx "github.com/meinblog/blog-api/internal/http"
)

// HTTPServerConfig contains configuration for the HTTP server.
type HTTPServerConfig struct {
	Config   *config.AppConfig
	Services ServiceContainer
	Logger   *slog.Logger
}

// StartHTTPServer builds the router, binds the listener, and starts serving
// in the background. Returns the server instance for graceful shutdown.
func StartHTTPServer(cfg HTTPServerConfig) (*http.Server, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	appCfg := cfg.Config
	if appCfg == nil {
		appCfg = &config.AppConfig{}
	}

	handler := httpx.NewRouter(httpx.RouterServices{
		Auth:                cfg.Services.Auth,
		Profile:             cfg.Services.Profile,
		Posts:               cfg.Services.Posts,
		Tokens:              cfg.Services.Tokens,
		Guard:               httpx.DefaultGuardConfig(),
		CookieDomain:        appCfg.HTTP.CookieDomain,
		SessionTTL:          appCfg.Auth.TokenTTL,
		MaxBodyBytes:        appCfg.HTTP.MaxBodyBytes,
		MaxProfileBodyBytes: appCfg.HTTP.MaxProfileBodyBytes,
		Logger:              logger,
	})

	addr := appCfg.HTTP.Addr
	if addr == "" {
		addr = ":8080"
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}
	if appCfg.HTTP.MaxConns > 0 {
		listener = netutil.LimitListener(listener, appCfg.HTTP.MaxConns)
	}

	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("starting HTTP server", "addr", addr, "max_conns", appCfg.HTTP.MaxConns)
		if serveErr := server.Serve(listener); serveErr != nil && serveErr != http.ErrServerClosed {
			logger.Error("HTTP server failed", "error", serveErr)
		}
	}()

	return server, nil
}

// ShutdownHTTPServer gracefully drains and stops the HTTP server.
func ShutdownHTTPServer(ctx context.Context, server *http.Server, logger *slog.Logger) error {
	if server == nil {
		return nil
	}
	if logger != nil {
		logger.Info("shutting down HTTP server")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if logger != nil {
		logger.Info("HTTP server stopped")
	}
	return nil
}
