package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/meinblog/blog-api/internal/bootstrap"
	"github.com/meinblog/blog-api/internal/data"
	"github.com/meinblog/blog-api/internal/migrate"
)

func main() {
	ctx := context.Background()
	logger := bootstrap.InitLogger()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	logger.InfoContext(ctx, "starting blog api",
		"db_host", cfg.Postgres.Host,
		"db_port", cfg.Postgres.Port,
		"db_name", cfg.Postgres.Name,
		"redis_enabled", cfg.Redis.Enabled,
		"dev", cfg.IsDev)

	// The connection cache dials lazily; the first request that needs the
	// database triggers a single shared dial.
	conns := data.NewConnCache(bootstrap.NewDBDialer(bootstrap.DatabaseConfig{
		DBConfig: cfg.Postgres,
		Logger:   logger,
	}))
	defer func() {
		if cerr := conns.Close(); cerr != nil {
			logger.ErrorContext(ctx, "close database failed", "error", cerr)
		}
	}()

	if cfg.Postgres.RunMigrationsOnStart {
		db, acquireErr := conns.Acquire(ctx)
		if acquireErr != nil {
			return fmt.Errorf("acquire database for migrations: %w", acquireErr)
		}
		if migrateErr := migrate.Run(ctx, db); migrateErr != nil {
			return fmt.Errorf("run migrations: %w", migrateErr)
		}
	} else {
		logger.InfoContext(ctx, "skipping database migrations on startup", "reason", "disabled via config")
	}

	var redisClient redis.UniversalClient
	if cfg.Redis.Enabled {
		redisClient, err = bootstrap.ConnectRedis(bootstrap.DatabaseConfig{
			RedisConfig: cfg.Redis,
			Logger:      logger,
		})
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer func() {
			if cerr := redisClient.Close(); cerr != nil {
				logger.ErrorContext(ctx, "close redis failed", "error", cerr)
			}
		}()
	}

	services := bootstrap.BuildServices(bootstrap.ServiceDeps{
		Config:      &cfg,
		Conns:       conns,
		RedisClient: redisClient,
		Logger:      logger,
	})

	server, err := bootstrap.StartHTTPServer(bootstrap.HTTPServerConfig{
		Config:   &cfg,
		Services: services,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	notifyCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-notifyCtx.Done()

	return bootstrap.ShutdownHTTPServer(context.Background(), server, logger)
}
