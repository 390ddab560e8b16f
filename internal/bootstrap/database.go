package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"strconv"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/redis/go-redis/v9"

	"github.com/meinblog/blog-api/config"
	"github.com/meinblog/blog-api/internal/data"
)

// DatabaseConfig contains configuration for database connections.
type DatabaseConfig struct {
	DBConfig    config.DBConfig
	RedisConfig config.RedisConfig
	Logger      *slog.Logger
}

// BuildPostgresDSN renders the connection string, handling special characters
// in credentials safely.
func BuildPostgresDSN(cfg config.DBConfig) string {
	u := &url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(cfg.User, cfg.Password),
		Host:   net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Path:   "/" + cfg.Name,
	}
	q := u.Query()
	q.Set("sslmode", cfg.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}

// NewDBDialer returns the dial function the connection cache invokes on first
// use. Each invocation opens a pooled handle and verifies it with a ping; a
// handle that fails the ping is closed rather than leaked.
func NewDBDialer(cfg DatabaseConfig) data.DialFunc {
	dsn := BuildPostgresDSN(cfg.DBConfig)

	return func(ctx context.Context) (*sql.DB, error) {
		db, err := sql.Open("pgx", dsn)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}

		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		if pingErr := db.PingContext(pingCtx); pingErr != nil {
			if closeErr := db.Close(); closeErr != nil {
				pingErr = errors.Join(pingErr, fmt.Errorf("close database connection: %w", closeErr))
			}
			return nil, fmt.Errorf("ping database: %w", pingErr)
		}

		if cfg.Logger != nil {
			cfg.Logger.Info("database connected",
				"host", cfg.DBConfig.Host,
				"port", cfg.DBConfig.Port,
				"database", cfg.DBConfig.Name,
			)
		}

		return db, nil
	}
}

// ConnectRedis establishes a connection to Redis for the post listing cache.
//
//nolint:ireturn // redis.UniversalClient keeps the call sites client-type agnostic.
func ConnectRedis(cfg DatabaseConfig) (redis.UniversalClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisConfig.URI,
		Password: cfg.RedisConfig.Password,
		DB:       cfg.RedisConfig.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if pingErr := client.Ping(ctx).Err(); pingErr != nil {
		if closeErr := client.Close(); closeErr != nil {
			pingErr = errors.Join(pingErr, fmt.Errorf("close redis client: %w", closeErr))
		}
		return nil, fmt.Errorf("ping redis: %w", pingErr)
	}

	if cfg.Logger != nil {
		cfg.Logger.Info("redis connected", "addr", cfg.RedisConfig.URI)
	}

	return client, nil
}
