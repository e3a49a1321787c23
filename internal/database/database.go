package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"contra-api/internal/config"
	"contra-api/internal/logger"

	_ "github.com/lib/pq"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
)

// Connect opens the Postgres pool described by cfg and retries the initial
// ping up to cfg.ConnectRetries times.
func Connect(ctx context.Context, cfg config.DatabaseConfig, log *logger.Logger) (*bun.DB, error) {
	sqldb, err := sql.Open("postgres", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	sqldb.SetMaxOpenConns(cfg.MaxOpenConns)
	sqldb.SetMaxIdleConns(cfg.MaxIdleConns)
	sqldb.SetConnMaxLifetime(cfg.MaxLifetime)

	if err := pingWithRetry(ctx, sqldb, cfg, log); err != nil {
		sqldb.Close()
		return nil, err
	}

	log.Info("DATABASE", "✅ PostgreSQL connection successful")

	bunDB := bun.NewDB(sqldb, pgdialect.New())
	if cfg.LogQueries {
		bunDB.AddQueryHook(NewQueryHook(log))
		log.Info("DATABASE", "Query logging enabled")
	}

	return bunDB, nil
}

func pingWithRetry(ctx context.Context, sqldb *sql.DB, cfg config.DatabaseConfig, log *logger.Logger) error {
	maxRetries := cfg.ConnectRetries
	if maxRetries < 1 {
		maxRetries = 1
	}

	var err error
	for i := 0; i < maxRetries; i++ {
		log.Info("DATABASE", fmt.Sprintf("Attempting to connect to PostgreSQL (attempt %d/%d)", i+1, maxRetries))

		err = sqldb.PingContext(ctx)
		if err == nil {
			return nil
		}

		log.Error("DATABASE", fmt.Sprintf("Failed to connect to PostgreSQL: %v", err))
		if i < maxRetries-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(cfg.RetryInterval):
			}
		}
	}

	return fmt.Errorf("connect to PostgreSQL after %d attempts: %w", maxRetries, err)
}
