package driver

import (
	"context"
	"fmt"
	"os"
	"time"

	"relay-notifier/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

// DB is the subset of pgxpool.Pool the reminder queries need.
// pgxmock satisfies it in tests.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func Init(ctx context.Context) (*pgxpool.Pool, error) {
	// .env is optional; real deployments set the variables directly.
	_ = godotenv.Load()

	connString := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("RELAY_NOTIFIER_DB_USER"),
		os.Getenv("RELAY_NOTIFIER_DB_PASSWORD"),
		os.Getenv("DB_NAME"))

	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		logger.Logger.Error("Failed to parse database config", "error", err)
		return nil, err
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = 1 * time.Hour
	config.MaxConnIdleTime = 30 * time.Minute

	dbPool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		logger.Logger.Error("Failed to connect to database", "error", err)
		return nil, err
	}

	err = dbPool.Ping(ctx)
	if err != nil {
		logger.Logger.Error("Failed to ping database", "error", err)
		dbPool.Close()
		return nil, err
	}

	logger.Logger.Info("Connected to database pool", "max_conns", config.MaxConns, "min_conns", config.MinConns)

	return dbPool, nil
}
