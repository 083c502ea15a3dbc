package db

import (
	"context"
	"time"

	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBTX is the executor surface shared by *pgxpool.Pool and pgx.Tx, so
// repositories work unchanged inside and outside transactions.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func Connect(cfg config.DBConfig) (*pgxpool.Pool, func(), error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.BuildDSN())
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to parse database config")
	}

	poolCfg.MaxConns = 20
	poolCfg.MaxConnLifetime = time.Hour

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to create connection pool")
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, errs.Wrap(err, "failed to ping database")
	}

	cleanup := func() {
		pool.Close()
	}

	return pool, cleanup, nil
}
