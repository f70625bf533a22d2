package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/callsign-backend/internal/config"
)

// pool is the subset of *pgxpool.Pool the driver uses. pgxmock.PgxPoolIface
// satisfies it in tests.
type pool interface {
	querier
	Begin(ctx context.Context) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// connector creates the pool on first use.
type connector func(ctx context.Context) (pool, error)

// newPool creates a PostgreSQL connection pool configured from PostgresConfig.
// It parses the DSN, applies pool settings (max/min conns, lifetimes, connect
// timeout), pings the database for fail-fast validation, and returns the
// ready pool.
func newPool(ctx context.Context, cfg config.PostgresConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse database DSN: %w", err)
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime
	if cfg.ConnectTimeout > 0 {
		poolCfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout
	}

	p, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := p.Ping(ctx); err != nil {
		p.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return p, nil
}

func pgxConnector(cfg config.PostgresConfig) connector {
	return func(ctx context.Context) (pool, error) {
		return newPool(ctx, cfg)
	}
}
