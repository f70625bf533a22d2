// Package postgres implements the pooled client-server storage engine on
// PostgreSQL (pgx). SQL is executed as written; statements outside a
// transaction are retried once on connection faults.
package postgres

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/heartmarshall/callsign-backend/internal/adapter/database"
	"github.com/heartmarshall/callsign-backend/internal/config"
)

// DriverName is the value of config.DatabaseConfig.Driver selecting this engine.
const DriverName = config.DriverPostgres

const defaultBackoff = time.Second

// Driver owns one bounded connection pool, created on first use.
type Driver struct {
	cfg       config.PostgresConfig
	log       *slog.Logger
	connect   connector
	backoff   time.Duration
	retryable map[Fault]bool

	mu   sync.Mutex
	pool pool
}

var _ database.DB = (*Driver)(nil)

// Option configures a Driver.
type Option func(*Driver)

// WithRetryOn replaces the set of faults that are retried.
func WithRetryOn(faults ...Fault) Option {
	return func(d *Driver) {
		d.retryable = make(map[Fault]bool, len(faults))
		for _, f := range faults {
			d.retryable[f] = true
		}
	}
}

func withConnector(c connector) Option {
	return func(d *Driver) { d.connect = c }
}

// New creates a Driver. No connection is made until the first call.
func New(cfg config.PostgresConfig, log *slog.Logger, opts ...Option) *Driver {
	d := &Driver{
		cfg:     cfg,
		log:     log.With("driver", DriverName),
		connect: pgxConnector(cfg),
		backoff: cfg.RetryBackoff,
	}
	if d.backoff <= 0 {
		d.backoff = defaultBackoff
	}
	WithRetryOn(DefaultRetryable...)(d)
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Driver returns the engine name.
func (d *Driver) Driver() string { return DriverName }

// handle returns the pool, creating it on first use.
func (d *Driver) handle(ctx context.Context) (pool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.pool != nil {
		return d.pool, nil
	}

	p, err := d.connect(ctx)
	if err != nil {
		return nil, err
	}
	d.pool = p
	d.log.InfoContext(ctx, "postgres pool opened",
		slog.Int("max_conns", int(d.cfg.MaxConns)),
		slog.Duration("max_conn_idle_time", d.cfg.MaxConnIdleTime),
	)
	return p, nil
}

// Query executes one statement on a pooled connection, retrying once on a
// retryable fault.
func (d *Driver) Query(ctx context.Context, sql string, args ...any) (*database.Result, error) {
	var res *database.Result
	err := d.withRetry(ctx, func(ctx context.Context) error {
		p, err := d.handle(ctx)
		if err != nil {
			return err
		}
		r, err := d.execute(ctx, p, sql, args...)
		if err != nil {
			return err
		}
		res = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Close drains and closes the pool. Safe when the pool was never opened.
func (d *Driver) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.pool == nil {
		return
	}
	d.pool.Close()
	d.pool = nil
}
