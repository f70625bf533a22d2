// Package sqlite implements the embedded storage engine on a single SQLite
// file. Statements arrive in the reference dialect and are translated before
// execution (see Translate).
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/georgysavva/scany/v2/sqlscan"
	"github.com/mattn/go-sqlite3"

	"github.com/heartmarshall/callsign-backend/internal/adapter/database"
	"github.com/heartmarshall/callsign-backend/internal/config"
)

// DriverName is the value of config.DatabaseConfig.Driver selecting this engine.
const DriverName = config.DriverSQLite

// Driver owns the single SQLite handle. The handle is opened on first use
// with WAL journaling and foreign keys enabled, and limited to one connection.
//
// SQLite allows one writer at a time, so transactions serialize: a long
// transaction blocks every other caller for its whole duration. This is a
// throughput limit, not a correctness problem, and is intentionally not
// worked around here. For the same reason a TxFunc must only use the
// QueryFunc it was given; calling Driver.Query from inside it waits for the
// connection the transaction holds.
type Driver struct {
	cfg config.SQLiteConfig
	log *slog.Logger

	mu sync.Mutex
	db *sql.DB
}

var _ database.DB = (*Driver)(nil)

// New creates a Driver. No file is touched until the first call.
func New(cfg config.SQLiteConfig, log *slog.Logger) *Driver {
	return &Driver{
		cfg: cfg,
		log: log.With("driver", DriverName),
	}
}

// Driver returns the engine name.
func (d *Driver) Driver() string { return DriverName }

// handle opens (or creates) the database file on first use and bootstraps the
// schema.
func (d *Driver) handle(ctx context.Context) (*sql.DB, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.db != nil {
		return d.db, nil
	}

	if d.cfg.Path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(d.cfg.Path), 0o755); err != nil {
			return nil, fmt.Errorf("sqlite: create data dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dsn(d.cfg.Path))
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %s: %w", d.cfg.Path, err)
	}

	// One connection: SQLite has a single writer, and pragmas are per connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: connect %s: %w", d.cfg.Path, err)
	}

	if err := bootstrap(ctx, db, d.log); err != nil {
		db.Close()
		return nil, err
	}

	d.db = db
	d.log.InfoContext(ctx, "sqlite database opened", slog.String("path", d.cfg.Path))
	return db, nil
}

func dsn(path string) string {
	return path + "?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
}

// Query translates and executes one statement.
func (d *Driver) Query(ctx context.Context, sql string, args ...any) (*database.Result, error) {
	db, err := d.handle(ctx)
	if err != nil {
		return nil, err
	}
	return d.execute(ctx, db, sql, args...)
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// execute dispatches on the leading keyword: reads return rows, everything
// else returns only the affected row count.
func (d *Driver) execute(ctx context.Context, q execer, stmt string, args ...any) (*database.Result, error) {
	translated, err := Translate(stmt)
	if err != nil {
		return nil, err
	}

	start := time.Now()

	if IsRead(translated) {
		rows, err := q.QueryContext(ctx, translated, args...)
		if err != nil {
			return nil, err
		}
		var out []map[string]any
		if err := sqlscan.ScanAll(&out, rows); err != nil {
			return nil, err
		}
		for _, row := range out {
			textColumns(row)
		}
		res := &database.Result{Rows: out, RowCount: int64(len(out))}
		d.logQuery(ctx, start, res)
		return res, nil
	}

	r, err := q.ExecContext(ctx, translated, args...)
	if err != nil {
		return nil, err
	}
	n, err := r.RowsAffected()
	if err != nil {
		return nil, err
	}
	res := &database.Result{RowCount: n}
	d.logQuery(ctx, start, res)
	return res, nil
}

// textColumns turns []byte values into strings. The schema has no BLOB
// columns, and callers compare TEXT values as strings.
func textColumns(row map[string]any) {
	for k, v := range row {
		if b, ok := v.([]byte); ok {
			row[k] = string(b)
		}
	}
}

func (d *Driver) logQuery(ctx context.Context, start time.Time, res *database.Result) {
	d.log.DebugContext(ctx, "query executed",
		slog.Duration("duration", time.Since(start)),
		slog.Int64("row_count", res.RowCount),
	)
}

// Transaction runs fn between BEGIN and COMMIT; an error or panic from fn
// rolls back.
func (d *Driver) Transaction(ctx context.Context, fn database.TxFunc) (err error) {
	db, err := d.handle(ctx)
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			panic(r)
		}
	}()

	q := func(ctx context.Context, sql string, args ...any) (*database.Result, error) {
		return d.execute(ctx, tx, sql, args...)
	}

	if err := fn(database.WithTx(ctx, q), q); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback failed: %w (original error: %v)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Migrate opens the database, which bootstraps any missing tables.
func (d *Driver) Migrate(ctx context.Context) error {
	_, err := d.handle(ctx)
	return err
}

// Violation classifies SQLite constraint errors.
func (d *Driver) Violation(err error) database.Violation {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) || sqliteErr.Code != sqlite3.ErrConstraint {
		return database.ViolationNone
	}
	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return database.ViolationUnique
	case sqlite3.ErrConstraintForeignKey:
		return database.ViolationForeignKey
	case sqlite3.ErrConstraintCheck:
		return database.ViolationCheck
	case sqlite3.ErrConstraintNotNull:
		return database.ViolationNotNull
	}
	return database.ViolationNone
}

// Close closes the handle.
func (d *Driver) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.db == nil {
		return
	}
	if err := d.db.Close(); err != nil {
		d.log.Warn("close sqlite database", slog.String("error", err.Error()))
	}
	d.db = nil
}
