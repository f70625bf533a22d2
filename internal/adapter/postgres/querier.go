package postgres

import (
	"context"
	"log/slog"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/callsign-backend/internal/adapter/database"
)

// querier is implemented by both the pool and pgx.Tx.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// execute runs one statement on q and materializes the result. Returned rows
// (SELECT or RETURNING) become Result.Rows; otherwise RowCount is taken from
// the command tag.
func (d *Driver) execute(ctx context.Context, q querier, sql string, args ...any) (*database.Result, error) {
	start := time.Now()

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	var out []map[string]any
	if err := pgxscan.ScanAll(&out, rows); err != nil {
		return nil, err
	}

	res := &database.Result{Rows: out, RowCount: int64(len(out))}
	if len(out) == 0 {
		res.RowCount = rows.CommandTag().RowsAffected()
	}

	d.log.DebugContext(ctx, "query executed",
		slog.Duration("duration", time.Since(start)),
		slog.Int64("row_count", res.RowCount),
	)
	return res, nil
}
