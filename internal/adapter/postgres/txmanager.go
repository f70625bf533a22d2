package postgres

import (
	"context"
	"fmt"

	"github.com/heartmarshall/callsign-backend/internal/adapter/database"
)

// Transaction runs fn within a database transaction on one pooled
// connection. Isolation level: Read Committed (PostgreSQL default).
// On success: commits.
// On error from fn: rolls back and returns the error.
// On panic from fn: rolls back and re-panics.
// The connection returns to the pool on commit or rollback. Transaction
// bodies are never retried.
func (d *Driver) Transaction(ctx context.Context, fn database.TxFunc) (err error) {
	p, err := d.handle(ctx)
	if err != nil {
		return err
	}

	tx, err := p.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	q := func(ctx context.Context, sql string, args ...any) (*database.Result, error) {
		return d.execute(ctx, tx, sql, args...)
	}

	if err := fn(database.WithTx(ctx, q), q); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback failed: %w (original error: %v)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
