// Package database defines the engine-neutral query/transaction contract
// shared by the PostgreSQL and SQLite drivers.
//
// SQL passed through this contract is written once in the reference dialect:
// ordinal placeholders ($1, $2, ...), an optional trailing RETURNING clause and
// NOW() for the current timestamp. Drivers translate as needed.
package database

import "context"

// Row is a single result row keyed by column name.
type Row = map[string]any

// Result is the outcome of one statement. For reads and statements with a
// RETURNING clause (on engines that support it) Rows holds the data and
// RowCount equals len(Rows). Otherwise Rows is empty and RowCount is the
// number of affected rows.
type Result struct {
	Rows     []Row
	RowCount int64
}

// QueryFunc executes one statement.
type QueryFunc func(ctx context.Context, sql string, args ...any) (*Result, error)

// TxFunc is the body of a transaction. q is bound to the transaction; ctx
// carries the same binding for QuerierFromCtx.
type TxFunc func(ctx context.Context, q QueryFunc) error

// Violation classifies integrity-constraint failures reported by an engine.
type Violation int

const (
	ViolationNone Violation = iota
	ViolationUnique
	ViolationForeignKey
	ViolationCheck
	ViolationNotNull
)

// DB is a storage engine handle. Implementations are safe for concurrent use.
type DB interface {
	// Driver returns the configured engine name ("postgres" or "sqlite").
	Driver() string

	// Query executes one statement outside of any transaction.
	Query(ctx context.Context, sql string, args ...any) (*Result, error)

	// Transaction runs fn inside BEGIN/COMMIT. Any error returned by fn, or a
	// panic, rolls the transaction back. Nested calls are NOT supported:
	// calling Transaction inside fn starts a second, independent transaction.
	Transaction(ctx context.Context, fn TxFunc) error

	// Migrate brings the schema up to date.
	Migrate(ctx context.Context) error

	// Violation reports which integrity constraint err violated, if any.
	Violation(err error) Violation

	// Close releases the engine handle. Safe to call more than once.
	Close()
}

// InTx runs fn in a transaction on db and returns its value.
func InTx[T any](ctx context.Context, db DB, fn func(ctx context.Context, q QueryFunc) (T, error)) (T, error) {
	var out T
	err := db.Transaction(ctx, func(ctx context.Context, q QueryFunc) error {
		v, err := fn(ctx, q)
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}
