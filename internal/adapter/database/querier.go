package database

import "context"

// unexported context key type for storing the transaction-scoped QueryFunc
type txCtxKey struct{}

// WithTx puts a transaction-scoped QueryFunc into the context. Drivers call it
// before handing ctx to a TxFunc.
func WithTx(ctx context.Context, q QueryFunc) context.Context {
	return context.WithValue(ctx, txCtxKey{}, q)
}

// QuerierFromCtx returns the transaction QueryFunc from context if present,
// otherwise db.Query.
func QuerierFromCtx(ctx context.Context, db DB) QueryFunc {
	if q, ok := ctx.Value(txCtxKey{}).(QueryFunc); ok {
		return q
	}
	return db.Query
}

// InTxCtx reports whether ctx carries a transaction.
func InTxCtx(ctx context.Context) bool {
	_, ok := ctx.Value(txCtxKey{}).(QueryFunc)
	return ok
}

// TxManager adapts a DB to the RunInTx shape used by services.
type TxManager struct {
	db DB
}

// NewTxManager creates a new TxManager.
func NewTxManager(db DB) *TxManager {
	return &TxManager{db: db}
}

// RunInTx executes fn within a database transaction. Repositories reach the
// transaction through QuerierFromCtx.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.Transaction(ctx, func(txCtx context.Context, _ QueryFunc) error {
		return fn(txCtx)
	})
}
