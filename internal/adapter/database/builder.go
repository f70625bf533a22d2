package database

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// Builder produces statements in the reference dialect ($n placeholders).
var Builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Run renders b and executes it with q.
func Run(ctx context.Context, q QueryFunc, b sq.Sqlizer) (*Result, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sql: %w", err)
	}
	return q(ctx, sql, args...)
}
