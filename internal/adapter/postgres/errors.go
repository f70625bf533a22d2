package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/callsign-backend/internal/adapter/database"
)

// Violation classifies PgError integrity-constraint codes.
func (d *Driver) Violation(err error) database.Violation {
	return violation(err)
}

func violation(err error) database.Violation {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return database.ViolationNone
	}
	switch pgErr.Code {
	case "23505": // unique_violation
		return database.ViolationUnique
	case "23503": // foreign_key_violation
		return database.ViolationForeignKey
	case "23514": // check_violation
		return database.ViolationCheck
	case "23502": // not_null_violation
		return database.ViolationNotNull
	}
	return database.ViolationNone
}
