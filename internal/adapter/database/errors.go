package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/callsign-backend/internal/domain"
)

// MapError converts engine errors to domain errors using db's constraint
// classification. Context errors pass through with the entity prefix.
func MapError(db DB, err error, entity string, id any) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %v: %w", entity, id, err)
	}

	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%s %v: %w", entity, id, domain.ErrNotFound)
	}

	switch db.Violation(err) {
	case ViolationUnique:
		return fmt.Errorf("%s %v: %w", entity, id, domain.ErrAlreadyExists)
	case ViolationForeignKey:
		return fmt.Errorf("%s %v: %w", entity, id, domain.ErrNotFound)
	case ViolationCheck, ViolationNotNull:
		return fmt.Errorf("%s %v: %w", entity, id, domain.ErrValidation)
	}

	return fmt.Errorf("%s %v: %w", entity, id, err)
}
