package lifecycle

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/callsign-backend/internal/domain"
)

// CreateActionInput holds the parameters for filing an Action.
type CreateActionInput struct {
	IncidentID  int64
	ActionType  string
	Description string
	// Status is accepted for compatibility and ignored: new actions are
	// always stored as completed.
	Status domain.ActionStatus
}

// Validate checks all fields and collects all errors.
func (i CreateActionInput) Validate() error {
	var errs []domain.FieldError

	if i.IncidentID <= 0 {
		errs = append(errs, domain.FieldError{Field: "incident_id", Message: "required"})
	}

	actionType := strings.TrimSpace(i.ActionType)
	if actionType == "" {
		errs = append(errs, domain.FieldError{Field: "action_type", Message: "required"})
	}
	if utf8.RuneCountInString(actionType) > MaxActionTypeLength {
		errs = append(errs, domain.FieldError{Field: "action_type", Message: "max 100 characters"})
	}

	if utf8.RuneCountInString(strings.TrimSpace(i.Description)) > MaxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateActionInput holds the parameters for updating an Action. Nil fields
// are left untouched. Status in_progress retracts the Action.
type UpdateActionInput struct {
	ActionID    int64
	Status      *domain.ActionStatus
	ActionType  *string
	Description *string
}

// Validate checks all fields and collects all errors.
func (i UpdateActionInput) Validate() error {
	var errs []domain.FieldError

	if i.ActionID <= 0 {
		errs = append(errs, domain.FieldError{Field: "action_id", Message: "required"})
	}

	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be one of pending, in_progress, completed"})
	}

	if i.ActionType != nil {
		actionType := strings.TrimSpace(*i.ActionType)
		if actionType == "" {
			errs = append(errs, domain.FieldError{Field: "action_type", Message: "must not be empty"})
		}
		if utf8.RuneCountInString(actionType) > MaxActionTypeLength {
			errs = append(errs, domain.FieldError{Field: "action_type", Message: "max 100 characters"})
		}
	}

	if i.Description != nil && utf8.RuneCountInString(strings.TrimSpace(*i.Description)) > MaxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}

	if i.Status == nil && i.ActionType == nil && i.Description == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "nothing to update"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteActionInput holds the parameters for an administrative delete.
type DeleteActionInput struct {
	ActionID int64
}

// Validate checks all fields and collects all errors.
func (i DeleteActionInput) Validate() error {
	if i.ActionID <= 0 {
		return domain.NewValidationError("action_id", "required")
	}
	return nil
}

// trimOrNil trims whitespace. Returns nil if input is nil or the result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// trimPtr trims whitespace, keeping an empty result so a field can be cleared.
func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}
