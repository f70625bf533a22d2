package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// Business rules reported through BusinessRuleError.
const (
	RuleIncidentExists = "incident_exists"
	RuleActionExists   = "action_exists"
	RuleStatusSync     = "status_sync"
)

// BusinessRuleError reports a violated lifecycle rule. Callers map it to a
// user-facing message via errors.As; errors.Is still matches the wrapped
// sentinel (ErrNotFound, ErrConflict).
type BusinessRuleError struct {
	Rule    string
	Message string
	Err     error
}

func (e *BusinessRuleError) Error() string {
	return fmt.Sprintf("business rule %s: %s", e.Rule, e.Message)
}

func (e *BusinessRuleError) Unwrap() error { return e.Err }

// NewBusinessRuleError creates a BusinessRuleError wrapping sentinel.
func NewBusinessRuleError(rule, message string, sentinel error) *BusinessRuleError {
	return &BusinessRuleError{Rule: rule, Message: message, Err: sentinel}
}
