package lifecycle

import (
	"context"
	"fmt"

	"github.com/heartmarshall/callsign-backend/internal/domain"
)

// GetAction returns an Action by ID.
func (s *Service) GetAction(ctx context.Context, actionID int64) (*domain.Action, error) {
	if actionID <= 0 {
		return nil, domain.NewValidationError("action_id", "required")
	}
	return s.requireAction(ctx, actionID)
}

// ListActionsByIncident returns the Incident's actions, governing one first.
func (s *Service) ListActionsByIncident(ctx context.Context, incidentID int64) ([]domain.Action, error) {
	if incidentID <= 0 {
		return nil, domain.NewValidationError("incident_id", "required")
	}
	if _, err := s.requireIncident(ctx, incidentID); err != nil {
		return nil, err
	}

	actions, err := s.actions.ListByIncident(ctx, incidentID)
	if err != nil {
		return nil, fmt.Errorf("list actions: %w", err)
	}
	return actions, nil
}

// ActionHistory returns the audit trail of an Action, oldest first.
func (s *Service) ActionHistory(ctx context.Context, actionID int64) ([]domain.ActionHistory, error) {
	if actionID <= 0 {
		return nil, domain.NewValidationError("action_id", "required")
	}
	if _, err := s.requireAction(ctx, actionID); err != nil {
		return nil, err
	}

	rows, err := s.history.ListByAction(ctx, actionID)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return rows, nil
}
