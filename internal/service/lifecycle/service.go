// Package lifecycle keeps every Incident's status equal to the status of its
// governing Action. Each mutation runs as one transaction spanning both
// tables.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/callsign-backend/internal/domain"
)

type incidentRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Incident, error)
	SetStatus(ctx context.Context, id int64, status domain.IncidentStatus) error
}

type actionRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Action, error)
	ListByIncident(ctx context.Context, incidentID int64) ([]domain.Action, error)
	Create(ctx context.Context, a *domain.Action) (*domain.Action, error)
	Update(ctx context.Context, id int64, params domain.ActionUpdateParams, reviewer string) error
	Delete(ctx context.Context, id int64) error
}

type historyRepo interface {
	Append(ctx context.Context, h domain.ActionHistory) error
	ListByAction(ctx context.Context, actionID int64) ([]domain.ActionHistory, error)
	DeleteByAction(ctx context.Context, actionID int64) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	MaxActionTypeLength  = 100
	MaxDescriptionLength = 2000
)

// Service implements the Incident/Action lifecycle.
type Service struct {
	incidents incidentRepo
	actions   actionRepo
	history   historyRepo
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new lifecycle service.
func NewService(
	log *slog.Logger,
	incidents incidentRepo,
	actions actionRepo,
	history historyRepo,
	tx txManager,
) *Service {
	return &Service{
		incidents: incidents,
		actions:   actions,
		history:   history,
		tx:        tx,
		log:       log.With("service", "lifecycle"),
	}
}

// requireIncident loads an incident, reporting a missing one as a business
// rule violation.
func (s *Service) requireIncident(ctx context.Context, id int64) (*domain.Incident, error) {
	inc, err := s.incidents.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NewBusinessRuleError(domain.RuleIncidentExists,
			fmt.Sprintf("incident %d does not exist", id), domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get incident: %w", err)
	}
	return inc, nil
}

// requireAction loads an action, reporting a missing one as a business rule
// violation.
func (s *Service) requireAction(ctx context.Context, id int64) (*domain.Action, error) {
	a, err := s.actions.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NewBusinessRuleError(domain.RuleActionExists,
			fmt.Sprintf("action %d does not exist", id), domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get action: %w", err)
	}
	return a, nil
}

// governingStatus derives the incident status from its remaining actions:
// the most recently changed one governs, and no action means in_progress.
func (s *Service) governingStatus(ctx context.Context, incidentID int64) (domain.IncidentStatus, error) {
	actions, err := s.actions.ListByIncident(ctx, incidentID)
	if err != nil {
		return "", fmt.Errorf("list actions: %w", err)
	}
	if len(actions) == 0 {
		return domain.IncidentStatusInProgress, nil
	}
	return actions[0].Status.IncidentStatus(), nil
}

// syncIncident sets the incident status, reporting a vanished incident as a
// status-sync rule violation.
func (s *Service) syncIncident(ctx context.Context, incidentID int64, status domain.IncidentStatus) error {
	err := s.incidents.SetStatus(ctx, incidentID, status)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewBusinessRuleError(domain.RuleStatusSync,
			fmt.Sprintf("incident %d vanished during status sync", incidentID), domain.ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("sync incident status: %w", err)
	}
	return nil
}
