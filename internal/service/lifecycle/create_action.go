package lifecycle

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/callsign-backend/internal/domain"
	"github.com/heartmarshall/callsign-backend/pkg/ctxutil"
)

// CreateAction files a new Action against an existing Incident. The Action
// is always stored as completed, and the Incident follows it. The history
// row is appended after the Incident row is written, so its id is taken
// while the Incident row lock is held.
func (s *Service) CreateAction(ctx context.Context, input CreateActionInput) (*domain.Action, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.requireIncident(ctx, input.IncidentID); err != nil {
		return nil, err
	}

	actor := userID.String()
	var created *domain.Action

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		a, err := s.actions.Create(txCtx, &domain.Action{
			IncidentID:   input.IncidentID,
			ActionType:   strings.TrimSpace(input.ActionType),
			Description:  strings.TrimSpace(input.Description),
			Status:       domain.ActionStatusCompleted,
			RegisteredBy: actor,
		})
		if err != nil {
			return fmt.Errorf("create action: %w", err)
		}

		if err := s.syncIncident(txCtx, a.IncidentID, a.Status.IncidentStatus()); err != nil {
			return err
		}

		if err := s.history.Append(txCtx, domain.ActionHistory{
			ActionID: a.ID,
			Event:    domain.HistoryEventCreated,
			ToStatus: a.Status,
			ActorID:  actor,
		}); err != nil {
			return fmt.Errorf("append history: %w", err)
		}

		created = a
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "action created",
		slog.String("user_id", actor),
		slog.Int64("action_id", created.ID),
		slog.Int64("incident_id", created.IncidentID),
		slog.String("action_type", created.ActionType),
	)

	return created, nil
}
