package lifecycle

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/callsign-backend/internal/domain"
	"github.com/heartmarshall/callsign-backend/pkg/ctxutil"
)

// UpdateActionResult reports what an UpdateAction call did.
type UpdateActionResult struct {
	Transition Transition
	// Action is the updated row for TransitionApply and the snapshot taken
	// just before deletion for TransitionRetract.
	Action *domain.Action
	// IncidentStatus is the owning Incident's status after the call.
	IncidentStatus domain.IncidentStatus
}

// UpdateAction applies field changes to an Action, or retracts it when the
// requested status is in_progress. The owning Incident is resynced in the
// same transaction either way.
func (s *Service) UpdateAction(ctx context.Context, input UpdateActionInput) (*UpdateActionResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.requireAction(ctx, input.ActionID)
	if err != nil {
		return nil, err
	}

	t := PlanTransition(input)
	actor := userID.String()

	var result *UpdateActionResult
	switch t.Kind {
	case TransitionRetract:
		result, err = s.retract(ctx, t)
	default:
		result, err = s.apply(ctx, t, actor)
	}
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "action updated",
		slog.String("user_id", actor),
		slog.Int64("action_id", current.ID),
		slog.Int64("incident_id", current.IncidentID),
		slog.String("transition", t.Kind.String()),
		slog.String("incident_status", result.IncidentStatus.String()),
	)

	return result, nil
}

// retract deletes the Action with its history and resyncs the Incident from
// whatever actions remain. The returned snapshot is read inside the
// transaction, right before the delete.
func (s *Service) retract(ctx context.Context, t Transition) (*UpdateActionResult, error) {
	var (
		snapshot *domain.Action
		status   domain.IncidentStatus
	)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		a, err := s.requireAction(txCtx, t.ActionID)
		if err != nil {
			return err
		}
		snapshot = a

		if _, err := s.history.DeleteByAction(txCtx, snapshot.ID); err != nil {
			return fmt.Errorf("delete history: %w", err)
		}

		if err := s.actions.Delete(txCtx, snapshot.ID); err != nil {
			return fmt.Errorf("delete action: %w", err)
		}

		next, err := s.governingStatus(txCtx, snapshot.IncidentID)
		if err != nil {
			return err
		}
		if err := s.syncIncident(txCtx, snapshot.IncidentID, next); err != nil {
			return err
		}

		status = next
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &UpdateActionResult{Transition: t, Action: snapshot, IncidentStatus: status}, nil
}

// apply updates the Action, re-reads it and mirrors its status onto the
// Incident. The prior status recorded in history is read inside the
// transaction.
func (s *Service) apply(ctx context.Context, t Transition, actor string) (*UpdateActionResult, error) {
	var updated *domain.Action

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.requireAction(txCtx, t.ActionID)
		if err != nil {
			return err
		}

		if err := s.actions.Update(txCtx, t.ActionID, t.Params, actor); err != nil {
			return fmt.Errorf("update action: %w", err)
		}

		a, err := s.actions.GetByID(txCtx, t.ActionID)
		if err != nil {
			return fmt.Errorf("re-read action: %w", err)
		}

		if err := s.syncIncident(txCtx, a.IncidentID, a.Status.IncidentStatus()); err != nil {
			return err
		}

		from := current.Status
		if err := s.history.Append(txCtx, domain.ActionHistory{
			ActionID:   a.ID,
			Event:      domain.HistoryEventUpdated,
			FromStatus: &from,
			ToStatus:   a.Status,
			ActorID:    actor,
		}); err != nil {
			return fmt.Errorf("append history: %w", err)
		}

		updated = a
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &UpdateActionResult{
		Transition:     t,
		Action:         updated,
		IncidentStatus: updated.Status.IncidentStatus(),
	}, nil
}
