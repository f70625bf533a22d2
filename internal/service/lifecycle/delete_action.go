package lifecycle

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/callsign-backend/internal/domain"
	"github.com/heartmarshall/callsign-backend/pkg/ctxutil"
)

// DeleteAction permanently removes an Action and its history. Admin only.
// The Incident status is not touched; the caller decides whether to reset it.
func (s *Service) DeleteAction(ctx context.Context, input DeleteActionInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return err
	}

	a, err := s.requireAction(ctx, input.ActionID)
	if err != nil {
		return err
	}

	var historyRows int
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		n, err := s.history.DeleteByAction(txCtx, a.ID)
		if err != nil {
			return fmt.Errorf("delete history: %w", err)
		}
		if err := s.actions.Delete(txCtx, a.ID); err != nil {
			return fmt.Errorf("delete action: %w", err)
		}
		historyRows = n
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "action deleted",
		slog.String("user_id", userID.String()),
		slog.Int64("action_id", a.ID),
		slog.Int64("incident_id", a.IncidentID),
		slog.Int("history_rows", historyRows),
	)

	return nil
}
