// Package history implements the append-only ActionHistory repository.
package history

import (
	"context"
	"fmt"

	"github.com/heartmarshall/callsign-backend/internal/adapter/database"
	"github.com/heartmarshall/callsign-backend/internal/domain"
)

const (
	appendSQL = `INSERT INTO action_history (action_id, event, from_status, to_status, actor_id, created_at)
	VALUES ($1, $2, $3, $4, $5, NOW())`

	listSQL = `SELECT id, action_id, event, from_status, to_status, actor_id, created_at
	FROM action_history WHERE action_id = $1 ORDER BY id`

	deleteByActionSQL = `DELETE FROM action_history WHERE action_id = $1`
)

// Repo provides action history persistence.
type Repo struct {
	db database.DB
}

// New creates a new history repository.
func New(db database.DB) *Repo {
	return &Repo{db: db}
}

// Append records one history row.
func (r *Repo) Append(ctx context.Context, h domain.ActionHistory) error {
	var from any
	if h.FromStatus != nil {
		from = string(*h.FromStatus)
	}

	_, err := database.QuerierFromCtx(ctx, r.db)(ctx, appendSQL,
		h.ActionID, string(h.Event), from, string(h.ToStatus), h.ActorID,
	)
	if err != nil {
		return database.MapError(r.db, err, "action_history for action", h.ActionID)
	}
	return nil
}

// ListByAction returns the history of an action, oldest first.
func (r *Repo) ListByAction(ctx context.Context, actionID int64) ([]domain.ActionHistory, error) {
	res, err := database.QuerierFromCtx(ctx, r.db)(ctx, listSQL, actionID)
	if err != nil {
		return nil, fmt.Errorf("list action_history of action %d: %w", actionID, err)
	}
	return database.DecodeAll[domain.ActionHistory](res)
}

// DeleteByAction removes every history row of an action. Idempotent.
// Returns the number of deleted rows.
func (r *Repo) DeleteByAction(ctx context.Context, actionID int64) (int, error) {
	res, err := database.QuerierFromCtx(ctx, r.db)(ctx, deleteByActionSQL, actionID)
	if err != nil {
		return 0, fmt.Errorf("delete action_history of action %d: %w", actionID, err)
	}
	return int(res.RowCount), nil
}
