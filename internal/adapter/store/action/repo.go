// Package action implements the Action repository on any database.DB.
package action

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/callsign-backend/internal/adapter/database"
	"github.com/heartmarshall/callsign-backend/internal/domain"
)

const (
	columns = `id, incident_id, action_type, description, status, registered_by,
	registered_at, reviewed_by, reviewed_at, updated_at`

	getByIDSQL = `SELECT ` + columns + ` FROM actions WHERE id = $1`

	// Most recently changed first; the head of this list is the governing
	// action. Every create and apply appends a history row, and history ids
	// strictly increase on both engines, so the latest history id orders
	// changes even within one timestamp tick.
	listByIncidentSQL = `SELECT ` + columns + ` FROM actions WHERE incident_id = $1
	ORDER BY COALESCE((SELECT MAX(h.id) FROM action_history h WHERE h.action_id = actions.id), 0) DESC,
	         id DESC`

	latestCreatedSQL = `SELECT ` + columns + ` FROM actions WHERE incident_id = $1
	ORDER BY id DESC LIMIT 1`

	createSQL = `INSERT INTO actions
	(incident_id, action_type, description, status, registered_by, registered_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
	RETURNING ` + columns

	deleteSQL = `DELETE FROM actions WHERE id = $1`
)

// Repo provides action persistence.
type Repo struct {
	db database.DB
}

// New creates a new action repository.
func New(db database.DB) *Repo {
	return &Repo{db: db}
}

// GetByID returns an action by primary key.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Action, error) {
	res, err := database.QuerierFromCtx(ctx, r.db)(ctx, getByIDSQL, id)
	if err != nil {
		return nil, database.MapError(r.db, err, "action", id)
	}
	a, err := database.First[domain.Action](res)
	if err != nil {
		return nil, database.MapError(r.db, err, "action", id)
	}
	return &a, nil
}

// ListByIncident returns the incident's actions, most recently changed first.
// Actions without history fall back to newest id first.
func (r *Repo) ListByIncident(ctx context.Context, incidentID int64) ([]domain.Action, error) {
	res, err := database.QuerierFromCtx(ctx, r.db)(ctx, listByIncidentSQL, incidentID)
	if err != nil {
		return nil, fmt.Errorf("list actions of incident %d: %w", incidentID, err)
	}
	return database.DecodeAll[domain.Action](res)
}

// Create inserts a new action and returns the stored row. Without RETURNING
// support the row is read back as the newest action of the incident, which is
// only safe inside the inserting transaction.
func (r *Repo) Create(ctx context.Context, a *domain.Action) (*domain.Action, error) {
	q := database.QuerierFromCtx(ctx, r.db)

	res, err := q(ctx, createSQL,
		a.IncidentID, a.ActionType, a.Description, string(a.Status), a.RegisteredBy,
	)
	if err != nil {
		return nil, database.MapError(r.db, err, "action for incident", a.IncidentID)
	}

	if len(res.Rows) == 0 {
		res, err = q(ctx, latestCreatedSQL, a.IncidentID)
		if err != nil {
			return nil, database.MapError(r.db, err, "action for incident", a.IncidentID)
		}
	}

	out, err := database.First[domain.Action](res)
	if err != nil {
		return nil, database.MapError(r.db, err, "action for incident", a.IncidentID)
	}
	return &out, nil
}

// Update applies the non-nil fields of params, stamps the reviewer and
// review time, and bumps updated_at. Returns domain.ErrNotFound if the action
// does not exist.
func (r *Repo) Update(ctx context.Context, id int64, params domain.ActionUpdateParams, reviewer string) error {
	b := database.Builder.
		Update("actions").
		Set("reviewed_by", reviewer).
		Set("reviewed_at", sq.Expr("NOW()")).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id})

	if params.ActionType != nil {
		b = b.Set("action_type", *params.ActionType)
	}
	if params.Description != nil {
		b = b.Set("description", *params.Description)
	}
	if params.Status != nil {
		b = b.Set("status", string(*params.Status))
	}

	res, err := database.Run(ctx, database.QuerierFromCtx(ctx, r.db), b)
	if err != nil {
		return database.MapError(r.db, err, "action", id)
	}
	if res.RowCount == 0 {
		return fmt.Errorf("action %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Delete removes an action. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	res, err := database.QuerierFromCtx(ctx, r.db)(ctx, deleteSQL, id)
	if err != nil {
		return database.MapError(r.db, err, "action", id)
	}
	if res.RowCount == 0 {
		return fmt.Errorf("action %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
