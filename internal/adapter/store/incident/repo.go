// Package incident implements the Incident repository on any database.DB.
// Statements are written in the reference dialect.
package incident

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/callsign-backend/internal/adapter/database"
	"github.com/heartmarshall/callsign-backend/internal/domain"
)

const (
	columns = `id, airline_code, callsign_pair, my_callsign, other_callsign, similarity,
	risk_level, occurrence_count, status, created_at, updated_at`

	getByIDSQL  = `SELECT ` + columns + ` FROM incidents WHERE id = $1`
	getByKeySQL = `SELECT ` + columns + ` FROM incidents WHERE airline_code = $1 AND callsign_pair = $2`

	createSQL = `INSERT INTO incidents
	(airline_code, callsign_pair, my_callsign, other_callsign, similarity, risk_level, status, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
	RETURNING ` + columns

	refreshSQL = `UPDATE incidents
	SET my_callsign = $1, other_callsign = $2, similarity = $3, risk_level = $4,
	    occurrence_count = occurrence_count + 1, updated_at = NOW()
	WHERE id = $5`

	setStatusSQL = `UPDATE incidents SET status = $1, updated_at = NOW() WHERE id = $2`
)

// Repo provides incident persistence.
type Repo struct {
	db database.DB
}

// New creates a new incident repository.
func New(db database.DB) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an incident by primary key.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Incident, error) {
	res, err := database.QuerierFromCtx(ctx, r.db)(ctx, getByIDSQL, id)
	if err != nil {
		return nil, database.MapError(r.db, err, "incident", id)
	}
	inc, err := database.First[domain.Incident](res)
	if err != nil {
		return nil, database.MapError(r.db, err, "incident", id)
	}
	return &inc, nil
}

// GetByKey returns the incident identified by airline and call-sign pair.
func (r *Repo) GetByKey(ctx context.Context, airlineCode, callsignPair string) (*domain.Incident, error) {
	key := airlineCode + "/" + callsignPair

	res, err := database.QuerierFromCtx(ctx, r.db)(ctx, getByKeySQL, airlineCode, callsignPair)
	if err != nil {
		return nil, database.MapError(r.db, err, "incident", key)
	}
	inc, err := database.First[domain.Incident](res)
	if err != nil {
		return nil, database.MapError(r.db, err, "incident", key)
	}
	return &inc, nil
}

// List returns incidents matching filter, most recently updated first.
func (r *Repo) List(ctx context.Context, filter domain.IncidentFilter) ([]domain.Incident, error) {
	b := database.Builder.
		Select(columns).
		From("incidents").
		OrderBy("updated_at DESC", "id DESC")

	if filter.AirlineCode != "" {
		b = b.Where(sq.Eq{"airline_code": filter.AirlineCode})
	}
	if filter.Status != "" {
		b = b.Where(sq.Eq{"status": string(filter.Status)})
	}
	if filter.Limit > 0 {
		b = b.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		b = b.Offset(uint64(filter.Offset))
	}

	res, err := database.Run(ctx, database.QuerierFromCtx(ctx, r.db), b)
	if err != nil {
		return nil, fmt.Errorf("list incidents: %w", err)
	}
	return database.DecodeAll[domain.Incident](res)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new incident and returns the stored row. Engines that do
// not return rows from writes are served by a follow-up read on the natural
// key.
func (r *Repo) Create(ctx context.Context, inc *domain.Incident) (*domain.Incident, error) {
	key := inc.AirlineCode + "/" + inc.CallsignPair

	res, err := database.QuerierFromCtx(ctx, r.db)(ctx, createSQL,
		inc.AirlineCode, inc.CallsignPair, inc.MyCallsign, inc.OtherCallsign,
		inc.Similarity, inc.RiskLevel, string(inc.Status),
	)
	if err != nil {
		return nil, database.MapError(r.db, err, "incident", key)
	}

	if len(res.Rows) == 0 {
		return r.GetByKey(ctx, inc.AirlineCode, inc.CallsignPair)
	}
	out, err := database.First[domain.Incident](res)
	if err != nil {
		return nil, database.MapError(r.db, err, "incident", key)
	}
	return &out, nil
}

// Refresh overwrites the descriptive and risk fields of an existing incident
// and counts one more occurrence. Status is left untouched.
func (r *Repo) Refresh(ctx context.Context, id int64, inc *domain.Incident) error {
	res, err := database.QuerierFromCtx(ctx, r.db)(ctx, refreshSQL,
		inc.MyCallsign, inc.OtherCallsign, inc.Similarity, inc.RiskLevel, id,
	)
	if err != nil {
		return database.MapError(r.db, err, "incident", id)
	}
	if res.RowCount == 0 {
		return fmt.Errorf("incident %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// SetStatus sets the incident status. Returns domain.ErrNotFound if the
// incident does not exist.
func (r *Repo) SetStatus(ctx context.Context, id int64, status domain.IncidentStatus) error {
	res, err := database.QuerierFromCtx(ctx, r.db)(ctx, setStatusSQL, string(status), id)
	if err != nil {
		return database.MapError(r.db, err, "incident", id)
	}
	if res.RowCount == 0 {
		return fmt.Errorf("incident %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
