package domain

import "time"

// Action is a remediation record an operator files against one Incident.
type Action struct {
	ID           int64        `db:"id"`
	IncidentID   int64        `db:"incident_id"`
	ActionType   string       `db:"action_type"`
	Description  string       `db:"description"`
	Status       ActionStatus `db:"status"`
	RegisteredBy string       `db:"registered_by"`
	RegisteredAt time.Time    `db:"registered_at"`
	ReviewedBy   *string      `db:"reviewed_by"`
	ReviewedAt   *time.Time   `db:"reviewed_at"`
	UpdatedAt    time.Time    `db:"updated_at"`
}

// ActionUpdateParams holds optional field changes for an Action.
// Nil fields are left untouched.
type ActionUpdateParams struct {
	ActionType  *string
	Description *string
	Status      *ActionStatus
}

// IsEmpty reports whether no field is set.
func (p ActionUpdateParams) IsEmpty() bool {
	return p.ActionType == nil && p.Description == nil && p.Status == nil
}

// ActionHistory is an append-only audit row referencing an Action.
type ActionHistory struct {
	ID         int64         `db:"id"`
	ActionID   int64         `db:"action_id"`
	Event      HistoryEvent  `db:"event"`
	FromStatus *ActionStatus `db:"from_status"`
	ToStatus   ActionStatus  `db:"to_status"`
	ActorID    string        `db:"actor_id"`
	CreatedAt  time.Time     `db:"created_at"`
}
