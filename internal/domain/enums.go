package domain

// IncidentStatus is the processing state of an Incident.
type IncidentStatus string

const (
	IncidentStatusInProgress IncidentStatus = "in_progress"
	IncidentStatusPending    IncidentStatus = "pending"
	IncidentStatusCompleted  IncidentStatus = "completed"
)

func (s IncidentStatus) String() string { return string(s) }

func (s IncidentStatus) IsValid() bool {
	switch s {
	case IncidentStatusInProgress, IncidentStatusPending, IncidentStatusCompleted:
		return true
	}
	return false
}

// ActionStatus is the state of an Action. As an update target,
// ActionStatusInProgress means "retract this Action"; it is never stored.
type ActionStatus string

const (
	ActionStatusPending    ActionStatus = "pending"
	ActionStatusInProgress ActionStatus = "in_progress"
	ActionStatusCompleted  ActionStatus = "completed"
)

func (s ActionStatus) String() string { return string(s) }

func (s ActionStatus) IsValid() bool {
	switch s {
	case ActionStatusPending, ActionStatusInProgress, ActionStatusCompleted:
		return true
	}
	return false
}

// IncidentStatus returns the Incident status that mirrors s.
func (s ActionStatus) IncidentStatus() IncidentStatus {
	return IncidentStatus(s)
}

// HistoryEvent names the kind of change recorded in ActionHistory.
type HistoryEvent string

const (
	HistoryEventCreated HistoryEvent = "created"
	HistoryEventUpdated HistoryEvent = "updated"
)
