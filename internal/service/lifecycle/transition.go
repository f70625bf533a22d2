package lifecycle

import "github.com/heartmarshall/callsign-backend/internal/domain"

// TransitionKind tells an Action update apart from a retraction.
type TransitionKind int

const (
	// TransitionApply updates the Action in place and mirrors its status onto
	// the Incident.
	TransitionApply TransitionKind = iota + 1
	// TransitionRetract deletes the Action and resyncs the Incident.
	TransitionRetract
)

func (k TransitionKind) String() string {
	switch k {
	case TransitionApply:
		return "apply"
	case TransitionRetract:
		return "retract"
	}
	return "unknown"
}

// Transition is the planned effect of an UpdateAction call.
type Transition struct {
	Kind     TransitionKind
	ActionID int64
	// Params is set only for TransitionApply.
	Params domain.ActionUpdateParams
}

// PlanTransition maps an update request to a transition. Requesting
// in_progress retracts the Action; anything else applies the field changes.
func PlanTransition(in UpdateActionInput) Transition {
	if in.Status != nil && *in.Status == domain.ActionStatusInProgress {
		return Transition{Kind: TransitionRetract, ActionID: in.ActionID}
	}
	return Transition{
		Kind:     TransitionApply,
		ActionID: in.ActionID,
		Params: domain.ActionUpdateParams{
			ActionType:  trimOrNil(in.ActionType),
			Description: trimPtr(in.Description),
			Status:      in.Status,
		},
	}
}
