package domain

import "time"

// Incident is a detected pair of call signs similar enough to risk confusion.
// Its Status mirrors the status of its governing Action.
type Incident struct {
	ID              int64          `db:"id"`
	AirlineCode     string         `db:"airline_code"`
	CallsignPair    string         `db:"callsign_pair"`
	MyCallsign      string         `db:"my_callsign"`
	OtherCallsign   string         `db:"other_callsign"`
	Similarity      string         `db:"similarity"`
	RiskLevel       string         `db:"risk_level"`
	OccurrenceCount int            `db:"occurrence_count"`
	Status          IncidentStatus `db:"status"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

// IncidentFilter narrows incident listings. Zero values mean "any".
type IncidentFilter struct {
	AirlineCode string
	Status      IncidentStatus
	Limit       int
	Offset      int
}
