package incident

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/callsign-backend/internal/domain"
)

// UpsertIncidentInput is one validated ingest row.
type UpsertIncidentInput struct {
	AirlineCode   string
	MyCallsign    string
	OtherCallsign string
	// CallsignPair defaults to "MyCallsign|OtherCallsign" when empty.
	CallsignPair string
	Similarity   string
	RiskLevel    string
}

func (i UpsertIncidentInput) pair() string {
	if p := strings.TrimSpace(i.CallsignPair); p != "" {
		return p
	}
	return strings.TrimSpace(i.MyCallsign) + "|" + strings.TrimSpace(i.OtherCallsign)
}

// Validate checks all fields and collects all errors.
func (i UpsertIncidentInput) Validate() error {
	var errs []domain.FieldError

	code := strings.TrimSpace(i.AirlineCode)
	if code == "" {
		errs = append(errs, domain.FieldError{Field: "airline_code", Message: "required"})
	} else if len(code) < 2 || len(code) > 3 {
		errs = append(errs, domain.FieldError{Field: "airline_code", Message: "must be 2 or 3 characters"})
	}

	for _, f := range []struct{ name, value string }{
		{"my_callsign", i.MyCallsign},
		{"other_callsign", i.OtherCallsign},
	} {
		v := strings.TrimSpace(f.value)
		if v == "" {
			errs = append(errs, domain.FieldError{Field: f.name, Message: "required"})
			continue
		}
		if len(v) > 10 {
			errs = append(errs, domain.FieldError{Field: f.name, Message: "max 10 characters"})
		}
	}

	if utf8.RuneCountInString(strings.TrimSpace(i.Similarity)) > 20 {
		errs = append(errs, domain.FieldError{Field: "similarity", Message: "max 20 characters"})
	}
	if utf8.RuneCountInString(strings.TrimSpace(i.RiskLevel)) > 20 {
		errs = append(errs, domain.FieldError{Field: "risk_level", Message: "max 20 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListIncidentsInput filters an incident listing.
type ListIncidentsInput struct {
	AirlineCode string
	Status      domain.IncidentStatus
	Limit       int // 0 = DefaultListLimit
	Offset      int
}

// Validate checks all fields and collects all errors.
func (i ListIncidentsInput) Validate() error {
	var errs []domain.FieldError

	if i.Status != "" && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be one of in_progress, pending, completed"})
	}
	if i.Limit < 0 || i.Limit > MaxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
