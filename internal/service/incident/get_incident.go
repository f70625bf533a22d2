package incident

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/callsign-backend/internal/domain"
)

// GetIncident returns an incident by ID.
func (s *Service) GetIncident(ctx context.Context, id int64) (*domain.Incident, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("incident_id", "required")
	}
	return s.incidents.GetByID(ctx, id)
}

// ListIncidents returns incidents, most recently updated first.
func (s *Service) ListIncidents(ctx context.Context, input ListIncidentsInput) ([]domain.Incident, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultListLimit
	}

	incidents, err := s.incidents.List(ctx, domain.IncidentFilter{
		AirlineCode: strings.ToUpper(strings.TrimSpace(input.AirlineCode)),
		Status:      input.Status,
		Limit:       limit,
		Offset:      input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list incidents: %w", err)
	}
	return incidents, nil
}
