package incident

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/callsign-backend/internal/domain"
)

// UpsertIncident records one detection of a call-sign pair. A new pair
// starts in_progress. A known pair gets its descriptive fields refreshed and
// its occurrence count bumped; its status is left alone.
func (s *Service) UpsertIncident(ctx context.Context, input UpsertIncidentInput) (*domain.Incident, bool, error) {
	if err := input.Validate(); err != nil {
		return nil, false, err
	}

	row := &domain.Incident{
		AirlineCode:   strings.ToUpper(strings.TrimSpace(input.AirlineCode)),
		CallsignPair:  input.pair(),
		MyCallsign:    strings.TrimSpace(input.MyCallsign),
		OtherCallsign: strings.TrimSpace(input.OtherCallsign),
		Similarity:    strings.TrimSpace(input.Similarity),
		RiskLevel:     strings.TrimSpace(input.RiskLevel),
		Status:        domain.IncidentStatusInProgress,
	}

	var (
		out     *domain.Incident
		created bool
	)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		existing, err := s.incidents.GetByKey(txCtx, row.AirlineCode, row.CallsignPair)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			inc, err := s.incidents.Create(txCtx, row)
			if err != nil {
				return fmt.Errorf("create incident: %w", err)
			}
			out, created = inc, true
			return nil
		case err != nil:
			return fmt.Errorf("get incident: %w", err)
		}

		if err := s.incidents.Refresh(txCtx, existing.ID, row); err != nil {
			return fmt.Errorf("refresh incident: %w", err)
		}
		inc, err := s.incidents.GetByID(txCtx, existing.ID)
		if err != nil {
			return fmt.Errorf("re-read incident: %w", err)
		}
		out = inc
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	s.log.InfoContext(ctx, "incident upserted",
		slog.Int64("incident_id", out.ID),
		slog.String("airline_code", out.AirlineCode),
		slog.String("callsign_pair", out.CallsignPair),
		slog.Bool("created", created),
		slog.Int("occurrence_count", out.OccurrenceCount),
	)

	return out, created, nil
}
