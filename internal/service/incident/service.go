// Package incident owns Incident creation and lookup. Status changes belong
// to the lifecycle package.
package incident

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/callsign-backend/internal/domain"
)

type incidentRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Incident, error)
	GetByKey(ctx context.Context, airlineCode, callsignPair string) (*domain.Incident, error)
	List(ctx context.Context, filter domain.IncidentFilter) ([]domain.Incident, error)
	Create(ctx context.Context, inc *domain.Incident) (*domain.Incident, error)
	Refresh(ctx context.Context, id int64, inc *domain.Incident) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

// Service implements incident ingest and lookup.
type Service struct {
	incidents incidentRepo
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new incident service.
func NewService(log *slog.Logger, incidents incidentRepo, tx txManager) *Service {
	return &Service{
		incidents: incidents,
		tx:        tx,
		log:       log.With("service", "incident"),
	}
}
