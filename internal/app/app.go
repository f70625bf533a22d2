package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/callsign-backend/internal/adapter/database"
	"github.com/heartmarshall/callsign-backend/internal/adapter/router"
	"github.com/heartmarshall/callsign-backend/internal/adapter/store/action"
	"github.com/heartmarshall/callsign-backend/internal/adapter/store/history"
	storeincident "github.com/heartmarshall/callsign-backend/internal/adapter/store/incident"
	"github.com/heartmarshall/callsign-backend/internal/config"
	"github.com/heartmarshall/callsign-backend/internal/service/incident"
	"github.com/heartmarshall/callsign-backend/internal/service/lifecycle"
)

// App holds the storage engine and the services built on it. Transport
// layers receive the services from here.
type App struct {
	DB        database.DB
	Incidents *incident.Service
	Lifecycle *lifecycle.Service

	log *slog.Logger
}

// New opens the configured engine, brings its schema up to date and wires
// the services. The caller owns the returned App and must Close it.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	db, err := router.Open(ctx, cfg.Database, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate %s: %w", db.Driver(), err)
	}

	incidents := storeincident.New(db)
	tx := database.NewTxManager(db)

	return &App{
		DB:        db,
		Incidents: incident.NewService(log, incidents, tx),
		Lifecycle: lifecycle.NewService(log, incidents, action.New(db), history.New(db), tx),
		log:       log,
	}, nil
}

// Close releases the storage engine.
func (a *App) Close() {
	a.DB.Close()
	a.log.Info("storage closed", slog.String("driver", a.DB.Driver()))
}

// Run is the application entry point. It loads configuration, wires the
// storage engine and services, and holds them until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("driver", cfg.Database.EffectiveDriver()),
	)

	a, err := New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	logger.Info("application ready")
	<-ctx.Done()
	logger.Info("shutting down")

	return nil
}
