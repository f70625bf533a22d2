// Package router selects the storage engine named by configuration.
package router

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/callsign-backend/internal/adapter/database"
	"github.com/heartmarshall/callsign-backend/internal/adapter/postgres"
	"github.com/heartmarshall/callsign-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/callsign-backend/internal/config"
)

// ErrUnknownDriver is returned for a driver name with no registered engine.
var ErrUnknownDriver = errors.New("unknown database driver")

type opener func(cfg config.DatabaseConfig, log *slog.Logger) database.DB

var drivers = map[string]opener{
	postgres.DriverName: func(cfg config.DatabaseConfig, log *slog.Logger) database.DB {
		return postgres.New(cfg.Postgres, log)
	},
	sqlite.DriverName: func(cfg config.DatabaseConfig, log *slog.Logger) database.DB {
		return sqlite.New(cfg.SQLite, log)
	},
}

// Open returns the engine selected by cfg.Driver; an empty value selects
// config.DefaultDriver. The engine connects lazily, so Open itself does no
// I/O. SQL is passed through untouched: each engine translates on its own.
func Open(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) (database.DB, error) {
	name := cfg.EffectiveDriver()

	open, ok := drivers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, name)
	}

	log.InfoContext(ctx, "database driver selected", slog.String("driver", name))
	return open(cfg, log), nil
}
