// Command migrate brings the configured storage engine's schema up to date
// and exits. PostgreSQL runs the embedded goose migrations; SQLite creates
// whatever tables are missing.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/callsign-backend/internal/adapter/router"
	"github.com/heartmarshall/callsign-backend/internal/app"
	"github.com/heartmarshall/callsign-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db, err := router.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("open database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	start := time.Now()
	if err := db.Migrate(ctx); err != nil {
		logger.Error("migration failed",
			slog.String("driver", db.Driver()),
			slog.String("error", err.Error()),
		)
		db.Close()
		os.Exit(1)
	}

	logger.Info("migration completed",
		slog.String("driver", db.Driver()),
		slog.Duration("duration", time.Since(start)),
	)
}
