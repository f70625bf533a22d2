// Package storetest runs repository tests against every storage engine.
package storetest

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/heartmarshall/callsign-backend/internal/adapter/database"
	"github.com/heartmarshall/callsign-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/callsign-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/callsign-backend/internal/config"
	"github.com/heartmarshall/callsign-backend/internal/domain"
)

// Logger discards everything.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// SQLite returns an embedded engine on a fresh file, closed via t.Cleanup.
func SQLite(t *testing.T) database.DB {
	t.Helper()
	d := sqlite.New(config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "store.db")}, Logger())
	t.Cleanup(d.Close)
	return d
}

// Postgres returns a driver on the shared test container. Skipped in -short.
func Postgres(t *testing.T) database.DB {
	t.Helper()
	return testhelper.SetupTestDB(t)
}

// ForEachBackend runs fn as a subtest on every engine.
func ForEachBackend(t *testing.T, fn func(t *testing.T, db database.DB)) {
	t.Helper()

	backends := []struct {
		name string
		open func(t *testing.T) database.DB
	}{
		{name: sqlite.DriverName, open: SQLite},
		{name: config.DriverPostgres, open: Postgres},
	}

	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			fn(t, b.open(t))
		})
	}
}

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedIncident inserts an in_progress incident with a unique call-sign pair.
func SeedIncident(t *testing.T, db database.DB) domain.Incident {
	t.Helper()

	suffix := uniqueSuffix()
	pair := "KAL" + suffix + "|AAR" + suffix

	_, err := db.Query(context.Background(),
		`INSERT INTO incidents (airline_code, callsign_pair, my_callsign, other_callsign, similarity, risk_level, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())`,
		"KAL", pair, "KAL"+suffix, "AAR"+suffix, "high", "상",
	)
	if err != nil {
		t.Fatalf("storetest: SeedIncident insert: %v", err)
	}

	res, err := db.Query(context.Background(),
		`SELECT id, airline_code, callsign_pair, my_callsign, other_callsign, similarity,
		        risk_level, occurrence_count, status, created_at, updated_at
		 FROM incidents WHERE airline_code = $1 AND callsign_pair = $2`, "KAL", pair)
	if err != nil {
		t.Fatalf("storetest: SeedIncident select: %v", err)
	}
	inc, err := database.First[domain.Incident](res)
	if err != nil {
		t.Fatalf("storetest: SeedIncident decode: %v", err)
	}
	return inc
}
