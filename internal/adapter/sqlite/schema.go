package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
)

// table is one required table with the statements that create it and the
// rows seeded right after creation.
type table struct {
	name string
	ddl  []string
	seed []string
}

// requiredTables lists the schema in dependency order.
var requiredTables = []table{
	{
		name: "airlines",
		ddl: []string{`
CREATE TABLE airlines (
	code       TEXT PRIMARY KEY,
	name_ko    TEXT NOT NULL,
	name_en    TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`},
		seed: []string{`
INSERT INTO airlines (code, name_ko, name_en) VALUES
	('KAL', '대한항공', 'Korean Air'),
	('AAR', '아시아나항공', 'Asiana Airlines'),
	('JJA', '제주항공', 'Jeju Air'),
	('JNA', '진에어', 'Jin Air'),
	('TWB', '티웨이항공', 'T''way Air'),
	('ABL', '에어부산', 'Air Busan'),
	('ASV', '에어서울', 'Air Seoul'),
	('ESR', '이스타항공', 'Eastar Jet'),
	('FGW', '플라이강원', 'Fly Gangwon'),
	('APZ', '에어프레미아', 'Air Premia')`},
	},
	{
		name: "incidents",
		ddl: []string{`
CREATE TABLE incidents (
	id               INTEGER PRIMARY KEY AUTOINCREMENT,
	airline_code     TEXT NOT NULL,
	callsign_pair    TEXT NOT NULL,
	my_callsign      TEXT NOT NULL,
	other_callsign   TEXT NOT NULL,
	similarity       TEXT NOT NULL DEFAULT '',
	risk_level       TEXT NOT NULL DEFAULT '',
	occurrence_count INTEGER NOT NULL DEFAULT 1,
	status           TEXT NOT NULL DEFAULT 'in_progress'
		CHECK (status IN ('in_progress', 'pending', 'completed')),
	created_at       TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at       TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	UNIQUE (airline_code, callsign_pair)
)`,
			`CREATE INDEX IF NOT EXISTS idx_incidents_status ON incidents(status)`,
		},
	},
	{
		name: "actions",
		ddl: []string{`
CREATE TABLE actions (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	incident_id   INTEGER NOT NULL REFERENCES incidents(id),
	action_type   TEXT NOT NULL,
	description   TEXT NOT NULL DEFAULT '',
	status        TEXT NOT NULL DEFAULT 'completed'
		CHECK (status IN ('pending', 'in_progress', 'completed')),
	registered_by TEXT NOT NULL,
	registered_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	reviewed_by   TEXT,
	reviewed_at   TIMESTAMP,
	updated_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
			`CREATE INDEX IF NOT EXISTS idx_actions_incident ON actions(incident_id, updated_at DESC)`,
		},
	},
	{
		name: "action_history",
		ddl: []string{`
CREATE TABLE action_history (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	action_id   INTEGER NOT NULL REFERENCES actions(id) ON DELETE CASCADE,
	event       TEXT NOT NULL,
	from_status TEXT,
	to_status   TEXT NOT NULL,
	actor_id    TEXT NOT NULL,
	created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
			`CREATE INDEX IF NOT EXISTS idx_action_history_action ON action_history(action_id)`,
		},
	},
}

// bootstrap creates whatever required tables are missing, together with
// their indexes and seed rows, in one transaction. Existing tables are never
// altered or dropped, so running it again is a no-op.
func bootstrap(ctx context.Context, db *sql.DB, log *slog.Logger) error {
	existing, err := existingTables(ctx, db)
	if err != nil {
		return err
	}

	var missing []table
	for _, t := range requiredTables {
		if !existing[t.name] {
			missing = append(missing, t)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("bootstrap: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	names := make([]string, 0, len(missing))
	for _, t := range missing {
		stmts := make([]string, 0, len(t.ddl)+len(t.seed))
		stmts = append(stmts, t.ddl...)
		for _, stmt := range append(stmts, t.seed...) {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("bootstrap: table %s: %w", t.name, err)
			}
		}
		names = append(names, t.name)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("bootstrap: commit: %w", err)
	}

	log.InfoContext(ctx, "sqlite schema bootstrapped",
		slog.String("created", strings.Join(names, ",")),
		slog.Bool("fresh", len(missing) == len(requiredTables)),
	)
	return nil
}

func existingTables(ctx context.Context, db *sql.DB) (map[string]bool, error) {
	rows, err := db.QueryContext(ctx, `SELECT name FROM sqlite_master WHERE type = 'table'`)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: list tables: %w", err)
	}
	defer rows.Close()

	out := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("bootstrap: scan table name: %w", err)
		}
		out[name] = true
	}
	return out, rows.Err()
}
