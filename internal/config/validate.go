package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Database.validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	return nil
}

func (d *DatabaseConfig) validate() error {
	// Driver names are matched exactly, the same way the store router does.
	switch d.EffectiveDriver() {
	case DriverPostgres:
		return d.Postgres.validate()
	case DriverSQLite:
		if strings.TrimSpace(d.SQLite.Path) == "" {
			return fmt.Errorf("sqlite.path is required")
		}
		return nil
	default:
		return fmt.Errorf("unknown driver %q (want %q or %q)", d.Driver, DriverPostgres, DriverSQLite)
	}
}

func (p *PostgresConfig) validate() error {
	if p.DSN == "" {
		return fmt.Errorf("postgres.dsn is required")
	}
	if p.MaxConns <= 0 {
		return fmt.Errorf("postgres.max_conns must be > 0 (got %d)", p.MaxConns)
	}
	if p.MinConns < 0 || p.MinConns > p.MaxConns {
		return fmt.Errorf("postgres.min_conns must be within [0, max_conns] (got %d)", p.MinConns)
	}
	if p.ConnectTimeout <= 0 {
		return fmt.Errorf("postgres.connect_timeout must be > 0 (got %v)", p.ConnectTimeout)
	}
	if p.RetryBackoff <= 0 {
		return fmt.Errorf("postgres.retry_backoff must be > 0 (got %v)", p.RetryBackoff)
	}
	return nil
}
