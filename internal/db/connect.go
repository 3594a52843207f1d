package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
	_ "modernc.org/sqlite"             // driver: sqlite
)

type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// Open opens a DB and ensures schema exists.
func Open(ctx context.Context, driver Driver, dsn string) (*sql.DB, error) {
	var drvName string
	switch driver {
	case DriverSQLite:
		drvName = "sqlite" // modernc driver
		if dsn == "" {
			dsn = "file:papergen.db?cache=shared&mode=rwc&_pragma=busy_timeout(5000)"
		}
	case DriverPostgres:
		drvName = "pgx" // pgx stdlib driver
		if dsn == "" {
			dsn = "postgres://localhost:5432/papergen?sslmode=disable"
		}
	default:
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}

	db, err := sql.Open(drvName, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	if err := ensureSchema(ctx, db, driver); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func ensureSchema(ctx context.Context, db *sql.DB, driver Driver) error {
	var schema string
	switch driver {
	case DriverSQLite:
		schema = schemaSQLite
	case DriverPostgres:
		schema = schemaPostgres
	}
	_, err := db.ExecContext(ctx, schema)
	return err
}

const schemaSQLite = `
CREATE TABLE IF NOT EXISTS paper_runs (
  id TEXT PRIMARY KEY,
  source_name TEXT NOT NULL,
  paper_type TEXT NOT NULL,
  blueprint TEXT NOT NULL,
  format TEXT NOT NULL,
  outcome TEXT NOT NULL,
  topic_count INTEGER NOT NULL DEFAULT 0,
  output_key TEXT NOT NULL,
  created_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS paper_runs_created_at ON paper_runs (created_at);
`

const schemaPostgres = `
CREATE TABLE IF NOT EXISTS paper_runs (
  id TEXT PRIMARY KEY,
  source_name TEXT NOT NULL,
  paper_type TEXT NOT NULL,
  blueprint TEXT NOT NULL,
  format TEXT NOT NULL,
  outcome TEXT NOT NULL,
  topic_count INTEGER NOT NULL DEFAULT 0,
  output_key TEXT NOT NULL,
  created_at BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS paper_runs_created_at ON paper_runs (created_at);
`
