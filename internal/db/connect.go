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
			dsn = "file:screening.db?cache=shared&mode=rwc&_pragma=busy_timeout(5000)"
		}
	case DriverPostgres:
		drvName = "pgx" // pgx stdlib driver
		if dsn == "" {
			dsn = "postgres://localhost:5432/screening?sslmode=disable"
		}
	default:
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}

	db, err := sql.Open(drvName, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	if err := ensureSchema(ctx, db, driver); err != nil {
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
PRAGMA foreign_keys=ON;

CREATE TABLE IF NOT EXISTS applicants (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL DEFAULT '',
  dni TEXT NOT NULL,
  test_type TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'enabled',
  disabled_reason TEXT NOT NULL DEFAULT '',
  data_json TEXT NOT NULL,                 -- answers, timings, external analysis
  submitted_at INTEGER
);
CREATE INDEX IF NOT EXISTS idx_applicants_dni ON applicants(dni);

CREATE TABLE IF NOT EXISTS model_answers (
  id TEXT NOT NULL,
  test_type TEXT NOT NULL,
  question_order INTEGER NOT NULL,
  correct_answer TEXT NOT NULL,
  key_points_json TEXT NOT NULL,
  criteria_json TEXT NOT NULL DEFAULT '{}',
  PRIMARY KEY (test_type, question_order)
);

CREATE TABLE IF NOT EXISTS questions (
  id TEXT NOT NULL,
  test_type TEXT NOT NULL,
  question_order INTEGER NOT NULL,
  question_text TEXT NOT NULL,
  category TEXT NOT NULL DEFAULT '',
  expected_answer_length INTEGER NOT NULL DEFAULT 0,
  PRIMARY KEY (test_type, question_order)
);

CREATE TABLE IF NOT EXISTS settings (
  id INTEGER PRIMARY KEY,                  -- singleton row, id=1
  data_json TEXT NOT NULL,
  updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS event_log (
  offset INTEGER PRIMARY KEY AUTOINCREMENT, -- BIGSERIAL in Postgres
  typ TEXT NOT NULL,                        -- e.g. LoginDenied
  key TEXT NOT NULL,                        -- natural key: DNI or applicant id
  data TEXT NOT NULL,                       -- JSON payload
  created_at INTEGER NOT NULL
);
`

const schemaPostgres = `
CREATE TABLE IF NOT EXISTS applicants (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL DEFAULT '',
  dni TEXT NOT NULL,
  test_type TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'enabled',
  disabled_reason TEXT NOT NULL DEFAULT '',
  data_json TEXT NOT NULL,
  submitted_at BIGINT
);
CREATE INDEX IF NOT EXISTS idx_applicants_dni ON applicants(dni);

CREATE TABLE IF NOT EXISTS model_answers (
  id TEXT NOT NULL,
  test_type TEXT NOT NULL,
  question_order INTEGER NOT NULL,
  correct_answer TEXT NOT NULL,
  key_points_json TEXT NOT NULL,
  criteria_json TEXT NOT NULL DEFAULT '{}',
  PRIMARY KEY (test_type, question_order)
);

CREATE TABLE IF NOT EXISTS questions (
  id TEXT NOT NULL,
  test_type TEXT NOT NULL,
  question_order INTEGER NOT NULL,
  question_text TEXT NOT NULL,
  category TEXT NOT NULL DEFAULT '',
  expected_answer_length INTEGER NOT NULL DEFAULT 0,
  PRIMARY KEY (test_type, question_order)
);

CREATE TABLE IF NOT EXISTS settings (
  id INTEGER PRIMARY KEY,
  data_json TEXT NOT NULL,
  updated_at BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS event_log (
  "offset" BIGSERIAL PRIMARY KEY,
  typ TEXT NOT NULL,
  key TEXT NOT NULL,
  data TEXT NOT NULL,
  created_at BIGINT NOT NULL
);
`
