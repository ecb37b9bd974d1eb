package db

import (
	"database/sql"
	"fmt"
)

// The events table belongs to the external scheduling application; the
// schema here only guarantees it exists when the gateway starts against an
// empty file (local runs, tests). start_date is YYYY-MM-DD, start_time is
// HH:MM. email and user_id are alternative recipient identifiers.
const baseSchema = `
CREATE TABLE IF NOT EXISTS events (
  id INTEGER PRIMARY KEY,
  title TEXT NOT NULL,
  start_date TEXT NOT NULL,
  start_time TEXT NOT NULL,
  email TEXT,
  user_id TEXT,
  created_at TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_events_start ON events(start_date, start_time);
`

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(baseSchema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
