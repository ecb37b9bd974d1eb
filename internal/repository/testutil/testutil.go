// Package testutil provides helpers for repository tests.
package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"consigna/internal/db"
)

// NewTestDB opens a fresh events database in a temp directory, closed when
// the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(filepath.Join(t.TempDir(), "events.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

// SeedEvent inserts one event row and returns its id. email and userID may
// be empty, which stores NULL.
func SeedEvent(t *testing.T, conn *sql.DB, title, startDate, startTime, email, userID string) int64 {
	t.Helper()

	res, err := conn.Exec(
		`INSERT INTO events (title, start_date, start_time, email, user_id) VALUES (?, ?, ?, ?, ?)`,
		title, startDate, startTime, nullable(email), nullable(userID),
	)
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	return id
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
