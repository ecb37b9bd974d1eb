package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"consigna/internal/model"
)

type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// EventRepository reads the event collection maintained by the external
// scheduling application. The gateway never writes to it.
type EventRepository interface {
	ListStartingBetween(ctx context.Context, from, to time.Time) ([]model.Event, error)
}

type eventRepository struct {
	db dbtx
}

func NewEventRepository(db dbtx) EventRepository {
	return &eventRepository{db: db}
}

// ListStartingBetween returns events whose start instant falls inside
// [from, to], both bounds inclusive, ordered by start.
// Events store their start as a date column plus an HH:MM time column;
// the window comparison happens in SQL so only candidate rows are read.
func (r *eventRepository) ListStartingBetween(ctx context.Context, from, to time.Time) ([]model.Event, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, title, start_date, start_time, email, user_id FROM events
		 WHERE datetime(start_date || ' ' || start_time) BETWEEN datetime(?) AND datetime(?)
		 ORDER BY start_date, start_time`,
		formatTime(from),
		formatTime(to),
	)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		var event model.Event
		var startDate, startTime string
		var email, userID sql.NullString
		if err := rows.Scan(&event.ID, &event.Title, &startDate, &startTime, &email, &userID); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		event.StartAt, err = parseStart(startDate, startTime)
		if err != nil {
			return nil, fmt.Errorf("parse event %d start: %w", event.ID, err)
		}
		if email.Valid {
			event.Email = email.String
		}
		if userID.Valid {
			event.UserID = userID.String
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}

	return events, nil
}

const startLayout = "2006-01-02 15:04"

func parseStart(date, clock string) (time.Time, error) {
	return time.ParseInLocation(startLayout, date+" "+clock, time.UTC)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(startLayout)
}
