package model

import "time"

// Event is a calendar entry owned by the external scheduling application.
// The gateway only ever reads these. Either Email or UserID identifies the
// recipient; when Email is empty the user id is resolved through the
// directory service.
type Event struct {
	ID      int64
	Title   string
	StartAt time.Time
	Email   string
	UserID  string
}
