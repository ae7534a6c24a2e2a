package repository

import (
	"context"

	"smartude/internal/reminder"
)

// Event is what the calendar keeps for a scheduled reminder.
type Event struct {
	ID   string
	Link string
}

// CalendarRepository writes reminders to an external calendar.
type CalendarRepository interface {
	// FindEvent returns ErrEventNotFound when the item has no reminder yet.
	FindEvent(ctx context.Context, r reminder.Reminder) (Event, error)
	CreateEvent(ctx context.Context, r reminder.Reminder) (Event, error)
}
