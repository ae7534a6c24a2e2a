package reminder

import (
	"time"

	"smartude/internal/checklist"
)

// Reminder is a checklist item with a resolved due date.
type Reminder struct {
	ItemID   string
	Title    string
	Category string
	Priority checklist.Priority
	Deadline string    // the item's original phrase
	Due      time.Time // start of the due day
}

type ScheduleInput struct {
	Arrival time.Time
}

// ScheduledEvent links a reminder to the calendar event created for it.
type ScheduledEvent struct {
	Reminder Reminder
	EventID  string
	Link     string
}

type ScheduleOutput struct {
	Created []ScheduledEvent
	// Existing holds item ids that already had an event.
	Existing []string
}
