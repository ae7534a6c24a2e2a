package reminder

import (
	"context"
	"time"
)

// UseCase turns checklist deadlines into calendar reminders.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// Plan lists incomplete items whose deadline resolves against arrival,
	// ordered by due date. Deadlines the parser cannot read are skipped.
	Plan(ctx context.Context, arrival time.Time) []Reminder

	// Schedule creates one calendar event per planned reminder, skipping
	// items that already have one. Returns ErrCalendarDisabled without a calendar.
	Schedule(ctx context.Context, input ScheduleInput) (ScheduleOutput, error)
}
