package repository

// CalendarOptions controls how reminders land in the calendar.
type CalendarOptions struct {
	CalendarID string
	Timezone   string
	// ReminderMinutes are popup offsets before the due day starts.
	ReminderMinutes []int64
}
