package gcalendar

import "time"

// DefaultCalendarID targets the authenticated account's main calendar.
const DefaultCalendarID = "primary"

// Config locates the Google credentials.
type Config struct {
	// CredentialsFile is a service account key or an installed-app client secret.
	CredentialsFile string
	// TokenFile holds a previously authorized token for installed-app credentials.
	TokenFile string
}

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	// AllDay events use only the date part of Start and End.
	AllDay    bool
	StartTime time.Time
	EndTime   time.Time
	Timezone  string // e.g. "Europe/Berlin"
	// ReminderMinutes adds popup reminders before the start.
	ReminderMinutes []int64
	// Private extended properties, usable as a dedupe key with ListEvents.
	Properties map[string]string
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
	Properties  map[string]string
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
	// Property filters by a private extended property, "key=value".
	Property string
}
