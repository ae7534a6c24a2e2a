package gcalendar

import (
	"context"

	"smartude/internal/reminder/repository"
	pkgCalendar "smartude/pkg/gcalendar"
	pkgLog "smartude/pkg/log"
)

// itemProperty tags events with the checklist item they remind about.
const itemProperty = "smartude_item"

// calendarClient is the part of pkg/gcalendar the repository needs.
type calendarClient interface {
	CreateEvent(ctx context.Context, req pkgCalendar.CreateEventRequest) (*pkgCalendar.Event, error)
	ListEvents(ctx context.Context, req pkgCalendar.ListEventsRequest) ([]pkgCalendar.Event, error)
}

type implRepository struct {
	client calendarClient
	opts   repository.CalendarOptions
	l      pkgLog.Logger
}

// New creates a calendar repository backed by Google Calendar.
func New(client calendarClient, opts repository.CalendarOptions, l pkgLog.Logger) *implRepository {
	return &implRepository{
		client: client,
		opts:   opts,
		l:      l,
	}
}

var _ repository.CalendarRepository = (*implRepository)(nil)
