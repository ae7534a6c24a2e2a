package gcalendar

import (
	"context"
	"fmt"

	"smartude/internal/reminder"
	"smartude/internal/reminder/repository"
	pkgCalendar "smartude/pkg/gcalendar"
)

func (r *implRepository) FindEvent(ctx context.Context, rem reminder.Reminder) (repository.Event, error) {
	events, err := r.client.ListEvents(ctx, pkgCalendar.ListEventsRequest{
		CalendarID: r.opts.CalendarID,
		TimeMin:    rem.Due,
		TimeMax:    rem.Due.AddDate(0, 0, 1),
		MaxResults: 10,
		Property:   fmt.Sprintf("%s=%s", itemProperty, rem.ItemID),
	})
	if err != nil {
		r.l.Errorf(ctx, "reminder.repository.gcalendar.FindEvent: %v", err)
		return repository.Event{}, err
	}
	if len(events) == 0 {
		return repository.Event{}, repository.ErrEventNotFound
	}
	return repository.Event{ID: events[0].ID, Link: events[0].HtmlLink}, nil
}

func (r *implRepository) CreateEvent(ctx context.Context, rem reminder.Reminder) (repository.Event, error) {
	created, err := r.client.CreateEvent(ctx, pkgCalendar.CreateEventRequest{
		CalendarID:      r.opts.CalendarID,
		Summary:         fmt.Sprintf("SmartUDE: %s", rem.Title),
		Description:     description(rem),
		AllDay:          true,
		StartTime:       rem.Due,
		EndTime:         rem.Due.AddDate(0, 0, 1),
		Timezone:        r.opts.Timezone,
		ReminderMinutes: r.opts.ReminderMinutes,
		Properties:      map[string]string{itemProperty: rem.ItemID},
	})
	if err != nil {
		r.l.Errorf(ctx, "reminder.repository.gcalendar.CreateEvent: %v", err)
		return repository.Event{}, err
	}
	return repository.Event{ID: created.ID, Link: created.HtmlLink}, nil
}

func description(rem reminder.Reminder) string {
	return fmt.Sprintf("%s\nDeadline: %s\nPriority: %s", rem.Category, rem.Deadline, rem.Priority)
}
