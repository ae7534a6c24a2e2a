package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"smartude/internal/reminder"
	"smartude/internal/reminder/repository"
)

func (uc *implUseCase) Plan(ctx context.Context, arrival time.Time) []reminder.Reminder {
	progress := uc.progress.Load(ctx)

	var out []reminder.Reminder
	for _, cat := range uc.checklist.Catalog().Categories() {
		for _, item := range cat.Items {
			if item.Deadline == "" || progress[item.ID] {
				continue
			}
			due, err := uc.parser.Parse(item.Deadline, arrival)
			if err != nil {
				uc.l.Warnf(ctx, "reminder.usecase.Plan: skip %s: %v", item.ID, err)
				continue
			}
			out = append(out, reminder.Reminder{
				ItemID:   item.ID,
				Title:    item.Title,
				Category: cat.Title,
				Priority: item.Priority,
				Deadline: item.Deadline,
				Due:      due,
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Due.Before(out[j].Due)
	})
	return out
}

func (uc *implUseCase) Schedule(ctx context.Context, input reminder.ScheduleInput) (reminder.ScheduleOutput, error) {
	if uc.calendar == nil {
		return reminder.ScheduleOutput{}, reminder.ErrCalendarDisabled
	}
	if input.Arrival.IsZero() {
		return reminder.ScheduleOutput{}, reminder.ErrMissingArrival
	}

	var out reminder.ScheduleOutput
	for _, rem := range uc.Plan(ctx, input.Arrival) {
		existing, err := uc.calendar.FindEvent(ctx, rem)
		switch {
		case err == nil:
			uc.l.Debugf(ctx, "reminder.usecase.Schedule: %s already scheduled as %s", rem.ItemID, existing.ID)
			out.Existing = append(out.Existing, rem.ItemID)
			continue
		case !errors.Is(err, repository.ErrEventNotFound):
			return out, fmt.Errorf("look up reminder for %s: %w", rem.ItemID, err)
		}

		ev, err := uc.calendar.CreateEvent(ctx, rem)
		if err != nil {
			return out, fmt.Errorf("create reminder for %s: %w", rem.ItemID, err)
		}
		out.Created = append(out.Created, reminder.ScheduledEvent{
			Reminder: rem,
			EventID:  ev.ID,
			Link:     ev.Link,
		})
	}

	uc.l.Infof(ctx, "reminder.usecase.Schedule: created=%d existing=%d", len(out.Created), len(out.Existing))
	return out, nil
}
