package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"smartude/internal/checklist"
	"smartude/internal/reminder"
	"smartude/internal/reminder/repository"
	"smartude/pkg/datemath"
	"smartude/pkg/log"
)

type staticProgress checklist.ProgressMap

func (p staticProgress) Load(ctx context.Context) checklist.ProgressMap {
	return checklist.ProgressMap(p).Clone()
}

type memCalendar struct {
	existing  map[string]bool
	created   []string
	findErr   error
	createErr error
}

func (m *memCalendar) FindEvent(ctx context.Context, r reminder.Reminder) (repository.Event, error) {
	if m.findErr != nil {
		return repository.Event{}, m.findErr
	}
	if m.existing[r.ItemID] {
		return repository.Event{ID: "old-" + r.ItemID}, nil
	}
	return repository.Event{}, repository.ErrEventNotFound
}

func (m *memCalendar) CreateEvent(ctx context.Context, r reminder.Reminder) (repository.Event, error) {
	if m.createErr != nil {
		return repository.Event{}, m.createErr
	}
	m.created = append(m.created, r.ItemID)
	return repository.Event{ID: "ev-" + r.ItemID, Link: "https://calendar/" + r.ItemID}, nil
}

var arrival = time.Date(2026, 10, 1, 9, 30, 0, 0, time.UTC)

func testCatalog() *checklist.Catalog {
	return checklist.MustCatalog([]checklist.Category{
		{
			ID:    "arrival",
			Title: "Arrival",
			Items: []checklist.Item{
				{ID: "a-1", Title: "Pick up keys", Deadline: "on arrival"},
				{ID: "a-2", Title: "Buy groceries"},
				{ID: "a-3", Title: "Open bank account", Deadline: "within 2 weeks"},
			},
		},
		{
			ID:    "registration",
			Title: "Registration",
			Items: []checklist.Item{
				{ID: "r-1", Title: "Register address", Deadline: "7 days after arrival"},
				{ID: "r-2", Title: "Health insurance", Deadline: "as soon as possible"},
			},
		},
	})
}

func newTestUseCase(t *testing.T, progress checklist.ProgressMap, cal repository.CalendarRepository) *implUseCase {
	t.Helper()
	parser, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("parser: %v", err)
	}
	return New(log.NewNop(), staticProgress(progress), checklist.New(testCatalog()), parser, cal)
}

func TestPlan(t *testing.T) {
	uc := newTestUseCase(t, checklist.ProgressMap{"a-3": true}, nil)

	got := uc.Plan(context.Background(), arrival)

	// a-2 has no deadline, a-3 is done, r-2 cannot be parsed
	if len(got) != 2 {
		t.Fatalf("expected 2 reminders, got %+v", got)
	}
	if got[0].ItemID != "a-1" || got[1].ItemID != "r-1" {
		t.Errorf("expected due-date order a-1, r-1, got %s, %s", got[0].ItemID, got[1].ItemID)
	}
	wantDue := time.Date(2026, 10, 8, 0, 0, 0, 0, time.UTC)
	if !got[1].Due.Equal(wantDue) {
		t.Errorf("expected r-1 due %v, got %v", wantDue, got[1].Due)
	}
	if got[1].Category != "Registration" {
		t.Errorf("expected category title, got %q", got[1].Category)
	}
}

func TestPlanDefaultCatalog(t *testing.T) {
	parser, _ := datemath.NewParser("Europe/Berlin")
	uc := New(log.NewNop(), staticProgress(nil), checklist.New(checklist.Default), parser, nil)

	got := uc.Plan(context.Background(), arrival)
	if len(got) != 1 || got[0].ItemID != "reg-1" {
		t.Fatalf("expected the registration deadline only, got %+v", got)
	}
}

func TestSchedule(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled", func(t *testing.T) {
		uc := newTestUseCase(t, nil, nil)
		_, err := uc.Schedule(ctx, reminder.ScheduleInput{Arrival: arrival})
		if !errors.Is(err, reminder.ErrCalendarDisabled) {
			t.Fatalf("expected ErrCalendarDisabled, got %v", err)
		}
	})

	t.Run("missing arrival", func(t *testing.T) {
		uc := newTestUseCase(t, nil, &memCalendar{})
		_, err := uc.Schedule(ctx, reminder.ScheduleInput{})
		if !errors.Is(err, reminder.ErrMissingArrival) {
			t.Fatalf("expected ErrMissingArrival, got %v", err)
		}
	})

	t.Run("creates missing and skips existing", func(t *testing.T) {
		cal := &memCalendar{existing: map[string]bool{"a-1": true}}
		uc := newTestUseCase(t, nil, cal)

		out, err := uc.Schedule(ctx, reminder.ScheduleInput{Arrival: arrival})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Existing) != 1 || out.Existing[0] != "a-1" {
			t.Errorf("expected a-1 existing, got %v", out.Existing)
		}
		if len(cal.created) != 2 || cal.created[0] != "r-1" || cal.created[1] != "a-3" {
			t.Errorf("unexpected created: %v", cal.created)
		}
		if out.Created[0].EventID != "ev-r-1" {
			t.Errorf("unexpected event id: %s", out.Created[0].EventID)
		}
	})

	t.Run("calendar failure", func(t *testing.T) {
		cal := &memCalendar{createErr: errors.New("quota")}
		uc := newTestUseCase(t, nil, cal)

		out, err := uc.Schedule(ctx, reminder.ScheduleInput{Arrival: arrival})
		if err == nil {
			t.Fatalf("expected error")
		}
		if len(out.Created) != 0 {
			t.Errorf("expected nothing created, got %v", out.Created)
		}
	})

	t.Run("lookup failure", func(t *testing.T) {
		cal := &memCalendar{findErr: errors.New("down")}
		uc := newTestUseCase(t, nil, cal)

		if _, err := uc.Schedule(ctx, reminder.ScheduleInput{Arrival: arrival}); err == nil {
			t.Fatalf("expected error")
		}
		if len(cal.created) != 0 {
			t.Errorf("must not create when lookup fails")
		}
	})
}
