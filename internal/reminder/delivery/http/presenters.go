package http

import (
	"time"

	"smartude/internal/reminder"
	"smartude/pkg/response"
)

type scheduleReq struct {
	Arrival string `json:"arrival" binding:"required"`
}

type reminderResp struct {
	ItemID   string `json:"item_id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Priority string `json:"priority"`
	Deadline string        `json:"deadline"`
	Due      response.Date `json:"due"`
}

func newReminderResp(r reminder.Reminder) reminderResp {
	return reminderResp{
		ItemID:   r.ItemID,
		Title:    r.Title,
		Category: r.Category,
		Priority: string(r.Priority),
		Deadline: r.Deadline,
		Due:      response.Date(r.Due),
	}
}

type planResp struct {
	Arrival   response.Date  `json:"arrival"`
	Reminders []reminderResp `json:"reminders"`
}

func (h *handler) newPlanResp(arrival time.Time, list []reminder.Reminder) planResp {
	resp := planResp{
		Arrival:   response.Date(arrival),
		Reminders: make([]reminderResp, 0, len(list)),
	}
	for _, r := range list {
		resp.Reminders = append(resp.Reminders, newReminderResp(r))
	}
	return resp
}

type eventResp struct {
	reminderResp
	EventID string `json:"event_id"`
	Link    string `json:"link"`
}

type scheduleResp struct {
	Created  []eventResp `json:"created"`
	Existing []string    `json:"existing"`
}

func (h *handler) newScheduleResp(out reminder.ScheduleOutput) scheduleResp {
	resp := scheduleResp{
		Created:  make([]eventResp, 0, len(out.Created)),
		Existing: out.Existing,
	}
	if resp.Existing == nil {
		resp.Existing = []string{}
	}
	for _, ev := range out.Created {
		resp.Created = append(resp.Created, eventResp{
			reminderResp: newReminderResp(ev.Reminder),
			EventID:      ev.EventID,
			Link:         ev.Link,
		})
	}
	return resp
}
