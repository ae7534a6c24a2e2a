package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"smartude/internal/reminder"
	"smartude/pkg/log"
	"smartude/pkg/response"
)

type stubReminders struct {
	plan    []reminder.Reminder
	out     reminder.ScheduleOutput
	err     error
	arrival time.Time
}

func (s *stubReminders) Plan(ctx context.Context, arrival time.Time) []reminder.Reminder {
	s.arrival = arrival
	return s.plan
}

func (s *stubReminders) Schedule(ctx context.Context, input reminder.ScheduleInput) (reminder.ScheduleOutput, error) {
	s.arrival = input.Arrival
	return s.out, s.err
}

func newRouter(uc reminder.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	berlin, _ := time.LoadLocation("Europe/Berlin")
	RegisterRoutes(r.Group("/api/v1"), New(log.NewNop(), uc, berlin))
	return r
}

var due = time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)

func TestPlan(t *testing.T) {
	uc := &stubReminders{plan: []reminder.Reminder{{ItemID: "reg-1", Title: "Register", Due: due}}}
	r := newRouter(uc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/reminders?arrival=2026-10-01", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if uc.arrival.Location().String() != "Europe/Berlin" || uc.arrival.Day() != 1 {
		t.Errorf("expected Oct 1 in Berlin, got %v", uc.arrival)
	}

	var env struct {
		response.Resp
		Data planResp `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &env)
	if len(env.Data.Reminders) != 1 || time.Time(env.Data.Reminders[0].Due).Format(response.DateFormat) != "2026-10-15" {
		t.Errorf("unexpected response: %+v", env.Data)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/reminders?arrival=soon", nil))
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for a bad date, got %d", w.Code)
	}
}

func TestSchedule(t *testing.T) {
	post := func(r *gin.Engine, body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/reminders", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("created", func(t *testing.T) {
		uc := &stubReminders{out: reminder.ScheduleOutput{
			Created: []reminder.ScheduledEvent{{
				Reminder: reminder.Reminder{ItemID: "reg-1", Due: due},
				EventID:  "ev-1",
				Link:     "https://calendar/ev-1",
			}},
		}}
		w := post(newRouter(uc), `{"arrival":"2026-10-01"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var env struct {
			response.Resp
			Data scheduleResp `json:"data"`
		}
		json.Unmarshal(w.Body.Bytes(), &env)
		if len(env.Data.Created) != 1 || env.Data.Created[0].EventID != "ev-1" || env.Data.Created[0].ItemID != "reg-1" {
			t.Errorf("unexpected response: %+v", env.Data)
		}
		if env.Data.Existing == nil {
			t.Errorf("existing should encode as an empty list")
		}
	})

	t.Run("missing body", func(t *testing.T) {
		w := post(newRouter(&stubReminders{}), `{}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("calendar disabled", func(t *testing.T) {
		w := post(newRouter(&stubReminders{err: reminder.ErrCalendarDisabled}), `{"arrival":"2026-10-01"}`)
		if w.Code != http.StatusNotImplemented {
			t.Errorf("expected 501, got %d", w.Code)
		}
	})

	t.Run("calendar failure", func(t *testing.T) {
		w := post(newRouter(&stubReminders{err: errors.New("quota")}), `{"arrival":"2026-10-01T08:00:00Z"}`)
		if w.Code != http.StatusBadGateway {
			t.Errorf("expected 502, got %d", w.Code)
		}
	})
}
