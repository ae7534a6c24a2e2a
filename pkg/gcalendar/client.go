package gcalendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// ErrMissingToken means installed-app credentials were given without an authorized token.
var ErrMissingToken = errors.New("installed-app credentials need an authorized token file")

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

// New reads the credentials named by cfg and builds a Calendar client.
func New(ctx context.Context, cfg Config) (*Client, error) {
	data, err := os.ReadFile(cfg.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	var token []byte
	if cfg.TokenFile != "" {
		// A missing token only matters for installed-app credentials.
		token, _ = os.ReadFile(cfg.TokenFile)
	}
	return NewClientFromCredentialsJSON(ctx, data, token)
}

// NewClientFromCredentialsJSON accepts a service account key, or an
// installed-app client secret together with its authorized token.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON, tokenJSON []byte) (*Client, error) {
	jwtConfig, jwtErr := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarEventsScope)
	if jwtErr == nil {
		return newClient(ctx, option.WithTokenSource(jwtConfig.TokenSource(ctx)))
	}

	oauthConfig, err := google.ConfigFromJSON(credentialsJSON, calendar.CalendarEventsScope)
	if err != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", jwtErr)
	}
	if len(tokenJSON) == 0 {
		return nil, ErrMissingToken
	}

	var tok oauth2.Token
	if err := json.Unmarshal(tokenJSON, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	return newClient(ctx, option.WithTokenSource(oauthConfig.TokenSource(ctx, &tok)))
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	return newClient(ctx, option.WithHTTPClient(httpClient))
}

func newClient(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// CreateEvent creates a new Google Calendar event.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Start:       eventTime(req.StartTime, req.AllDay, req.Timezone),
		End:         eventTime(req.EndTime, req.AllDay, req.Timezone),
	}
	if len(req.Properties) > 0 {
		event.ExtendedProperties = &calendar.EventExtendedProperties{Private: req.Properties}
	}
	if len(req.ReminderMinutes) > 0 {
		overrides := make([]*calendar.EventReminder, 0, len(req.ReminderMinutes))
		for _, m := range req.ReminderMinutes {
			overrides = append(overrides, &calendar.EventReminder{Method: "popup", Minutes: m})
		}
		event.Reminders = &calendar.EventReminders{
			UseDefault:      false,
			Overrides:       overrides,
			ForceSendFields: []string{"UseDefault"},
		}
	}

	created, err := c.service.Events.Insert(calendarID(req.CalendarID), event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	return &Event{
		ID:          created.Id,
		Summary:     created.Summary,
		Description: created.Description,
		HtmlLink:    created.HtmlLink,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Properties:  req.Properties,
	}, nil
}

// ListEvents returns single events between TimeMin and TimeMax, ordered by start.
func (c *Client) ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error) {
	call := c.service.Events.List(calendarID(req.CalendarID)).
		Context(ctx).
		SingleEvents(true).
		OrderBy("startTime")
	if !req.TimeMin.IsZero() {
		call = call.TimeMin(req.TimeMin.Format(time.RFC3339))
	}
	if !req.TimeMax.IsZero() {
		call = call.TimeMax(req.TimeMax.Format(time.RFC3339))
	}
	if req.MaxResults > 0 {
		call = call.MaxResults(req.MaxResults)
	}
	if req.Property != "" {
		call = call.PrivateExtendedProperty(req.Property)
	}

	res, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}

	events := make([]Event, 0, len(res.Items))
	for _, item := range res.Items {
		e := Event{
			ID:          item.Id,
			Summary:     item.Summary,
			Description: item.Description,
			HtmlLink:    item.HtmlLink,
			StartTime:   parseEventTime(item.Start),
			EndTime:     parseEventTime(item.End),
		}
		if item.ExtendedProperties != nil {
			e.Properties = item.ExtendedProperties.Private
		}
		events = append(events, e)
	}
	return events, nil
}

func calendarID(id string) string {
	if id == "" {
		return DefaultCalendarID
	}
	return id
}

func eventTime(t time.Time, allDay bool, tz string) *calendar.EventDateTime {
	if allDay {
		return &calendar.EventDateTime{Date: t.Format(time.DateOnly)}
	}
	return &calendar.EventDateTime{DateTime: t.Format(time.RFC3339), TimeZone: tz}
}

func parseEventTime(dt *calendar.EventDateTime) time.Time {
	if dt == nil {
		return time.Time{}
	}
	if dt.DateTime != "" {
		t, _ := time.Parse(time.RFC3339, dt.DateTime)
		return t
	}
	t, _ := time.Parse(time.DateOnly, dt.Date)
	return t
}
