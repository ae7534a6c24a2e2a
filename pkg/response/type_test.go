package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"smartude/pkg/response"
)

func TestDateMarshalJSON(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	cases := []struct {
		name string
		in   time.Time
		want string
	}{
		{"utc", time.Date(2026, 10, 15, 15, 30, 0, 0, time.UTC), `"2026-10-15"`},
		// 00:00 in Berlin is still Oct 14 in UTC
		{"own location", time.Date(2026, 10, 15, 0, 0, 0, 0, berlin), `"2026-10-15"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := json.Marshal(response.Date(tc.in))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(b) != tc.want {
				t.Errorf("expected %s, got %s", tc.want, b)
			}
		})
	}
}

func TestDateUnmarshalJSON(t *testing.T) {
	var d response.Date
	if err := json.Unmarshal([]byte(`"2026-10-01"`), &d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := time.Time(d); !got.Equal(time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected date %v", got)
	}

	if err := json.Unmarshal([]byte(`"01.10.2026"`), &d); err == nil {
		t.Error("expected error for a non ISO date")
	}
}
