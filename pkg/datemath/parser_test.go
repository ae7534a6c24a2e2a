package datemath_test

import (
	"errors"
	"testing"
	"time"

	"smartude/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Europe/Berlin")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2026, 9, 30, 15, 30, 0, 0, time.UTC) // Wednesday, Sep 30, 2026
	startOfBase := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		relative string
		want     time.Time
		wantErr  bool
	}{
		{name: "Today", relative: "today", want: startOfBase},
		{name: "Tomorrow", relative: "Tomorrow", want: startOfBase.AddDate(0, 0, 1)},
		{name: "Yesterday", relative: "yesterday", want: startOfBase.AddDate(0, 0, -1)},
		{name: "In 3 days", relative: "in 3 days", want: startOfBase.AddDate(0, 0, 3)},
		{name: "Within 2 weeks", relative: "within 2 weeks", want: startOfBase.AddDate(0, 0, 14)},
		{name: "In 1 month", relative: "in 1 month", want: startOfBase.AddDate(0, 1, 0)},
		{name: "Days after arrival", relative: "14 days after arrival", want: startOfBase.AddDate(0, 0, 14)},
		{name: "Extra spaces", relative: "  14  Days after   Arrival ", want: startOfBase.AddDate(0, 0, 14)},
		{name: "Week before", relative: "1 week before semester start", want: startOfBase.AddDate(0, 0, -7)},
		{name: "On arrival", relative: "on arrival", want: startOfBase},
		{name: "Arrival day", relative: "arrival day", want: startOfBase},
		{name: "Absolute date", relative: "2026-10-15", want: time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)},
		{name: "Next Monday (from Wed)", relative: "next monday", want: startOfBase.AddDate(0, 0, 5)},
		{name: "Next Wednesday (from Wed)", relative: "next wednesday", want: startOfBase.AddDate(0, 0, 7)},
		{name: "Invalid duration pattern", relative: "in a few days", want: baseTime, wantErr: true},
		{name: "Invalid Next Weekday", relative: "next funday", want: baseTime, wantErr: true},
		{name: "Unknown phrase", relative: "as soon as possible", want: baseTime, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.relative, baseTime)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, datemath.ErrUnrecognized) {
				t.Errorf("expected ErrUnrecognized, got %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParse_Timezone(t *testing.T) {
	parser, _ := datemath.NewParser("Europe/Berlin")
	// 23:30 UTC on Sep 30 is already Oct 1 in Berlin
	base := time.Date(2026, 9, 30, 23, 30, 0, 0, time.UTC)

	got, err := parser.Parse("today", base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Day() != 1 || got.Month() != time.October || got.Location() != parser.Location() {
		t.Errorf("expected Oct 1 in Berlin, got %v", got)
	}
}

func TestEndOfDay(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	want := time.Date(2026, 10, 1, 23, 59, 59, 0, time.UTC)

	got := parser.EndOfDay(base)
	if !got.Equal(want) {
		t.Errorf("EndOfDay() got = %v, want %v", got, want)
	}
}
