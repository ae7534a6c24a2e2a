package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// "in 3 days", "within 2 weeks"
	inDurationPattern = regexp.MustCompile(`^(?:in|within) (\d+) (day|days|week|weeks|month|months)$`)
	// "14 days after arrival", "1 week before semester start"
	offsetPattern = regexp.MustCompile(`^(\d+) (day|days|week|weeks|month|months) (after|before)\b.*$`)
	// "on arrival", "upon arrival", "arrival day"
	sameDayPattern = regexp.MustCompile(`^(?:on|upon) \w+$|^\w+ day$`)
)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Parser converts relative date phrases to absolute day starts.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Europe/Berlin"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse converts a relative phrase to the start of the day it names.
// baseTime is the reference point, e.g. the arrival date for
// "14 days after arrival". Unknown phrases return ErrUnrecognized.
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.Join(strings.Fields(strings.ToLower(relative)), " ")

	switch relative {
	case "today":
		return p.startOfDay(baseTime), nil
	case "tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.startOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	if t, err := time.ParseInLocation(time.DateOnly, relative, p.location); err == nil {
		return t, nil
	}

	if strings.HasPrefix(relative, "in ") || strings.HasPrefix(relative, "within ") {
		return p.parseInDuration(relative, baseTime)
	}

	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(relative, baseTime)
	}

	if m := offsetPattern.FindStringSubmatch(relative); m != nil {
		amount, _ := strconv.Atoi(m[1])
		if m[3] == "before" {
			amount = -amount
		}
		return p.shift(baseTime, amount, m[2])
	}

	if sameDayPattern.MatchString(relative) {
		return p.startOfDay(baseTime), nil
	}

	return baseTime, fmt.Errorf("%w: %q", ErrUnrecognized, relative)
}

// parseInDuration handles patterns like "in 3 days", "within 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationPattern.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("%w: invalid duration format %q", ErrUnrecognized, relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	return p.shift(baseTime, amount, matches[2])
}

func (p *Parser) shift(baseTime time.Time, amount int, unit string) (time.Time, error) {
	switch {
	case strings.HasPrefix(unit, unitDay):
		return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, unitWeek):
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	case strings.HasPrefix(unit, unitMonth):
		return p.startOfDay(baseTime.AddDate(0, amount, 0)), nil
	}
	return baseTime, fmt.Errorf("%w: unknown time unit %q", ErrUnrecognized, unit)
}

// parseNextWeekday handles patterns like "next monday", "next friday".
func (p *Parser) parseNextWeekday(relative string, baseTime time.Time) (time.Time, error) {
	dayName := strings.TrimPrefix(relative, "next ")
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return baseTime, fmt.Errorf("%w: unknown weekday %q", ErrUnrecognized, dayName)
	}

	daysUntil := int(targetWeekday - baseTime.In(p.location).Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.startOfDay(baseTime.AddDate(0, 0, daysUntil)), nil
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
