package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // reference zones must resolve on minimal images
)

var inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Parser resolves civil dates in one reference timezone.
type Parser struct {
	location *time.Location
	now      Clock
}

// NewParser creates a new date parser for the given IANA timezone string,
// e.g. "Europe/Moscow".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc, now: time.Now}, nil
}

// WithClock returns a copy of the parser that reads the current time from now.
func (p *Parser) WithClock(now Clock) *Parser {
	cp := *p
	cp.now = now
	return &cp
}

// Location returns the reference timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// CivilDate returns the calendar date of t as observed in the reference timezone.
func (p *Parser) CivilDate(t time.Time) time.Time {
	t = t.In(p.location)
	return Date(t.Year(), t.Month(), t.Day())
}

// Today returns the current civil date in the reference timezone.
func (p *Parser) Today() time.Time {
	return p.CivilDate(p.now())
}

// Resolve accepts either an ISO date or a relative expression ("today",
// "tomorrow", "yesterday", "in 3 days", "next friday") evaluated against Today.
func (p *Parser) Resolve(s string) (time.Time, error) {
	if d, err := ParseISO(strings.TrimSpace(s)); err == nil {
		return d, nil
	}
	return p.Parse(s, p.Today())
}

// Parse converts a relative date expression to a civil date, counting from base.
func (p *Parser) Parse(relative string, base time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))
	base = Date(base.Year(), base.Month(), base.Day())

	switch relative {
	case "today":
		return base, nil
	case "tomorrow":
		return base.AddDate(0, 0, 1), nil
	case "yesterday":
		return base.AddDate(0, 0, -1), nil
	}

	if strings.HasPrefix(relative, "in ") {
		return parseInDuration(relative, base)
	}
	if strings.HasPrefix(relative, "next ") {
		return parseNextWeekday(relative, base)
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", relative)
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func parseInDuration(relative string, base time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	switch unit := matches[2]; {
	case strings.HasPrefix(unit, "day"):
		return base.AddDate(0, 0, amount), nil
	case strings.HasPrefix(unit, "week"):
		return base.AddDate(0, 0, amount*7), nil
	default:
		return base.AddDate(0, amount, 0), nil
	}
}

// parseNextWeekday handles "next monday" .. "next sunday". The same weekday
// as base resolves to one week later.
func parseNextWeekday(relative string, base time.Time) (time.Time, error) {
	name := strings.TrimPrefix(relative, "next ")
	target, ok := weekdays[name]
	if !ok {
		return time.Time{}, fmt.Errorf("unknown weekday: %q", name)
	}

	daysUntil := int(target - base.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return base.AddDate(0, 0, daysUntil), nil
}
