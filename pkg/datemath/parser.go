package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateFormatISO is the wire format for task dates.
const DateFormatISO = "2006-01-02"

var clockPattern = regexp.MustCompile(`(?i)(\d{1,2}):?(\d{0,2})\s*(am|pm)`)

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Parser resolves the free-form date and time expressions users type
// ("tomorrow", "monday", "8pm") to absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// ResolveDate converts a free-form date expression to the start of the target
// calendar day. The baseTime is the reference point (usually time.Now()).
//
// Rules: "tomorrow" is base+1 day; "today", empty, and anything unrecognized
// resolve to the base day; a weekday name resolves to its next occurrence
// strictly after the base day, so asking for "monday" on a Monday yields the
// Monday a full week out. ISO dates (2006-01-02) are accepted as-is.
func (p *Parser) ResolveDate(expr string, baseTime time.Time) time.Time {
	expr = strings.ToLower(strings.TrimSpace(expr))

	switch expr {
	case "", "today":
		return p.startOfDay(baseTime)
	case "tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 1))
	}

	if target, ok := weekdays[expr]; ok {
		daysUntil := (int(target) - int(baseTime.In(p.location).Weekday()) + 7) % 7
		if daysUntil == 0 {
			daysUntil = 7
		}
		return p.startOfDay(baseTime.AddDate(0, 0, daysUntil))
	}

	if abs, err := time.ParseInLocation(DateFormatISO, expr, p.location); err == nil {
		return abs
	}

	return p.startOfDay(baseTime)
}

// Clock is a wall-clock time extracted from a 12-hour expression.
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock extracts a clock time from expressions like "8pm", "3:30 AM",
// "at 9 pm". Returns false when no pattern matches.
func ParseClock(expr string) (Clock, bool) {
	m := clockPattern.FindStringSubmatch(expr)
	if m == nil {
		return Clock{}, false
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil || hour > 12 {
		return Clock{}, false
	}
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}
	if minute > 59 {
		return Clock{}, false
	}

	switch strings.ToLower(m[3]) {
	case "pm":
		if hour != 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}

	return Clock{Hour: hour, Minute: minute}, true
}

// ResolveDateTime combines a free-form date expression and a free-form time
// expression into a single absolute instant in the parser's timezone.
// When the time expression does not match, the date-only instant (midnight)
// is returned and matched reports false.
func (p *Parser) ResolveDateTime(dateExpr, timeExpr string, baseTime time.Time) (instant time.Time, matched bool) {
	day := p.ResolveDate(dateExpr, baseTime)

	clock, ok := ParseClock(timeExpr)
	if !ok {
		return day, false
	}

	return time.Date(day.Year(), day.Month(), day.Day(), clock.Hour, clock.Minute, 0, 0, p.location), true
}

// NextOccurrenceOfHour returns the next instant the wall clock reads hour:00 —
// today if that hour is still ahead of baseTime, otherwise tomorrow.
func (p *Parser) NextOccurrenceOfHour(hour int, baseTime time.Time) time.Time {
	base := baseTime.In(p.location)
	next := time.Date(base.Year(), base.Month(), base.Day(), hour, 0, 0, 0, p.location)
	if !next.After(base) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// FormatDate renders t as the wire date format (YYYY-MM-DD).
func (p *Parser) FormatDate(t time.Time) string {
	return t.In(p.location).Format(DateFormatISO)
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
