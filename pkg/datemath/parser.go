package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser converts relative date strings to absolute time.Time values.
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

// Location returns the timezone every result is expressed in.
func (p *Parser) Location() *time.Location {
	return p.location
}

var (
	inDurationRe  = regexp.MustCompile(`^in (\d+) (day|days|tag|tagen|week|weeks|woche|wochen|month|months|monat|monaten)$`)
	nextWeekdayRe = regexp.MustCompile(`^(?:next|this|on|am|nächsten|nächster|kommenden|diesen) (\p{L}+)$`)
)

// Parse converts a relative date string (English or German) to the start of
// the matching day. The baseTime is used as the reference point (usually time.Now()).
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.Join(strings.Fields(relative), " "))

	switch relative {
	case "today", "heute":
		return p.StartOfDay(baseTime), nil
	case "tomorrow", "morgen":
		return p.StartOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "overmorrow", "übermorgen":
		return p.StartOfDay(baseTime.AddDate(0, 0, 2)), nil
	case "yesterday", "gestern":
		return p.StartOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	if m := nextWeekdayRe.FindStringSubmatch(relative); m != nil {
		return p.parseWeekday(m[1], baseTime)
	}

	if _, ok := LookupWeekday(relative); ok {
		return p.parseWeekday(relative, baseTime)
	}

	return baseTime, fmt.Errorf("unknown relative date: %q", relative)
}

// parseInDuration handles patterns like "in 3 days", "in 2 wochen", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return baseTime, fmt.Errorf("invalid amount in %q: %w", relative, err)
	}

	switch unit := matches[2]; {
	case strings.HasPrefix(unit, "day"), strings.HasPrefix(unit, "tag"):
		return p.StartOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"), strings.HasPrefix(unit, "woche"):
		return p.StartOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	default:
		return p.StartOfDay(baseTime.AddDate(0, amount, 0)), nil
	}
}

// parseWeekday resolves a weekday name to its next occurrence.
func (p *Parser) parseWeekday(name string, baseTime time.Time) (time.Time, error) {
	target, ok := LookupWeekday(name)
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", name)
	}
	return p.StartOfDay(p.NextWeekday(baseTime, target)), nil
}

// NextWeekday returns baseTime moved forward to the next target weekday,
// keeping the clock. Today never counts: the result is always 1..7 days ahead.
func (p *Parser) NextWeekday(baseTime time.Time, target time.Weekday) time.Time {
	base := baseTime.In(p.location)
	return base.AddDate(0, 0, DaysUntil(base.Weekday(), target))
}

// DayMonth builds midnight of day.month[.year]. Without an explicit year a
// date already in the past rolls forward one year. ok is false for dates
// that do not exist (31.2., month 13).
func (p *Parser) DayMonth(baseTime time.Time, day, month, year int, hasYear bool) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}

	base := baseTime.In(p.location)
	if !hasYear {
		year = base.Year()
	} else if year < 100 {
		year += 2000
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, p.location)
	if date.Day() != day || int(date.Month()) != month {
		return time.Time{}, false
	}

	if !hasYear && date.Before(p.StartOfDay(base)) {
		date = date.AddDate(1, 0, 0)
		if date.Day() != day {
			// 29.2. rolled into a non-leap year
			return time.Time{}, false
		}
	}
	return date, true
}

// AtClock returns t's calendar day at hour:minute:00.
func (p *Parser) AtClock(t time.Time, hour, minute int) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), hour, minute, 0, 0, p.location)
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
