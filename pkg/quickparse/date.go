package quickparse

import (
	"strconv"
	"time"

	"quick-entry/pkg/datemath"
)

// maxRelativeMinutes caps "+N" and "in N min" at one year.
const maxRelativeMinutes = 365 * 24 * 60

type relativeDayPattern struct {
	days    int
	pattern pattern
}

var (
	relativeDayPatterns = buildRelativeDayPatterns()
	weekdayPattern      = compile(alt(datemath.WeekdayNames()...))
	inMinutesPattern    = compile(`in\s+(\d+)\s*` + alt(minuteWords...))
	plusMinutesPattern  = compile(`\+(\d+)(?:\s*` + alt(minuteWords...) + `)?`)
	europeanDatePattern = compile(`(\d{1,2})\.(\d{1,2})(?:\.(\d{4}|\d{2}))?\.?`)
	usDatePattern       = compile(`(\d{1,2})/(\d{1,2})(?:/(\d{4}|\d{2}))?`)
)

func buildRelativeDayPatterns() []relativeDayPattern {
	out := make([]relativeDayPattern, 0, len(relativeDays))
	for _, rd := range relativeDays {
		out = append(out, relativeDayPattern{days: rd.days, pattern: compile(alt(rd.words...))})
	}
	return out
}

// dateRule tries one family of date expressions. Families run in a fixed
// order and the first hit ends the stage.
type dateRule func(ctx Context, text string) (loc []int, date time.Time, ok bool)

var dateRules = []dateRule{
	relativeDayRule,
	weekdayRule,
	relativeMinutesRule,
	europeanDateRule,
	usDateRule,
}

func extractDate(ctx Context, text string) (Match, bool) {
	for _, rule := range dateRules {
		loc, date, ok := rule(ctx, text)
		if !ok {
			continue
		}
		return Match{
			Residual: cut(text, loc[0], loc[1]),
			Labels:   []string{label(text, loc)},
			Apply:    func(r *Result) { r.Date = &date },
		}, true
	}
	return Match{}, false
}

// relativeDayRule handles heute/morgen/übermorgen and their English forms.
// The result keeps the current clock.
func relativeDayRule(ctx Context, text string) ([]int, time.Time, bool) {
	for _, rd := range relativeDayPatterns {
		if loc := rd.pattern.find(text); loc != nil {
			return loc, ctx.Now.AddDate(0, 0, rd.days), true
		}
	}
	return nil, time.Time{}, false
}

func weekdayRule(ctx Context, text string) ([]int, time.Time, bool) {
	loc := weekdayPattern.find(text)
	if loc == nil {
		return nil, time.Time{}, false
	}
	weekday, ok := datemath.LookupWeekday(text[loc[0]:loc[1]])
	if !ok {
		return nil, time.Time{}, false
	}
	return loc, ctx.Dates.NextWeekday(ctx.Now, weekday), true
}

func relativeMinutesRule(ctx Context, text string) ([]int, time.Time, bool) {
	for _, p := range []pattern{inMinutesPattern, plusMinutesPattern} {
		for _, loc := range p.findAll(text) {
			if loc[0] > 0 && p == plusMinutesPattern && !isSpaceBefore(text, loc[0]) {
				continue
			}
			minutes, err := strconv.Atoi(group(text, loc, 1))
			if err != nil || minutes > maxRelativeMinutes {
				continue
			}
			return loc, ctx.Now.Add(time.Duration(minutes) * time.Minute), true
		}
	}
	return nil, time.Time{}, false
}

func europeanDateRule(ctx Context, text string) ([]int, time.Time, bool) {
	return numericDate(ctx, text, europeanDatePattern, 1, 2)
}

func usDateRule(ctx Context, text string) ([]int, time.Time, bool) {
	return numericDate(ctx, text, usDatePattern, 2, 1)
}

// numericDate resolves the first valid day/month[/year] match. dayGroup and
// monthGroup select the field order of the notation.
func numericDate(ctx Context, text string, p pattern, dayGroup, monthGroup int) ([]int, time.Time, bool) {
	for _, loc := range p.findAll(text) {
		day, _ := strconv.Atoi(group(text, loc, dayGroup))
		month, _ := strconv.Atoi(group(text, loc, monthGroup))
		yearText := group(text, loc, 3)
		year, _ := strconv.Atoi(yearText)
		if date, ok := ctx.Dates.DayMonth(ctx.Now, day, month, year, yearText != ""); ok {
			return loc, date, true
		}
	}
	return nil, time.Time{}, false
}

func isSpaceBefore(text string, i int) bool {
	switch text[i-1] {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}
