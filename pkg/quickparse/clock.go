package quickparse

import (
	"fmt"
	"strconv"
	"strings"
)

var (
	colonTimePattern    = compile(`(\d{1,2}):(\d{2})(?:\s*(uhr|am|pm))?`)
	uhrTimePattern      = compile(`(\d{1,2})\s*uhr`)
	meridiemTimePattern = compile(`(\d{1,2})\s*(am|pm)`)
)

type clockPattern struct {
	pattern    pattern
	hasMinutes bool
	suffix     int // submatch index of uhr/am/pm, 0 if none
}

var clockPatterns = []clockPattern{
	{pattern: colonTimePattern, hasMinutes: true, suffix: 3},
	{pattern: uhrTimePattern},
	{pattern: meridiemTimePattern, suffix: 2},
}

// extractTime finds the first valid clock time. It lands on the date found
// earlier, or on today when there is none.
func extractTime(ctx Context, text string) (Match, bool) {
	for _, cp := range clockPatterns {
		for _, loc := range cp.pattern.findAll(text) {
			hour, minute, ok := clockFrom(text, loc, cp)
			if !ok {
				continue
			}
			return Match{
				Residual: cut(text, loc[0], loc[1]),
				Labels:   []string{label(text, loc)},
				Apply: func(r *Result) {
					base := ctx.Now
					if r.Date != nil {
						base = *r.Date
					}
					at := ctx.Dates.AtClock(base, hour, minute)
					r.Date = &at
					r.Time = fmt.Sprintf("%02d:%02d", hour, minute)
				},
			}, true
		}
	}
	return Match{}, false
}

func clockFrom(text string, loc []int, cp clockPattern) (hour, minute int, ok bool) {
	hour, err := strconv.Atoi(group(text, loc, 1))
	if err != nil {
		return 0, 0, false
	}
	if cp.hasMinutes {
		if minute, err = strconv.Atoi(group(text, loc, 2)); err != nil {
			return 0, 0, false
		}
	}
	if cp.suffix > 0 {
		switch strings.ToLower(group(text, loc, cp.suffix)) {
		case "pm":
			if hour != 12 {
				hour += 12
			}
		case "am":
			if hour == 12 {
				hour = 0
			}
		}
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}
