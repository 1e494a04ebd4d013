package datemath

import (
	"sort"
	"strings"
	"time"
)

// weekdayNames maps English and German weekday names to time.Weekday.
var weekdayNames = map[string]time.Weekday{
	"monday":     time.Monday,
	"tuesday":    time.Tuesday,
	"wednesday":  time.Wednesday,
	"thursday":   time.Thursday,
	"friday":     time.Friday,
	"saturday":   time.Saturday,
	"sunday":     time.Sunday,
	"montag":     time.Monday,
	"dienstag":   time.Tuesday,
	"mittwoch":   time.Wednesday,
	"donnerstag": time.Thursday,
	"freitag":    time.Friday,
	"samstag":    time.Saturday,
	"sonnabend":  time.Saturday,
	"sonntag":    time.Sunday,
}

// LookupWeekday resolves a weekday name in either language, case-insensitively.
func LookupWeekday(name string) (time.Weekday, bool) {
	wd, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]
	return wd, ok
}

// WeekdayNames returns every known weekday name, longest first so that
// regexp alternations built from it prefer the longer spelling.
func WeekdayNames() []string {
	names := make([]string, 0, len(weekdayNames))
	for name := range weekdayNames {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
	return names
}

// DaysUntil returns how many days lie between from and the next target weekday.
// The result is always in 1..7: the current weekday rolls to next week.
func DaysUntil(from, target time.Weekday) int {
	days := int(target - from)
	if days <= 0 {
		days += 7
	}
	return days
}
