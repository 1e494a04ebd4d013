package quickparse

import (
	"strings"

	"quick-entry/pkg/datemath"
)

var (
	attendeePattern  = compile(alt(attendeeWords...))
	locationPattern  = compile(alt(locationWords...))
	connectorPattern = compile(alt(connectorWords...))
)

// stopPatterns end an attendee list or a location. Whatever follows one of
// them belongs to a later stage.
var stopPatterns = []pattern{
	attendeePattern,
	locationPattern,
	compile(alt(reminderWords...)),
	priorityPattern,
	compile(`#`),
	compile(`\d{1,2}:\d{2}`),
	compile(`\d{1,2}\s*(?:uhr|am|pm)`),
	compile(`\d{1,2}\.\d{1,2}\.`),
	compile(`\d{1,2}/\d{1,2}`),
	compile(`in\s+\d+\s*` + alt(minuteWords...)),
	compile(`\+\d+`),
	compile(alt(relativeDayWords()...)),
	compile(alt(datemath.WeekdayNames()...)),
	compile(`€`),
	stakePattern,
	compile(alt(recurrenceWordList()...)),
	compile(alt(allDayWords...)),
}

func relativeDayWords() []string {
	var out []string
	for _, rd := range relativeDays {
		out = append(out, rd.words...)
	}
	return out
}

func recurrenceWordList() []string {
	var out []string
	for _, rw := range recurrenceLexicon {
		out = append(out, rw.words...)
	}
	return out
}

// nextStop returns the offset of the earliest stop boundary at or after from,
// or len(text) when there is none.
func nextStop(text string, from int) int {
	stop := len(text)
	for _, p := range stopPatterns {
		if loc := p.findFrom(text, from); loc != nil && loc[0] < stop {
			stop = loc[0]
		}
	}
	return stop
}

// keywordSpan finds the first keyword of p followed by a non-empty phrase that
// runs up to the next stop boundary. It returns the span of keyword plus
// phrase, and the trimmed phrase.
func keywordSpan(p pattern, text string) (start, end int, phrase string, ok bool) {
	for from := 0; from < len(text); {
		loc := p.findFrom(text, from)
		if loc == nil {
			return 0, 0, "", false
		}
		end := nextStop(text, loc[1])
		phrase := strings.Trim(text[loc[1]:end], " \t\n,;")
		if phrase != "" {
			return loc[0], end, phrase, true
		}
		from = loc[1]
	}
	return 0, 0, "", false
}

func extractAttendees(_ Context, text string) (Match, bool) {
	start, end, phrase, ok := keywordSpan(attendeePattern, text)
	if !ok {
		return Match{}, false
	}
	names := splitNames(phrase)
	if len(names) == 0 {
		return Match{}, false
	}
	return Match{
		Residual: cut(text, start, end),
		Labels:   []string{strings.Join(strings.Fields(text[start:end]), " ")},
		Apply:    func(r *Result) { r.Attendees = names },
	}, true
}

// splitNames splits "Anna, Ben & Carl und Dora" on commas, ampersands and
// the words "und"/"and".
func splitNames(phrase string) []string {
	names := []string{}
	last := 0
	add := func(s string) {
		if name := strings.Join(strings.Fields(strings.Trim(s, " .;")), " "); name != "" {
			names = append(names, name)
		}
	}
	for _, loc := range connectorPattern.findAll(phrase) {
		add(phrase[last:loc[0]])
		last = loc[1]
	}
	add(phrase[last:])
	return names
}

func extractLocation(_ Context, text string) (Match, bool) {
	start, end, phrase, ok := keywordSpan(locationPattern, text)
	if !ok {
		return Match{}, false
	}
	location := strings.Join(strings.Fields(phrase), " ")
	return Match{
		Residual: cut(text, start, end),
		Labels:   []string{strings.Join(strings.Fields(text[start:end]), " ")},
		Apply:    func(r *Result) { r.Location = location },
	}, true
}
