package quickparse

type recurrencePattern struct {
	recurrence Recurrence
	pattern    pattern
}

var (
	recurrencePatterns = buildRecurrencePatterns()
	allDayPattern      = compile(alt(allDayWords...))
)

func buildRecurrencePatterns() []recurrencePattern {
	out := make([]recurrencePattern, 0, len(recurrenceLexicon))
	for _, rw := range recurrenceLexicon {
		out = append(out, recurrencePattern{recurrence: rw.recurrence, pattern: compile(alt(rw.words...))})
	}
	return out
}

func extractRecurrence(_ Context, text string) (Match, bool) {
	for _, rp := range recurrencePatterns {
		loc := rp.pattern.find(text)
		if loc == nil {
			continue
		}
		recurrence := rp.recurrence
		return Match{
			Residual: cut(text, loc[0], loc[1]),
			Labels:   []string{label(text, loc)},
			Apply:    func(r *Result) { r.Recurrence = recurrence },
		}, true
	}
	return Match{}, false
}

func extractAllDay(_ Context, text string) (Match, bool) {
	loc := allDayPattern.find(text)
	if loc == nil {
		return Match{}, false
	}
	return Match{
		Residual: cut(text, loc[0], loc[1]),
		Labels:   []string{label(text, loc)},
		Apply:    func(r *Result) { r.AllDay = true },
	}, true
}
