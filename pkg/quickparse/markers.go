package quickparse

import (
	"regexp"
	"strings"
)

var (
	todoPrefixRe    = regexp.MustCompile(`(?i)^\s*(todo|√)\s`)
	todoPattern     = compile(alt(todoWords...))
	videoPattern    = compile(alt(keys(videoCallWords)...))
	calendarRe      = regexp.MustCompile(`(?:^|\s)(/(\p{L}[\p{L}\p{N}_-]*))`)
	priorityPattern = compile(alt(keys(priorityTokens)...))
)

func extractTodo(_ Context, text string) (Match, bool) {
	var start, end int
	if loc := todoPrefixRe.FindStringSubmatchIndex(text); loc != nil {
		start, end = loc[2], loc[3]
	} else if loc := todoPattern.find(text); loc != nil {
		start, end = loc[0], loc[1]
	} else {
		return Match{}, false
	}
	return Match{
		Residual: cut(text, start, end),
		Labels:   []string{text[start:end]},
		Apply:    func(r *Result) { r.IsTodo = true },
	}, true
}

func extractVideoCall(_ Context, text string) (Match, bool) {
	loc := videoPattern.find(text)
	if loc == nil {
		return Match{}, false
	}
	provider := videoCallWords[normalizeWord(text[loc[0]:loc[1]])]
	return Match{
		Residual: cut(text, loc[0], loc[1]),
		Labels:   []string{label(text, loc)},
		Apply:    func(r *Result) { r.VideoCall = provider },
	}, true
}

func extractCalendar(_ Context, text string) (Match, bool) {
	loc := calendarRe.FindStringSubmatchIndex(text)
	if loc == nil {
		return Match{}, false
	}
	key := strings.ToLower(text[loc[4]:loc[5]])
	return Match{
		Residual: cut(text, loc[2], loc[3]),
		Labels:   []string{text[loc[2]:loc[3]]},
		Apply:    func(r *Result) { r.CalendarKey = key },
	}, true
}

func extractPriority(_ Context, text string) (Match, bool) {
	loc := priorityPattern.find(text)
	if loc == nil {
		return Match{}, false
	}
	priority := priorityTokens[strings.ToLower(text[loc[0]:loc[1]])]
	return Match{
		Residual: cut(text, loc[0], loc[1]),
		Labels:   []string{text[loc[0]:loc[1]]},
		Apply:    func(r *Result) { r.Priority = priority },
	}, true
}
