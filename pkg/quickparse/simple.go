package quickparse

import (
	"strings"
	"time"
)

const duePrefix = "due:"

// ParseSimple is the token-only parser: #tag, /calendar, p1..p3 and
// due:<phrase>, where the phrase may join words with '_' or '-'
// ("due:next_monday", "due:in-3-days"). Everything else is title.
func (p *Parser) ParseSimple(input string, now time.Time) SimpleResult {
	res := SimpleResult{Tags: []string{}}
	var words []string

	for _, token := range strings.Fields(input) {
		lower := strings.ToLower(token)
		switch {
		case len(token) > 1 && token[0] == '#':
			res.Tags = append(res.Tags, token[1:])
		case len(token) > 1 && token[0] == '/':
			res.CalendarKey = lower[1:]
		case priorityTokens[lower] != "":
			res.Priority = priorityTokens[lower]
		case strings.HasPrefix(lower, duePrefix) && len(lower) > len(duePrefix):
			phrase := strings.NewReplacer("_", " ", "-", " ").Replace(lower[len(duePrefix):])
			due, err := p.dates.Parse(phrase, now)
			if err != nil {
				words = append(words, token)
				continue
			}
			res.Due = &due
		default:
			words = append(words, token)
		}
	}

	res.Title = resolveTitle(strings.Join(words, " "), input)
	return res
}
