package quickparse

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const amountExpr = `\d+(?:[.,]\d{1,2})?`

var (
	reminderPattern = compile(alt(reminderWords...) + `\s+(\d+)(?:\s*` + alt(minuteWords...) + `)?`)
	tagPattern      = compile(`#([\p{L}\p{N}_-]+)`)
	stakePattern    = compile(`€\s*(` + amountExpr + `)|(` + amountExpr + `)\s*(?:€|` + alt("euro", "eur") + `)`)
)

func extractReminder(_ Context, text string) (Match, bool) {
	for _, loc := range reminderPattern.findAll(text) {
		minutes, err := strconv.Atoi(group(text, loc, 1))
		if err != nil || minutes <= 0 {
			continue
		}
		return Match{
			Residual: cut(text, loc[0], loc[1]),
			Labels:   []string{label(text, loc)},
			Apply:    func(r *Result) { r.ReminderMinutes = minutes },
		}, true
	}
	return Match{}, false
}

// extractTags takes every #tag; it is the only stage that removes more than
// one span.
func extractTags(_ Context, text string) (Match, bool) {
	locs := tagPattern.findAll(text)
	if len(locs) == 0 {
		return Match{}, false
	}

	tags := make([]string, 0, len(locs))
	labels := make([]string, 0, len(locs))
	for _, loc := range locs {
		tags = append(tags, group(text, loc, 1))
		labels = append(labels, text[loc[0]:loc[1]])
	}
	residual := text
	for i := len(locs) - 1; i >= 0; i-- {
		residual = cut(residual, locs[i][0], locs[i][1])
	}
	return Match{
		Residual: residual,
		Labels:   labels,
		Apply:    func(r *Result) { r.Tags = append(r.Tags, tags...) },
	}, true
}

func extractStake(_ Context, text string) (Match, bool) {
	for _, loc := range stakePattern.findAll(text) {
		raw := group(text, loc, 1)
		if raw == "" {
			raw = group(text, loc, 2)
		}
		amount, err := decimal.NewFromString(strings.Replace(raw, ",", ".", 1))
		if err != nil {
			continue
		}
		amount = amount.Round(2)
		return Match{
			Residual: cut(text, loc[0], loc[1]),
			Labels:   []string{label(text, loc)},
			Apply:    func(r *Result) { r.Stake = &amount },
		}, true
	}
	return Match{}, false
}
