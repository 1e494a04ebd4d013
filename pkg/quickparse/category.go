package quickparse

type categoryPattern struct {
	category Category
	pattern  pattern
}

var categoryPatterns = buildCategoryPatterns()

func buildCategoryPatterns() []categoryPattern {
	out := make([]categoryPattern, 0, len(categoryLexicon))
	for _, cw := range categoryLexicon {
		out = append(out, categoryPattern{category: cw.category, pattern: compile(alt(cw.words...))})
	}
	return out
}

// extractCategory classifies the remaining text. The keyword is descriptive,
// so it stays in the residual and ends up in the title.
func extractCategory(_ Context, text string) (Match, bool) {
	for _, cp := range categoryPatterns {
		loc := cp.pattern.find(text)
		if loc == nil {
			continue
		}
		category := cp.category
		return Match{
			Residual: text,
			Labels:   []string{string(category)},
			Apply:    func(r *Result) { r.Category = category },
		}, true
	}
	return Match{}, false
}
