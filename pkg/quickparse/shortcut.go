package quickparse

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

var shortcutPattern = compile(alt(keys(shortcuts)...))

// ExpandShortcuts rewrites whole-word abbreviations ("h", "m", "fr", ...)
// into their canonical words. Words are bounded the same way as every other
// keyword, so "(m)" and "h/m" expand while "Mode" and "I'm" do not.
// Applying it twice yields the same text as applying it once.
func ExpandShortcuts(input string) string {
	locs := shortcutPattern.findAll(input)
	if len(locs) == 0 {
		return input
	}

	var b strings.Builder
	b.Grow(len(input))
	last := 0
	for _, loc := range locs {
		if embedded(input, loc[0], loc[1]) {
			continue
		}
		b.WriteString(input[last:loc[0]])
		b.WriteString(shortcuts[strings.ToLower(input[loc[0]:loc[1]])])
		last = loc[1]
	}
	b.WriteString(input[last:])
	return b.String()
}

// embedded reports whether s[start:end] belongs to a larger token such as
// an address ("a@m.de"), a link or a contraction ("I'm").
func embedded(s string, start, end int) bool {
	if isLink(enclosingToken(s, start, end)) {
		return true
	}
	if start > 0 {
		prev, size := utf8.DecodeLastRuneInString(s[:start])
		if prev == '@' {
			return true
		}
		if isJoiner(prev) && start > size {
			before, _ := utf8.DecodeLastRuneInString(s[:start-size])
			if isWordRune(before) {
				return true
			}
		}
	}
	if end < len(s) {
		next, size := utf8.DecodeRuneInString(s[end:])
		if next == '@' {
			return true
		}
		if isJoiner(next) && end+size < len(s) {
			after, _ := utf8.DecodeRuneInString(s[end+size:])
			if isWordRune(after) {
				return true
			}
		}
	}
	return false
}

func isJoiner(r rune) bool {
	return r == '.' || r == '\'' || r == '’'
}

// enclosingToken returns the whitespace-delimited token around s[start:end].
func enclosingToken(s string, start, end int) string {
	from, to := 0, len(s)
	if i := strings.LastIndexFunc(s[:start], unicode.IsSpace); i >= 0 {
		_, size := utf8.DecodeRuneInString(s[i:])
		from = i + size
	}
	if i := strings.IndexFunc(s[end:], unicode.IsSpace); i >= 0 {
		to = end + i
	}
	return s[from:to]
}

func isLink(token string) bool {
	lower := strings.ToLower(token)
	return strings.Contains(lower, "://") || strings.HasPrefix(lower, "www.")
}
