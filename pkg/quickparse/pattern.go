package quickparse

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// pattern is a case-insensitive regexp whose matches must sit on word
// boundaries. RE2's \b only knows ASCII, so "morgen" would be found inside
// "übermorgen"; the boundary is checked here against Unicode letters instead.
// Edges of a match that are not word runes (€, #, +, √) need no boundary.
type pattern struct {
	re *regexp.Regexp
}

func compile(expr string) pattern {
	return pattern{re: regexp.MustCompile(`(?i)` + expr)}
}

// find returns the submatch indexes of the leftmost bounded match, or nil.
func (p pattern) find(s string) []int {
	return p.findFrom(s, 0)
}

// findFrom is find restricted to matches starting at or after from.
// A rejected candidate does not hide a later valid one.
func (p pattern) findFrom(s string, from int) []int {
	for from <= len(s) {
		loc := p.re.FindStringSubmatchIndex(s[from:])
		if loc == nil {
			return nil
		}
		for i := range loc {
			if loc[i] >= 0 {
				loc[i] += from
			}
		}
		if loc[1] > loc[0] && bounded(s, loc[0], loc[1]) {
			return loc
		}
		if loc[0] >= len(s) {
			return nil
		}
		_, size := utf8.DecodeRuneInString(s[loc[0]:])
		from = loc[0] + size
	}
	return nil
}

// findAll returns every non-overlapping bounded match.
func (p pattern) findAll(s string) [][]int {
	var out [][]int
	for from := 0; from < len(s); {
		loc := p.findFrom(s, from)
		if loc == nil {
			break
		}
		out = append(out, loc)
		from = loc[1]
	}
	return out
}

func bounded(s string, start, end int) bool {
	first, _ := utf8.DecodeRuneInString(s[start:])
	if isWordRune(first) && start > 0 {
		prev, _ := utf8.DecodeLastRuneInString(s[:start])
		if isWordRune(prev) {
			return false
		}
	}
	last, _ := utf8.DecodeLastRuneInString(s[:end])
	if isWordRune(last) && end < len(s) {
		next, _ := utf8.DecodeRuneInString(s[end:])
		if isWordRune(next) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// cut removes s[start:end], leaving a single space so neighbouring words
// never fuse.
func cut(s string, start, end int) string {
	return s[:start] + " " + s[end:]
}

// group returns submatch i of loc, or "" when it did not participate.
func group(s string, loc []int, i int) string {
	if 2*i+1 >= len(loc) || loc[2*i] < 0 {
		return ""
	}
	return s[loc[2*i]:loc[2*i+1]]
}

func label(s string, loc []int) string {
	return strings.Join(strings.Fields(s[loc[0]:loc[1]]), " ")
}
