package checklist

import (
	"regexp"
	"strings"
)

const (
	CheckboxUnchecked = `- [ ]`
	// "  - [x] Task name" → ["  ", "x", "Task name"]
	CheckboxPattern = `^(\s*)[-*] \[([ xX])\] (.+)$`
)

var (
	checkboxRe   = regexp.MustCompile(CheckboxPattern)
	fenceRe      = regexp.MustCompile("^\\s*```")
	inlineCodeRe = regexp.MustCompile("`[^`]+`")
)

// Service reads checkbox state out of Markdown memo bodies.
type Service interface {
	ParseCheckboxes(content string) []Checkbox
	GetStats(content string) Stats
	// IsFullyCompleted is false for content without checkboxes.
	IsFullyCompleted(content string) bool
}

type service struct{}

func New() Service {
	return service{}
}

// ParseCheckboxes returns the checkboxes of content in line order. Lines
// inside fenced code blocks and checkbox syntax inside inline code are skipped.
func (service) ParseCheckboxes(content string) []Checkbox {
	var checkboxes []Checkbox
	inFence := false

	for i, line := range strings.Split(content, "\n") {
		if fenceRe.MatchString(line) {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}

		m := checkboxRe.FindStringSubmatch(inlineCodeRe.ReplaceAllString(line, ""))
		if m == nil {
			continue
		}
		checkboxes = append(checkboxes, Checkbox{
			Line:    i,
			Indent:  m[1],
			Checked: strings.EqualFold(m[2], "x"),
			Text:    strings.TrimSpace(m[3]),
		})
	}
	return checkboxes
}

func (s service) GetStats(content string) Stats {
	var stats Stats
	for _, cb := range s.ParseCheckboxes(content) {
		stats.Total++
		if cb.Checked {
			stats.Completed++
		}
	}
	stats.Pending = stats.Total - stats.Completed
	return stats
}

func (s service) IsFullyCompleted(content string) bool {
	stats := s.GetStats(content)
	return stats.Total > 0 && stats.Pending == 0
}
