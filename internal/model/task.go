package model

import "strings"

// Task is a quick-add entry as stored in Memos. Content is the Markdown body
// written on submit: a "## title" heading for events or a "- [ ] title"
// checkbox for todos, followed by a detail list.
type Task struct {
	ID         string   // memo resource name, "memos/<uid>"
	UID        string   // short id used in web links
	Content    string   // Markdown body
	Tags       []string // without the leading '#', "quickadd" included
	MemoURL    string   // link into the Memos web UI, empty without an external URL
	Visibility string   // "PRIVATE" or "PUBLIC"
	CreateTime string   // RFC3339, as reported by Memos
	UpdateTime string   // RFC3339, as reported by Memos
}

// Headline returns the first non-blank line of the memo body.
func (t Task) Headline() string {
	for _, line := range strings.Split(t.Content, "\n") {
		if strings.TrimSpace(line) != "" {
			return line
		}
	}
	return ""
}
