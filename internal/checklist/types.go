package checklist

// Checkbox is one "- [ ] text" or "- [x] text" line of a memo.
type Checkbox struct {
	Line    int    // zero-based line number in the content
	Indent  string // leading whitespace
	Checked bool
	Text    string
}

// Stats is the checkbox progress of a memo.
type Stats struct {
	Total     int
	Completed int
	Pending   int
}
