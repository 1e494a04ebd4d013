package quickadd

import (
	"time"

	"github.com/shopspring/decimal"

	"quick-entry/internal/checklist"
	"quick-entry/internal/model"
	"quick-entry/pkg/quickparse"
)

// PreviewInput is the input for Preview.
type PreviewInput struct {
	Text string
	Now  *time.Time // reference time; nil uses the service clock
}

// PreviewOutput is the parse result plus the badges shown under the input.
type PreviewOutput struct {
	Result        quickparse.Result
	Badges        []string
	ReferenceTime time.Time
}

// PreviewSimpleInput is the input for PreviewSimple.
type PreviewSimpleInput struct {
	Text string
	Now  *time.Time
}

// PreviewSimpleOutput is the result of the token-only parser.
type PreviewSimpleOutput struct {
	Result quickparse.SimpleResult
}

// SubmitInput is the input for Submit.
type SubmitInput struct {
	Text string
}

// TaskPayload is what gets persisted for one quick-add line.
type TaskPayload struct {
	Title           string
	Category        quickparse.Category
	Priority        quickparse.Priority
	Stake           *decimal.Decimal
	Due             *time.Time
	HasTime         bool
	AllDay          bool
	Recurrence      quickparse.Recurrence
	ReminderMinutes int
	Location        string
	Attendees       []string
	Tags            []string
	CalendarKey     string
	IsTodo          bool
	VideoCall       quickparse.VideoCall
}

// CreatedTask represents the stored entry.
type CreatedTask struct {
	MemoID       string
	MemoURL      string
	CalendarLink string // empty when no event was created
	MeetLink     string
	Title        string
}

// SubmitOutput is the result of Submit.
type SubmitOutput struct {
	// ClientRef is a placeholder id ("temp-<uuid>") optimistic UIs can use
	// until the stored entry shows up.
	ClientRef string
	Task      CreatedTask
	Payload   TaskPayload
	Result    quickparse.Result
	Badges    []string
	Conflicts []string // titles of calendar events overlapping the new one
}

// RecentInput is the input for Recent.
type RecentInput struct {
	Limit    int
	OpenOnly bool // only todos that are not ticked off yet
}

// RecentEntry is one stored quick-add memo. Done and Progress cover every
// checkbox in the memo, so sub-items added later in Memos count too.
type RecentEntry struct {
	Task     model.Task
	Title    string
	IsTodo   bool
	Done     bool
	Progress checklist.Stats
}

// RecentOutput lists stored quick-add entries, newest first.
type RecentOutput struct {
	Entries []RecentEntry
}
