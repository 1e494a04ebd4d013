package usecase

import (
	"fmt"
	"strings"
	"time"

	"quick-entry/internal/checklist"
	"quick-entry/internal/quickadd"
)

// QuickAddTag marks every memo created here so Recent can find them.
const QuickAddTag = "#quickadd"

const (
	memoDateLayout     = "2006-01-02"
	memoDateTimeLayout = "2006-01-02 15:04"
)

// buildMemoContent renders the Markdown body for a quick-add memo. Todos
// become a checkbox line so Memos shows them as tasks.
func buildMemoContent(p quickadd.TaskPayload, loc *time.Location) string {
	var sb strings.Builder

	if p.IsTodo {
		sb.WriteString(fmt.Sprintf("%s %s\n\n", checklist.CheckboxUnchecked, p.Title))
	} else {
		sb.WriteString(fmt.Sprintf("## %s\n\n", p.Title))
	}

	if p.Due != nil {
		due := p.Due.In(loc)
		switch {
		case p.AllDay:
			sb.WriteString(fmt.Sprintf("- **Due:** %s (all day)\n", due.Format(memoDateLayout)))
		case p.HasTime:
			sb.WriteString(fmt.Sprintf("- **Due:** %s\n", due.Format(memoDateTimeLayout)))
		default:
			sb.WriteString(fmt.Sprintf("- **Due:** %s\n", due.Format(memoDateLayout)))
		}
	}
	if p.Recurrence != "" {
		sb.WriteString(fmt.Sprintf("- **Repeats:** %s\n", p.Recurrence))
	}
	if p.ReminderMinutes > 0 {
		sb.WriteString(fmt.Sprintf("- **Reminder:** %d min before\n", p.ReminderMinutes))
	}
	if p.Location != "" {
		sb.WriteString(fmt.Sprintf("- **Location:** %s\n", p.Location))
	}
	if len(p.Attendees) > 0 {
		sb.WriteString(fmt.Sprintf("- **With:** %s\n", strings.Join(p.Attendees, ", ")))
	}
	if p.VideoCall != "" {
		sb.WriteString(fmt.Sprintf("- **Video:** %s\n", p.VideoCall))
	}
	if p.Stake != nil {
		sb.WriteString(fmt.Sprintf("- **Stake:** %s €\n", p.Stake.StringFixed(2)))
	}
	if p.CalendarKey != "" {
		sb.WriteString(fmt.Sprintf("- **Calendar:** %s\n", p.CalendarKey))
	}

	return strings.TrimRight(sb.String(), "\n")
}

// memoTags returns every tag for a memo: the quick-add marker, the user's
// tags, then category, priority and todo tags.
func memoTags(p quickadd.TaskPayload) []string {
	tags := make([]string, 0, len(p.Tags)+4)
	tags = append(tags, QuickAddTag)
	for _, t := range p.Tags {
		tags = append(tags, "#"+t)
	}
	if p.Category != "" {
		tags = append(tags, "#category/"+strings.ToLower(string(p.Category)))
	}
	if p.Priority != "" {
		tags = append(tags, "#priority/"+string(p.Priority))
	}
	if p.IsTodo {
		tags = append(tags, "#todo")
	}
	return tags
}
