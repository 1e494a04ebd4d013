package quickparse

import (
	"time"

	"quick-entry/pkg/datemath"
)

// Context is what a stage may read besides the residual text.
type Context struct {
	Now   time.Time
	Dates *datemath.Parser
}

// Match is the outcome of a successful stage: the residual with the matched
// span removed, the preview labels, and the mutation to apply to the result.
type Match struct {
	Residual string
	Labels   []string
	Apply    func(*Result)
}

// Stage recognises one kind of field. Extract reports false when nothing
// matched; the residual is then passed on unchanged.
type Stage struct {
	Name    string
	Extract func(ctx Context, text string) (Match, bool)
}

const (
	StageTodo       = "todo"
	StageVideoCall  = "video_call"
	StageCalendar   = "calendar"
	StageAttendees  = "attendees"
	StageLocation   = "location"
	StageReminder   = "reminder"
	StagePriority   = "priority"
	StageTags       = "tags"
	StageStake      = "stake"
	StageRecurrence = "recurrence"
	StageAllDay     = "all_day"
	StageDate       = "date"
	StageTime       = "time"
	StageCategory   = "category"
)

// DefaultStages returns the extractor chain in the order it must run.
// Earlier stages remove text later stages would otherwise misread, e.g. the
// reminder "15" before the time stage, and dates before clock times.
func DefaultStages() []Stage {
	return []Stage{
		{Name: StageTodo, Extract: extractTodo},
		{Name: StageVideoCall, Extract: extractVideoCall},
		{Name: StageCalendar, Extract: extractCalendar},
		{Name: StageAttendees, Extract: extractAttendees},
		{Name: StageLocation, Extract: extractLocation},
		{Name: StageReminder, Extract: extractReminder},
		{Name: StagePriority, Extract: extractPriority},
		{Name: StageTags, Extract: extractTags},
		{Name: StageStake, Extract: extractStake},
		{Name: StageRecurrence, Extract: extractRecurrence},
		{Name: StageAllDay, Extract: extractAllDay},
		{Name: StageDate, Extract: extractDate},
		{Name: StageTime, Extract: extractTime},
		{Name: StageCategory, Extract: extractCategory},
	}
}
