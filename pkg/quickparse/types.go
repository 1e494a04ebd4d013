package quickparse

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category is the life area an entry belongs to.
type Category string

const (
	CategoryHousehold Category = "Household"
	CategoryFinance   Category = "Finance"
	CategoryWork      Category = "Work"
	CategoryLeisure   Category = "Leisure"
)

// Priority is the p1/p2/p3 level.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Recurrence is how often an entry repeats.
type Recurrence string

const (
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
)

// VideoCall is the conferencing provider an entry asks for.
type VideoCall string

const (
	VideoCallZoom  VideoCall = "zoom"
	VideoCallMeet  VideoCall = "meet"
	VideoCallTeams VideoCall = "teams"
)

// Result is everything recognised in one quick-entry line.
// Zero values mean "not set"; Date and Stake are pointers because their zero
// value is a legitimate amount or instant.
type Result struct {
	Title           string
	Date            *time.Time
	Time            string // "HH:MM"
	AllDay          bool
	Category        Category
	Priority        Priority
	Stake           *decimal.Decimal
	ReminderMinutes int
	Location        string
	Attendees       []string
	Recurrence      Recurrence
	Tags            []string
	CalendarKey     string
	IsTodo          bool
	VideoCall       VideoCall

	// MatchedTokens are preview labels, in the order the stages matched them.
	MatchedTokens []string
}

func newResult() Result {
	return Result{
		Attendees:     []string{},
		Tags:          []string{},
		MatchedTokens: []string{},
	}
}

// SimpleResult is the output of the token-only sibling parser.
type SimpleResult struct {
	Title       string
	Tags        []string
	CalendarKey string
	Priority    Priority
	Due         *time.Time
}
