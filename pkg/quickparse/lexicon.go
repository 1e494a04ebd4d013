package quickparse

import (
	"regexp"
	"sort"
	"strings"
)

// shortcuts are whole-token abbreviations rewritten before any stage runs.
// Targets are never shortcuts themselves, which keeps expansion idempotent.
var shortcuts = map[string]string{
	"h":  "today",
	"m":  "tomorrow",
	"ü":  "overmorrow",
	"mo": "monday",
	"di": "tuesday",
	"mi": "wednesday",
	"do": "thursday",
	"fr": "friday",
	"sa": "saturday",
	"so": "sunday",
	"f":  "friday",
	"w":  "weekly",
}

var (
	todoWords      = []string{"todo", "task", "aufgabe", "√"}
	attendeeWords  = []string{"with", "mit"}
	locationWords  = []string{"at", "bei"}
	reminderWords  = []string{"reminder", "erinnerung"}
	connectorWords = []string{"und", "and", "&", ","}
	minuteWords    = []string{"minuten", "minutes", "minute", "mins", "min"}
	allDayWords    = []string{"ganztags", "ganztägig", "all day", "all-day", "allday"}
)

var videoCallWords = map[string]VideoCall{
	"zoom":            VideoCallZoom,
	"google meet":     VideoCallMeet,
	"meet":            VideoCallMeet,
	"microsoft teams": VideoCallTeams,
	"teams":           VideoCallTeams,
}

var priorityTokens = map[string]Priority{
	"p1": PriorityHigh,
	"p2": PriorityMedium,
	"p3": PriorityLow,
}

type recurrenceWords struct {
	recurrence Recurrence
	words      []string
}

var recurrenceLexicon = []recurrenceWords{
	{RecurrenceDaily, []string{"täglich", "daily", "jeden tag", "every day", "everyday"}},
	{RecurrenceWeekly, []string{"wöchentlich", "weekly", "jede woche", "every week"}},
	{RecurrenceMonthly, []string{"monatlich", "monthly", "jeden monat", "every month"}},
}

type relativeDay struct {
	days  int
	words []string
}

var relativeDays = []relativeDay{
	{0, []string{"heute", "today"}},
	{1, []string{"morgen", "tomorrow"}},
	{2, []string{"übermorgen", "overmorrow"}},
}

type categoryWords struct {
	category Category
	words    []string
}

// categoryLexicon is checked in order; the first category with a keyword in
// the text wins.
var categoryLexicon = []categoryWords{
	{CategoryHousehold, []string{
		"haushalt", "household", "putzen", "cleaning", "einkaufen", "einkauf", "groceries",
		"shopping", "wäsche", "laundry", "kochen", "cooking", "müll", "trash", "aufräumen",
		"staubsaugen", "abwasch", "dishes",
	}},
	{CategoryFinance, []string{
		"finanzen", "finance", "rechnung", "bill", "bills", "steuer", "steuern", "tax", "taxes",
		"bank", "budget", "miete", "rent", "überweisung", "invoice", "zahlung", "payment",
		"versicherung", "insurance",
	}},
	{CategoryWork, []string{
		"arbeit", "work", "meeting", "büro", "office", "projekt", "project", "kunde", "client",
		"präsentation", "presentation", "deadline", "call", "bericht", "report", "besprechung",
	}},
	{CategoryLeisure, []string{
		"freizeit", "leisure", "gym", "sport", "fitness", "training", "workout", "kino",
		"movie", "cinema", "lesen", "reading", "urlaub", "vacation", "party", "konzert",
		"concert", "laufen", "running", "joggen", "schwimmen", "swimming",
	}},
}

// alt builds a regexp alternation from words, longest first so that
// "google meet" is preferred over "meet".
func alt(words ...string) string {
	sorted := append([]string(nil), words...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i]) > len(sorted[j])
	})
	quoted := make([]string, len(sorted))
	for i, w := range sorted {
		quoted[i] = strings.ReplaceAll(regexp.QuoteMeta(w), " ", `\s+`)
	}
	return "(?:" + strings.Join(quoted, "|") + ")"
}

func keys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// normalizeWord lowercases and folds inner whitespace so multi-word keywords
// can be looked up after a match.
func normalizeWord(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
