package quickparse_test

import (
	"reflect"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"quick-entry/pkg/quickparse"
)

// Monday 2024-06-03 09:00
var refNow = time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)

func newTestParser(t *testing.T) *quickparse.Parser {
	t.Helper()
	p, err := quickparse.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser() error = %v", err)
	}
	p.SetClock(func() time.Time { return refNow })
	return p
}

func at(y int, m time.Month, d, hh, mm int) *time.Time {
	t := time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
	return &t
}

func assertDate(t *testing.T, got, want *time.Time) {
	t.Helper()
	switch {
	case want == nil && got != nil:
		t.Errorf("Date = %v, want unset", *got)
	case want != nil && got == nil:
		t.Errorf("Date unset, want %v", *want)
	case want != nil && !got.Equal(*want):
		t.Errorf("Date = %v, want %v", *got, *want)
	}
}

func TestNewParser(t *testing.T) {
	if _, err := quickparse.NewParser("Europe/Berlin"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := quickparse.NewParser("Not/AZone"); err == nil {
		t.Error("expected error for invalid timezone")
	}
}

func TestParseScenarios(t *testing.T) {
	p := newTestParser(t)

	t.Run("meeting with attendee and location", func(t *testing.T) {
		res := p.Parse("morgen 10 uhr Meeting with Max at Office")
		assertDate(t, res.Date, at(2024, 6, 4, 10, 0))
		if res.Time != "10:00" {
			t.Errorf("Time = %q", res.Time)
		}
		if !reflect.DeepEqual(res.Attendees, []string{"Max"}) {
			t.Errorf("Attendees = %v", res.Attendees)
		}
		if res.Location != "Office" {
			t.Errorf("Location = %q", res.Location)
		}
		if res.Title != "Meeting" {
			t.Errorf("Title = %q", res.Title)
		}
		if res.VideoCall != "" {
			t.Errorf("VideoCall = %q, Meeting must not read as meet", res.VideoCall)
		}
		if res.Category != quickparse.CategoryWork {
			t.Errorf("Category = %q", res.Category)
		}
	})

	t.Run("weekday with reminder and tag", func(t *testing.T) {
		res := p.Parse("freitag 14:30 Arzt reminder 15 #privat")
		assertDate(t, res.Date, at(2024, 6, 7, 14, 30))
		if res.Time != "14:30" {
			t.Errorf("Time = %q", res.Time)
		}
		if res.ReminderMinutes != 15 {
			t.Errorf("ReminderMinutes = %d", res.ReminderMinutes)
		}
		if !reflect.DeepEqual(res.Tags, []string{"privat"}) {
			t.Errorf("Tags = %v", res.Tags)
		}
		if res.Title != "Arzt" {
			t.Errorf("Title = %q", res.Title)
		}
	})

	t.Run("todo with priority and stake", func(t *testing.T) {
		res := p.Parse("todo Einkaufen heute 18 uhr p1 €10")
		if !res.IsTodo {
			t.Error("IsTodo = false")
		}
		assertDate(t, res.Date, at(2024, 6, 3, 18, 0))
		if res.Time != "18:00" {
			t.Errorf("Time = %q", res.Time)
		}
		if res.Priority != quickparse.PriorityHigh {
			t.Errorf("Priority = %q", res.Priority)
		}
		if res.Stake == nil || !res.Stake.Equal(decimal.NewFromInt(10)) {
			t.Errorf("Stake = %v", res.Stake)
		}
		if res.Title != "Einkaufen" {
			t.Errorf("Title = %q", res.Title)
		}
		if res.Category != quickparse.CategoryHousehold {
			t.Errorf("Category = %q", res.Category)
		}
	})

	t.Run("relative minutes with video call", func(t *testing.T) {
		res := p.Parse("+30 Call zoom")
		assertDate(t, res.Date, at(2024, 6, 3, 9, 30))
		if res.Time != "" {
			t.Errorf("Time = %q, want unset", res.Time)
		}
		if res.VideoCall != quickparse.VideoCallZoom {
			t.Errorf("VideoCall = %q", res.VideoCall)
		}
		if res.Title != "Call" {
			t.Errorf("Title = %q", res.Title)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		res := p.Parse("")
		want := quickparse.Result{
			Attendees:     []string{},
			Tags:          []string{},
			MatchedTokens: []string{},
		}
		if !reflect.DeepEqual(res, want) {
			t.Errorf("Parse(\"\") = %+v, want %+v", res, want)
		}
	})

	t.Run("category keyword stays in title", func(t *testing.T) {
		res := p.Parse("gym")
		if res.Category != quickparse.CategoryLeisure {
			t.Errorf("Category = %q", res.Category)
		}
		if res.Title != "gym" {
			t.Errorf("Title = %q", res.Title)
		}
	})
}

func TestParseFields(t *testing.T) {
	p := newTestParser(t)

	tests := []struct {
		name  string
		input string
		check func(t *testing.T, res quickparse.Result)
	}{
		{
			name:  "attendee list connectors",
			input: "Treffen mit Anna, Ben & Carl und Dora",
			check: func(t *testing.T, res quickparse.Result) {
				if !reflect.DeepEqual(res.Attendees, []string{"Anna", "Ben", "Carl", "Dora"}) {
					t.Errorf("Attendees = %v", res.Attendees)
				}
				if res.Title != "Treffen" {
					t.Errorf("Title = %q", res.Title)
				}
			},
		},
		{
			name:  "attendees before location",
			input: "Essen bei Oma mit Opa",
			check: func(t *testing.T, res quickparse.Result) {
				if !reflect.DeepEqual(res.Attendees, []string{"Opa"}) {
					t.Errorf("Attendees = %v", res.Attendees)
				}
				if res.Location != "Oma" {
					t.Errorf("Location = %q", res.Location)
				}
				if res.Title != "Essen" {
					t.Errorf("Title = %q", res.Title)
				}
			},
		},
		{
			name:  "location stops at clock time",
			input: "Lunch with Anna at 12:30",
			check: func(t *testing.T, res quickparse.Result) {
				if !reflect.DeepEqual(res.Attendees, []string{"Anna"}) {
					t.Errorf("Attendees = %v", res.Attendees)
				}
				if res.Location != "" {
					t.Errorf("Location = %q, want unset", res.Location)
				}
				if res.Time != "12:30" {
					t.Errorf("Time = %q", res.Time)
				}
				if res.Title != "Lunch at" {
					t.Errorf("Title = %q", res.Title)
				}
			},
		},
		{
			name:  "keyword without names",
			input: "Kaffee mit",
			check: func(t *testing.T, res quickparse.Result) {
				if len(res.Attendees) != 0 {
					t.Errorf("Attendees = %v", res.Attendees)
				}
				if res.Title != "Kaffee mit" {
					t.Errorf("Title = %q", res.Title)
				}
			},
		},
		{
			name:  "calendar key lower-cased",
			input: "/Privat Zahnarzt",
			check: func(t *testing.T, res quickparse.Result) {
				if res.CalendarKey != "privat" {
					t.Errorf("CalendarKey = %q", res.CalendarKey)
				}
				if res.Title != "Zahnarzt" {
					t.Errorf("Title = %q", res.Title)
				}
			},
		},
		{
			name:  "two word video provider",
			input: "google meet Sync",
			check: func(t *testing.T, res quickparse.Result) {
				if res.VideoCall != quickparse.VideoCallMeet {
					t.Errorf("VideoCall = %q", res.VideoCall)
				}
				if res.Title != "Sync" {
					t.Errorf("Title = %q", res.Title)
				}
			},
		},
		{
			name:  "stake with comma and euro word",
			input: "Wette 12,50 euro",
			check: func(t *testing.T, res quickparse.Result) {
				if res.Stake == nil || !res.Stake.Equal(decimal.RequireFromString("12.5")) {
					t.Errorf("Stake = %v", res.Stake)
				}
				if res.Title != "Wette" {
					t.Errorf("Title = %q", res.Title)
				}
			},
		},
		{
			name:  "stake suffix sign",
			input: "5€ Kaffee",
			check: func(t *testing.T, res quickparse.Result) {
				if res.Stake == nil || !res.Stake.Equal(decimal.NewFromInt(5)) {
					t.Errorf("Stake = %v", res.Stake)
				}
			},
		},
		{
			name:  "zero reminder ignored",
			input: "erinnerung 0 Test",
			check: func(t *testing.T, res quickparse.Result) {
				if res.ReminderMinutes != 0 {
					t.Errorf("ReminderMinutes = %d", res.ReminderMinutes)
				}
				if res.Title != "erinnerung 0 Test" {
					t.Errorf("Title = %q", res.Title)
				}
			},
		},
		{
			name:  "multiple tags keep order",
			input: "Notiz #b #a",
			check: func(t *testing.T, res quickparse.Result) {
				if !reflect.DeepEqual(res.Tags, []string{"b", "a"}) {
					t.Errorf("Tags = %v", res.Tags)
				}
			},
		},
		{
			name:  "daily recurrence",
			input: "Yoga jeden tag",
			check: func(t *testing.T, res quickparse.Result) {
				if res.Recurrence != quickparse.RecurrenceDaily {
					t.Errorf("Recurrence = %q", res.Recurrence)
				}
				if res.Title != "Yoga" {
					t.Errorf("Title = %q", res.Title)
				}
			},
		},
		{
			name:  "weekly shortcut",
			input: "w Müll",
			check: func(t *testing.T, res quickparse.Result) {
				if res.Recurrence != quickparse.RecurrenceWeekly {
					t.Errorf("Recurrence = %q", res.Recurrence)
				}
				if res.Category != quickparse.CategoryHousehold {
					t.Errorf("Category = %q", res.Category)
				}
				if res.Title != "Müll" {
					t.Errorf("Title = %q", res.Title)
				}
			},
		},
		{
			name:  "all day",
			input: "Urlaub ganztags",
			check: func(t *testing.T, res quickparse.Result) {
				if !res.AllDay {
					t.Error("AllDay = false")
				}
				if res.Category != quickparse.CategoryLeisure {
					t.Errorf("Category = %q", res.Category)
				}
			},
		},
		{
			name:  "priority low",
			input: "Aufräumen p3",
			check: func(t *testing.T, res quickparse.Result) {
				if res.Priority != quickparse.PriorityLow {
					t.Errorf("Priority = %q", res.Priority)
				}
			},
		},
		{
			name:  "leading check mark",
			input: "√ Blumen gießen",
			check: func(t *testing.T, res quickparse.Result) {
				if !res.IsTodo {
					t.Error("IsTodo = false")
				}
				if res.Title != "Blumen gießen" {
					t.Errorf("Title = %q", res.Title)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, p.Parse(tt.input))
		})
	}
}

func TestParseDates(t *testing.T) {
	p := newTestParser(t)

	tests := []struct {
		name      string
		input     string
		wantDate  *time.Time
		wantTime  string
		wantTitle string
	}{
		{"overmorrow not read as tomorrow", "übermorgen Zahnarzt", at(2024, 6, 5, 9, 0), "", "Zahnarzt"},
		{"capitalised umlaut", "Übermorgen Zahnarzt", at(2024, 6, 5, 9, 0), "", "Zahnarzt"},
		{"shortcut tomorrow", "Zahnarzt m", at(2024, 6, 4, 9, 0), "", "Zahnarzt"},
		{"same weekday rolls a week", "montag Standup", at(2024, 6, 10, 9, 0), "", "Standup"},
		{"weekday shortcut", "fr Friseur", at(2024, 6, 7, 9, 0), "", "Friseur"},
		{"in minutes", "Tee in 15 min", at(2024, 6, 3, 9, 15), "", "Tee"},
		{"one year of minutes", "Flug +525600", at(2025, 6, 3, 9, 0), "", "Flug"},
		{"oversized minute offset ignored", "+999999999999 Call", nil, "", "+999999999999 Call"},
		{"oversized in minutes ignored", "Tee in 99999999999 min", nil, "", "Tee in 99999999999 min"},
		{"european date", "Party 7.6.", at(2024, 6, 7, 0, 0), "", "Party"},
		{"european date in the past rolls over", "Steuer 1.5.", at(2025, 5, 1, 0, 0), "", "Steuer"},
		{"european date with short year", "Reise 12.6.25", at(2025, 6, 12, 0, 0), "", "Reise"},
		{"us date", "Konzert 6/7", at(2024, 6, 7, 0, 0), "", "Konzert"},
		{"invalid date ignored", "Test 31.2.", nil, "", "Test 31.2."},
		{"time without date is today", "Call 3pm", at(2024, 6, 3, 15, 0), "15:00", "Call"},
		{"midnight meridiem", "Nachtzug 12am", at(2024, 6, 3, 0, 0), "00:00", "Nachtzug"},
		{"colon time with uhr", "Termin 14:30 uhr", at(2024, 6, 3, 14, 30), "14:30", "Termin"},
		{"time on numeric date", "Party 7.6. 20 uhr", at(2024, 6, 7, 20, 0), "20:00", "Party"},
		{"out of range time ignored", "25:00 Test", nil, "", "25:00 Test"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := p.Parse(tt.input)
			assertDate(t, res.Date, tt.wantDate)
			if res.Time != tt.wantTime {
				t.Errorf("Time = %q, want %q", res.Time, tt.wantTime)
			}
			if res.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", res.Title, tt.wantTitle)
			}
		})
	}
}

func TestParseTitleFallback(t *testing.T) {
	p := newTestParser(t)

	tests := []struct {
		input string
		want  string
	}{
		{"morgen 10 uhr", "morgen 10 uhr"},
		{"p1 #x", "p1 #x"},
		{"todo ", "todo "},
		{"  mit Anna", "  mit Anna"},
		{"zoom €10", "zoom €10"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := p.Parse(tt.input).Title; got != tt.want {
				t.Errorf("Title = %q, want raw input %q", got, tt.want)
			}
		})
	}
}

func TestParseTitleNeverEmpty(t *testing.T) {
	p := newTestParser(t)
	words := []string{"h", "m", "ü", "fr", "w", "todo", "√", "zoom", "meet", "/arbeit", "mit", "Anna",
		"bei", "Büro", "erinnerung", "15", "p1", "#tag", "€10", "ganztags", "14:30", "18", "uhr",
		"+30", "in", "min", "24.12.", "12/24", "täglich", "Zahnarzt", "&", ","}

	// Each word alone, every ordered pair, and every pair followed by "Zahnarzt m".
	var inputs []string
	for _, a := range words {
		inputs = append(inputs, a)
		for _, b := range words {
			inputs = append(inputs, a+" "+b, a+" "+b+" Zahnarzt m")
		}
	}

	for _, in := range inputs {
		if res := p.Parse(in); strings.TrimSpace(res.Title) == "" {
			t.Errorf("Parse(%q) gave an empty title", in)
		}
	}
}

func TestParseWeekdayAlwaysFuture(t *testing.T) {
	p := newTestParser(t)
	names := []string{"montag", "dienstag", "mittwoch", "donnerstag", "freitag", "samstag", "sonntag",
		"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

	for day := 0; day < 7; day++ {
		now := refNow.AddDate(0, 0, day)
		for _, name := range names {
			res := p.ParseAt(name+" Termin", now)
			if res.Date == nil {
				t.Fatalf("%s from %s: no date", name, now.Weekday())
			}
			diff := res.Date.Sub(now)
			if diff < 24*time.Hour || diff > 7*24*time.Hour {
				t.Errorf("%s from %s: got %v", name, now.Weekday(), *res.Date)
			}
		}
	}
}

func TestParseTimeFormat(t *testing.T) {
	p := newTestParser(t)
	hhmm := regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

	inputs := []string{"7 uhr", "0:05", "23:59", "12pm", "1am", "9:7", "24 uhr", "13pm", "11:60"}
	for _, in := range inputs {
		res := p.Parse(in)
		if res.Time != "" && !hhmm.MatchString(res.Time) {
			t.Errorf("Parse(%q).Time = %q", in, res.Time)
		}
	}
}

func TestParseDeterministic(t *testing.T) {
	p := newTestParser(t)
	input := "todo morgen 10 uhr Review mit Anna & Ben bei Büro p2 #work €5 /arbeit teams"

	first := p.Parse(input)
	second := p.Parse(input)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("results differ:\n%+v\n%+v", first, second)
	}
}

func TestStages(t *testing.T) {
	p := newTestParser(t)
	want := []string{
		quickparse.StageTodo, quickparse.StageVideoCall, quickparse.StageCalendar,
		quickparse.StageAttendees, quickparse.StageLocation, quickparse.StageReminder,
		quickparse.StagePriority, quickparse.StageTags, quickparse.StageStake,
		quickparse.StageRecurrence, quickparse.StageAllDay, quickparse.StageDate,
		quickparse.StageTime, quickparse.StageCategory,
	}
	if got := p.Stages(); !reflect.DeepEqual(got, want) {
		t.Errorf("Stages() = %v, want %v", got, want)
	}
}
