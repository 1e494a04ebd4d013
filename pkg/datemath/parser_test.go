package datemath_test

import (
	"testing"
	"time"

	"quick-entry/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Europe/Berlin")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024
	startOfBase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		relative string
		want     time.Time
		wantErr  bool
	}{
		{name: "Today", relative: "today", want: startOfBase},
		{name: "Heute", relative: "Heute", want: startOfBase},
		{name: "Tomorrow", relative: "tomorrow", want: startOfBase.AddDate(0, 0, 1)},
		{name: "Morgen", relative: "morgen", want: startOfBase.AddDate(0, 0, 1)},
		{name: "Übermorgen", relative: "übermorgen", want: startOfBase.AddDate(0, 0, 2)},
		{name: "Yesterday", relative: "gestern", want: startOfBase.AddDate(0, 0, -1)},
		{name: "In 3 days", relative: "in 3 days", want: startOfBase.AddDate(0, 0, 3)},
		{name: "In 2 Wochen", relative: "in 2  wochen", want: startOfBase.AddDate(0, 0, 14)},
		{name: "In 1 month", relative: "in 1 month", want: startOfBase.AddDate(0, 1, 0)},
		{name: "Invalid duration pattern", relative: "in a few days", want: baseTime, wantErr: true},
		{name: "Next Monday (from Wed)", relative: "next monday", want: startOfBase.AddDate(0, 0, 5)},
		{name: "Next Wednesday (from Wed)", relative: "next wednesday", want: startOfBase.AddDate(0, 0, 7)},
		{name: "Bare Freitag", relative: "freitag", want: startOfBase.AddDate(0, 0, 2)},
		{name: "Nächsten Mittwoch", relative: "nächsten mittwoch", want: startOfBase.AddDate(0, 0, 7)},
		{name: "Unknown phrase", relative: "some random day", want: baseTime, wantErr: true},
		{name: "Invalid Next Weekday", relative: "next funday", want: baseTime, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.relative, baseTime)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNextWeekdayNeverToday(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	monday := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)

	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		got := parser.NextWeekday(monday, wd)
		if !got.After(monday) {
			t.Errorf("%v: %v is not after %v", wd, got, monday)
		}
		if got.Sub(monday) > 7*24*time.Hour {
			t.Errorf("%v: %v is more than a week ahead", wd, got)
		}
		if got.Weekday() != wd {
			t.Errorf("got weekday %v, want %v", got.Weekday(), wd)
		}
	}

	if got := parser.NextWeekday(monday, time.Monday); !got.Equal(monday.AddDate(0, 0, 7)) {
		t.Errorf("monday on a monday should roll a full week, got %v", got)
	}
}

func TestDayMonth(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		day     int
		month   int
		year    int
		hasYear bool
		want    time.Time
		ok      bool
	}{
		{name: "later this year", day: 24, month: 12, want: time.Date(2024, 12, 24, 0, 0, 0, 0, time.UTC), ok: true},
		{name: "today stays", day: 3, month: 6, want: time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), ok: true},
		{name: "past rolls forward", day: 1, month: 3, want: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), ok: true},
		{name: "explicit past year kept", day: 1, month: 3, year: 2024, hasYear: true, want: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), ok: true},
		{name: "two digit year", day: 5, month: 1, year: 26, hasYear: true, want: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), ok: true},
		{name: "impossible day", day: 31, month: 2, ok: false},
		{name: "month out of range", day: 14, month: 30, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parser.DayMonth(base, tt.day, tt.month, tt.year, tt.hasYear)
			if ok != tt.ok {
				t.Fatalf("DayMonth() ok = %v, want %v", ok, tt.ok)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("DayMonth() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAtClock(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2024, 6, 4, 9, 17, 42, 5, time.UTC)
	want := time.Date(2024, 6, 4, 18, 0, 0, 0, time.UTC)

	if got := parser.AtClock(base, 18, 0); !got.Equal(want) {
		t.Errorf("AtClock() got = %v, want %v", got, want)
	}
}
