package quickparse_test

import (
	"reflect"
	"testing"
	"time"

	"quick-entry/pkg/quickparse"
)

func TestParseSimple(t *testing.T) {
	p := newTestParser(t)

	res := p.ParseSimple("Rechnung zahlen #finanzen /privat p2 due:next_friday", refNow)
	if res.Title != "Rechnung zahlen" {
		t.Errorf("Title = %q", res.Title)
	}
	if !reflect.DeepEqual(res.Tags, []string{"finanzen"}) {
		t.Errorf("Tags = %v", res.Tags)
	}
	if res.CalendarKey != "privat" {
		t.Errorf("CalendarKey = %q", res.CalendarKey)
	}
	if res.Priority != quickparse.PriorityMedium {
		t.Errorf("Priority = %q", res.Priority)
	}
	want := time.Date(2024, 6, 7, 0, 0, 0, 0, time.UTC)
	if res.Due == nil || !res.Due.Equal(want) {
		t.Errorf("Due = %v, want %v", res.Due, want)
	}
}

func TestParseSimpleUnknownDueStaysInTitle(t *testing.T) {
	p := newTestParser(t)

	res := p.ParseSimple("Lesen due:irgendwann", refNow)
	if res.Due != nil {
		t.Errorf("Due = %v, want unset", res.Due)
	}
	if res.Title != "Lesen due:irgendwann" {
		t.Errorf("Title = %q", res.Title)
	}
}

func TestCheatSheet(t *testing.T) {
	sheet := quickparse.CheatSheet()
	if len(sheet) == 0 {
		t.Fatal("empty cheat sheet")
	}
	sheet[0] = "changed"
	if quickparse.CheatSheet()[0] == "changed" {
		t.Error("CheatSheet() exposes its backing slice")
	}
}
