package config

import (
	"reflect"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTPServer.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.HTTPServer.Port)
	}
	if cfg.QuickAdd.Timezone != "Europe/Berlin" {
		t.Errorf("Timezone = %q", cfg.QuickAdd.Timezone)
	}
	if cfg.QuickAdd.CacheTTL != 5*time.Minute {
		t.Errorf("CacheTTL = %v, want 5m", cfg.QuickAdd.CacheTTL)
	}
	if cfg.GoogleCalendar.CalendarID != "primary" {
		t.Errorf("CalendarID = %q", cfg.GoogleCalendar.CalendarID)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		t.Setenv("MEMOS_URL", "http://memos.test")
		t.Setenv("TELEGRAM_SECRET_TOKEN", "s3cret")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Memos.URL != "http://memos.test" || cfg.Memos.ExternalURL != "http://memos.test" {
			t.Errorf("unexpected memos config: %+v", cfg.Memos)
		}
		if cfg.Telegram.SecretToken != "s3cret" {
			t.Errorf("SecretToken = %q", cfg.Telegram.SecretToken)
		}
	})

	t.Run("bad timezone", func(t *testing.T) {
		t.Setenv("QUICK_ADD_TIMEZONE", "Mars/Olympus")

		if _, err := Load(); err == nil {
			t.Fatal("expected an error for an unknown timezone")
		}
	})
}

func TestNormalizeCalendars(t *testing.T) {
	got := normalizeCalendars(map[string]string{
		"/Arbeit": "work@group.calendar.google.com",
		"privat":  "me@gmail.com",
		"leer":    "",
	})
	want := map[string]string{
		"arbeit": "work@group.calendar.google.com",
		"privat": "me@gmail.com",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("normalizeCalendars = %v, want %v", got, want)
	}
}
