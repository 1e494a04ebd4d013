package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Quick entry
	QuickAdd       QuickAddConfig
	Memos          MemosConfig
	Telegram       TelegramConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	Enabled bool
	PerMin  int
}

type QuickAddConfig struct {
	Timezone            string
	CacheSize           int
	CacheTTL            time.Duration
	MaxInputLength      int
	DefaultEventMinutes int
	Calendars           map[string]string // calendar key -> Google calendar id
}

type MemosConfig struct {
	URL         string
	AccessToken string
	ExternalURL string // URL for generating user-facing links (e.g., http://localhost:5230)
}

type TelegramConfig struct {
	BotToken    string
	WebhookURL  string
	SecretToken string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	// Quick add
	cfg.QuickAdd.Timezone = viper.GetString("quick_add.timezone")
	cfg.QuickAdd.CacheSize = viper.GetInt("quick_add.cache_size")
	cfg.QuickAdd.CacheTTL = viper.GetDuration("quick_add.cache_ttl")
	cfg.QuickAdd.MaxInputLength = viper.GetInt("quick_add.max_input_length")
	cfg.QuickAdd.DefaultEventMinutes = viper.GetInt("quick_add.default_event_minutes")
	cfg.QuickAdd.Calendars = normalizeCalendars(viper.GetStringMapString("quick_add.calendars"))

	// Memos
	cfg.Memos.URL = viper.GetString("memos.url")
	cfg.Memos.AccessToken = viper.GetString("memos.access_token")
	cfg.Memos.ExternalURL = viper.GetString("memos.external_url")
	// If external URL not set, default to internal URL
	if cfg.Memos.ExternalURL == "" {
		cfg.Memos.ExternalURL = cfg.Memos.URL
	}

	// Telegram
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	cfg.Telegram.SecretToken = viper.GetString("telegram.secret_token")

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.per_min", 120)

	viper.SetDefault("quick_add.timezone", "Europe/Berlin")
	viper.SetDefault("quick_add.cache_size", 1024)
	viper.SetDefault("quick_add.cache_ttl", "5m")
	viper.SetDefault("quick_add.max_input_length", 500)
	viper.SetDefault("quick_add.default_event_minutes", 60)

	viper.SetDefault("google_calendar.calendar_id", "primary")
}

func (c *Config) validate() error {
	if c.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive, got %d", c.HTTPServer.Port)
	}
	if _, err := time.LoadLocation(c.QuickAdd.Timezone); err != nil {
		return fmt.Errorf("quick_add.timezone %q: %w", c.QuickAdd.Timezone, err)
	}
	if c.RateLimit.Enabled && c.RateLimit.PerMin <= 0 {
		return fmt.Errorf("rate_limit.per_min must be positive when rate limiting is enabled")
	}
	return nil
}

// normalizeCalendars lower-cases keys and drops a leading "/", matching how
// calendar keys are parsed from input.
func normalizeCalendars(raw map[string]string) map[string]string {
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		k = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(k), "/"))
		if k == "" || v == "" {
			continue
		}
		out[k] = v
	}
	return out
}
