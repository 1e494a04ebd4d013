package usecase

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"quick-entry/internal/checklist"
	"quick-entry/internal/quickadd"
	"quick-entry/internal/task/repository"
	"quick-entry/pkg/gcalendar"
	pkgLog "quick-entry/pkg/log"
	"quick-entry/pkg/quickparse"
)

const (
	defaultCacheSize    = 1024
	defaultCacheTTL     = 5 * time.Minute
	defaultEventMinutes = 60
)

// CalendarClient is the part of the Google Calendar client Submit needs.
type CalendarClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

// Config tunes the use case. Zero values fall back to defaults.
type Config struct {
	CacheSize           int
	CacheTTL            time.Duration
	MaxInputLength      int               // in runes; 0 disables the check
	DefaultEventMinutes int               // length of timed events
	DefaultCalendarID   string            // used when the entry names no calendar
	Calendars           map[string]string // calendar key -> Google calendar id
	Clock               func() time.Time
}

type cacheKey struct {
	text   string
	minute int64
}

type implUseCase struct {
	l        pkgLog.Logger
	parser   *quickparse.Parser
	repo     repository.TaskRepository
	calendar CalendarClient
	todos    checklist.Service
	cache    *expirable.LRU[cacheKey, quickparse.Result]
	cfg      Config
}

// New creates a new quick-add UseCase instance. calendar may be nil.
func New(
	l pkgLog.Logger,
	parser *quickparse.Parser,
	repo repository.TaskRepository,
	calendar CalendarClient,
	cfg Config,
) quickadd.UseCase {
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = defaultCacheSize
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	if cfg.DefaultEventMinutes <= 0 {
		cfg.DefaultEventMinutes = defaultEventMinutes
	}
	if cfg.DefaultCalendarID == "" {
		cfg.DefaultCalendarID = gcalendar.PrimaryCalendarID
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}

	return &implUseCase{
		l:        l,
		parser:   parser,
		repo:     repo,
		calendar: calendar,
		todos:    checklist.New(),
		cache:    expirable.NewLRU[cacheKey, quickparse.Result](cfg.CacheSize, nil, cfg.CacheTTL),
		cfg:      cfg,
	}
}
