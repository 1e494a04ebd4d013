package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"quick-entry/internal/model"
	"quick-entry/internal/quickadd"
	"quick-entry/internal/quickadd/usecase"
	"quick-entry/internal/task/repository"
	"quick-entry/pkg/gcalendar"
	"quick-entry/pkg/quickparse"
)

// Monday 2024-06-03 09:00
var refNow = time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockRepo struct {
	created   []repository.CreateTaskOptions
	createErr error
	listOpts  []repository.ListTasksOptions
	listTasks []model.Task
	listErr   error
}

func (m *mockRepo) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	if m.createErr != nil {
		return model.Task{}, m.createErr
	}
	m.created = append(m.created, opt)
	return model.Task{ID: "memos/abc", UID: "abc", MemoURL: "http://memos.local/m/abc"}, nil
}

func (m *mockRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	m.listOpts = append(m.listOpts, opt)
	return m.listTasks, m.listErr
}

type mockCalendar struct {
	created   []gcalendar.CreateEventRequest
	createErr error
	listed    []gcalendar.ListEventsRequest
	events    []gcalendar.Event
	listErr   error
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.created = append(m.created, req)
	if m.createErr != nil {
		return nil, m.createErr
	}
	return &gcalendar.Event{ID: "ev-1", HtmlLink: "https://calendar.google.com/ev-1", MeetLink: "https://meet.google.com/x"}, nil
}

func (m *mockCalendar) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	m.listed = append(m.listed, req)
	return m.events, m.listErr
}

var errBackend = errors.New("backend down")

func newUseCase(t *testing.T, repo repository.TaskRepository, cal usecase.CalendarClient, cfg usecase.Config) quickadd.UseCase {
	t.Helper()
	parser, err := quickparse.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser() error = %v", err)
	}
	if cfg.Clock == nil {
		cfg.Clock = func() time.Time { return refNow }
	}
	return usecase.New(&mockLogger{}, parser, repo, cal, cfg)
}
