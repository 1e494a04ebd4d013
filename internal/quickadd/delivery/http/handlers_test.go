package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"quick-entry/internal/checklist"
	"quick-entry/internal/middleware"
	"quick-entry/internal/model"
	"quick-entry/internal/quickadd"
	quickaddHTTP "quick-entry/internal/quickadd/delivery/http"
	"quick-entry/pkg/quickparse"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

type mockUseCase struct {
	previewIn  quickadd.PreviewInput
	submitIn   quickadd.SubmitInput
	submitSc   model.Scope
	recentIn   quickadd.RecentInput
	previewOut quickadd.PreviewOutput
	submitOut  quickadd.SubmitOutput
	recentOut  quickadd.RecentOutput
	err        error
}

func (m *mockUseCase) Preview(ctx context.Context, in quickadd.PreviewInput) (quickadd.PreviewOutput, error) {
	m.previewIn = in
	return m.previewOut, m.err
}

func (m *mockUseCase) PreviewSimple(ctx context.Context, in quickadd.PreviewSimpleInput) (quickadd.PreviewSimpleOutput, error) {
	if m.err != nil {
		return quickadd.PreviewSimpleOutput{}, m.err
	}
	return quickadd.PreviewSimpleOutput{Result: quickparse.SimpleResult{Title: in.Text, Priority: quickparse.PriorityHigh}}, nil
}

func (m *mockUseCase) Submit(ctx context.Context, sc model.Scope, in quickadd.SubmitInput) (quickadd.SubmitOutput, error) {
	m.submitSc = sc
	m.submitIn = in
	return m.submitOut, m.err
}

func (m *mockUseCase) Recent(ctx context.Context, sc model.Scope, in quickadd.RecentInput) (quickadd.RecentOutput, error) {
	m.recentIn = in
	return m.recentOut, m.err
}

func (m *mockUseCase) Shortcuts() []string {
	return []string{"h → heute", "m → morgen"}
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func setup(uc quickadd.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.New(&mockLogger{}, middleware.Config{})
	quickaddHTTP.RegisterRoutes(r.Group("/api/v1"), quickaddHTTP.New(&mockLogger{}, uc), mw)
	return r
}

func do(r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestPreview(t *testing.T) {
	date := time.Date(2024, 6, 4, 15, 0, 0, 0, time.UTC)
	stake := decimal.RequireFromString("12.5")
	uc := &mockUseCase{previewOut: quickadd.PreviewOutput{
		Result: quickparse.Result{
			Title:         "Zahnarzt",
			Date:          &date,
			Time:          "15:00",
			Stake:         &stake,
			MatchedTokens: []string{"morgen", "15:00"},
		},
		Badges: []string{"📅 Tue 04.06.2024 15:00"},
	}}
	r := setup(uc)

	w, env := do(r, http.MethodPost, "/api/v1/quick-add/preview", `{"text":"Zahnarzt morgen 15:00","now":"2024-06-03T09:00:00Z"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if uc.previewIn.Text != "Zahnarzt morgen 15:00" {
		t.Errorf("unexpected text passed: %q", uc.previewIn.Text)
	}
	if uc.previewIn.Now == nil || !uc.previewIn.Now.Equal(time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)) {
		t.Errorf("reference time not passed: %v", uc.previewIn.Now)
	}

	var data struct {
		Result struct {
			Title     string   `json:"title"`
			Time      string   `json:"time"`
			Stake     string   `json:"stake"`
			Attendees []string `json:"attendees"`
		} `json:"result"`
		Badges []string `json:"badges"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if data.Result.Title != "Zahnarzt" || data.Result.Time != "15:00" {
		t.Errorf("unexpected result: %+v", data.Result)
	}
	if data.Result.Stake != "12.50" {
		t.Errorf("expected stake 12.50, got %q", data.Result.Stake)
	}
	if data.Result.Attendees == nil {
		t.Errorf("attendees should be an empty list, not null")
	}
	if len(data.Badges) != 1 {
		t.Errorf("expected 1 badge, got %v", data.Badges)
	}
}

func TestPreviewSimple(t *testing.T) {
	r := setup(&mockUseCase{})

	w, env := do(r, http.MethodPost, "/api/v1/quick-add/preview/simple", `{"text":"Bericht p1"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(string(env.Data), `"priority":"high"`) {
		t.Errorf("priority missing in %s", env.Data)
	}
}

func TestSubmit(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc := &mockUseCase{submitOut: quickadd.SubmitOutput{
			ClientRef: "temp-1",
			Task:      quickadd.CreatedTask{MemoID: "memos/1", MemoURL: "http://memos/m/1", Title: "Miete"},
		}}
		r := setup(uc)

		w, env := do(r, http.MethodPost, "/api/v1/quick-add", `{"text":"Miete 1.7. 800€"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if uc.submitSc.Source != model.SourceHTTP {
			t.Errorf("expected http scope, got %+v", uc.submitSc)
		}
		if !strings.Contains(string(env.Data), `"client_ref":"temp-1"`) {
			t.Errorf("client ref missing in %s", env.Data)
		}
		if !strings.Contains(string(env.Data), `"conflicts":[]`) {
			t.Errorf("conflicts should be an empty list in %s", env.Data)
		}
	})

	t.Run("missing text", func(t *testing.T) {
		r := setup(&mockUseCase{})
		w, _ := do(r, http.MethodPost, "/api/v1/quick-add", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("blank text", func(t *testing.T) {
		uc := &mockUseCase{}
		r := setup(uc)
		w, _ := do(r, http.MethodPost, "/api/v1/quick-add", `{"text":"   "}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
		if uc.submitIn.Text != "" {
			t.Errorf("use case should not be called")
		}
	})

	errTests := []struct {
		err  error
		want int
	}{
		{err: quickadd.ErrEmptyInput, want: http.StatusBadRequest},
		{err: quickadd.ErrInputTooLong, want: http.StatusRequestEntityTooLarge},
		{err: quickadd.ErrEmptyTitle, want: http.StatusUnprocessableEntity},
		{err: fmt.Errorf("%w: memos down", quickadd.ErrRepositoryUnavailable), want: http.StatusServiceUnavailable},
		{err: errors.New("boom"), want: http.StatusInternalServerError},
	}
	for _, tt := range errTests {
		t.Run("maps "+tt.err.Error(), func(t *testing.T) {
			r := setup(&mockUseCase{err: tt.err})
			w, env := do(r, http.MethodPost, "/api/v1/quick-add", `{"text":"Miete"}`)
			if w.Code != tt.want {
				t.Errorf("expected %d, got %d", tt.want, w.Code)
			}
			if tt.want == http.StatusInternalServerError && strings.Contains(env.Message, "boom") {
				t.Errorf("internal error leaked: %q", env.Message)
			}
		})
	}
}

func TestRecent(t *testing.T) {
	uc := &mockUseCase{recentOut: quickadd.RecentOutput{Entries: []quickadd.RecentEntry{
		{Task: model.Task{ID: "memos/2", UID: "2", Content: "- [ ] Miete", Tags: []string{"quickadd"}}, Title: "Miete", IsTodo: true,
			Progress: checklist.Stats{Total: 1, Pending: 1}},
		{Task: model.Task{ID: "memos/1", UID: "1", Content: "## Zahnarzt"}, Title: "Zahnarzt"},
	}}}
	r := setup(uc)

	w, env := do(r, http.MethodGet, "/api/v1/quick-add/recent?limit=5&open=true", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if uc.recentIn.Limit != 5 || !uc.recentIn.OpenOnly {
		t.Errorf("unexpected input: %+v", uc.recentIn)
	}
	if !strings.Contains(string(env.Data), `"is_todo":true`) {
		t.Errorf("todo flag missing in %s", env.Data)
	}
	if !strings.Contains(string(env.Data), `"id":"memos/2"`) {
		t.Errorf("task missing in %s", env.Data)
	}
	if !strings.Contains(string(env.Data), `"progress":{"total":1,"completed":0}`) {
		t.Errorf("todo progress missing in %s", env.Data)
	}
	if strings.Count(string(env.Data), `"progress"`) != 1 {
		t.Errorf("progress must only be set for todos: %s", env.Data)
	}

	w, _ = do(r, http.MethodGet, "/api/v1/quick-add/recent?limit=abc", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for bad limit, got %d", w.Code)
	}
}

func TestShortcuts(t *testing.T) {
	r := setup(&mockUseCase{})

	w, env := do(r, http.MethodGet, "/api/v1/quick-add/shortcuts", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var data struct {
		Lines []string `json:"lines"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(data.Lines) != 2 {
		t.Errorf("expected 2 lines, got %v", data.Lines)
	}
}
