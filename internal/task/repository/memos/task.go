package memos

import (
	"context"
	"fmt"
	"strings"

	"quick-entry/internal/model"
	"quick-entry/internal/task/repository"
	pkgLog "quick-entry/pkg/log"
)

const (
	defaultVisibility = "PRIVATE"
	defaultListLimit  = 20
)

type implRepository struct {
	client      *Client
	memoBaseURL string // e.g. "http://localhost:5230" for deep link generation
	l           pkgLog.Logger
}

// New creates a new Memos repository.
func New(client *Client, memoBaseURL string, l pkgLog.Logger) repository.TaskRepository {
	return &implRepository{
		client:      client,
		memoBaseURL: strings.TrimRight(memoBaseURL, "/"),
		l:           l,
	}
}

func (r *implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	visibility := opt.Visibility
	if visibility == "" {
		visibility = defaultVisibility
	}

	memo, err := r.client.CreateMemo(ctx, CreateMemoRequest{
		Content:    buildMarkdownContent(opt),
		Visibility: visibility,
	})
	if err != nil {
		r.l.Errorf(ctx, "memos repository: failed to create memo: %v", err)
		return model.Task{}, err
	}

	return r.memoToTask(memo), nil
}

func (r *implRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	limit := opt.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	memos, err := r.client.ListMemos(ctx, strings.TrimPrefix(opt.Tag, "#"), limit)
	if err != nil {
		r.l.Errorf(ctx, "memos repository: failed to list memos: %v", err)
		return nil, err
	}

	tasks := make([]model.Task, 0, len(memos))
	for i := range memos {
		tasks = append(tasks, r.memoToTask(&memos[i]))
	}
	return tasks, nil
}

// buildMarkdownContent appends the tag line Memos indexes. Tags are
// normalised to a leading '#' and de-duplicated, first occurrence wins.
func buildMarkdownContent(opt repository.CreateTaskOptions) string {
	seen := make(map[string]bool, len(opt.Tags))
	tags := make([]string, 0, len(opt.Tags))
	for _, tag := range opt.Tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || tag == "#" {
			continue
		}
		if !strings.HasPrefix(tag, "#") {
			tag = "#" + tag
		}
		if seen[strings.ToLower(tag)] {
			continue
		}
		seen[strings.ToLower(tag)] = true
		tags = append(tags, tag)
	}

	var sb strings.Builder
	sb.WriteString(opt.Content)
	if len(tags) > 0 {
		sb.WriteString("\n\n")
		sb.WriteString(strings.Join(tags, " "))
	}
	return sb.String()
}

// memoToTask converts a Memos API Memo object to the internal model.Task.
func (r *implRepository) memoToTask(m *Memo) model.Task {
	uid := m.UID
	// Name format is "memos/{uid}" from the Memos v1 API
	if uid == "" {
		if _, after, ok := strings.Cut(m.Name, "/"); ok {
			uid = after
		}
	}

	memoURL := ""
	if uid != "" && r.memoBaseURL != "" {
		memoURL = fmt.Sprintf("%s/m/%s", r.memoBaseURL, uid)
	}

	return model.Task{
		ID:         m.Name,
		UID:        uid,
		Content:    m.Content,
		Tags:       m.Tags,
		MemoURL:    memoURL,
		Visibility: m.Visibility,
		CreateTime: m.CreateTime,
		UpdateTime: m.UpdateTime,
	}
}
