package usecase

import (
	"context"
	"fmt"
	"strings"

	"quick-entry/internal/model"
	"quick-entry/internal/quickadd"
	"quick-entry/internal/task/repository"
)

const (
	defaultRecentLimit = 10
	maxRecentLimit     = 50
)

// Recent lists the newest memos carrying the quick-add tag.
func (uc *implUseCase) Recent(ctx context.Context, sc model.Scope, input quickadd.RecentInput) (quickadd.RecentOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}

	tasks, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		Tag:   strings.TrimPrefix(QuickAddTag, "#"),
		Limit: limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "Recent: user=%s list failed: %v", sc.UserID, err)
		return quickadd.RecentOutput{}, fmt.Errorf("%w: %v", quickadd.ErrRepositoryUnavailable, err)
	}

	entries := make([]quickadd.RecentEntry, 0, len(tasks))
	for _, t := range tasks {
		e := uc.recentEntry(t)
		if input.OpenOnly && (!e.IsTodo || e.Done) {
			continue
		}
		entries = append(entries, e)
	}

	return quickadd.RecentOutput{Entries: entries}, nil
}

// recentEntry reads title and todo state back from a memo body written by
// buildMemoContent: a checkbox or "## " heading on the first line.
func (uc *implUseCase) recentEntry(t model.Task) quickadd.RecentEntry {
	e := quickadd.RecentEntry{Task: t}

	first := t.Headline()
	if boxes := uc.todos.ParseCheckboxes(first); len(boxes) == 1 {
		e.IsTodo = true
		e.Title = boxes[0].Text
		e.Done = uc.todos.IsFullyCompleted(t.Content)
		e.Progress = uc.todos.GetStats(t.Content)
		return e
	}
	e.Title = strings.TrimSpace(strings.TrimLeft(first, "#"))
	return e
}
