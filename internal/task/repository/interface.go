package repository

import (
	"context"

	"quick-entry/internal/model"
)

// TaskRepository stores quick-add entries. Memos is the only backend.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
}
