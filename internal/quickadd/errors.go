package quickadd

import "errors"

// Domain-specific errors for the quick-add package.
var (
	ErrEmptyInput            = errors.New("input text is empty")
	ErrEmptyTitle            = errors.New("entry has no title")
	ErrInputTooLong          = errors.New("input text is too long")
	ErrRepositoryUnavailable = errors.New("task repository unavailable")
)
