package quickadd

import (
	"context"

	"quick-entry/internal/model"
)

// UseCase defines the business logic interface for the quick-add domain.
type UseCase interface {
	// Preview parses a line without side effects, for live feedback while typing.
	Preview(ctx context.Context, input PreviewInput) (PreviewOutput, error)

	// PreviewSimple runs the token-only parser (#tag, /calendar, p1..p3, due:).
	PreviewSimple(ctx context.Context, input PreviewSimpleInput) (PreviewSimpleOutput, error)

	// Submit parses a line, stores it in Memos and, for dated entries, creates a calendar event.
	Submit(ctx context.Context, sc model.Scope, input SubmitInput) (SubmitOutput, error)

	// Recent lists the latest submitted entries.
	Recent(ctx context.Context, sc model.Scope, input RecentInput) (RecentOutput, error)

	// Shortcuts returns the cheat-sheet lines.
	Shortcuts() []string
}
