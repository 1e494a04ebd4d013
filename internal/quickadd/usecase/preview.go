package usecase

import (
	"context"
	"time"
	"unicode/utf8"

	"quick-entry/internal/quickadd"
	"quick-entry/pkg/quickparse"
)

// Preview parses input.Text against the reference minute. Results are cached
// per (text, minute) since the parser is deterministic for both.
func (uc *implUseCase) Preview(ctx context.Context, input quickadd.PreviewInput) (quickadd.PreviewOutput, error) {
	if err := uc.checkLength(input.Text); err != nil {
		return quickadd.PreviewOutput{}, err
	}

	ref := uc.referenceTime(input.Now)
	key := cacheKey{text: input.Text, minute: ref.Unix() / 60}

	res, ok := uc.cache.Get(key)
	if !ok {
		res = uc.parser.ParseAt(input.Text, ref)
		uc.cache.Add(key, res)
	} else {
		uc.l.Debugf(ctx, "Preview: cache hit for %d runes", utf8.RuneCountInString(input.Text))
	}

	return quickadd.PreviewOutput{
		Result:        res,
		Badges:        Badges(res),
		ReferenceTime: ref,
	}, nil
}

// PreviewSimple runs the token-only parser.
func (uc *implUseCase) PreviewSimple(ctx context.Context, input quickadd.PreviewSimpleInput) (quickadd.PreviewSimpleOutput, error) {
	if err := uc.checkLength(input.Text); err != nil {
		return quickadd.PreviewSimpleOutput{}, err
	}
	return quickadd.PreviewSimpleOutput{
		Result: uc.parser.ParseSimple(input.Text, uc.referenceTime(input.Now)),
	}, nil
}

// Shortcuts returns the cheat-sheet lines.
func (uc *implUseCase) Shortcuts() []string {
	return quickparse.CheatSheet()
}

func (uc *implUseCase) referenceTime(now *time.Time) time.Time {
	ref := uc.cfg.Clock()
	if now != nil {
		ref = *now
	}
	return ref.In(uc.parser.Location()).Truncate(time.Minute)
}

func (uc *implUseCase) checkLength(text string) error {
	if uc.cfg.MaxInputLength > 0 && utf8.RuneCountInString(text) > uc.cfg.MaxInputLength {
		return quickadd.ErrInputTooLong
	}
	return nil
}
