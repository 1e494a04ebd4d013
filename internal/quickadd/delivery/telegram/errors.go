package telegram

import (
	"errors"

	"quick-entry/internal/quickadd"
)

// errorMessage returns a user-facing error string for the given error.
func errorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, quickadd.ErrEmptyInput), errors.Is(err, quickadd.ErrEmptyTitle):
		return "⚠️ Da steht nichts drin. Schick mir z.B. „Zahnarzt morgen 15 uhr“."
	case errors.Is(err, quickadd.ErrInputTooLong):
		return "⚠️ Der Text ist zu lang für einen Eintrag."
	case errors.Is(err, quickadd.ErrRepositoryUnavailable):
		return "⚠️ Memos ist gerade nicht erreichbar. Bitte später nochmal versuchen."
	default:
		return "⚠️ Da ist etwas schiefgelaufen. Bitte nochmal versuchen."
	}
}
