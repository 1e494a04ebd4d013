package quickparse

import "strings"

// resolveTitle collapses the residual's whitespace. A residual with nothing
// left falls back to the raw input so an entry never loses its text.
func resolveTitle(residual, raw string) string {
	if title := strings.Join(strings.Fields(residual), " "); title != "" {
		return title
	}
	return raw
}
