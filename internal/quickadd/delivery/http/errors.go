package http

import (
	"errors"
	"net/http"

	"quick-entry/internal/quickadd"
	pkgErrors "quick-entry/pkg/errors"
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
// Unknown errors become a plain 500 so internals never leak.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, quickadd.ErrEmptyInput):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "text is required")
	case errors.Is(err, quickadd.ErrInputTooLong):
		return pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, "text is too long")
	case errors.Is(err, quickadd.ErrEmptyTitle):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, "entry has no title")
	case errors.Is(err, quickadd.ErrRepositoryUnavailable):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "task storage is unavailable")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
