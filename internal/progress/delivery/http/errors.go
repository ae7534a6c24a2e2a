package http

import (
	"errors"
	"net/http"

	"smartude/internal/progress"
	pkgErrors "smartude/pkg/errors"
)

var errMissingItemID = pkgErrors.NewHTTPError(http.StatusBadRequest, "item id is required")

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, progress.ErrEmptyImport):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "import document is empty")
	case errors.Is(err, progress.ErrNothingMatched):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, "no checkbox matched a checklist item")
	case errors.Is(err, progress.ErrStorageUnavailable):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "local progress is temporarily unreadable")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
