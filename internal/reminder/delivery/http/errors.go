package http

import (
	"errors"
	"net/http"

	"smartude/internal/reminder"
	pkgErrors "smartude/pkg/errors"
)

var errInvalidArrival = pkgErrors.NewHTTPError(http.StatusBadRequest, "arrival must be a date like 2026-10-01")

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, reminder.ErrCalendarDisabled):
		return pkgErrors.NewHTTPError(http.StatusNotImplemented, "calendar reminders are not configured")
	case errors.Is(err, reminder.ErrMissingArrival):
		return errInvalidArrival
	default:
		return pkgErrors.NewHTTPError(http.StatusBadGateway, "calendar request failed")
	}
}
