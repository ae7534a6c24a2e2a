package http

import (
	"errors"
	"net/http"

	"smartude/internal/account"
	pkgErrors "smartude/pkg/errors"
)

var (
	errPasswordMismatch = pkgErrors.NewHTTPError(http.StatusBadRequest, "Passwords do not match")
	errProviderFailed   = pkgErrors.NewHTTPError(http.StatusBadRequest, "External sign-in was cancelled or failed")
)

// mapError translates account errors into HTTP errors. Messages come from
// account.Kind, never from the remote service.
func (h *handler) mapError(err error) error {
	if errors.Is(err, account.ErrProviderNotAllowed) {
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "This sign-in provider is not available")
	}

	kind := account.KindOf(err)
	switch kind {
	case account.InvalidCredentials, account.NotAuthenticated:
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, kind.Message())
	case account.EmailNotConfirmed:
		return pkgErrors.NewHTTPError(http.StatusForbidden, kind.Message())
	case account.DuplicateAccount:
		return pkgErrors.NewHTTPError(http.StatusConflict, kind.Message())
	case account.WeakCredential:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, kind.Message())
	case account.ServiceUnavailable:
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, kind.Message())
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, kind.Message())
	}
}
