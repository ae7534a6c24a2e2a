package http

import (
	"net/http"

	"smartude/internal/account"
	appSync "smartude/internal/sync"
	pkgErrors "smartude/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch kind := appSync.KindOf(err); kind {
	case account.NotAuthenticated:
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, kind.Message())
	case account.ServiceUnavailable:
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, kind.Message())
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
