package supabase

import (
	"context"
	"errors"
	"net/http"

	"smartude/internal/account"
	"smartude/pkg/supabase"
)

// mapError converts client errors to *account.AuthError using the structured
// error code and HTTP status only.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, supabase.ErrUnavailable) ||
		errors.Is(err, supabase.ErrNotConfigured) ||
		errors.Is(err, context.DeadlineExceeded) {
		return account.NewAuthError(account.ServiceUnavailable, err)
	}

	var apiErr *supabase.APIError
	if !errors.As(err, &apiErr) {
		return account.NewAuthError(account.ServiceUnavailable, err)
	}

	switch apiErr.Code {
	case supabase.CodeInvalidCredentials,
		supabase.CodeInvalidGrant,
		supabase.CodeFlowStateNotFound,
		supabase.CodeFlowStateExpired:
		return account.NewAuthError(account.InvalidCredentials, err)
	case supabase.CodeEmailNotConfirmed:
		return account.NewAuthError(account.EmailNotConfirmed, err)
	case supabase.CodeUserAlreadyExists, supabase.CodeEmailExists:
		return account.NewAuthError(account.DuplicateAccount, err)
	case supabase.CodeWeakPassword:
		return account.NewAuthError(account.WeakCredential, err)
	case supabase.CodeBadJWT, supabase.CodeSessionNotFound, supabase.CodeRefreshNotFound:
		return account.NewAuthError(account.NotAuthenticated, err)
	}

	switch {
	case apiErr.Temporary():
		return account.NewAuthError(account.ServiceUnavailable, err)
	case apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden:
		return account.NewAuthError(account.NotAuthenticated, err)
	default:
		return account.NewAuthError(account.ServiceUnavailable, err)
	}
}
