package account

import (
	"errors"
	"fmt"
)

// Kind classifies account failures.
type Kind int

const (
	KindUnknown Kind = iota
	InvalidCredentials
	DuplicateAccount
	EmailNotConfirmed
	WeakCredential
	ServiceUnavailable
	NotAuthenticated
)

func (k Kind) String() string {
	switch k {
	case InvalidCredentials:
		return "invalid_credentials"
	case DuplicateAccount:
		return "duplicate_account"
	case EmailNotConfirmed:
		return "email_not_confirmed"
	case WeakCredential:
		return "weak_credential"
	case ServiceUnavailable:
		return "service_unavailable"
	case NotAuthenticated:
		return "not_authenticated"
	default:
		return "unknown"
	}
}

// Message is the text shown to the user for k.
func (k Kind) Message() string {
	switch k {
	case InvalidCredentials:
		return "Invalid email or password. Please check your credentials."
	case DuplicateAccount:
		return "An account with this email already exists. Try signing in instead."
	case EmailNotConfirmed:
		return "Please check your email and click the confirmation link."
	case WeakCredential:
		return fmt.Sprintf("Password must be at least %d characters", MinPasswordLength)
	case ServiceUnavailable:
		return "The account service is temporarily unavailable. Please try again later."
	case NotAuthenticated:
		return "Please sign in first."
	default:
		return "Something went wrong. Please try again."
	}
}

// AuthError is returned by every UseCase operation that fails.
// Error() never includes the remote service's own message.
type AuthError struct {
	Kind Kind
	Err  error
}

// NewAuthError wraps cause (may be nil) with kind.
func NewAuthError(kind Kind, cause error) *AuthError {
	return &AuthError{Kind: kind, Err: cause}
}

func (e *AuthError) Error() string {
	return e.Kind.Message()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// Is matches another *AuthError of the same Kind.
func (e *AuthError) Is(target error) bool {
	t, ok := target.(*AuthError)
	return ok && t.Kind == e.Kind
}

// KindOf returns the Kind carried by err, or KindUnknown.
func KindOf(err error) Kind {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr.Kind
	}
	return KindUnknown
}

var (
	ErrProviderNotAllowed = errors.New("external provider is not enabled")
	ErrEmptyCredentials   = errors.New("email and password are required")
)
