package repository

import (
	"context"

	"smartude/internal/account"
)

// AuthRepository is the remote identity service. Implementations return
// *account.AuthError for every failure the caller can act on.
type AuthRepository interface {
	SignUp(ctx context.Context, opt SignUpOptions) (SignUpResult, error)
	SignIn(ctx context.Context, email, password string) (RemoteSession, error)
	Refresh(ctx context.Context, refreshToken string) (RemoteSession, error)
	NewVerifier() string
	AuthorizeURL(provider, state, verifier string) string
	ExchangeCode(ctx context.Context, code, verifier string) (RemoteSession, error)
	SignOut(ctx context.Context, accessToken string) error
	// GetUser resolves an access token to the identity it was issued for.
	GetUser(ctx context.Context, accessToken string) (RemoteUser, error)
}

// ProfileRepository stores user profiles remotely.
type ProfileRepository interface {
	CreateProfile(ctx context.Context, accessToken string, profile account.UserProfile) error
	GetProfile(ctx context.Context, accessToken, userID string) (account.UserProfile, error)
	UpdateProfile(ctx context.Context, accessToken, userID string, update account.ProfileUpdate) error
}

// SessionStore remembers the session on the device across restarts.
type SessionStore interface {
	LoadSession(ctx context.Context) (account.Session, error)
	SaveSession(ctx context.Context, session account.Session) error
	DeleteSession(ctx context.Context) error
}
