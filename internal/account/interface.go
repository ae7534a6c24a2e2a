package account

import "context"

// UseCase is the account session manager. The device holds at most one
// session at a time.
type UseCase interface {
	// SignUp registers a new account. Passwords shorter than MinPasswordLength
	// are rejected before any remote call.
	SignUp(ctx context.Context, input SignUpInput) (SignUpOutput, error)
	SignIn(ctx context.Context, input SignInInput) (Session, error)

	// SignInWithExternalProvider returns the URL the user must visit. The
	// session arrives later through CompleteExternalSignIn.
	SignInWithExternalProvider(ctx context.Context, provider string) (ExternalSignInOutput, error)
	CompleteExternalSignIn(ctx context.Context, input CallbackInput) (Session, error)

	SignOut(ctx context.Context) error

	// CurrentSession restores the session, refreshing an expired access token.
	// On remote failure it returns an anonymous session together with a
	// ServiceUnavailable error.
	CurrentSession(ctx context.Context) (Session, error)

	// Subscribe delivers SignedIn/SignedOut events until ctx is done or the
	// returned cancel func is called.
	Subscribe(ctx context.Context) (<-chan Event, func())

	Profile(ctx context.Context) (UserProfile, error)
	UpdateProfile(ctx context.Context, input ProfileInput) (UserProfile, error)
}
