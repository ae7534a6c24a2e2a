package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"smartude/internal/account"
)

// SignInWithExternalProvider starts a PKCE sign-in with provider.
func (uc *implUseCase) SignInWithExternalProvider(ctx context.Context, provider string) (account.ExternalSignInOutput, error) {
	provider = strings.ToLower(strings.TrimSpace(provider))
	if _, ok := uc.providers[provider]; !ok {
		return account.ExternalSignInOutput{}, account.ErrProviderNotAllowed
	}

	state := uuid.NewString()
	verifier := uc.auth.NewVerifier()
	uc.pending.Add(state, verifier)

	uc.l.Debugf(ctx, "account.SignInWithExternalProvider: started %s sign-in", provider)
	return account.ExternalSignInOutput{
		Provider:    provider,
		RedirectURL: uc.auth.AuthorizeURL(provider, state, verifier),
		State:       state,
	}, nil
}

// CompleteExternalSignIn exchanges the callback code for a session. Each
// state can be completed once.
func (uc *implUseCase) CompleteExternalSignIn(ctx context.Context, input account.CallbackInput) (account.Session, error) {
	verifier, ok := uc.pending.Get(input.State)
	if !ok || input.Code == "" {
		return account.Anonymous(), account.NewAuthError(account.InvalidCredentials, nil)
	}
	uc.pending.Remove(input.State)

	rs, err := uc.auth.ExchangeCode(ctx, input.Code, verifier)
	if err != nil {
		uc.l.Warnf(ctx, "account.CompleteExternalSignIn: %v", err)
		return account.Anonymous(), err
	}
	return uc.adopt(ctx, rs), nil
}
