package supabase

import (
	"context"
	"time"

	"smartude/internal/account/repository"
	"smartude/pkg/supabase"
)

func (r *implRepository) SignUp(ctx context.Context, opt repository.SignUpOptions) (repository.SignUpResult, error) {
	res, err := r.client.SignUp(ctx, opt.Email, opt.Password, opt.Metadata)
	if err != nil {
		r.l.Warnf(ctx, "%s: %v", r.dsn("SignUp"), err)
		return repository.SignUpResult{}, mapError(err)
	}

	out := repository.SignUpResult{Email: opt.Email}
	if res.User != nil {
		out.UserID = res.User.ID
		out.Email = res.User.Email
		out.Metadata = res.User.UserMetadata
	}
	if res.Session != nil {
		s := r.toRemoteSession(*res.Session)
		out.Session = &s
	}
	return out, nil
}

func (r *implRepository) SignIn(ctx context.Context, email, password string) (repository.RemoteSession, error) {
	s, err := r.client.SignInWithPassword(ctx, email, password)
	if err != nil {
		r.l.Warnf(ctx, "%s: %v", r.dsn("SignIn"), err)
		return repository.RemoteSession{}, mapError(err)
	}
	return r.toRemoteSession(*s), nil
}

func (r *implRepository) Refresh(ctx context.Context, refreshToken string) (repository.RemoteSession, error) {
	s, err := r.client.RefreshSession(ctx, refreshToken)
	if err != nil {
		r.l.Warnf(ctx, "%s: %v", r.dsn("Refresh"), err)
		return repository.RemoteSession{}, mapError(err)
	}
	return r.toRemoteSession(*s), nil
}

func (r *implRepository) NewVerifier() string {
	return r.client.GenerateVerifier()
}

func (r *implRepository) AuthorizeURL(provider, state, verifier string) string {
	return r.client.AuthorizeURL(provider, state, verifier)
}

func (r *implRepository) ExchangeCode(ctx context.Context, code, verifier string) (repository.RemoteSession, error) {
	s, err := r.client.ExchangeCodeForSession(ctx, code, verifier)
	if err != nil {
		r.l.Warnf(ctx, "%s: %v", r.dsn("ExchangeCode"), err)
		return repository.RemoteSession{}, mapError(err)
	}
	return r.toRemoteSession(*s), nil
}

func (r *implRepository) SignOut(ctx context.Context, accessToken string) error {
	if err := r.client.SignOut(ctx, accessToken); err != nil {
		r.l.Warnf(ctx, "%s: %v", r.dsn("SignOut"), err)
		return mapError(err)
	}
	return nil
}

func (r *implRepository) GetUser(ctx context.Context, accessToken string) (repository.RemoteUser, error) {
	u, err := r.client.GetUser(ctx, accessToken)
	if err != nil {
		r.l.Warnf(ctx, "%s: %v", r.dsn("GetUser"), err)
		return repository.RemoteUser{}, mapError(err)
	}
	return repository.RemoteUser{
		UserID:   u.ID,
		Email:    u.Email,
		Metadata: u.UserMetadata,
	}, nil
}

func (r *implRepository) toRemoteSession(s supabase.Session) repository.RemoteSession {
	out := repository.RemoteSession{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
	}
	switch {
	case s.ExpiresAt > 0:
		out.ExpiresAt = time.Unix(s.ExpiresAt, 0).UTC()
	case s.ExpiresIn > 0:
		out.ExpiresAt = r.now().Add(time.Duration(s.ExpiresIn) * time.Second).UTC()
	}
	if s.User != nil {
		out.UserID = s.User.ID
		out.Email = s.User.Email
		out.Metadata = s.User.UserMetadata
	}
	return out
}
