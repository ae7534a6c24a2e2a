package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"smartude/internal/account"
	"smartude/internal/account/repository"
)

func storedSession(expiresAt time.Time) *account.Session {
	return &account.Session{
		State:        account.StateAuthenticated,
		UserID:       "u-1",
		Email:        "a@example.com",
		AccessToken:  "old-at",
		RefreshToken: "old-rt",
		ExpiresAt:    expiresAt,
	}
}

func TestCurrentSession(t *testing.T) {
	ctx := context.Background()

	t.Run("anonymous when nothing is stored", func(t *testing.T) {
		f := newFixture()
		s, err := f.uc.CurrentSession(ctx)
		if err != nil || s.State != account.StateAnonymous {
			t.Errorf("expected anonymous, got %+v, %v", s, err)
		}
	})

	t.Run("restores a valid session without refreshing", func(t *testing.T) {
		f := newFixture()
		f.sessions.session = storedSession(testNow.Add(time.Hour))
		s, err := f.uc.CurrentSession(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.AccessToken != "old-at" || f.auth.refreshCalls != 0 {
			t.Errorf("expected stored session as is, got %+v after %d refreshes", s, f.auth.refreshCalls)
		}
	})

	t.Run("refreshes an expired session", func(t *testing.T) {
		f := newFixture()
		f.sessions.session = storedSession(testNow.Add(-time.Minute))
		s, err := f.uc.CurrentSession(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.AccessToken != "at-1" || f.auth.refreshCalls != 1 {
			t.Errorf("expected refreshed session, got %+v", s)
		}
		if f.sessions.session.RefreshToken != "rt-1" {
			t.Errorf("expected refreshed tokens to be persisted")
		}
	})

	t.Run("service unavailable keeps the stored session", func(t *testing.T) {
		f := newFixture()
		f.sessions.session = storedSession(testNow.Add(-time.Minute))
		f.auth.refreshErr = account.NewAuthError(account.ServiceUnavailable, nil)
		events, cancel := f.uc.Subscribe(ctx)
		defer cancel()

		s, err := f.uc.CurrentSession(ctx)
		if account.KindOf(err) != account.ServiceUnavailable {
			t.Errorf("expected ServiceUnavailable, got %v", err)
		}
		if s.State != account.StateAnonymous {
			t.Errorf("expected anonymous session, got %s", s.State)
		}
		if f.sessions.session == nil {
			t.Errorf("stored session should survive an outage")
		}
		expectNoEvent(t, events)
	})

	t.Run("rejected refresh signs out", func(t *testing.T) {
		f := newFixture()
		f.sessions.session = storedSession(testNow.Add(-time.Minute))
		f.auth.refreshErr = account.NewAuthError(account.InvalidCredentials, nil)
		events, cancel := f.uc.Subscribe(ctx)
		defer cancel()

		s, err := f.uc.CurrentSession(ctx)
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if s.State != account.StateAnonymous || f.sessions.session != nil {
			t.Errorf("expected session to be dropped")
		}
		if ev := waitEvent(t, events); ev.Type != account.EventSignedOut {
			t.Errorf("expected SignedOut, got %+v", ev)
		}
	})

	t.Run("valid session is confirmed remotely", func(t *testing.T) {
		f := newFixture()
		f.sessions.session = storedSession(testNow.Add(time.Hour))
		f.auth.user = &repository.RemoteUser{UserID: "u-1", Email: "new@example.com"}

		s, err := f.uc.CurrentSession(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.auth.getUserCalls != 1 || s.Email != "new@example.com" {
			t.Errorf("expected confirmed session with fresh email, got %+v after %d lookups", s, f.auth.getUserCalls)
		}
	})

	t.Run("user lookup outage is reported", func(t *testing.T) {
		f := newFixture()
		f.sessions.session = storedSession(testNow.Add(time.Hour))
		f.auth.getUserErr = account.NewAuthError(account.ServiceUnavailable, nil)
		events, cancel := f.uc.Subscribe(ctx)
		defer cancel()

		s, err := f.uc.CurrentSession(ctx)
		if account.KindOf(err) != account.ServiceUnavailable || s.State != account.StateAnonymous {
			t.Errorf("expected anonymous with ServiceUnavailable, got %+v, %v", s, err)
		}
		if f.sessions.session == nil || f.auth.refreshCalls != 0 {
			t.Errorf("stored session should be kept without refreshing")
		}
		expectNoEvent(t, events)
	})

	t.Run("rejected access token is refreshed", func(t *testing.T) {
		f := newFixture()
		f.sessions.session = storedSession(testNow.Add(time.Hour))
		f.auth.getUserErr = account.NewAuthError(account.NotAuthenticated, nil)

		s, err := f.uc.CurrentSession(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.AccessToken != "at-1" || f.auth.refreshCalls != 1 {
			t.Errorf("expected refreshed session, got %+v", s)
		}
	})

	t.Run("rejected access and refresh tokens sign out", func(t *testing.T) {
		f := newFixture()
		f.sessions.session = storedSession(testNow.Add(time.Hour))
		f.auth.getUserErr = account.NewAuthError(account.NotAuthenticated, nil)
		f.auth.refreshErr = account.NewAuthError(account.NotAuthenticated, nil)
		events, cancel := f.uc.Subscribe(ctx)
		defer cancel()

		s, err := f.uc.CurrentSession(ctx)
		if err != nil || s.State != account.StateAnonymous || f.sessions.session != nil {
			t.Errorf("expected session to be dropped, got %+v, %v", s, err)
		}
		if ev := waitEvent(t, events); ev.Type != account.EventSignedOut {
			t.Errorf("expected SignedOut, got %+v", ev)
		}
	})

	t.Run("expiry is read from the token when missing", func(t *testing.T) {
		f := newFixture()
		claims := jwt.RegisteredClaims{
			Subject:   "u-1",
			ExpiresAt: jwt.NewNumericDate(testNow.Add(-time.Minute)),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		stored := storedSession(time.Time{})
		stored.AccessToken = token
		f.sessions.session = stored

		if _, err := f.uc.CurrentSession(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.auth.refreshCalls != 1 {
			t.Errorf("expected token exp claim to trigger a refresh, got %d calls", f.auth.refreshCalls)
		}
	})
}

func TestSignOut(t *testing.T) {
	ctx := context.Background()

	t.Run("anonymous is a no-op", func(t *testing.T) {
		f := newFixture()
		events, cancel := f.uc.Subscribe(ctx)
		defer cancel()

		if err := f.uc.SignOut(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.auth.signOutCalls != 0 {
			t.Errorf("expected no remote call")
		}
		expectNoEvent(t, events)
	})

	t.Run("authenticated session is cleared", func(t *testing.T) {
		f := newFixture()
		if _, err := f.uc.SignIn(ctx, account.SignInInput{Email: "a@example.com", Password: "secret1"}); err != nil {
			t.Fatalf("SignIn: %v", err)
		}
		events, cancel := f.uc.Subscribe(ctx)
		defer cancel()

		if err := f.uc.SignOut(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ev := waitEvent(t, events); ev.Type != account.EventSignedOut || ev.UserID != "u-1" {
			t.Errorf("unexpected event: %+v", ev)
		}
		if f.sessions.session != nil {
			t.Errorf("expected stored session to be deleted")
		}
		s, _ := f.uc.CurrentSession(ctx)
		if s.State != account.StateAnonymous {
			t.Errorf("expected anonymous after sign out, got %s", s.State)
		}
	})
}

func TestSubscribe_Cancel(t *testing.T) {
	f := newFixture()
	ctx, cancelCtx := context.WithCancel(context.Background())
	events, _ := f.uc.Subscribe(ctx)
	cancelCtx()

	select {
	case _, ok := <-events:
		if ok {
			t.Errorf("expected closed channel")
		}
	case <-time.After(time.Second):
		t.Fatal("subscription was not closed on ctx cancel")
	}
}

func TestProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("requires a session", func(t *testing.T) {
		f := newFixture()
		if _, err := f.uc.Profile(ctx); account.KindOf(err) != account.NotAuthenticated {
			t.Errorf("expected NotAuthenticated, got %v", err)
		}
	})

	t.Run("created on first access and updated", func(t *testing.T) {
		f := newFixture()
		if _, err := f.uc.SignIn(ctx, account.SignInInput{Email: "a@example.com", Password: "secret1"}); err != nil {
			t.Fatalf("SignIn: %v", err)
		}

		p, err := f.uc.Profile(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != "u-1" || p.Email != "a@example.com" {
			t.Errorf("unexpected profile: %+v", p)
		}

		name := "  Ada Lovelace "
		p, err = f.uc.UpdateProfile(ctx, account.ProfileInput{FullName: &name})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.FullName != "Ada Lovelace" {
			t.Errorf("expected trimmed name, got %q", p.FullName)
		}
		if len(f.profiles.updates) != 1 || !f.profiles.updates[0].UpdatedAt.Equal(testNow) {
			t.Errorf("expected update stamped with the clock, got %+v", f.profiles.updates)
		}
	})
}
