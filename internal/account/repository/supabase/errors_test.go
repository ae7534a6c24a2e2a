package supabase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"smartude/internal/account"
	"smartude/internal/account/repository"
	"smartude/pkg/log"
	"smartude/pkg/supabase"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want account.Kind
	}{
		{"invalid credentials", &supabase.APIError{StatusCode: 400, Code: "invalid_credentials", Message: "Invalid login credentials"}, account.InvalidCredentials},
		{"legacy invalid grant", &supabase.APIError{StatusCode: 400, Code: "invalid_grant"}, account.InvalidCredentials},
		{"email not confirmed", &supabase.APIError{StatusCode: 400, Code: "email_not_confirmed"}, account.EmailNotConfirmed},
		{"user exists", &supabase.APIError{StatusCode: 422, Code: "user_already_exists"}, account.DuplicateAccount},
		{"email exists", &supabase.APIError{StatusCode: 422, Code: "email_exists"}, account.DuplicateAccount},
		{"weak password", &supabase.APIError{StatusCode: 422, Code: "weak_password"}, account.WeakCredential},
		{"message text is ignored", &supabase.APIError{StatusCode: 400, Message: "User already registered"}, account.ServiceUnavailable},
		{"server error", &supabase.APIError{StatusCode: 503}, account.ServiceUnavailable},
		{"rate limited", &supabase.APIError{StatusCode: 429}, account.ServiceUnavailable},
		{"unauthorized", &supabase.APIError{StatusCode: 401}, account.NotAuthenticated},
		{"transport", fmt.Errorf("%w: dial tcp", supabase.ErrUnavailable), account.ServiceUnavailable},
		{"not configured", supabase.ErrNotConfigured, account.ServiceUnavailable},
		{"deadline", context.DeadlineExceeded, account.ServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapError(tt.err)
			if kind := account.KindOf(got); kind != tt.want {
				t.Errorf("expected %v, got %v", tt.want, kind)
			}
			if !errors.Is(got, tt.err) {
				t.Errorf("expected cause to be preserved")
			}
		})
	}

	if mapError(nil) != nil {
		t.Errorf("expected nil for nil error")
	}
}

func TestRepository(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/v1/token", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"access_token":"at","refresh_token":"rt","expires_in":3600,"user":{"id":"u-1","email":"a@example.com"}}`))
	})
	mux.HandleFunc("/auth/v1/signup", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"u-2","email":"b@example.com"}`))
	})
	mux.HandleFunc("/rest/v1/user_profiles", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotAcceptable)
		w.Write([]byte(`{"code":"PGRST116","message":"no rows"}`))
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	repo := New(supabase.NewClient(supabase.Config{URL: ts.URL, AnonKey: "anon"}), log.NewNop())
	repo.now = func() time.Time { return now }
	ctx := context.Background()

	t.Run("SignIn computes expiry", func(t *testing.T) {
		s, err := repo.SignIn(ctx, "a@example.com", "secret1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.UserID != "u-1" || s.AccessToken != "at" {
			t.Errorf("unexpected session: %+v", s)
		}
		if !s.ExpiresAt.Equal(now.Add(time.Hour)) {
			t.Errorf("expected expiry %v, got %v", now.Add(time.Hour), s.ExpiresAt)
		}
	})

	t.Run("SignUp pending confirmation", func(t *testing.T) {
		res, err := repo.SignUp(ctx, repository.SignUpOptions{Email: "b@example.com", Password: "secret1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Session != nil || res.UserID != "u-2" {
			t.Errorf("unexpected result: %+v", res)
		}
	})

	t.Run("GetProfile not found", func(t *testing.T) {
		_, err := repo.GetProfile(ctx, "at", "u-1")
		if !errors.Is(err, repository.ErrProfileNotFound) {
			t.Errorf("expected ErrProfileNotFound, got %v", err)
		}
	})
}
