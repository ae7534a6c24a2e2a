package kvstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"smartude/internal/account"
	"smartude/internal/account/repository"
	"smartude/pkg/kv"
)

type sessionRecord struct {
	State        account.State  `json:"state"`
	UserID       string         `json:"user_id"`
	Email        string         `json:"email"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	AccessToken  string         `json:"access_token"`
	RefreshToken string         `json:"refresh_token"`
	ExpiresAt    time.Time      `json:"expires_at"`
}

func (r *implRepository) LoadSession(ctx context.Context) (account.Session, error) {
	raw, err := r.store.Get(ctx, r.key)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return account.Session{}, repository.ErrNoSession
		}
		return account.Session{}, fmt.Errorf("%s: %w", r.dsn("LoadSession"), err)
	}

	var rec sessionRecord
	if err := r.codec.Decode(r.key, string(raw), &rec); err != nil {
		r.l.Warnf(ctx, "%s: %v", r.dsn("LoadSession"), err)
		return account.Session{}, fmt.Errorf("%w: %v", repository.ErrSessionDecode, err)
	}

	return account.Session{
		State:        rec.State,
		UserID:       rec.UserID,
		Email:        rec.Email,
		Metadata:     rec.Metadata,
		AccessToken:  rec.AccessToken,
		RefreshToken: rec.RefreshToken,
		ExpiresAt:    rec.ExpiresAt,
	}, nil
}

func (r *implRepository) SaveSession(ctx context.Context, s account.Session) error {
	rec := sessionRecord{
		State:        s.State,
		UserID:       s.UserID,
		Email:        s.Email,
		Metadata:     s.Metadata,
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		ExpiresAt:    s.ExpiresAt,
	}
	encoded, err := r.codec.Encode(r.key, rec)
	if err != nil {
		return fmt.Errorf("%s: encode: %w", r.dsn("SaveSession"), err)
	}
	if err := r.store.Set(ctx, r.key, []byte(encoded)); err != nil {
		return fmt.Errorf("%s: %w", r.dsn("SaveSession"), err)
	}
	return nil
}

func (r *implRepository) DeleteSession(ctx context.Context) error {
	if err := r.store.Delete(ctx, r.key); err != nil {
		return fmt.Errorf("%s: %w", r.dsn("DeleteSession"), err)
	}
	return nil
}
