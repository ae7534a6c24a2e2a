package supabase

import (
	"context"
	"errors"

	"smartude/internal/account"
	"smartude/internal/account/repository"
	"smartude/pkg/supabase"
)

func (r *implRepository) CreateProfile(ctx context.Context, accessToken string, profile account.UserProfile) error {
	now := r.now().UTC()
	row := supabase.UserProfileRow{
		ID:        profile.ID,
		Email:     profile.Email,
		FullName:  profile.FullName,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := r.client.UpsertUserProfile(ctx, accessToken, row); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateProfile"), err)
		return mapError(err)
	}
	return nil
}

func (r *implRepository) GetProfile(ctx context.Context, accessToken, userID string) (account.UserProfile, error) {
	row, err := r.client.GetUserProfile(ctx, accessToken, userID)
	if err != nil {
		if errors.Is(err, supabase.ErrNotFound) {
			return account.UserProfile{}, repository.ErrProfileNotFound
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetProfile"), err)
		return account.UserProfile{}, mapError(err)
	}
	return account.UserProfile{
		ID:        row.ID,
		Email:     row.Email,
		FullName:  row.FullName,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

func (r *implRepository) UpdateProfile(ctx context.Context, accessToken, userID string, update account.ProfileUpdate) error {
	patch := supabase.UserProfilePatch{
		FullName:  update.FullName,
		UpdatedAt: update.UpdatedAt,
	}
	if err := r.client.UpdateUserProfile(ctx, accessToken, userID, patch); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateProfile"), err)
		return mapError(err)
	}
	return nil
}
