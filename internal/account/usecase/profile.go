package usecase

import (
	"context"
	"errors"
	"strings"

	"smartude/internal/account"
	"smartude/internal/account/repository"
)

func (uc *implUseCase) requireSession(ctx context.Context) (account.Session, error) {
	s, err := uc.CurrentSession(ctx)
	if err != nil {
		return s, err
	}
	if !s.Authenticated() {
		return s, account.NewAuthError(account.NotAuthenticated, nil)
	}
	return s, nil
}

// Profile returns the signed-in user's profile. A missing row is created on
// first access.
func (uc *implUseCase) Profile(ctx context.Context) (account.UserProfile, error) {
	s, err := uc.requireSession(ctx)
	if err != nil {
		return account.UserProfile{}, err
	}

	p, err := uc.profiles.GetProfile(ctx, s.AccessToken, s.UserID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, repository.ErrProfileNotFound) {
		uc.l.Errorf(ctx, "account.Profile: GetProfile: %v", err)
		return account.UserProfile{}, err
	}

	fullName, _ := s.Metadata["full_name"].(string)
	p = account.UserProfile{ID: s.UserID, Email: s.Email, FullName: fullName}
	if err := uc.profiles.CreateProfile(ctx, s.AccessToken, p); err != nil {
		uc.l.Errorf(ctx, "account.Profile: CreateProfile: %v", err)
		return account.UserProfile{}, err
	}
	return uc.profiles.GetProfile(ctx, s.AccessToken, s.UserID)
}

// UpdateProfile changes the editable profile fields and returns the result.
func (uc *implUseCase) UpdateProfile(ctx context.Context, input account.ProfileInput) (account.UserProfile, error) {
	s, err := uc.requireSession(ctx)
	if err != nil {
		return account.UserProfile{}, err
	}

	update := account.ProfileUpdate{UpdatedAt: uc.now().UTC()}
	if input.FullName != nil {
		name := strings.TrimSpace(*input.FullName)
		update.FullName = &name
	}

	if err := uc.profiles.UpdateProfile(ctx, s.AccessToken, s.UserID, update); err != nil {
		uc.l.Errorf(ctx, "account.UpdateProfile: %v", err)
		return account.UserProfile{}, err
	}
	return uc.profiles.GetProfile(ctx, s.AccessToken, s.UserID)
}
