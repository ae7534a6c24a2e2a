package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"smartude/internal/account"
	"smartude/internal/account/repository"
)

// SignUp registers a new account. The password length is checked locally
// so weak passwords never reach the remote service.
func (uc *implUseCase) SignUp(ctx context.Context, input account.SignUpInput) (account.SignUpOutput, error) {
	email := strings.TrimSpace(input.Email)
	if utf8.RuneCountInString(input.Password) < account.MinPasswordLength {
		return account.SignUpOutput{}, account.NewAuthError(account.WeakCredential, nil)
	}
	if email == "" {
		return account.SignUpOutput{}, account.NewAuthError(account.InvalidCredentials, account.ErrEmptyCredentials)
	}

	var metadata map[string]any
	if name := strings.TrimSpace(input.FullName); name != "" {
		metadata = map[string]any{"full_name": name}
	}

	res, err := uc.auth.SignUp(ctx, repository.SignUpOptions{
		Email:    email,
		Password: input.Password,
		Metadata: metadata,
	})
	if err != nil {
		uc.l.Warnf(ctx, "account.SignUp: %v", err)
		return account.SignUpOutput{}, err
	}

	var s account.Session
	token := ""
	if res.Session != nil {
		s = uc.adopt(ctx, *res.Session)
		token = s.AccessToken
	} else {
		s = account.Session{
			State:    account.StatePendingConfirmation,
			UserID:   res.UserID,
			Email:    res.Email,
			Metadata: res.Metadata,
		}
		uc.mu.Lock()
		uc.restoreLocked(ctx)
		prev := uc.session
		if prev.State == account.StateAuthenticated {
			uc.forgetLocked(ctx)
		}
		uc.session = s
		uc.restored = true
		uc.mu.Unlock()

		// The new account replaces whoever was signed in on this device.
		if prev.State == account.StateAuthenticated {
			if err := uc.auth.SignOut(ctx, prev.AccessToken); err != nil {
				uc.l.Warnf(ctx, "account.SignUp: remote sign out of %s failed: %v", prev.UserID, err)
			}
			uc.publish(account.EventSignedOut, prev)
		}
	}

	if res.UserID != "" {
		uc.createProfile(ctx, token, res)
	}

	return account.SignUpOutput{Session: s}, nil
}

func (uc *implUseCase) createProfile(ctx context.Context, token string, res repository.SignUpResult) {
	fullName, _ := res.Metadata["full_name"].(string)
	profile := account.UserProfile{
		ID:       res.UserID,
		Email:    res.Email,
		FullName: fullName,
	}
	if err := uc.profiles.CreateProfile(ctx, token, profile); err != nil {
		uc.l.Warnf(ctx, "account.SignUp: CreateProfile for %s: %v", res.UserID, err)
	}
}

// SignIn authenticates with email and password.
func (uc *implUseCase) SignIn(ctx context.Context, input account.SignInInput) (account.Session, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return account.Anonymous(), account.NewAuthError(account.InvalidCredentials, account.ErrEmptyCredentials)
	}

	rs, err := uc.auth.SignIn(ctx, email, input.Password)
	if err != nil {
		uc.l.Warnf(ctx, "account.SignIn: %v", err)
		return account.Anonymous(), err
	}
	return uc.adopt(ctx, rs), nil
}
