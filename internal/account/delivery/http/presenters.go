package http

import (
	"time"

	"smartude/internal/account"
)

// --- Request DTOs ---

type signUpReq struct {
	Email           string `json:"email"            binding:"required,email"`
	Password        string `json:"password"         binding:"required"`
	ConfirmPassword string `json:"confirm_password"`
	FullName        string `json:"full_name"        binding:"max=255"`
}

func (r signUpReq) validate() error {
	if r.ConfirmPassword != "" && r.ConfirmPassword != r.Password {
		return errPasswordMismatch
	}
	return nil
}

func (r signUpReq) toInput() account.SignUpInput {
	return account.SignUpInput{
		Email:    r.Email,
		Password: r.Password,
		FullName: r.FullName,
	}
}

type signInReq struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r signInReq) validate() error { return nil }

func (r signInReq) toInput() account.SignInInput {
	return account.SignInInput{Email: r.Email, Password: r.Password}
}

type callbackReq struct {
	Code             string `form:"code"`
	State            string `form:"state"`
	Error            string `form:"error"`
	ErrorDescription string `form:"error_description"`
}

func (r callbackReq) validate() error {
	if r.Error != "" {
		return errProviderFailed
	}
	return nil
}

func (r callbackReq) toInput() account.CallbackInput {
	return account.CallbackInput{Code: r.Code, State: r.State}
}

type updateProfileReq struct {
	FullName *string `json:"full_name" binding:"omitempty,max=255"`
}

func (r updateProfileReq) validate() error { return nil }

func (r updateProfileReq) toInput() account.ProfileInput {
	return account.ProfileInput{FullName: r.FullName}
}

// --- Response DTOs ---

type sessionResp struct {
	State     string     `json:"state"`
	UserID    string     `json:"user_id,omitempty"`
	Email     string     `json:"email,omitempty"`
	FullName  string     `json:"full_name,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	// Warning is set when the session could not be verified remotely.
	Warning string `json:"warning,omitempty"`
}

func newSessionResp(s account.Session) sessionResp {
	resp := sessionResp{
		State:  string(s.State),
		UserID: s.UserID,
		Email:  s.Email,
	}
	if name, ok := s.Metadata["full_name"].(string); ok {
		resp.FullName = name
	}
	if !s.ExpiresAt.IsZero() {
		exp := s.ExpiresAt
		resp.ExpiresAt = &exp
	}
	return resp
}

type externalSignInResp struct {
	Provider    string `json:"provider"`
	RedirectURL string `json:"redirect_url"`
}

type profileResp struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newProfileResp(p account.UserProfile) profileResp {
	return profileResp{
		ID:        p.ID,
		Email:     p.Email,
		FullName:  p.FullName,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
