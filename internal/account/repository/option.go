package repository

import "time"

// SignUpOptions are the parameters for AuthRepository.SignUp.
type SignUpOptions struct {
	Email    string
	Password string
	Metadata map[string]any
}

// RemoteSession is a token pair with the identity it belongs to.
type RemoteSession struct {
	UserID       string
	Email        string
	Metadata     map[string]any
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// RemoteUser is the identity behind an access token.
type RemoteUser struct {
	UserID   string
	Email    string
	Metadata map[string]any
}

// SignUpResult carries Session only when the account is usable right away.
type SignUpResult struct {
	UserID   string
	Email    string
	Metadata map[string]any
	Session  *RemoteSession
}
