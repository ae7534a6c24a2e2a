package account

import "time"

// MinPasswordLength is the shortest password accepted by SignUp.
const MinPasswordLength = 6

// State is the lifecycle state of the device session.
type State string

const (
	StateAnonymous           State = "anonymous"
	StatePendingConfirmation State = "pending_confirmation"
	StateAuthenticated       State = "authenticated"
)

// Session is the current account session. Tokens are only set when
// State is StateAuthenticated.
type Session struct {
	State        State          `json:"state"`
	UserID       string         `json:"user_id,omitempty"`
	Email        string         `json:"email,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	AccessToken  string         `json:"-"`
	RefreshToken string         `json:"-"`
	ExpiresAt    time.Time      `json:"expires_at,omitempty"`
}

// Anonymous returns the signed-out session.
func Anonymous() Session {
	return Session{State: StateAnonymous}
}

// Authenticated reports whether s carries a usable identity.
func (s Session) Authenticated() bool {
	return s.State == StateAuthenticated && s.UserID != ""
}

// Expired reports whether the access token is past its expiry at now.
// A zero ExpiresAt never expires.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// EventType distinguishes session notifications.
type EventType string

const (
	EventSignedIn  EventType = "signed_in"
	EventSignedOut EventType = "signed_out"
)

// Event is published on every session change.
type Event struct {
	Type   EventType
	UserID string
	Email  string
	At     time.Time
}

// SignUpInput is the input for SignUp.
type SignUpInput struct {
	Email    string
	Password string
	FullName string
}

// SignUpOutput reports the resulting session. Session.State is
// StatePendingConfirmation when the account still needs email confirmation.
type SignUpOutput struct {
	Session Session
}

// SignInInput is the input for SignIn.
type SignInInput struct {
	Email    string
	Password string
}

// ExternalSignInOutput holds the provider redirect.
type ExternalSignInOutput struct {
	Provider    string
	RedirectURL string
	State       string
}

// CallbackInput is what the provider redirect brings back.
type CallbackInput struct {
	Code  string
	State string
}

// UserProfile is the remote profile row of a user.
type UserProfile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProfileInput holds the user-editable profile fields. Nil means unchanged.
type ProfileInput struct {
	FullName *string
}

// ProfileUpdate is ProfileInput stamped with the time of the change.
type ProfileUpdate struct {
	FullName  *string
	UpdatedAt time.Time
}
