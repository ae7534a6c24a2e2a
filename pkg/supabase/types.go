package supabase

import "time"

// Config configures the Client.
type Config struct {
	URL          string        // project URL, e.g. https://xyz.supabase.co
	AnonKey      string        // public anon key sent as apikey
	Timeout      time.Duration // per-request budget
	RedirectURL  string        // where the external provider sends the user back
	UserCacheTTL time.Duration
	UserCacheMax int
}

// User is the auth user object.
type User struct {
	ID               string         `json:"id"`
	Email            string         `json:"email"`
	EmailConfirmedAt *time.Time     `json:"email_confirmed_at,omitempty"`
	UserMetadata     map[string]any `json:"user_metadata,omitempty"`
	AppMetadata      map[string]any `json:"app_metadata,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
}

// Session is an authenticated token pair.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	ExpiresAt    int64  `json:"expires_at"`
	User         *User  `json:"user"`
}

// SignUpResult holds a Session when the account is usable right away, or
// only the User when email confirmation is still pending.
type SignUpResult struct {
	User    *User
	Session *Session
}

// signUpResponse covers both response shapes of POST /auth/v1/signup.
type signUpResponse struct {
	Session
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	UserMetadata map[string]any `json:"user_metadata,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

type credentialsRequest struct {
	Email    string         `json:"email"`
	Password string         `json:"password"`
	Data     map[string]any `json:"data,omitempty"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type pkceRequest struct {
	AuthCode     string `json:"auth_code"`
	CodeVerifier string `json:"code_verifier"`
}

// ---- Storage rows ----

// TableUserProfiles and TableChecklistProgress are the PostgREST tables used.
const (
	TableUserProfiles      = "user_profiles"
	TableChecklistProgress = "checklist_progress"
)

// UserProfileRow is a row of user_profiles.
type UserProfileRow struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserProfilePatch lists the mutable user_profiles columns.
type UserProfilePatch struct {
	FullName  *string   `json:"full_name,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ChecklistProgressRow is a row of checklist_progress, keyed by user_id.
type ChecklistProgressRow struct {
	UserID       string          `json:"user_id"`
	ProgressData map[string]bool `json:"progress_data"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
