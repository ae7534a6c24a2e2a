package supabase

import (
	"context"
	"net/http"
	"net/url"

	"golang.org/x/oauth2"
)

// SignUp creates an account via POST /auth/v1/signup.
func (c *Client) SignUp(ctx context.Context, email, password string, data map[string]any) (*SignUpResult, error) {
	var resp signUpResponse
	req := credentialsRequest{Email: email, Password: password, Data: data}
	if err := c.request(ctx, http.MethodPost, "/auth/v1/signup", "", req, nil, &resp); err != nil {
		return nil, err
	}

	if resp.AccessToken != "" {
		session := resp.Session
		return &SignUpResult{User: session.User, Session: &session}, nil
	}

	// Confirmation pending: the body is the user object itself
	return &SignUpResult{User: &User{
		ID:           resp.ID,
		Email:        resp.Email,
		UserMetadata: resp.UserMetadata,
		CreatedAt:    resp.CreatedAt,
	}}, nil
}

// SignInWithPassword exchanges credentials for a session.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*Session, error) {
	var session Session
	req := credentialsRequest{Email: email, Password: password}
	if err := c.request(ctx, http.MethodPost, "/auth/v1/token?grant_type=password", "", req, nil, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// RefreshSession trades a refresh token for a new session.
func (c *Client) RefreshSession(ctx context.Context, refreshToken string) (*Session, error) {
	var session Session
	req := refreshRequest{RefreshToken: refreshToken}
	if err := c.request(ctx, http.MethodPost, "/auth/v1/token?grant_type=refresh_token", "", req, nil, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// GenerateVerifier returns a fresh PKCE code verifier.
func (c *Client) GenerateVerifier() string {
	return oauth2.GenerateVerifier()
}

// AuthorizeURL builds the redirect URL that starts an external provider
// sign-in with a PKCE S256 challenge derived from verifier. The auth server
// keeps its own flow state, so state is also carried on redirect_to to come
// back on the callback.
func (c *Client) AuthorizeURL(provider, state, verifier string) string {
	return c.oauth.AuthCodeURL(state,
		oauth2.SetAuthURLParam("provider", provider),
		oauth2.SetAuthURLParam("redirect_to", withState(c.redirectTo, state)),
		oauth2.S256ChallengeOption(verifier),
	)
}

func withState(redirectTo, state string) string {
	u, err := url.Parse(redirectTo)
	if err != nil || redirectTo == "" {
		return redirectTo
	}
	q := u.Query()
	q.Set("state", state)
	u.RawQuery = q.Encode()
	return u.String()
}

// ExchangeCodeForSession completes a PKCE flow started by AuthorizeURL.
func (c *Client) ExchangeCodeForSession(ctx context.Context, authCode, verifier string) (*Session, error) {
	var session Session
	req := pkceRequest{AuthCode: authCode, CodeVerifier: verifier}
	if err := c.request(ctx, http.MethodPost, "/auth/v1/token?grant_type=pkce", "", req, nil, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// SignOut revokes the session behind accessToken.
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	c.users.Remove(accessToken)
	return c.request(ctx, http.MethodPost, "/auth/v1/logout", accessToken, nil, nil, nil)
}

// GetUser resolves accessToken to its user. Results are cached briefly.
func (c *Client) GetUser(ctx context.Context, accessToken string) (*User, error) {
	if u, ok := c.users.Get(accessToken); ok {
		return &u, nil
	}

	var user User
	if err := c.request(ctx, http.MethodGet, "/auth/v1/user", accessToken, nil, nil, &user); err != nil {
		return nil, err
	}
	c.users.Add(accessToken, user)
	return &user, nil
}
