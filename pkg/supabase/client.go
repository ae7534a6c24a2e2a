package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/oauth2"
)

const (
	defaultTimeout      = 10 * time.Second
	defaultUserCacheTTL = time.Minute
	defaultUserCacheMax = 64
)

// Client is the HTTP wrapper for the auth and REST APIs of a Supabase project.
type Client struct {
	baseURL    string
	anonKey    string
	httpClient *http.Client
	oauth      *oauth2.Config
	redirectTo string
	users      *expirable.LRU[string, User]
}

// NewClient creates a new Supabase HTTP client.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ttl := cfg.UserCacheTTL
	if ttl <= 0 {
		ttl = defaultUserCacheTTL
	}
	size := cfg.UserCacheMax
	if size <= 0 {
		size = defaultUserCacheMax
	}

	baseURL := strings.TrimRight(cfg.URL, "/")
	return &Client{
		baseURL:    baseURL,
		anonKey:    cfg.AnonKey,
		httpClient: &http.Client{Timeout: timeout},
		oauth: &oauth2.Config{
			Endpoint: oauth2.Endpoint{
				AuthURL:  baseURL + "/auth/v1/authorize",
				TokenURL: baseURL + "/auth/v1/token?grant_type=pkce",
			},
			RedirectURL: cfg.RedirectURL,
		},
		redirectTo: cfg.RedirectURL,
		users:      expirable.NewLRU[string, User](size, nil, ttl),
	}
}

// Configured reports whether a project URL is set.
func (c *Client) Configured() bool {
	return c.baseURL != ""
}

// request performs one JSON round trip. token falls back to the anon key.
// out may be nil. Transport failures wrap ErrUnavailable; non-2xx responses
// are returned as *APIError.
func (c *Client) request(ctx context.Context, method, path, token string, body any, headers map[string]string, out any) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build %s %s request: %w", method, path, err)
	}
	if token == "" {
		token = c.anonKey
	}
	httpReq.Header.Set("apikey", c.anonKey)
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return parseAPIError(resp.StatusCode, raw)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}
	return nil
}
