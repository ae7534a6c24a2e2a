package supabase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

const (
	preferUpsert  = "resolution=merge-duplicates,return=minimal"
	acceptObject  = "application/vnd.pgrst.object+json"
	preferMinimal = "return=minimal"
)

// upsert inserts row into table, overwriting an existing row with the same
// primary key.
func (c *Client) upsert(ctx context.Context, token, table string, row any) error {
	path := "/rest/v1/" + table
	return c.request(ctx, http.MethodPost, path, token, row, map[string]string{"Prefer": preferUpsert}, nil)
}

// selectOne fetches the single row where column equals value into out.
func (c *Client) selectOne(ctx context.Context, token, table, column, value string, out any) error {
	q := url.Values{}
	q.Set(column, "eq."+value)
	q.Set("select", "*")
	path := fmt.Sprintf("/rest/v1/%s?%s", table, q.Encode())

	err := c.request(ctx, http.MethodGet, path, token, nil, map[string]string{"Accept": acceptObject}, out)
	var apiErr *APIError
	if errors.As(err, &apiErr) && (apiErr.Code == codeNoRows || apiErr.StatusCode == http.StatusNotAcceptable) {
		return ErrNotFound
	}
	return err
}

func (c *Client) update(ctx context.Context, token, table, column, value string, patch any) error {
	q := url.Values{}
	q.Set(column, "eq."+value)
	path := fmt.Sprintf("/rest/v1/%s?%s", table, q.Encode())
	return c.request(ctx, http.MethodPatch, path, token, patch, map[string]string{"Prefer": preferMinimal}, nil)
}

// UpsertChecklistProgress writes the whole progress record for row.UserID.
func (c *Client) UpsertChecklistProgress(ctx context.Context, token string, row ChecklistProgressRow) error {
	return c.upsert(ctx, token, TableChecklistProgress, row)
}

// GetChecklistProgress returns ErrNotFound when the user has no record yet.
func (c *Client) GetChecklistProgress(ctx context.Context, token, userID string) (*ChecklistProgressRow, error) {
	var row ChecklistProgressRow
	if err := c.selectOne(ctx, token, TableChecklistProgress, "user_id", userID, &row); err != nil {
		return nil, err
	}
	return &row, nil
}

// UpsertUserProfile creates or overwrites a profile row.
func (c *Client) UpsertUserProfile(ctx context.Context, token string, row UserProfileRow) error {
	return c.upsert(ctx, token, TableUserProfiles, row)
}

// GetUserProfile returns ErrNotFound when the profile does not exist.
func (c *Client) GetUserProfile(ctx context.Context, token, userID string) (*UserProfileRow, error) {
	var row UserProfileRow
	if err := c.selectOne(ctx, token, TableUserProfiles, "id", userID, &row); err != nil {
		return nil, err
	}
	return &row, nil
}

// UpdateUserProfile applies patch to the profile of userID.
func (c *Client) UpdateUserProfile(ctx context.Context, token, userID string, patch UserProfilePatch) error {
	return c.update(ctx, token, TableUserProfiles, "id", userID, patch)
}
