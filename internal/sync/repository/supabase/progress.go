package supabase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"smartude/internal/checklist"
	"smartude/internal/sync/repository"
	"smartude/pkg/supabase"
)

func (r *implRepository) Push(ctx context.Context, accessToken string, rec repository.Record) error {
	row := supabase.ChecklistProgressRow{
		UserID:       rec.UserID,
		ProgressData: rec.Progress,
		UpdatedAt:    rec.UpdatedAt.UTC(),
	}
	if row.ProgressData == nil {
		row.ProgressData = map[string]bool{}
	}
	if err := r.client.UpsertChecklistProgress(ctx, accessToken, row); err != nil {
		return r.wrap("Push", err)
	}
	return nil
}

func (r *implRepository) Pull(ctx context.Context, accessToken, userID string) (repository.Record, error) {
	row, err := r.client.GetChecklistProgress(ctx, accessToken, userID)
	if err != nil {
		if errors.Is(err, supabase.ErrNotFound) {
			return repository.Record{}, repository.ErrNoRecord
		}
		return repository.Record{}, r.wrap("Pull", err)
	}
	return repository.Record{
		UserID:    row.UserID,
		Progress:  checklist.ProgressMap(row.ProgressData).Clone(),
		UpdatedAt: row.UpdatedAt,
	}, nil
}

func (r *implRepository) wrap(method string, err error) error {
	var apiErr *supabase.APIError
	if errors.As(err, &apiErr) &&
		(apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden) {
		return fmt.Errorf("%s: %w: %v", r.dsn(method), repository.ErrUnauthorized, err)
	}
	return fmt.Errorf("%s: %w", r.dsn(method), err)
}
