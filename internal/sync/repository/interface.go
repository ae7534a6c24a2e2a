package repository

import (
	"context"
	"errors"
	"time"

	"smartude/internal/checklist"
)

var (
	ErrNoRecord     = errors.New("no remote progress record")
	ErrUnauthorized = errors.New("remote rejected the access token")
)

// Record is the remote copy of a user's progress, keyed by UserID.
type Record struct {
	UserID    string
	Progress  checklist.ProgressMap
	UpdatedAt time.Time
}

// RemoteRepository stores progress records remotely.
type RemoteRepository interface {
	// Push upserts rec; the previous record is overwritten.
	Push(ctx context.Context, accessToken string, rec Record) error
	// Pull returns ErrNoRecord when the user has never synced.
	Pull(ctx context.Context, accessToken, userID string) (Record, error)
}
