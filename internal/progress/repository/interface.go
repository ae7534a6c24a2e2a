package repository

import (
	"context"

	"smartude/internal/checklist"
)

// Repository persists the progress map.
type Repository interface {
	// GetProgress returns ErrNotFound when nothing was stored and
	// ErrCorruptPayload when the stored bytes are not a string→bool object.
	GetProgress(ctx context.Context) (checklist.ProgressMap, error)
	SaveProgress(ctx context.Context, progress checklist.ProgressMap) error
	DeleteProgress(ctx context.Context) error
}
