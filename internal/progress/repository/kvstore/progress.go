package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"smartude/internal/checklist"
	repo "smartude/internal/progress/repository"
	"smartude/pkg/kv"
)

func (r *implRepository) GetProgress(ctx context.Context) (checklist.ProgressMap, error) {
	raw, err := r.store.Get(ctx, r.key)
	if errors.Is(err, kv.ErrNotFound) {
		return nil, repo.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetProgress"), err)
		return nil, repo.ErrFailedToGet
	}

	var progress checklist.ProgressMap
	if err := json.Unmarshal(raw, &progress); err != nil {
		return nil, fmt.Errorf("%w: %v", repo.ErrCorruptPayload, err)
	}
	if progress == nil {
		// "null" payload
		progress = checklist.ProgressMap{}
	}
	return progress, nil
}

func (r *implRepository) SaveProgress(ctx context.Context, progress checklist.ProgressMap) error {
	if progress == nil {
		progress = checklist.ProgressMap{}
	}
	raw, err := json.Marshal(progress)
	if err != nil {
		return fmt.Errorf("%w: %v", repo.ErrFailedToSave, err)
	}
	if err := r.store.Set(ctx, r.key, raw); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SaveProgress"), err)
		return repo.ErrFailedToSave
	}
	return nil
}

func (r *implRepository) DeleteProgress(ctx context.Context) error {
	if err := r.store.Delete(ctx, r.key); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteProgress"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
