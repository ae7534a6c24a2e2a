package usecase

import (
	"context"
	"errors"

	"smartude/internal/checklist"
	"smartude/internal/progress"
	repo "smartude/internal/progress/repository"
)

// current returns the mirrored map, reading the repository on first use.
// On a storage read failure it returns an empty map and
// progress.ErrStorageUnavailable, and the mirror stays unloaded.
// Caller must hold uc.mu.
func (uc *implUseCase) current(ctx context.Context) (checklist.ProgressMap, error) {
	if uc.loaded {
		return uc.cache, nil
	}

	stored, err := uc.repo.GetProgress(ctx)
	switch {
	case err == nil:
	case errors.Is(err, repo.ErrNotFound):
		stored = checklist.ProgressMap{}
	case errors.Is(err, repo.ErrCorruptPayload):
		uc.l.Warnf(ctx, "progress.current: discarding unreadable progress: %v", err)
		stored = checklist.ProgressMap{}
	default:
		uc.l.Warnf(ctx, "progress.current: GetProgress: %v", err)
		return checklist.ProgressMap{}, progress.ErrStorageUnavailable
	}

	uc.cache = stored
	uc.loaded = true
	return uc.cache, nil
}

// commit persists next and makes it the mirrored value. A failed write is
// logged; the in-memory value still moves forward.
// Caller must hold uc.mu.
func (uc *implUseCase) commit(ctx context.Context, next checklist.ProgressMap) {
	if err := uc.repo.SaveProgress(ctx, next); err != nil {
		uc.l.Errorf(ctx, "progress.commit: SaveProgress: %v", err)
	}
	uc.cache = next
	uc.loaded = true
}

// Load returns a copy of the current progress map.
func (uc *implUseCase) Load(ctx context.Context) checklist.ProgressMap {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	p, _ := uc.current(ctx)
	return p.Clone()
}

// Snapshot is Load for callers that write the map back.
func (uc *implUseCase) Snapshot(ctx context.Context) (checklist.ProgressMap, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	p, err := uc.current(ctx)
	if err != nil {
		return nil, err
	}
	return p.Clone(), nil
}

// Toggle flips the completion flag for itemID.
func (uc *implUseCase) Toggle(ctx context.Context, itemID string) checklist.ProgressMap {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	base, err := uc.current(ctx)
	next := base.Clone()
	next[itemID] = !next[itemID]
	if err != nil {
		// Saving now would replace the stored map with a single entry.
		uc.l.Errorf(ctx, "progress.Toggle: %q not saved: %v", itemID, err)
		return next
	}
	if !uc.checklist.Catalog().Contains(itemID) {
		uc.l.Debugf(ctx, "progress.Toggle: %q is not a catalog item, stored but not counted", itemID)
	}
	uc.commit(ctx, next)

	return next.Clone()
}

// Replace overwrites the whole progress map.
func (uc *implUseCase) Replace(ctx context.Context, progress checklist.ProgressMap) checklist.ProgressMap {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	next := progress.Clone()
	uc.commit(ctx, next)
	return next.Clone()
}

// Clear deletes the persisted progress.
func (uc *implUseCase) Clear(ctx context.Context) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.repo.DeleteProgress(ctx); err != nil {
		uc.l.Errorf(ctx, "progress.Clear: DeleteProgress: %v", err)
	}
	uc.cache = checklist.ProgressMap{}
	uc.loaded = true
	uc.l.Infof(ctx, "progress.Clear: local progress cleared")
}
