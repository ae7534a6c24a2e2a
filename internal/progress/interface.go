package progress

import (
	"context"

	"smartude/internal/checklist"
)

// UseCase is the device-local source of truth for "has the user completed
// item X". Load never fails: missing or unreadable state is an empty map.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// Load returns a copy of the persisted map, empty when nothing usable is stored.
	Load(ctx context.Context) checklist.ProgressMap

	// Snapshot is Load that returns ErrStorageUnavailable instead of an
	// empty map when the store could not be read.
	Snapshot(ctx context.Context) (checklist.ProgressMap, error)

	// Toggle flips itemID, persists the whole map and returns it.
	// Ids outside the catalog are stored but never counted.
	Toggle(ctx context.Context, itemID string) checklist.ProgressMap

	// Replace overwrites the whole map and returns it.
	Replace(ctx context.Context, progress checklist.ProgressMap) checklist.ProgressMap

	// Clear irreversibly resets progress to an empty map.
	Clear(ctx context.Context)

	CompletedCount(ctx context.Context) int
	TotalCount(ctx context.Context) int
	Percentage(ctx context.Context) int
	Stats(ctx context.Context) checklist.Stats
	CategoryProgress(ctx context.Context) []checklist.CategoryStats

	// Markdown export/import of the checklist
	ExportMarkdown(ctx context.Context) string
	ExportHTML(ctx context.Context) (string, error)
	ImportMarkdown(ctx context.Context, input ImportInput) (ImportOutput, error)
}
