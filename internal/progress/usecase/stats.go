package usecase

import (
	"context"

	"smartude/internal/checklist"
)

func (uc *implUseCase) CompletedCount(ctx context.Context) int {
	return uc.Stats(ctx).Completed
}

func (uc *implUseCase) TotalCount(ctx context.Context) int {
	return uc.checklist.Catalog().TotalCount()
}

func (uc *implUseCase) Percentage(ctx context.Context) int {
	return uc.Stats(ctx).Percentage
}

// Stats is recomputed from Load on every call.
func (uc *implUseCase) Stats(ctx context.Context) checklist.Stats {
	return uc.checklist.GetStats(uc.Load(ctx))
}

func (uc *implUseCase) CategoryProgress(ctx context.Context) []checklist.CategoryStats {
	return uc.checklist.GetCategoryStats(uc.Load(ctx))
}
