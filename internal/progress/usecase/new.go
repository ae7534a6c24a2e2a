package usecase

import (
	"sync"

	"smartude/internal/checklist"
	"smartude/internal/progress"
	"smartude/internal/progress/repository"
	pkgLog "smartude/pkg/log"
)

// implUseCase keeps an in-memory mirror of the persisted map. Every mutation
// writes through to the repository while holding mu, so a Toggle followed by
// Load always observes the toggle.
type implUseCase struct {
	l         pkgLog.Logger
	repo      repository.Repository
	checklist checklist.Service

	mu     sync.Mutex
	cache  checklist.ProgressMap
	loaded bool
}

// New creates a new progress UseCase.
func New(l pkgLog.Logger, repo repository.Repository, checklistSvc checklist.Service) *implUseCase {
	return &implUseCase{
		l:         l,
		repo:      repo,
		checklist: checklistSvc,
	}
}

var _ progress.UseCase = (*implUseCase)(nil)
