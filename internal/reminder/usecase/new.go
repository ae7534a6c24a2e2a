package usecase

import (
	"context"

	"smartude/internal/checklist"
	"smartude/internal/reminder"
	"smartude/internal/reminder/repository"
	"smartude/pkg/datemath"
	pkgLog "smartude/pkg/log"
)

// ProgressSource yields the device's current progress map.
type ProgressSource interface {
	Load(ctx context.Context) checklist.ProgressMap
}

type implUseCase struct {
	l         pkgLog.Logger
	progress  ProgressSource
	checklist checklist.Service
	parser    *datemath.Parser
	calendar  repository.CalendarRepository // nil when disabled
}

// New creates a reminder UseCase. A nil calendar keeps Plan working and
// makes Schedule return reminder.ErrCalendarDisabled.
func New(
	l pkgLog.Logger,
	progress ProgressSource,
	checklistSvc checklist.Service,
	parser *datemath.Parser,
	calendar repository.CalendarRepository,
) *implUseCase {
	return &implUseCase{
		l:         l,
		progress:  progress,
		checklist: checklistSvc,
		parser:    parser,
		calendar:  calendar,
	}
}

var _ reminder.UseCase = (*implUseCase)(nil)
