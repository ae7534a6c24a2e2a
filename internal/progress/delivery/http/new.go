package http

import (
	"smartude/internal/checklist"
	"smartude/internal/progress"
	"smartude/pkg/log"
)

type handler struct {
	l         log.Logger
	uc        progress.UseCase
	checklist checklist.Service
}

// New creates a new HTTP handler for the checklist and its progress.
func New(l log.Logger, uc progress.UseCase, checklistSvc checklist.Service) *handler {
	return &handler{
		l:         l,
		uc:        uc,
		checklist: checklistSvc,
	}
}
