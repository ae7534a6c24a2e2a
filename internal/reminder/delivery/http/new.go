package http

import (
	"time"

	"smartude/internal/reminder"
	"smartude/pkg/log"
)

type handler struct {
	l   log.Logger
	uc  reminder.UseCase
	loc *time.Location // arrival dates are read in this zone
}

// New creates a new HTTP handler for deadline reminders.
func New(l log.Logger, uc reminder.UseCase, loc *time.Location) *handler {
	if loc == nil {
		loc = time.UTC
	}
	return &handler{l: l, uc: uc, loc: loc}
}
