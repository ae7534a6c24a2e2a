package http

import (
	appSync "smartude/internal/sync"
	"smartude/pkg/log"
)

type handler struct {
	l  log.Logger
	uc appSync.UseCase
}

// New creates a new HTTP handler for progress sync.
func New(l log.Logger, uc appSync.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
