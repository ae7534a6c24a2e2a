package sync

import (
	"time"

	"smartude/internal/checklist"
)

// Mode selects how a sync reconciles the two copies.
type Mode string

const (
	// ModePush overwrites the remote record with the local snapshot.
	ModePush Mode = "push"
	// ModeMerge unions both copies, completed winning, and writes the
	// union to both sides.
	ModeMerge Mode = "merge"
)

// Outcome is the result of one sync.
type Outcome string

const (
	OutcomeSucceeded Outcome = "succeeded"
	OutcomeSkipped   Outcome = "skipped"
	OutcomeFailed    Outcome = "failed"
)

// SyncOutput describes what a sync did.
type SyncOutput struct {
	Outcome  Outcome
	Mode     Mode
	Uploaded int // entries written remotely, 0 when nothing was written
	Pulled   int // remote entries read (merge mode)
	Progress checklist.ProgressMap
}

// Event notifies listeners about a finished sync.
type Event struct {
	Outcome Outcome
	UserID  string
	Items   int
	Message string
	At      time.Time
}
