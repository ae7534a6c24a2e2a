package sync

import (
	"errors"

	"smartude/internal/account"
)

// SyncError reports a failed sync. Kind is ServiceUnavailable or
// NotAuthenticated.
type SyncError struct {
	Kind account.Kind
	Err  error
}

func (e *SyncError) Error() string {
	return e.Kind.Message()
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of a *SyncError, or account.KindUnknown.
func KindOf(err error) account.Kind {
	var syncErr *SyncError
	if errors.As(err, &syncErr) {
		return syncErr.Kind
	}
	return account.KindUnknown
}
