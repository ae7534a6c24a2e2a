package reminder

import "errors"

var (
	ErrCalendarDisabled = errors.New("calendar is not configured")
	ErrMissingArrival   = errors.New("arrival date is required")
)
