package datemath

import "errors"

// ErrUnrecognized is returned for phrases the parser does not understand.
var ErrUnrecognized = errors.New("unrecognized date phrase")

// Units accepted in relative phrases.
const (
	unitDay   = "day"
	unitWeek  = "week"
	unitMonth = "month"
)
