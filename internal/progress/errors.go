package progress

import "errors"

var (
	ErrEmptyImport    = errors.New("import content is empty")
	ErrNothingMatched = errors.New("no checklist items matched")

	ErrStorageUnavailable = errors.New("local progress could not be read")
)
