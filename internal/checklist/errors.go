package checklist

import "errors"

var (
	ErrInvalidCatalog = errors.New("invalid checklist catalog")
)
