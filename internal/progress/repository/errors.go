package repository

import "errors"

var (
	ErrNotFound       = errors.New("progress not found")
	ErrCorruptPayload = errors.New("progress payload is corrupt")
	ErrFailedToGet    = errors.New("failed to read progress")
	ErrFailedToSave   = errors.New("failed to save progress")
	ErrFailedToDelete = errors.New("failed to delete progress")
)
