package repository

import "errors"

var (
	ErrNoSession       = errors.New("no stored session")
	ErrSessionDecode   = errors.New("stored session could not be decoded")
	ErrProfileNotFound = errors.New("profile not found")
)
