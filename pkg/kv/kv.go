// Package kv provides the single-key persistence used for device-local state
// (checklist progress, the remembered session). Values are opaque bytes.
package kv

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is returned by Get when the key was never written or was deleted.
var ErrNotFound = errors.New("kv: key not found")

// Store is a minimal key/value store.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// Config selects and configures a Store implementation.
type Config struct {
	Driver string
	Path   string // directory for "file", database file for "sqlite"
}

// Open builds the Store selected by cfg.Driver.
func Open(cfg Config) (Store, error) {
	switch cfg.Driver {
	case DriverFile:
		return NewFileStore(cfg.Path)
	case DriverSQLite:
		return NewSQLiteStore(cfg.Path)
	case DriverMemory, "":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("kv: unknown driver %q", cfg.Driver)
	}
}
