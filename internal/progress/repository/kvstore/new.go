package kvstore

import (
	"fmt"

	"smartude/internal/progress/repository"
	"smartude/pkg/kv"
	"smartude/pkg/log"
)

type implRepository struct {
	store kv.Store
	key   string
	l     log.Logger
}

// New creates a Repository that stores the progress map as JSON under key.
func New(store kv.Store, key string, l log.Logger) repository.Repository {
	if store == nil {
		panic("progress/repository/kvstore: store is required")
	}
	return &implRepository{store: store, key: key, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("progress/repository/kvstore.%s", method)
}
