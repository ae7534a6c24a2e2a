package supabase

import (
	"fmt"

	"smartude/internal/sync/repository"
	"smartude/pkg/log"
	"smartude/pkg/supabase"
)

type implRepository struct {
	client *supabase.Client
	l      log.Logger
}

// New creates the remote progress repository.
func New(client *supabase.Client, l log.Logger) repository.RemoteRepository {
	return &implRepository{client: client, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("sync/repository/supabase.%s", method)
}
