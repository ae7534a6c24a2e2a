package supabase

import (
	"fmt"
	"time"

	"smartude/internal/account/repository"
	"smartude/pkg/log"
	"smartude/pkg/supabase"
)

type implRepository struct {
	client *supabase.Client
	l      log.Logger
	now    func() time.Time
}

var (
	_ repository.AuthRepository    = (*implRepository)(nil)
	_ repository.ProfileRepository = (*implRepository)(nil)
)

// New creates the remote auth and profile repository.
func New(client *supabase.Client, l log.Logger) *implRepository {
	return &implRepository{client: client, l: l, now: time.Now}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("account/repository/supabase.%s", method)
}
