package usecase

import (
	"context"
	"time"

	"smartude/internal/account"
	"smartude/internal/progress"
	appSync "smartude/internal/sync"
	"smartude/internal/sync/repository"
	"smartude/pkg/broadcast"
	pkgLog "smartude/pkg/log"
)

const defaultTimeout = 10 * time.Second

// SessionSource resolves the access token used for remote writes.
type SessionSource interface {
	CurrentSession(ctx context.Context) (account.Session, error)
}

// Config tunes the sync use case.
type Config struct {
	Mode    appSync.Mode
	Timeout time.Duration
}

type implUseCase struct {
	l        pkgLog.Logger
	progress progress.UseCase
	sessions SessionSource
	remote   repository.RemoteRepository
	events   *broadcast.Broadcaster[appSync.Event]
	mode     appSync.Mode
	timeout  time.Duration
	now      func() time.Time
}

// New creates a new sync UseCase. An unknown mode falls back to push.
func New(
	l pkgLog.Logger,
	progressUC progress.UseCase,
	sessions SessionSource,
	remote repository.RemoteRepository,
	cfg Config,
) *implUseCase {
	mode := cfg.Mode
	if mode != appSync.ModeMerge {
		mode = appSync.ModePush
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &implUseCase{
		l:        l,
		progress: progressUC,
		sessions: sessions,
		remote:   remote,
		events:   broadcast.New[appSync.Event](0),
		mode:     mode,
		timeout:  timeout,
		now:      time.Now,
	}
}

var _ appSync.UseCase = (*implUseCase)(nil)

// Close ends every subscription.
func (uc *implUseCase) Close() {
	uc.events.Close()
}
