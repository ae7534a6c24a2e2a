package usecase

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"smartude/internal/account"
	"smartude/internal/account/repository"
	"smartude/pkg/broadcast"
	pkgLog "smartude/pkg/log"
)

const (
	defaultStateTTL      = 10 * time.Minute
	defaultRefreshLeeway = 30 * time.Second
	maxPendingLogins     = 32
)

// Config tunes the session manager.
type Config struct {
	// Providers lists the external identity providers users may pick.
	Providers []string
	// StateTTL bounds how long an external sign-in may stay pending.
	StateTTL time.Duration
	// RefreshLeeway refreshes the access token this long before it expires.
	RefreshLeeway time.Duration
}

type implUseCase struct {
	l        pkgLog.Logger
	auth     repository.AuthRepository
	profiles repository.ProfileRepository
	sessions repository.SessionStore
	events   *broadcast.Broadcaster[account.Event]

	// pending maps an external sign-in state to its PKCE verifier.
	pending   *expirable.LRU[string, string]
	providers map[string]struct{}
	leeway    time.Duration
	now       func() time.Time

	mu       sync.Mutex
	session  account.Session
	restored bool
}

// New creates a new account UseCase.
func New(
	l pkgLog.Logger,
	auth repository.AuthRepository,
	profiles repository.ProfileRepository,
	sessions repository.SessionStore,
	cfg Config,
) *implUseCase {
	ttl := cfg.StateTTL
	if ttl <= 0 {
		ttl = defaultStateTTL
	}
	leeway := cfg.RefreshLeeway
	if leeway <= 0 {
		leeway = defaultRefreshLeeway
	}

	providers := make(map[string]struct{}, len(cfg.Providers))
	for _, p := range cfg.Providers {
		providers[p] = struct{}{}
	}

	return &implUseCase{
		l:         l,
		auth:      auth,
		profiles:  profiles,
		sessions:  sessions,
		events:    broadcast.New[account.Event](0),
		pending:   expirable.NewLRU[string, string](maxPendingLogins, nil, ttl),
		providers: providers,
		leeway:    leeway,
		now:       time.Now,
		session:   account.Anonymous(),
	}
}

var _ account.UseCase = (*implUseCase)(nil)

// Close ends every subscription.
func (uc *implUseCase) Close() {
	uc.events.Close()
}
