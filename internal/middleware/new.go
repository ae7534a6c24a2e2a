package middleware

import (
	"smartude/internal/account"
	"smartude/pkg/log"
)

// Config configures the shared middlewares.
type Config struct {
	RateLimitPerMin int
	RateLimitBurst  int
	MaxClients      int
}

type Middleware struct {
	l       log.Logger
	account account.UseCase
	limiter *rateLimiter
}

// New creates the middleware set. accountUC may be nil when accounts are
// disabled; Auth then rejects every request.
func New(l log.Logger, accountUC account.UseCase, cfg Config) Middleware {
	return Middleware{
		l:       l,
		account: accountUC,
		limiter: newRateLimiter(cfg),
	}
}
