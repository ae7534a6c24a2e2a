package usecase

import (
	"context"
	"errors"

	"smartude/internal/account"
	"smartude/internal/account/repository"
)

// adopt makes rs the device session, persists it and announces SignedIn.
func (uc *implUseCase) adopt(ctx context.Context, rs repository.RemoteSession) account.Session {
	s := account.Session{
		State:        account.StateAuthenticated,
		UserID:       rs.UserID,
		Email:        rs.Email,
		Metadata:     rs.Metadata,
		AccessToken:  rs.AccessToken,
		RefreshToken: rs.RefreshToken,
		ExpiresAt:    rs.ExpiresAt,
	}
	if exp, sub, ok := tokenClaims(rs.AccessToken); ok {
		if s.ExpiresAt.IsZero() {
			s.ExpiresAt = exp
		}
		if s.UserID == "" {
			s.UserID = sub
		}
	}

	uc.mu.Lock()
	uc.session = s
	uc.restored = true
	uc.persistLocked(ctx, s)
	uc.mu.Unlock()

	uc.publish(account.EventSignedIn, s)
	return s
}

// persistLocked writes s to the device. Failures are logged only.
// Caller must hold uc.mu.
func (uc *implUseCase) persistLocked(ctx context.Context, s account.Session) {
	if err := uc.sessions.SaveSession(ctx, s); err != nil {
		uc.l.Errorf(ctx, "account.persist: SaveSession: %v", err)
	}
}

// forgetLocked drops the session from memory and from the device.
// Caller must hold uc.mu.
func (uc *implUseCase) forgetLocked(ctx context.Context) {
	uc.session = account.Anonymous()
	uc.restored = true
	if err := uc.sessions.DeleteSession(ctx); err != nil {
		uc.l.Errorf(ctx, "account.forget: DeleteSession: %v", err)
	}
}

func (uc *implUseCase) publish(t account.EventType, s account.Session) {
	uc.events.Publish(account.Event{
		Type:   t,
		UserID: s.UserID,
		Email:  s.Email,
		At:     uc.now(),
	})
}

// restoreLocked loads the remembered session once per process.
// Caller must hold uc.mu.
func (uc *implUseCase) restoreLocked(ctx context.Context) {
	if uc.restored {
		return
	}
	uc.restored = true

	s, err := uc.sessions.LoadSession(ctx)
	switch {
	case err == nil:
		uc.session = s
	case errors.Is(err, repository.ErrNoSession):
		uc.session = account.Anonymous()
	case errors.Is(err, repository.ErrSessionDecode):
		uc.l.Warnf(ctx, "account.restore: discarding unreadable session: %v", err)
		uc.forgetLocked(ctx)
	default:
		uc.l.Warnf(ctx, "account.restore: LoadSession: %v", err)
		uc.session = account.Anonymous()
		// allow a later call to try again
		uc.restored = false
	}
}

// CurrentSession returns the device session, restoring and refreshing it as
// needed. A session that has not expired is confirmed with the identity
// service; a rejected access token goes through the refresh path.
func (uc *implUseCase) CurrentSession(ctx context.Context) (account.Session, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.restoreLocked(ctx)
	s := uc.session
	if s.State != account.StateAuthenticated {
		return s, nil
	}

	if s.ExpiresAt.IsZero() {
		if exp, _, ok := tokenClaims(s.AccessToken); ok {
			s.ExpiresAt = exp
		}
	}
	if !s.Expired(uc.now().Add(uc.leeway)) {
		u, err := uc.auth.GetUser(ctx, s.AccessToken)
		switch {
		case err == nil && (u.UserID == "" || u.UserID == s.UserID):
			if u.Email != "" {
				s.Email = u.Email
			}
			if u.Metadata != nil {
				s.Metadata = u.Metadata
			}
			uc.session = s
			return s, nil
		case err == nil:
			uc.l.Warnf(ctx, "account.CurrentSession: token belongs to %s, not %s", u.UserID, s.UserID)
			uc.forgetLocked(ctx)
			uc.publish(account.EventSignedOut, s)
			return account.Anonymous(), nil
		case account.KindOf(err) == account.ServiceUnavailable:
			uc.l.Warnf(ctx, "account.CurrentSession: GetUser: %v", err)
			return account.Anonymous(), err
		}
		uc.l.Infof(ctx, "account.CurrentSession: access token rejected, refreshing: %v", err)
	}

	return uc.refreshLocked(ctx, s)
}

// refreshLocked trades the refresh token for a new pair. A rejected refresh
// token signs the device out.
// Caller must hold uc.mu.
func (uc *implUseCase) refreshLocked(ctx context.Context, s account.Session) (account.Session, error) {
	rs, err := uc.auth.Refresh(ctx, s.RefreshToken)
	if err != nil {
		if account.KindOf(err) == account.ServiceUnavailable {
			// keep the stored session so a later call can retry
			uc.l.Warnf(ctx, "account.CurrentSession: Refresh: %v", err)
			return account.Anonymous(), err
		}

		uc.l.Infof(ctx, "account.CurrentSession: refresh rejected, signing out: %v", err)
		uc.forgetLocked(ctx)
		uc.publish(account.EventSignedOut, s)
		return account.Anonymous(), nil
	}

	next := s
	next.AccessToken = rs.AccessToken
	next.RefreshToken = rs.RefreshToken
	next.ExpiresAt = rs.ExpiresAt
	if next.ExpiresAt.IsZero() {
		if exp, _, ok := tokenClaims(rs.AccessToken); ok {
			next.ExpiresAt = exp
		}
	}
	if rs.UserID != "" {
		next.UserID = rs.UserID
		next.Email = rs.Email
	}

	uc.session = next
	uc.persistLocked(ctx, next)
	return next, nil
}

// SignOut ends the session. Remote revocation is best effort.
func (uc *implUseCase) SignOut(ctx context.Context) error {
	uc.mu.Lock()
	uc.restoreLocked(ctx)
	s := uc.session
	if s.State == account.StateAnonymous {
		uc.mu.Unlock()
		return nil
	}
	uc.forgetLocked(ctx)
	uc.mu.Unlock()

	if s.AccessToken != "" {
		if err := uc.auth.SignOut(ctx, s.AccessToken); err != nil {
			uc.l.Warnf(ctx, "account.SignOut: remote sign out failed: %v", err)
		}
	}

	if s.State == account.StateAuthenticated {
		uc.publish(account.EventSignedOut, s)
	}
	return nil
}

// Subscribe returns the session notification channel.
func (uc *implUseCase) Subscribe(ctx context.Context) (<-chan account.Event, func()) {
	return uc.events.Subscribe(ctx)
}
