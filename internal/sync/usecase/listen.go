package usecase

import (
	"context"

	"smartude/internal/account"
	appSync "smartude/internal/sync"
)

// Listen syncs after every sign-in. Failures are reported through the
// event channel and the log only.
func (uc *implUseCase) Listen(ctx context.Context, events <-chan account.Event) {
	uc.l.Infof(ctx, "sync.Listen: listening for sign-in events (mode=%s)", uc.mode)
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if ev.Type != account.EventSignedIn {
				continue
			}
			if _, err := uc.SyncOnSignIn(ctx, ev.UserID); err != nil {
				uc.l.Warnf(ctx, "sync.Listen: SyncOnSignIn(%s): %v", ev.UserID, err)
			}
		}
	}
}

// Subscribe returns the sync outcome channel.
func (uc *implUseCase) Subscribe(ctx context.Context) (<-chan appSync.Event, func()) {
	return uc.events.Subscribe(ctx)
}
