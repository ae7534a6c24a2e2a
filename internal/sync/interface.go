package sync

import (
	"context"

	"smartude/internal/account"
)

// UseCase reconciles device-local progress with the remote record of the
// signed-in user.
type UseCase interface {
	// SyncOnSignIn takes one snapshot of local progress and writes it to the
	// remote record of userID. An empty snapshot writes nothing.
	SyncOnSignIn(ctx context.Context, userID string) (SyncOutput, error)

	// Listen runs SyncOnSignIn for every SignedIn event until ctx is done
	// or events is closed.
	Listen(ctx context.Context, events <-chan account.Event)

	// Subscribe delivers the outcome of every sync.
	Subscribe(ctx context.Context) (<-chan Event, func())
}
