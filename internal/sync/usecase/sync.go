package usecase

import (
	"context"
	"errors"

	"smartude/internal/account"
	"smartude/internal/checklist"
	appSync "smartude/internal/sync"
	"smartude/internal/sync/repository"
)

// SyncOnSignIn reconciles the local snapshot with the remote record of userID.
func (uc *implUseCase) SyncOnSignIn(ctx context.Context, userID string) (appSync.SyncOutput, error) {
	var snapshot checklist.ProgressMap
	var readErr error
	if uc.mode == appSync.ModeMerge {
		// The union is written back locally, so it must start from what is really stored.
		snapshot, readErr = uc.progress.Snapshot(ctx)
	} else {
		snapshot = uc.progress.Load(ctx)
	}
	out := appSync.SyncOutput{Mode: uc.mode, Progress: snapshot}
	if readErr != nil {
		return uc.fail(ctx, userID, out, account.ServiceUnavailable, readErr)
	}

	if uc.mode == appSync.ModePush && len(snapshot) == 0 {
		return uc.skip(ctx, userID, out, "no local progress to upload")
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	session, err := uc.sessions.CurrentSession(ctx)
	if err != nil {
		return uc.fail(ctx, userID, out, account.ServiceUnavailable, err)
	}
	if !session.Authenticated() || session.UserID != userID {
		return uc.fail(ctx, userID, out, account.NotAuthenticated, nil)
	}

	upload := snapshot
	if uc.mode == appSync.ModeMerge {
		merged, pulled, changedRemote, err := uc.merge(ctx, session, snapshot)
		if err != nil {
			return uc.fail(ctx, userID, out, kindOf(err), err)
		}
		out.Pulled = pulled
		out.Progress = merged
		if !changedRemote {
			return uc.skip(ctx, userID, out, "remote record already up to date")
		}
		upload = merged
	}

	rec := repository.Record{
		UserID:    userID,
		Progress:  upload,
		UpdatedAt: uc.now().UTC(),
	}
	if err := uc.remote.Push(ctx, session.AccessToken, rec); err != nil {
		return uc.fail(ctx, userID, out, kindOf(err), err)
	}

	out.Outcome = appSync.OutcomeSucceeded
	out.Uploaded = len(upload)
	uc.l.Infof(ctx, "sync.SyncOnSignIn: uploaded %d entries for %s (%s)", out.Uploaded, userID, uc.mode)
	uc.publish(appSync.OutcomeSucceeded, userID, out.Uploaded, "progress synced")
	return out, nil
}

// merge unions the remote record into local progress, completed winning.
// The union is written locally; changedRemote reports whether the remote
// record still differs from it.
func (uc *implUseCase) merge(ctx context.Context, session account.Session, local checklist.ProgressMap) (checklist.ProgressMap, int, bool, error) {
	rec, err := uc.remote.Pull(ctx, session.AccessToken, session.UserID)
	switch {
	case err == nil:
	case errors.Is(err, repository.ErrNoRecord):
		rec = repository.Record{Progress: checklist.ProgressMap{}}
	default:
		return nil, 0, false, err
	}

	merged := local.Clone()
	for id, done := range rec.Progress {
		merged[id] = merged[id] || done
	}

	if !merged.Equal(local) {
		merged = uc.progress.Replace(ctx, merged)
	}
	if len(merged) == 0 {
		return merged, len(rec.Progress), false, nil
	}
	return merged, len(rec.Progress), !merged.Equal(rec.Progress), nil
}

func (uc *implUseCase) skip(ctx context.Context, userID string, out appSync.SyncOutput, msg string) (appSync.SyncOutput, error) {
	out.Outcome = appSync.OutcomeSkipped
	uc.l.Debugf(ctx, "sync.SyncOnSignIn: skipped for %s: %s", userID, msg)
	uc.publish(appSync.OutcomeSkipped, userID, 0, msg)
	return out, nil
}

// fail reports a failed sync. Nothing is retried or rolled back.
func (uc *implUseCase) fail(ctx context.Context, userID string, out appSync.SyncOutput, kind account.Kind, cause error) (appSync.SyncOutput, error) {
	out.Outcome = appSync.OutcomeFailed
	uc.l.Warnf(ctx, "sync.SyncOnSignIn: failed for %s: %s: %v", userID, kind, cause)
	uc.publish(appSync.OutcomeFailed, userID, 0, kind.Message())
	return out, &appSync.SyncError{Kind: kind, Err: cause}
}

func (uc *implUseCase) publish(outcome appSync.Outcome, userID string, items int, msg string) {
	uc.events.Publish(appSync.Event{
		Outcome: outcome,
		UserID:  userID,
		Items:   items,
		Message: msg,
		At:      uc.now(),
	})
}

func kindOf(err error) account.Kind {
	if errors.Is(err, repository.ErrUnauthorized) {
		return account.NotAuthenticated
	}
	return account.ServiceUnavailable
}
