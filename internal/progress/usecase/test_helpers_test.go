package usecase

import (
	"context"
	"errors"
	"sync"

	"smartude/internal/checklist"
	"smartude/internal/progress/repository"
	"smartude/internal/progress/repository/kvstore"
	"smartude/pkg/kv"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func newTestUseCase(store kv.Store) *implUseCase {
	repo := kvstore.New(store, "smartude-checklist", &mockLogger{})
	return New(&mockLogger{}, repo, checklist.New(checklist.Default))
}

// flakyRepo fails reads or writes on demand.
type flakyRepo struct {
	mu        sync.Mutex
	data      checklist.ProgressMap
	getErr    error
	saveErr   error
	saveCalls int
}

func (r *flakyRepo) GetProgress(ctx context.Context) (checklist.ProgressMap, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.getErr != nil {
		return nil, r.getErr
	}
	if r.data == nil {
		return nil, repository.ErrNotFound
	}
	return r.data.Clone(), nil
}

func (r *flakyRepo) SaveProgress(ctx context.Context, p checklist.ProgressMap) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saveCalls++
	if r.saveErr != nil {
		return r.saveErr
	}
	r.data = p.Clone()
	return nil
}

func (r *flakyRepo) DeleteProgress(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = nil
	return nil
}

var errDisk = errors.New("disk full")
