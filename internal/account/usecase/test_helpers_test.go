package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"smartude/internal/account"
	"smartude/internal/account/repository"
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

// mockAuth records calls and returns canned results.
type mockAuth struct {
	mu sync.Mutex

	signUpCalls  int
	signInCalls  int
	refreshCalls int
	signOutCalls int
	getUserCalls int

	signUpResult repository.SignUpResult
	signUpErr    error
	session      repository.RemoteSession
	signInErr    error
	refreshErr   error
	exchangeErr  error
	getUserErr   error
	user         *repository.RemoteUser
	lastVerifier string
}

func (m *mockAuth) SignUp(ctx context.Context, opt repository.SignUpOptions) (repository.SignUpResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.signUpCalls++
	return m.signUpResult, m.signUpErr
}

func (m *mockAuth) SignIn(ctx context.Context, email, password string) (repository.RemoteSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.signInCalls++
	if m.signInErr != nil {
		return repository.RemoteSession{}, m.signInErr
	}
	return m.session, nil
}

func (m *mockAuth) Refresh(ctx context.Context, refreshToken string) (repository.RemoteSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshCalls++
	if m.refreshErr != nil {
		return repository.RemoteSession{}, m.refreshErr
	}
	return m.session, nil
}

func (m *mockAuth) NewVerifier() string { return "verifier-1" }

func (m *mockAuth) AuthorizeURL(provider, state, verifier string) string {
	return "https://auth.example.com/authorize?provider=" + provider + "&state=" + state
}

func (m *mockAuth) ExchangeCode(ctx context.Context, code, verifier string) (repository.RemoteSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastVerifier = verifier
	if m.exchangeErr != nil {
		return repository.RemoteSession{}, m.exchangeErr
	}
	return m.session, nil
}

func (m *mockAuth) SignOut(ctx context.Context, accessToken string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.signOutCalls++
	return nil
}

func (m *mockAuth) GetUser(ctx context.Context, accessToken string) (repository.RemoteUser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getUserCalls++
	if m.getUserErr != nil {
		return repository.RemoteUser{}, m.getUserErr
	}
	if m.user != nil {
		return *m.user, nil
	}
	return repository.RemoteUser{UserID: m.session.UserID, Email: m.session.Email}, nil
}

// mockProfiles is an in-memory ProfileRepository.
type mockProfiles struct {
	mu      sync.Mutex
	rows    map[string]account.UserProfile
	updates []account.ProfileUpdate
	err     error
}

func newMockProfiles() *mockProfiles {
	return &mockProfiles{rows: map[string]account.UserProfile{}}
}

func (m *mockProfiles) CreateProfile(ctx context.Context, token string, p account.UserProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.rows[p.ID] = p
	return nil
}

func (m *mockProfiles) GetProfile(ctx context.Context, token, userID string) (account.UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return account.UserProfile{}, m.err
	}
	p, ok := m.rows[userID]
	if !ok {
		return account.UserProfile{}, repository.ErrProfileNotFound
	}
	return p, nil
}

func (m *mockProfiles) UpdateProfile(ctx context.Context, token, userID string, u account.ProfileUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updates = append(m.updates, u)
	p := m.rows[userID]
	if u.FullName != nil {
		p.FullName = *u.FullName
	}
	p.UpdatedAt = u.UpdatedAt
	m.rows[userID] = p
	return nil
}

// memSessions is an in-memory SessionStore.
type memSessions struct {
	mu      sync.Mutex
	session *account.Session
}

func (m *memSessions) LoadSession(ctx context.Context) (account.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == nil {
		return account.Session{}, repository.ErrNoSession
	}
	return *m.session, nil
}

func (m *memSessions) SaveSession(ctx context.Context, s account.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = &s
	return nil
}

func (m *memSessions) DeleteSession(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = nil
	return nil
}

var testNow = time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	uc       *implUseCase
	auth     *mockAuth
	profiles *mockProfiles
	sessions *memSessions
}

func newFixture() fixture {
	f := fixture{
		auth: &mockAuth{
			session: repository.RemoteSession{
				UserID:       "u-1",
				Email:        "a@example.com",
				AccessToken:  "at-1",
				RefreshToken: "rt-1",
				ExpiresAt:    testNow.Add(time.Hour),
			},
		},
		profiles: newMockProfiles(),
		sessions: &memSessions{},
	}
	f.uc = New(&mockLogger{}, f.auth, f.profiles, f.sessions, Config{Providers: []string{"google"}})
	f.uc.now = func() time.Time { return testNow }
	return f
}

func waitEvent(t *testing.T, ch <-chan account.Event) account.Event {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return account.Event{}
	}
}

func expectNoEvent(t *testing.T, ch <-chan account.Event) {
	t.Helper()
	select {
	case ev := <-ch:
		t.Fatalf("unexpected event: %+v", ev)
	case <-time.After(20 * time.Millisecond):
	}
}
