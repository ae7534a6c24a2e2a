package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"smartude/internal/account"
	"smartude/internal/checklist"
	"smartude/internal/middleware"
	appSync "smartude/internal/sync"
	"smartude/pkg/log"
	"smartude/pkg/response"
)

type stubSync struct {
	out    appSync.SyncOutput
	err    error
	userID string
}

func (s *stubSync) SyncOnSignIn(ctx context.Context, userID string) (appSync.SyncOutput, error) {
	s.userID = userID
	return s.out, s.err
}

func (s *stubSync) Listen(ctx context.Context, events <-chan account.Event) {}

func (s *stubSync) Subscribe(ctx context.Context) (<-chan appSync.Event, func()) {
	ch := make(chan appSync.Event)
	close(ch)
	return ch, func() {}
}

type stubAccount struct {
	account.UseCase
	session account.Session
}

func (s stubAccount) CurrentSession(ctx context.Context) (account.Session, error) {
	return s.session, nil
}

func newRouter(uc appSync.UseCase, acc account.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := log.NewNop()
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(l, uc), middleware.New(l, acc, middleware.Config{}))
	return r
}

func TestSync(t *testing.T) {
	signedIn := stubAccount{session: account.Session{State: account.StateAuthenticated, UserID: "u-1"}}

	t.Run("requires a session", func(t *testing.T) {
		r := newRouter(&stubSync{}, stubAccount{session: account.Anonymous()})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/sync", nil))
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("syncs the session user", func(t *testing.T) {
		uc := &stubSync{out: appSync.SyncOutput{
			Outcome:  appSync.OutcomeSucceeded,
			Mode:     appSync.ModePush,
			Uploaded: 2,
			Progress: checklist.ProgressMap{"a": true, "b": false},
		}}
		r := newRouter(uc, signedIn)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/sync", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if uc.userID != "u-1" {
			t.Errorf("expected sync for u-1, got %q", uc.userID)
		}

		var env struct {
			response.Resp
			Data syncResp `json:"data"`
		}
		json.Unmarshal(w.Body.Bytes(), &env)
		if env.Data.Outcome != "succeeded" || env.Data.Uploaded != 2 {
			t.Errorf("unexpected response %+v", env.Data)
		}
	})

	t.Run("service unavailable", func(t *testing.T) {
		uc := &stubSync{err: &appSync.SyncError{Kind: account.ServiceUnavailable}}
		r := newRouter(uc, signedIn)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/sync", nil))
		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("expected 503, got %d", w.Code)
		}
	})
}

func TestEvents_EndsWhenChannelCloses(t *testing.T) {
	r := newRouter(&stubSync{}, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/sync/events", nil))
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}
