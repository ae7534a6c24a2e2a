package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"smartude/internal/account"
	"smartude/pkg/log"
)

// stubAccount implements account.UseCase with a fixed session.
type stubAccount struct {
	account.UseCase
	session account.Session
	err     error
}

func (s stubAccount) CurrentSession(ctx context.Context) (account.Session, error) {
	return s.session, s.err
}

func newRouter(mw Middleware, handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers = append(handlers, func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/", handlers...)
	return r
}

func TestRateLimit(t *testing.T) {
	mw := New(log.NewNop(), nil, Config{RateLimitPerMin: 60, RateLimitBurst: 2})
	r := newRouter(mw, mw.RateLimit())

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	if codes[0] != http.StatusNoContent || codes[1] != http.StatusNoContent {
		t.Errorf("expected burst of 2 to pass, got %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Errorf("expected third request to be throttled, got %v", codes)
	}

	// a different client has its own bucket
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "10.0.0.2, 172.16.0.1")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Errorf("expected other client to pass, got %d", w.Code)
	}
}

func TestExtractIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.5:5555"
	if ip := extractIP(req); ip != "192.168.1.5" {
		t.Errorf("expected remote addr host, got %q", ip)
	}
	req.Header.Set("X-Real-IP", "1.2.3.4")
	if ip := extractIP(req); ip != "1.2.3.4" {
		t.Errorf("expected X-Real-IP, got %q", ip)
	}
}

func TestRequestID(t *testing.T) {
	mw := New(log.NewNop(), nil, Config{})
	r := newRouter(mw, mw.RequestID())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Header().Get(HeaderRequestID) == "" {
		t.Errorf("expected generated request id")
	}

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "abc")
	r.ServeHTTP(w, req)
	if got := w.Header().Get(HeaderRequestID); got != "abc" {
		t.Errorf("expected incoming id to be kept, got %q", got)
	}
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name string
		acc  account.UseCase
		want int
	}{
		{"accounts disabled", nil, http.StatusUnauthorized},
		{"anonymous", stubAccount{session: account.Anonymous()}, http.StatusUnauthorized},
		{"pending", stubAccount{session: account.Session{State: account.StatePendingConfirmation, UserID: "u"}}, http.StatusUnauthorized},
		{"authenticated", stubAccount{session: account.Session{State: account.StateAuthenticated, UserID: "u"}}, http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw := New(log.NewNop(), tt.acc, Config{})
			r := newRouter(mw, mw.Auth(), func(c *gin.Context) {
				if _, ok := SessionFrom(c); !ok {
					t.Errorf("expected session on context")
				}
			})
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
			if w.Code != tt.want {
				t.Errorf("expected %d, got %d", tt.want, w.Code)
			}
		})
	}
}
