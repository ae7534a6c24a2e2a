package middleware

import (
	"github.com/gin-gonic/gin"

	"smartude/internal/account"
	"smartude/pkg/response"
)

const sessionKey = "account.session"

// Auth lets the request through only when the device has an authenticated
// session. The session is stored on the gin context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.account == nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		s, err := m.account.CurrentSession(c.Request.Context())
		if err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.Auth: CurrentSession: %v", err)
		}
		if !s.Authenticated() {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(sessionKey, s)
		c.Next()
	}
}

// SessionFrom returns the session stored by Auth.
func SessionFrom(c *gin.Context) (account.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return account.Anonymous(), false
	}
	s, ok := v.(account.Session)
	return s, ok
}
