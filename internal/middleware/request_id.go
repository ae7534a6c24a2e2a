package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"smartude/pkg/log"
)

const HeaderRequestID = "X-Request-ID"

// RequestID tags the request context with an id that every log line
// written for the request carries.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
