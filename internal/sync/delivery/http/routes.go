package http

import (
	"github.com/gin-gonic/gin"

	"smartude/internal/middleware"
)

// RegisterRoutes maps the sync endpoints. A manual sync needs a session;
// the event stream does not.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	sync := rg.Group("/sync")
	{
		sync.POST("", mw.Auth(), h.Sync)
		sync.GET("/events", h.Events)
	}
}
