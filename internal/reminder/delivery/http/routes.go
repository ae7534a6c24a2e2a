package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the reminder endpoints.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	reminders := rg.Group("/reminders")
	{
		reminders.GET("", h.Plan)
		reminders.POST("", h.Schedule)
	}
}
