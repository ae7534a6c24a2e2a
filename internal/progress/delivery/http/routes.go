package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the checklist endpoints. Progress lives on the device,
// so none of them require a session.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	checklist := rg.Group("/checklist")
	{
		checklist.GET("", h.GetChecklist)
		checklist.GET("/progress", h.GetProgress)
		checklist.DELETE("/progress", h.ClearProgress)
		checklist.POST("/items/:id/toggle", h.Toggle)
		checklist.GET("/export", h.Export)
		checklist.POST("/import", h.Import)
	}
}
