package httpserver

import (
	"github.com/gin-gonic/gin"

	"smartude/pkg/response"
)

const (
	HealthMessage = "SmartUDE onboarding API"
	HealthVersion = "1.0.0"
	ServiceName   = "smartude"
)

func (srv HTTPServer) status(state string) gin.H {
	return gin.H{
		"status":  state,
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	}
}

// healthCheck godoc
// @Summary     Health Check
// @Description Check if the API is healthy
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]interface{} "API is healthy"
// @Router      /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.status("healthy"))
}

// readyCheck godoc
// @Summary     Readiness Check
// @Description Ready once the checklist catalog is loaded.
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]interface{} "API is ready"
// @Router      /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	body := srv.status("ready")
	body["checklist_items"] = srv.checklist.Catalog().TotalCount()
	response.OK(c, body)
}

// liveCheck godoc
// @Summary     Liveness Check
// @Description Check if the process is alive
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]interface{} "API is alive"
// @Router      /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.status("alive"))
}
