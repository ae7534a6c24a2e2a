package http

import (
	"github.com/gin-gonic/gin"

	"smartude/internal/middleware"
)

// RegisterRoutes maps the auth and profile endpoints. Credential endpoints
// are rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	auth := rg.Group("/auth")
	{
		auth.POST("/signup", mw.RateLimit(), h.SignUp)
		auth.POST("/signin", mw.RateLimit(), h.SignIn)
		auth.POST("/signout", h.SignOut)
		auth.GET("/session", h.Session)
		auth.GET("/oauth/:provider", mw.RateLimit(), h.ExternalSignIn)
		auth.GET("/callback", mw.RateLimit(), h.Callback)
	}

	profile := rg.Group("/account")
	{
		profile.GET("/profile", mw.Auth(), h.GetProfile)
		profile.PUT("/profile", mw.Auth(), h.UpdateProfile)
	}
}
