package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	accountHTTP "smartude/internal/account/delivery/http"
	"smartude/internal/middleware"
	progressHTTP "smartude/internal/progress/delivery/http"
	reminderHTTP "smartude/internal/reminder/delivery/http"
	syncHTTP "smartude/internal/sync/delivery/http"
)

// Each domain follows the same steps: the use case is built in main,
// the handler here, then its routes are mounted on the /api/v1 group.

func (srv HTTPServer) setupChecklistDomain(ctx context.Context, api *gin.RouterGroup) {
	h := progressHTTP.New(srv.l, srv.progress, srv.checklist)
	progressHTTP.RegisterRoutes(api, h)
	srv.l.Infof(ctx, "Checklist domain registered")
}

func (srv HTTPServer) setupAccountDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	h := accountHTTP.New(srv.l, srv.account)
	accountHTTP.RegisterRoutes(api, h, mw)
	srv.l.Infof(ctx, "Account domain registered")
}

func (srv HTTPServer) setupSyncDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	h := syncHTTP.New(srv.l, srv.sync)
	syncHTTP.RegisterRoutes(api, h, mw)
	srv.l.Infof(ctx, "Sync domain registered")
}

func (srv HTTPServer) setupReminderDomain(ctx context.Context, api *gin.RouterGroup) {
	h := reminderHTTP.New(srv.l, srv.reminder, srv.location)
	reminderHTTP.RegisterRoutes(api, h)
	srv.l.Infof(ctx, "Reminder domain registered")
}
