package http

import (
	"io"

	"github.com/gin-gonic/gin"

	"smartude/internal/middleware"
	"smartude/pkg/response"
)

// Sync godoc
// @Summary     Sync progress now
// @Description Uploads the local progress to the signed-in account.
// @Tags        Sync
// @Produce     json
// @Success     200 {object} syncResp
// @Failure     401 {object} response.Resp "Not signed in"
// @Failure     503 {object} response.Resp "Remote service unavailable"
// @Router      /api/v1/sync [POST]
func (h *handler) Sync(c *gin.Context) {
	ctx := c.Request.Context()

	session, ok := middleware.SessionFrom(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	out, err := h.uc.SyncOnSignIn(ctx, session.UserID)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSyncResp(out))
}

// Events godoc
// @Summary     Stream sync notifications
// @Description Server-sent events, one per finished sync.
// @Tags        Sync
// @Produce     text/event-stream
// @Router      /api/v1/sync/events [GET]
func (h *handler) Events(c *gin.Context) {
	events, cancel := h.uc.Subscribe(c.Request.Context())
	defer cancel()

	c.Stream(func(w io.Writer) bool {
		ev, ok := <-events
		if !ok {
			return false
		}
		c.SSEvent(string(ev.Outcome), newEventResp(ev))
		return true
	})
}
