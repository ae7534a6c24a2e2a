package http

import (
	"github.com/gin-gonic/gin"

	"smartude/internal/reminder"
	"smartude/pkg/response"
)

// Plan godoc
// @Summary     Preview deadline reminders
// @Description Lists incomplete items with a deadline, resolved against the arrival date.
// @Tags        Reminders
// @Produce     json
// @Param       arrival query string true "Arrival date (YYYY-MM-DD)"
// @Success     200 {object} planResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/reminders [GET]
func (h *handler) Plan(c *gin.Context) {
	ctx := c.Request.Context()

	arrival, err := h.processPlanReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	response.OK(c, h.newPlanResp(arrival, h.uc.Plan(ctx, arrival)))
}

// Schedule godoc
// @Summary     Schedule deadline reminders
// @Description Creates one calendar event per upcoming deadline. Items that already have one are skipped.
// @Tags        Reminders
// @Accept      json
// @Produce     json
// @Param       body body scheduleReq true "Arrival date"
// @Success     200 {object} scheduleResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     501 {object} response.Resp "Calendar not configured"
// @Failure     502 {object} response.Resp "Calendar request failed"
// @Router      /api/v1/reminders [POST]
func (h *handler) Schedule(c *gin.Context) {
	ctx := c.Request.Context()

	arrival, err := h.processScheduleReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Schedule(ctx, reminder.ScheduleInput{Arrival: arrival})
	if err != nil {
		h.l.Errorf(ctx, "uc.Schedule: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newScheduleResp(out))
}
