package http

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

func (h *handler) parseArrival(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(time.DateOnly, raw, h.loc)
	if err != nil {
		return time.Time{}, errInvalidArrival
	}
	return t, nil
}

func (h *handler) processPlanReq(c *gin.Context) (time.Time, error) {
	return h.parseArrival(c.Query("arrival"))
}

func (h *handler) processScheduleReq(c *gin.Context) (time.Time, error) {
	var req scheduleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return time.Time{}, errInvalidArrival
	}
	return h.parseArrival(req.Arrival)
}
