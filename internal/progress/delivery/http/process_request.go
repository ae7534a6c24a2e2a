package http

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// processImportReq binds and validates the markdown import body.
func (h *handler) processImportReq(c *gin.Context) (importReq, error) {
	var req importReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processItemID(c *gin.Context) (string, error) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return "", errMissingItemID
	}
	return id, nil
}
