package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smartude/pkg/response"
)

// GetChecklist godoc
// @Summary     Get the onboarding checklist
// @Description Returns every category with its items, completion flags and progress.
// @Tags        Checklist
// @Produce     json
// @Success     200 {object} checklistResp
// @Router      /api/v1/checklist [GET]
func (h *handler) GetChecklist(c *gin.Context) {
	ctx := c.Request.Context()
	response.OK(c, h.newChecklistResp(h.uc.Load(ctx)))
}

// GetProgress godoc
// @Summary     Get local progress
// @Description Returns the stored progress map and the derived counters.
// @Tags        Checklist
// @Produce     json
// @Success     200 {object} progressResp
// @Router      /api/v1/checklist/progress [GET]
func (h *handler) GetProgress(c *gin.Context) {
	ctx := c.Request.Context()
	response.OK(c, h.newProgressResp(h.uc.Load(ctx)))
}

// ClearProgress godoc
// @Summary     Clear local progress
// @Description Irreversibly resets all progress stored on this device.
// @Tags        Checklist
// @Produce     json
// @Success     200 {object} progressResp
// @Router      /api/v1/checklist/progress [DELETE]
func (h *handler) ClearProgress(c *gin.Context) {
	ctx := c.Request.Context()
	h.uc.Clear(ctx)
	h.l.Infof(ctx, "local progress cleared")
	response.OK(c, h.newProgressResp(h.uc.Load(ctx)))
}

// Toggle godoc
// @Summary     Toggle an item
// @Description Flips the completion flag of an item and persists the progress.
// @Tags        Checklist
// @Produce     json
// @Param       id path string true "Item ID"
// @Success     200 {object} toggleResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/checklist/items/{id}/toggle [POST]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processItemID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	p := h.uc.Toggle(ctx, id)
	response.OK(c, h.newToggleResp(id, p))
}

// Export godoc
// @Summary     Export progress
// @Description Renders the checklist with checkboxes, as markdown or as printable HTML.
// @Tags        Checklist
// @Produce     text/markdown
// @Produce     text/html
// @Param       format query string false "markdown (default) or html"
// @Success     200 {string} string "document"
// @Router      /api/v1/checklist/export [GET]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	if c.Query("format") == "html" {
		doc, err := h.uc.ExportHTML(ctx)
		if err != nil {
			h.l.Errorf(ctx, "uc.ExportHTML: %v", err)
			response.Error(c, h.mapError(err), nil)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(doc))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="smartude-checklist.md"`)
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(h.uc.ExportMarkdown(ctx)))
}

// Import godoc
// @Summary     Import progress from markdown
// @Description Reads checkboxes from a markdown document and matches them to items by title.
// @Tags        Checklist
// @Accept      json
// @Produce     json
// @Param       body body importReq true "Markdown document"
// @Success     200 {object} importResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     422 {object} response.Resp "Nothing matched"
// @Router      /api/v1/checklist/import [POST]
func (h *handler) Import(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processImportReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.ImportMarkdown(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.ImportMarkdown: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newImportResp(out))
}
