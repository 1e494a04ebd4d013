package http

import (
	"github.com/gin-gonic/gin"

	"quick-entry/pkg/response"
)

// Preview godoc
// @Summary     Preview a quick-entry line
// @Description Parses a line without storing it and returns the recognised fields plus preview badges.
// @Tags        QuickAdd
// @Accept      json
// @Produce     json
// @Param       body body previewReq true "Line to parse; now overrides the reference time"
// @Success     200  {object} previewResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     413  {object} response.Resp "Text too long"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /api/v1/quick-add/preview [POST]
func (h *handler) Preview(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPreviewReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Preview(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Preview: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newPreviewResp(output))
}

// PreviewSimple godoc
// @Summary     Preview with the token parser
// @Description Recognises only #tags, /calendar, p1..p3 and due:<phrase>.
// @Tags        QuickAdd
// @Accept      json
// @Produce     json
// @Param       body body previewReq true "Line to parse"
// @Success     200  {object} simpleResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     413  {object} response.Resp "Text too long"
// @Router      /api/v1/quick-add/preview/simple [POST]
func (h *handler) PreviewSimple(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPreviewReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.PreviewSimple(ctx, req.toSimpleInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.PreviewSimple: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSimpleResp(output))
}

// Submit godoc
// @Summary     Submit a quick-entry line
// @Description Parses the line, stores it in Memos and creates a calendar event for dated entries.
// @Tags        QuickAdd
// @Accept      json
// @Produce     json
// @Param       body body submitReq true "Line to store"
// @Success     200  {object} submitResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     413  {object} response.Resp "Text too long"
// @Failure     422  {object} response.Resp "No title"
// @Failure     503  {object} response.Resp "Storage unavailable"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/quick-add [POST]
func (h *handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSubmitReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Submit(ctx, h.scope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Submit: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSubmitResp(output))
}

// Recent godoc
// @Summary     List recent entries
// @Description Returns the latest stored quick-add entries, newest first.
// @Tags        QuickAdd
// @Produce     json
// @Param       limit query int  false "Number of entries (default 10, max 50)"
// @Param       open  query bool false "Only todos that are not done"
// @Success     200 {object} recentResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     503 {object} response.Resp "Storage unavailable"
// @Router      /api/v1/quick-add/recent [GET]
func (h *handler) Recent(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRecentReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Recent(ctx, h.scope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Recent: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newRecentResp(output))
}

// Shortcuts godoc
// @Summary     Cheat-sheet
// @Description Returns the static list of supported shortcuts and keywords.
// @Tags        QuickAdd
// @Produce     json
// @Success     200 {object} shortcutsResp
// @Router      /api/v1/quick-add/shortcuts [GET]
func (h *handler) Shortcuts(c *gin.Context) {
	response.OK(c, shortcutsResp{Lines: h.uc.Shortcuts()})
}
