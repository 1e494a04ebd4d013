package http

import (
	"github.com/gin-gonic/gin"

	"quick-entry/internal/model"
)

// processPreviewReq binds the preview request body.
func (h *handler) processPreviewReq(c *gin.Context) (previewReq, error) {
	var req previewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processSubmitReq binds and validates the submit request body.
func (h *handler) processSubmitReq(c *gin.Context) (submitReq, error) {
	var req submitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processRecentReq binds the recent query parameters.
func (h *handler) processRecentReq(c *gin.Context) (recentReq, error) {
	var req recentReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) scope(c *gin.Context) model.Scope {
	return model.Scope{
		UserID: "http_" + c.ClientIP(),
		Source: model.SourceHTTP,
	}
}
