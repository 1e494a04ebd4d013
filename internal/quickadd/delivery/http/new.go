package http

import (
	"github.com/gin-gonic/gin"

	"quick-entry/internal/quickadd"
	"quick-entry/pkg/log"
)

// Handler is the public interface for the quick-add HTTP delivery layer.
type Handler interface {
	Preview(c *gin.Context)
	PreviewSimple(c *gin.Context)
	Submit(c *gin.Context)
	Recent(c *gin.Context)
	Shortcuts(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc quickadd.UseCase
}

// New creates a new HTTP handler for the quick-add domain.
func New(l log.Logger, uc quickadd.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
