package http

import (
	"github.com/gin-gonic/gin"

	"quick-entry/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every route is rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	qa := rg.Group("/quick-add", mw.RateLimit())
	{
		qa.POST("", h.Submit)
		qa.POST("/preview", h.Preview)
		qa.POST("/preview/simple", h.PreviewSimple)
		qa.GET("/recent", h.Recent)
		qa.GET("/shortcuts", h.Shortcuts)
	}
}
