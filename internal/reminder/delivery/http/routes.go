package http

import (
	"github.com/gin-gonic/gin"

	"tasq/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	notifications := rg.Group("/notifications")
	{
		notifications.GET("/settings", mw.Auth(), h.Settings)
		notifications.PUT("/settings", mw.Auth(), h.UpdateSettings)
		notifications.POST("/response", mw.Auth(), h.HandleResponse)
	}
}
