package http

import (
	"github.com/gin-gonic/gin"

	"tasq/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes require an identity.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("", mw.Auth(), h.Create)
		tasks.GET("", mw.Auth(), h.List)
		tasks.GET("/trend", mw.Auth(), h.Trend)
		tasks.GET("/:id", mw.Auth(), h.Detail)
		tasks.POST("/:id/toggle", mw.Auth(), h.Toggle)
		tasks.DELETE("/:id", mw.Auth(), h.Delete)
	}
}
