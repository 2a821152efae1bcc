package http

import (
	"github.com/gin-gonic/gin"

	"tasq/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Chat hits the
// model on every message, so it carries the per-user rate limit.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	assistant := rg.Group("/assistant")
	{
		assistant.POST("/chat", mw.Auth(), mw.RateLimit(), h.Chat)
	}
}
