package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	assistantHTTP "tasq/internal/assistant/delivery/http"
	reminderHTTP "tasq/internal/reminder/delivery/http"
	taskHTTP "tasq/internal/task/delivery/http"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	taskHTTP.RegisterRoutes(api, taskHTTP.New(srv.l, srv.taskUC), srv.mw)
	reminderHTTP.RegisterRoutes(api, reminderHTTP.New(srv.l, srv.reminderUC), srv.mw)
	assistantHTTP.RegisterRoutes(api, assistantHTTP.New(srv.l, srv.assistantUC), srv.mw)

	srv.l.Infof(ctx, "Domain routes registered under /api/v1")
}

// Engine exposes the underlying router, for tests.
func (srv *HTTPServer) Engine() *gin.Engine {
	return srv.gin
}
