package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	ctx := context.Background()
	srv.l.Infof(ctx, "HTTP mode: %s environment: %s", srv.mode, srv.environment)
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	srv.gin.POST("/api/command", srv.middleware.RateLimit(), srv.assistantHandler.Command)
	srv.gin.POST("/api/context", srv.assistantHandler.UpdateContext)
	srv.gin.GET("/status", srv.assistantHandler.Status)
	srv.l.Infof(ctx, "Assistant routes registered at /api/command, /api/context, /status")

	if srv.wsHandler != nil {
		srv.gin.GET("/ws", srv.wsHandler.HandleWS)
		srv.l.Infof(ctx, "Executor channel registered at GET /ws")
	} else {
		srv.l.Warn(ctx, "WS handler not configured, executor channel disabled")
	}
}
