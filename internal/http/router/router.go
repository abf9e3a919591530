package router

import (
	"github.com/gin-gonic/gin"

	"huddle.app/server/internal/http/handler"
	"huddle.app/server/internal/service"
)

type RouterConfig struct {
	DashboardURL string
	IsProduction bool
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authService := services.Auth()

	authHandler := handler.NewAuthHandler(authService, cfg.DashboardURL, cfg.IsProduction)
	AuthRouter(router.Group("/auth"), authHandler, authService, cfg.IsProduction)

	v1 := router.Group("/api/v1")
	{
		workspaceHandler := handler.NewWorkspaceHandler(
			services.Workspaces(),
			services.Channels(),
			services.Members(),
			services.Conversations(),
		)
		messageHandler := handler.NewMessageHandler(services.Messages(), services.Reactions())
		channelHandler := handler.NewChannelHandler(services.Channels(), services.Messages())

		WorkspaceRouter(v1.Group("/workspaces"), workspaceHandler, messageHandler, authService, cfg.IsProduction)
		ChannelRouter(v1.Group("/channels"), channelHandler, authService, cfg.IsProduction)
		MessageRouter(v1, messageHandler, authService, cfg.IsProduction)
	}
}
