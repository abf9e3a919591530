package router

import (
	"github.com/gin-gonic/gin"

	"huddle.app/server/internal/http/handler"
	"huddle.app/server/internal/http/middleware"
	"huddle.app/server/internal/service"
)

func MessageRouter(rg *gin.RouterGroup, h *handler.MessageHandler, authService service.AuthService, secureCookies bool) {
	rg.GET("/conversations/:id/messages", middleware.RequireAuth(authService, secureCookies), h.ListConversationMessages)
	rg.POST("/messages/:id/reactions", middleware.RequireAuth(authService, secureCookies), h.ToggleReaction)
}
