package router

import (
	"github.com/gin-gonic/gin"

	"huddle.app/server/internal/http/handler"
	"huddle.app/server/internal/http/middleware"
	"huddle.app/server/internal/service"
)

func ChannelRouter(rg *gin.RouterGroup, h *handler.ChannelHandler, authService service.AuthService, secureCookies bool) {
	rg.Use(middleware.RequireAuth(authService, secureCookies))

	rg.GET("/:id", h.Get)
	rg.PATCH("/:id", h.Rename)
	rg.DELETE("/:id", h.Delete)
	rg.GET("/:id/messages", h.ListMessages)
}
