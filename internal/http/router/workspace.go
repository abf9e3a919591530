package router

import (
	"github.com/gin-gonic/gin"

	"huddle.app/server/internal/http/handler"
	"huddle.app/server/internal/http/middleware"
	"huddle.app/server/internal/service"
)

func WorkspaceRouter(rg *gin.RouterGroup, h *handler.WorkspaceHandler, mh *handler.MessageHandler, authService service.AuthService, secureCookies bool) {
	// Discovery-safe reads degrade for guests instead of rejecting them.
	rg.GET("", middleware.OptionalAuth(authService), h.List)
	rg.GET("/:id/preview", middleware.OptionalAuth(authService), h.Preview)

	authed := rg.Group("", middleware.RequireAuth(authService, secureCookies))
	{
		authed.POST("", h.Create)
		authed.GET("/:id", h.Get)
		authed.PATCH("/:id", h.Rename)
		authed.DELETE("/:id", h.Delete)
		authed.POST("/:id/join", h.Join)
		authed.POST("/:id/join-code", h.RotateJoinCode)

		authed.GET("/:id/channels", h.ListChannels)
		authed.POST("/:id/channels", h.CreateChannel)

		authed.GET("/:id/members", h.ListMembers)
		authed.GET("/:id/members/me", h.CurrentMember)

		authed.POST("/:id/conversations", h.CreateConversation)
		authed.POST("/:id/messages", mh.Post)
	}
}
