package router

import (
	"github.com/gin-gonic/gin"

	"huddle.app/server/internal/http/handler"
	"huddle.app/server/internal/http/middleware"
	"huddle.app/server/internal/service"
)

func AuthRouter(rg *gin.RouterGroup, h *handler.AuthHandler, authService service.AuthService, secureCookies bool) {
	rg.GET("/login", h.Login)
	rg.GET("/callback", h.Callback)
	rg.POST("/logout", middleware.OptionalAuth(authService), h.Logout)
	rg.GET("/me", middleware.RequireAuth(authService, secureCookies), h.Me)
}
