package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"huddle.app/server/common/logger"
	"huddle.app/server/internal/model"
	"huddle.app/server/internal/service"
)

type contextKey string

const (
	sessionCookieName              = "huddle_session"
	userContextKey      contextKey = "user"
	sessionIDContextKey contextKey = "session_id"
)

// RequireAuth rejects requests without a valid session. secureCookies must
// match the flag the session cookie was set with, so an expired session is
// cleared with the same attributes.
func RequireAuth(authService service.AuthService, secureCookies bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := getSessionID(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}

		user, err := authService.ValidateSession(c.Request.Context(), sessionID)
		if err != nil {
			if errors.Is(err, service.ErrSessionExpired) || errors.Is(err, service.ErrUserNotFound) {
				clearSessionCookie(c, secureCookies)
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to validate session"})
			return
		}

		c.Request = c.Request.WithContext(withUser(c.Request.Context(), user, sessionID))
		c.Next()
	}
}

// OptionalAuth attaches the user to context if a valid session exists, but never aborts.
// Use for routes that work for both guests and authenticated users.
func OptionalAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := getSessionID(c)
		if err != nil {
			c.Next()
			return
		}

		user, err := authService.ValidateSession(c.Request.Context(), sessionID)
		if err != nil {
			c.Next()
			return
		}

		c.Request = c.Request.WithContext(withUser(c.Request.Context(), user, sessionID))
		c.Next()
	}
}

func withUser(ctx context.Context, user *model.User, sessionID int64) context.Context {
	ctx = context.WithValue(ctx, userContextKey, user)
	ctx = context.WithValue(ctx, sessionIDContextKey, sessionID)
	return logger.WithLogFields(ctx, logger.LogFields{UserID: logger.Ptr(user.ID)})
}

func GetUser(ctx context.Context) *model.User {
	user, _ := ctx.Value(userContextKey).(*model.User)
	return user
}

func GetSessionID(ctx context.Context) int64 {
	sessionID, _ := ctx.Value(sessionIDContextKey).(int64)
	return sessionID
}

func getSessionID(c *gin.Context) (int64, error) {
	cookie, err := c.Cookie(sessionCookieName)
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(cookie, 10, 64)
}

func clearSessionCookie(c *gin.Context, secure bool) {
	c.SetCookie(
		sessionCookieName,
		"",
		-1,
		"/",
		"",
		secure,
		true,
	)
}
