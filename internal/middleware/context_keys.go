package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// contextKey is a private type for keys stored in gin and request contexts.
type contextKey string

const (
	// userIDKey holds the authenticated user's ID.
	userIDKey = contextKey("userID")
	// authMethodKey records which middleware authenticated the request.
	authMethodKey = contextKey("authMethod")
	loggerCtxKey  = contextKey("logger")
)

const (
	AuthMethodJWT      = "jwt"
	AuthMethodAPIToken = "api_token"
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if v, exists := c.Get(string(userIDKey)); exists {
		userID, ok := v.(string)
		return userID, ok && userID != ""
	}
	// check in the request context as well
	if v, ok := c.Request.Context().Value(userIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// setAuthenticatedUser stores userID in both contexts and tags the request logger with it.
func setAuthenticatedUser(c *gin.Context, userID, method string) {
	c.Set(string(userIDKey), userID)
	c.Set(string(authMethodKey), method)

	logger := GetLoggerFromCtx(c.Request.Context()).With("user_id", userID)
	ctx := context.WithValue(c.Request.Context(), userIDKey, userID)
	ctx = context.WithValue(ctx, loggerCtxKey, logger)
	c.Request = c.Request.WithContext(ctx)
}
