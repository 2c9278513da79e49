package middleware

import (
	"log/slog"

	portssvc "github.com/SscSPs/ecobudget_backend/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// APITokenHeader carries a personal API token.
const APITokenHeader = "x-api-key"

// APITokenAuth authenticates requests carrying a personal API token.
// Requests without one, or with an invalid one, fall through to AuthMiddleware.
func APITokenAuth(tokenSvc portssvc.APITokenSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader(APITokenHeader)
		if apiKey == "" {
			c.Next()
			return
		}

		user, err := tokenSvc.ValidateToken(c.Request.Context(), apiKey)
		if err != nil {
			GetLoggerFromCtx(c.Request.Context()).Warn("API token rejected", slog.String("error", err.Error()))
			c.Next()
			return
		}

		setAuthenticatedUser(c, user.UserID, AuthMethodAPIToken)
		c.Next()
	}
}
