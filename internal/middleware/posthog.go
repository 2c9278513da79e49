package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/ecobudget_backend/internal/utils"
	"github.com/gin-gonic/gin"
)

// untrackedPrefixes never produce analytics events.
var untrackedPrefixes = []string{"/health", "/swagger", "/docs", "/api/v1/auth"}

// EventName derives the analytics event for a matched route, e.g.
// "/api/v1/goal/add-savings" -> "goal_add-savings" and "/api/v1/tokens/:id" -> "tokens_id".
func EventName(fullPath string) string {
	name := strings.TrimPrefix(fullPath, "/api/v1")
	name = strings.Trim(name, "/")
	name = strings.ReplaceAll(name, ":", "")
	return strings.ReplaceAll(name, "/", "_")
}

func tracked(path string) bool {
	if path == "/" {
		return false
	}
	for _, p := range untrackedPrefixes {
		if strings.HasPrefix(path, p) {
			return false
		}
	}
	return true
}

// PosthogMiddleware records one event per successful authenticated request.
// Only route templates are sent, never bodies or amounts.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !posthogClient.IsInitialized() || !tracked(c.Request.URL.Path) {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			return
		}
		event := EventName(c.FullPath())
		if event == "" {
			return
		}

		authMethod, _ := c.Get(string(authMethodKey))
		posthogClient.Enqueue(userID, event, map[string]any{
			"method":      c.Request.Method,
			"route":       c.FullPath(),
			"status_code": c.Writer.Status(),
			"auth_method": authMethod,
		})
	}
}

// PosthogEvent sends a custom event for the authenticated user, e.g. when a savings goal is reached.
func PosthogEvent(c *gin.Context, posthogClient *utils.PosthogClientWrapper, eventName string, properties map[string]any) {
	if !posthogClient.IsInitialized() {
		return
	}
	userID, ok := GetUserIDFromContext(c)
	if !ok {
		return
	}
	props := make(map[string]any, len(properties)+1)
	for k, v := range properties {
		props[k] = v
	}
	props["route"] = c.FullPath()
	posthogClient.Enqueue(userID, eventName, props)
}
