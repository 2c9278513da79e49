package handlers

import (
	"fmt"
	"net/http"

	"github.com/SscSPs/ecobudget_backend/cmd/docs"
	portssvc "github.com/SscSPs/ecobudget_backend/internal/core/ports/services"
	"github.com/SscSPs/ecobudget_backend/internal/middleware"
	"github.com/SscSPs/ecobudget_backend/internal/platform/config"
	"github.com/SscSPs/ecobudget_backend/internal/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// posthog may be nil when analytics are disabled.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthog *utils.PosthogClientWrapper,
) error {
	r.GET("/", getHome)
	r.GET("/health", getHealth)

	loginLimiter, err := middleware.NewMemoryLimiter(cfg.LoginRateLimit)
	if err != nil {
		return fmt.Errorf("failed to configure login rate limit: %w", err)
	}

	public := r.Group("/api/v1")
	RegisterAuthRoutes(public, services, middleware.RateLimit(loginLimiter))
	RegisterCarbonFactorRoutes(public, services.Carbon)

	setupAPIV1Routes(r, cfg, services, posthog)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the authenticated /api/v1 group.
// API tokens are checked first; requests without one must carry a JWT.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
	posthog *utils.PosthogClientWrapper,
) {
	v1 := r.Group("/api/v1",
		middleware.APITokenAuth(service.APIToken),
		middleware.AuthMiddleware(cfg.JWTSecret),
	)

	RegisterUserRoutes(v1, service.User, service.APIToken)
	RegisterTransactionRoutes(v1, service.Transaction)
	RegisterAnalysisRoutes(v1, service.Analysis)
	RegisterBudgetRoutes(v1, service.Budget)
	RegisterCarbonRoutes(v1, service.Carbon)
	RegisterGoalRoutes(v1, service.Goal, posthog)
	RegisterReflectionRoutes(v1, service.Reflection)
	RegisterPredictionRoutes(v1, service.Prediction)
	RegisterAPITokenRoutes(v1, service.APIToken)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
}
