package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/ecobudget_backend/internal/apperrors"
	"github.com/SscSPs/ecobudget_backend/internal/core/domain"
	portssvc "github.com/SscSPs/ecobudget_backend/internal/core/ports/services"
	"github.com/SscSPs/ecobudget_backend/internal/dto"
	"github.com/SscSPs/ecobudget_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// authHandler handles local sign-up and login.
type authHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
}

func newAuthHandler(us portssvc.UserSvcFacade, ts portssvc.TokenSvcFacade) *authHandler {
	return &authHandler{userService: us, tokenService: ts}
}

// RegisterAuthRoutes registers the public authentication routes. limit guards every credential endpoint.
func RegisterAuthRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer, limit gin.HandlerFunc) {
	h := newAuthHandler(services.User, services.TokenService)
	g := newGoogleOAuthHandler(services.GoogleOAuthHandler, services.User, services.TokenService)

	auth := rg.Group("/auth", limit)
	{
		auth.POST("/signup", h.signup)
		auth.POST("/login", h.login)
		auth.POST("/google/exchange-code", g.exchangeCode)
	}
}

// signup godoc
// @Summary Register new user
// @Description Creates a local account and returns an access token.
// @Tags auth
// @Accept json
// @Produce json
// @Param signup body dto.SignupRequest true "Sign-up details"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or email already registered"
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/signup [post]
func (h *authHandler) signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Email already registered"})
			return
		}
		respondError(c, err, "Failed to register user")
		return
	}

	writeTokenResponse(c, h.tokenService, user)
}

// login godoc
// @Summary User login
// @Description Authenticates a user and returns a JWT. Credentials may also be wrapped as {"body": {...}}.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var payload dto.LoginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		bindError(c, err)
		return
	}
	creds := payload.Credentials()
	if creds.Email == "" || creds.Password == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Email and password required", Code: "ValidationError"})
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), creds.Email, creds.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid email or password"})
			return
		}
		respondError(c, err, "Failed to log in")
		return
	}

	writeTokenResponse(c, h.tokenService, user)
}

func writeTokenResponse(c *gin.Context, tokens portssvc.TokenSvcFacade, user *domain.User) {
	accessToken, _, err := tokens.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to generate access token", slog.String("error", err.Error()), slog.String("user_id", user.UserID))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   dto.TokenTypeBearer,
		User:        dto.ToUserResponse(user),
	})
}
