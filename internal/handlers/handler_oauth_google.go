package handlers

import (
	"errors"
	"log/slog"

	"github.com/SscSPs/ecobudget_backend/internal/apperrors"
	"github.com/SscSPs/ecobudget_backend/internal/core/domain"
	portssvc "github.com/SscSPs/ecobudget_backend/internal/core/ports/services"
	"github.com/SscSPs/ecobudget_backend/internal/dto"
	"github.com/SscSPs/ecobudget_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// googleOAuthHandler signs users in with a Google authorization code.
type googleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade
	userService        portssvc.UserSvcFacade
	tokenService       portssvc.TokenSvcFacade
}

func newGoogleOAuthHandler(
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade,
	userService portssvc.UserSvcFacade,
	tokenService portssvc.TokenSvcFacade,
) *googleOAuthHandler {
	return &googleOAuthHandler{
		googleOAuthService: googleOAuthService,
		userService:        userService,
		tokenService:       tokenService,
	}
}

func writeAppError(c *gin.Context, appErr *apperrors.AppError) {
	c.JSON(appErr.Code, dto.ErrorResponse{Error: appErr.Message})
}

// exchangeCode godoc
// @Summary Exchange a Google authorization code for an access token
// @Description Validates the Google ID token, links or creates the user and returns an application JWT.
// @Tags auth
// @Accept json
// @Produce json
// @Param code body dto.ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid authorization code"
// @Failure 401 {object} dto.ErrorResponse "Invalid Google ID token"
// @Failure 504 {object} dto.ErrorResponse "Google unavailable"
// @Router /auth/google/exchange-code [post]
func (h *googleOAuthHandler) exchangeCode(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var req dto.ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	oauth2Token, err := h.googleOAuthService.ExchangeCodeForToken(ctx, req.Code)
	if err != nil {
		logger.Error("Failed to exchange authorization code with Google", slog.String("error", err.Error()))
		if errors.Is(err, apperrors.ErrValidation) {
			writeAppError(c, apperrors.NewBadRequestError("Invalid or expired authorization code provided by Google."))
			return
		}
		writeAppError(c, apperrors.NewGatewayTimeoutError("Failed to communicate with Google OAuth service."))
		return
	}

	idTokenString, ok := oauth2Token.Extra("id_token").(string)
	if !ok || idTokenString == "" {
		logger.Error("ID token not found in Google's token response")
		writeAppError(c, apperrors.NewInternalServerError("Failed to retrieve ID token from Google."))
		return
	}

	payload, err := h.googleOAuthService.ValidateGoogleIDToken(ctx, idTokenString)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			logger.Warn("Google ID token validation failed", slog.String("error", err.Error()))
			writeAppError(c, apperrors.NewUnauthorizedError("Invalid Google ID token"))
			return
		}
		logger.Error("Google ID token could not be checked", slog.String("error", err.Error()))
		writeAppError(c, apperrors.NewInternalServerError("Google sign-in is not available."))
		return
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	emailVerified, _ := payload.Claims["email_verified"].(bool)
	providerUserID := payload.Subject

	if email == "" || providerUserID == "" {
		logger.Error("Essential claims (email or sub) missing from Google ID token payload")
		writeAppError(c, apperrors.NewInternalServerError("Essential user information missing from Google token."))
		return
	}

	user, err := h.userService.CreateOAuthUser(ctx, name, email, string(domain.ProviderGoogle), providerUserID, emailVerified)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			writeAppError(c, appErr)
			return
		}
		respondError(c, err, "Failed to process user authentication")
		return
	}

	writeTokenResponse(c, h.tokenService, user)
}
