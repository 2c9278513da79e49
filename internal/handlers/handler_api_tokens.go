package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/SscSPs/ecobudget_backend/internal/core/ports/services"
	"github.com/SscSPs/ecobudget_backend/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// apiTokenHandler handles HTTP requests for personal API tokens.
type apiTokenHandler struct {
	tokenSvc portssvc.APITokenSvc
}

// RegisterAPITokenRoutes registers the API token routes.
func RegisterAPITokenRoutes(router *gin.RouterGroup, tokenSvc portssvc.APITokenSvc) {
	h := &apiTokenHandler{tokenSvc: tokenSvc}

	tokensGroup := router.Group("/tokens")
	{
		tokensGroup.POST("", h.createToken)
		tokensGroup.GET("", h.listTokens)
		tokensGroup.DELETE("/:id", h.revokeToken)
		tokensGroup.DELETE("", h.revokeAllTokens)
	}
}

// createToken godoc
// @Summary Create a new API token
// @Description Creates a personal API token for scripted transaction import. The token is shown only once.
// @Description Send it in the `x-api-key` header.
// @Tags tokens
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAPITokenRequest true "Token creation details"
// @Success 201 {object} dto.CreateAPITokenResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /tokens [post]
func (h *apiTokenHandler) createToken(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateAPITokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	var expiresIn *time.Duration
	if req.ExpiresInSeconds != nil {
		d := time.Duration(*req.ExpiresInSeconds) * time.Second
		expiresIn = &d
	}

	tokenStr, token, err := h.tokenSvc.CreateToken(c.Request.Context(), userID, req.Name, expiresIn)
	if err != nil {
		respondError(c, err, "Failed to create token")
		return
	}

	c.JSON(http.StatusCreated, dto.ToCreateAPITokenResponse(tokenStr, *token))
}

// listTokens godoc
// @Summary List all API tokens
// @Description Only returns token metadata, never the token values.
// @Tags tokens
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.APITokenResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /tokens [get]
func (h *apiTokenHandler) listTokens(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	tokens, err := h.tokenSvc.ListTokens(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to list tokens")
		return
	}
	c.JSON(http.StatusOK, dto.ToAPITokenResponseList(tokens))
}

// revokeToken godoc
// @Summary Revoke an API token
// @Tags tokens
// @Security BearerAuth
// @Param id path string true "Token ID (UUID format)" format(uuid)
// @Success 204 "Token revoked successfully"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /tokens/{id} [delete]
func (h *apiTokenHandler) revokeToken(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	tokenID := c.Param("id")
	if _, err := uuid.Parse(tokenID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid token ID", Code: "ValidationError"})
		return
	}

	if err := h.tokenSvc.RevokeToken(c.Request.Context(), userID, tokenID); err != nil {
		respondError(c, err, "Failed to revoke token")
		return
	}
	c.Status(http.StatusNoContent)
}

// revokeAllTokens godoc
// @Summary Revoke all API tokens
// @Tags tokens
// @Security BearerAuth
// @Success 204 "All tokens revoked successfully"
// @Failure 401 {object} dto.ErrorResponse
// @Router /tokens [delete]
func (h *apiTokenHandler) revokeAllTokens(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.tokenSvc.RevokeAllTokens(c.Request.Context(), userID); err != nil {
		respondError(c, err, "Failed to revoke tokens")
		return
	}
	c.Status(http.StatusNoContent)
}
