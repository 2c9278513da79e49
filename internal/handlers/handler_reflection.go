package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/ecobudget_backend/internal/core/ports/services"
	"github.com/SscSPs/ecobudget_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

type reflectionHandler struct {
	reflectionService portssvc.ReflectionSvc
}

// RegisterReflectionRoutes registers the purchase reflection route.
func RegisterReflectionRoutes(rg *gin.RouterGroup, reflectionService portssvc.ReflectionSvc) {
	h := &reflectionHandler{reflectionService: reflectionService}
	rg.POST("/reflection/purchase", h.reflectOnPurchase)
}

// reflectOnPurchase godoc
// @Summary Reflect on a purchase
// @Description Converts a purchase into hours of work and days of savings goal delay.
// @Tags reflection
// @Accept json
// @Produce json
// @Param purchase body dto.PurchaseReflectionRequest true "Purchase"
// @Success 200 {object} dto.PurchaseReflectionResponse
// @Failure 400 {object} dto.ErrorResponse "code InvalidAmount or InvalidWage"
// @Security BearerAuth
// @Router /reflection/purchase [post]
func (h *reflectionHandler) reflectOnPurchase(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.PurchaseReflectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	reflection, err := h.reflectionService.ReflectOnPurchase(c.Request.Context(), userID, *req.Amount, req.Merchant)
	if err != nil {
		respondError(c, err, "Failed to reflect on purchase")
		return
	}
	c.JSON(http.StatusOK, dto.ToPurchaseReflectionResponse(*reflection))
}
