package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/ecobudget_backend/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

type predictionHandler struct {
	predictionService portssvc.PredictionSvc
}

// RegisterPredictionRoutes registers the spending forecast route.
func RegisterPredictionRoutes(rg *gin.RouterGroup, predictionService portssvc.PredictionSvc) {
	h := &predictionHandler{predictionService: predictionService}
	rg.GET("/predictions", h.getPrediction)
}

// getPrediction godoc
// @Summary Narrative spending forecast
// @Description Returns null when the language model is unavailable or answers with something unusable.
// @Tags predictions
// @Produce json
// @Success 200 {object} domain.Prediction
// @Security BearerAuth
// @Router /predictions [get]
func (h *predictionHandler) getPrediction(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	prediction, err := h.predictionService.Predict(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to build prediction")
		return
	}
	// a nil pointer renders as JSON null
	c.JSON(http.StatusOK, prediction)
}
