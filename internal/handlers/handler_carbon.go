package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/ecobudget_backend/internal/core/ports/services"
	"github.com/SscSPs/ecobudget_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

type carbonHandler struct {
	carbonService portssvc.CarbonSvc
}

// RegisterCarbonFactorRoutes registers the public emission factor listing.
func RegisterCarbonFactorRoutes(rg *gin.RouterGroup, carbonService portssvc.CarbonSvc) {
	h := &carbonHandler{carbonService: carbonService}
	rg.GET("/carbon/factors", h.getFactors)
}

// RegisterCarbonRoutes registers the authenticated footprint report.
func RegisterCarbonRoutes(rg *gin.RouterGroup, carbonService portssvc.CarbonSvc) {
	h := &carbonHandler{carbonService: carbonService}
	rg.GET("/carbon/footprint", h.getFootprint)
}

// getFactors godoc
// @Summary List emission factors
// @Tags carbon
// @Produce json
// @Success 200 {object} dto.EmissionFactorsResponse
// @Router /carbon/factors [get]
func (h *carbonHandler) getFactors(c *gin.Context) {
	factors, fallback := h.carbonService.EmissionFactors()
	c.JSON(http.StatusOK, dto.EmissionFactorsResponse{
		Factors:                   factors,
		DefaultForUnknownCategory: fallback,
	})
}

// getFootprint godoc
// @Summary Carbon footprint of spending
// @Description Estimates kg CO2e per category and classifies each expense against its category baseline.
// @Tags carbon
// @Produce json
// @Param last_n query int false "Only the N most recent transactions (0 = all)"
// @Param include_transactions query bool false "Include per-transaction detail"
// @Success 200 {object} dto.CarbonFootprintResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /carbon/footprint [get]
func (h *carbonHandler) getFootprint(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var params dto.FootprintParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}
	report, err := h.carbonService.Footprint(c.Request.Context(), userID, params.LastN, params.IncludeTransactions)
	if err != nil {
		respondError(c, err, "Failed to compute carbon footprint")
		return
	}
	c.JSON(http.StatusOK, dto.ToCarbonFootprintResponse(report))
}
