package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/ecobudget_backend/internal/core/ports/services"
	"github.com/SscSPs/ecobudget_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

type analysisHandler struct {
	analysisService portssvc.AnalysisSvc
}

// RegisterAnalysisRoutes registers the spending analysis routes.
func RegisterAnalysisRoutes(rg *gin.RouterGroup, analysisService portssvc.AnalysisSvc) {
	h := &analysisHandler{analysisService: analysisService}

	analysis := rg.Group("/analysis")
	{
		analysis.GET("", h.getAnalysis)
		analysis.GET("/subscriptions", h.getSubscriptions)
		analysis.GET("/monthly", h.getMonthly)
	}
}

// getAnalysis godoc
// @Summary Spending by category
// @Description Debit totals are positive magnitudes; credit totals are income per category.
// @Tags analysis
// @Produce json
// @Success 200 {object} dto.SpendingAnalysisResponse
// @Security BearerAuth
// @Router /analysis [get]
func (h *analysisHandler) getAnalysis(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	analysis, err := h.analysisService.SpendingByCategory(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to analyse spending")
		return
	}
	c.JSON(http.StatusOK, dto.ToSpendingAnalysisResponse(analysis))
}

// getSubscriptions godoc
// @Summary Subscription spend by merchant
// @Tags analysis
// @Produce json
// @Success 200 {object} dto.SubscriptionsResponse
// @Security BearerAuth
// @Router /analysis/subscriptions [get]
func (h *analysisHandler) getSubscriptions(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	subs, err := h.analysisService.SubscriptionsByPlace(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to analyse subscriptions")
		return
	}
	c.JSON(http.StatusOK, dto.SubscriptionsResponse{Subscriptions: subs})
}

// getMonthly godoc
// @Summary Monthly breakdown
// @Description Covers the month of the latest dated transaction, with expenses grouped by ISO week.
// @Tags analysis
// @Produce json
// @Success 200 {object} dto.MonthlyBreakdownResponse
// @Security BearerAuth
// @Router /analysis/monthly [get]
func (h *analysisHandler) getMonthly(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	breakdown, err := h.analysisService.MonthlyBreakdown(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to build monthly breakdown")
		return
	}
	c.JSON(http.StatusOK, dto.ToMonthlyBreakdownResponse(breakdown))
}
