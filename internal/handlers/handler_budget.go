package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/ecobudget_backend/internal/core/ports/services"
	"github.com/SscSPs/ecobudget_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

type budgetHandler struct {
	budgetService portssvc.BudgetSvcFacade
}

// RegisterBudgetRoutes registers the budget and plan routes.
func RegisterBudgetRoutes(rg *gin.RouterGroup, budgetService portssvc.BudgetSvcFacade) {
	h := &budgetHandler{budgetService: budgetService}

	budget := rg.Group("/budget")
	{
		budget.GET("", h.getBudget)
		budget.GET("/plan", h.getPlan)
		budget.PUT("/plan", h.updatePlan)
	}
}

// getBudget godoc
// @Summary Get the budget summary
// @Description Expenses and category totals keep their negative sign. The unwindowed budget is persisted on first compute.
// @Tags budget
// @Produce json
// @Param last_n query int false "Only the N most recent transactions (0 = all)"
// @Param refresh query bool false "Recompute even if a persisted budget exists"
// @Success 200 {object} dto.BudgetResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /budget [get]
func (h *budgetHandler) getBudget(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var params dto.BudgetParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}
	summary, err := h.budgetService.GetBudget(c.Request.Context(), userID, params.LastN, params.Refresh)
	if err != nil {
		respondError(c, err, "Failed to build budget")
		return
	}
	c.JSON(http.StatusOK, dto.ToBudgetResponse(summary))
}

// getPlan godoc
// @Summary Get the budget plan
// @Tags budget
// @Produce json
// @Success 200 {object} dto.BudgetPlanResponse
// @Security BearerAuth
// @Router /budget/plan [get]
func (h *budgetHandler) getPlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	plan, err := h.budgetService.GetPlan(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to load budget plan")
		return
	}
	c.JSON(http.StatusOK, dto.ToBudgetPlanResponse(plan))
}

// updatePlan godoc
// @Summary Replace the budget plan
// @Description Non-numeric and negative limits are dropped.
// @Tags budget
// @Accept json
// @Produce json
// @Param plan body dto.UpdatePlanRequest true "Plan"
// @Success 200 {object} dto.BudgetPlanResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /budget/plan [put]
func (h *budgetHandler) updatePlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	plan, err := h.budgetService.SetPlan(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to save budget plan")
		return
	}
	c.JSON(http.StatusOK, dto.ToBudgetPlanResponse(plan))
}
