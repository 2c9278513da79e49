package handlers

import (
	"errors"
	"net/http"

	"github.com/SscSPs/ecobudget_backend/internal/apperrors"
	portssvc "github.com/SscSPs/ecobudget_backend/internal/core/ports/services"
	"github.com/SscSPs/ecobudget_backend/internal/dto"
	"github.com/SscSPs/ecobudget_backend/internal/middleware"
	"github.com/SscSPs/ecobudget_backend/internal/utils"
	"github.com/gin-gonic/gin"
)

// EventGoalReached is the analytics event sent when a deposit completes a goal.
const EventGoalReached = "savings_goal_reached"

type goalHandler struct {
	goalService portssvc.GoalSvcFacade
	posthog     *utils.PosthogClientWrapper
}

// RegisterGoalRoutes registers the savings goal routes. posthog may be nil.
func RegisterGoalRoutes(rg *gin.RouterGroup, goalService portssvc.GoalSvcFacade, posthog *utils.PosthogClientWrapper) {
	h := &goalHandler{goalService: goalService, posthog: posthog}

	goal := rg.Group("/goal")
	{
		goal.GET("", h.getGoal)
		goal.PUT("", h.upsertGoal)
		goal.POST("/add-savings", h.addSavings)
	}
}

// getGoal godoc
// @Summary Savings goal status
// @Description Users without a goal get a zero status.
// @Tags goal
// @Produce json
// @Success 200 {object} dto.GoalStatusResponse
// @Security BearerAuth
// @Router /goal [get]
func (h *goalHandler) getGoal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	status, err := h.goalService.GetStatus(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to load goal")
		return
	}
	c.JSON(http.StatusOK, dto.ToGoalStatusResponse(status))
}

// upsertGoal godoc
// @Summary Create or replace the savings goal
// @Tags goal
// @Accept json
// @Produce json
// @Param goal body dto.UpsertGoalRequest true "Goal"
// @Success 200 {object} dto.GoalStatusResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /goal [put]
func (h *goalHandler) upsertGoal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.UpsertGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	status, err := h.goalService.UpsertGoal(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to save goal")
		return
	}
	c.JSON(http.StatusOK, dto.ToGoalStatusResponse(status))
}

// addSavings godoc
// @Summary Add money to the savings goal
// @Tags goal
// @Accept json
// @Produce json
// @Param savings body dto.AddSavingsRequest true "Amount"
// @Success 200 {object} dto.AddSavingsResponse
// @Failure 400 {object} dto.ErrorResponse "code InvalidAmount for a non-positive amount"
// @Failure 404 {object} dto.ErrorResponse "No goal set"
// @Security BearerAuth
// @Router /goal/add-savings [post]
func (h *goalHandler) addSavings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.AddSavingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	update, err := h.goalService.AddSavings(c.Request.Context(), userID, *req.Amount)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "No savings goal set"})
			return
		}
		respondError(c, err, "Failed to add savings")
		return
	}
	if update.GoalReached {
		middleware.PosthogEvent(c, h.posthog, EventGoalReached, map[string]any{
			"goal_name": update.Status.GoalName,
		})
	}
	c.JSON(http.StatusOK, dto.ToAddSavingsResponse(update))
}
