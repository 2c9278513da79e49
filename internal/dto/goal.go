package dto

import (
	"time"

	"github.com/SscSPs/ecobudget_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpsertGoalRequest creates or replaces the savings goal.
type UpsertGoalRequest struct {
	Name           string           `json:"name" binding:"required"`
	TargetDate     string           `json:"target_date" binding:"required,yyyymmdd"`
	TargetAmount   *decimal.Decimal `json:"target_amount" binding:"required"`
	CurrentSavings *decimal.Decimal `json:"current_savings"`
}

// AddSavingsRequest adds money to the goal. Amount must be positive.
type AddSavingsRequest struct {
	Amount *decimal.Decimal `json:"amount" binding:"required"`
}

type GoalStatusResponse struct {
	GoalName             string          `json:"goal_name"`
	TargetDate           string          `json:"target_date"`
	DaysLeft             int             `json:"days_left"`
	CurrentSavings       decimal.Decimal `json:"current_savings"`
	RemainingAmount      decimal.Decimal `json:"remaining_amount"`
	DailySavingsRequired decimal.Decimal `json:"daily_savings_required"`
}

type AddSavingsResponse struct {
	UpdatedGoal GoalStatusResponse `json:"updated_goal"`
	GoalReached bool               `json:"goal_reached"`
	Message     string             `json:"message"`
}

func ToGoalStatusResponse(s domain.GoalStatus) GoalStatusResponse {
	resp := GoalStatusResponse{
		GoalName:             s.GoalName,
		DaysLeft:             s.DaysLeft,
		CurrentSavings:       s.CurrentSavings,
		RemainingAmount:      s.RemainingAmount,
		DailySavingsRequired: s.DailySavingsRequired,
	}
	if !s.TargetDate.IsZero() {
		resp.TargetDate = s.TargetDate.Format(domain.DateLayout)
	}
	return resp
}

func ToAddSavingsResponse(u domain.SavingsUpdate) AddSavingsResponse {
	return AddSavingsResponse{
		UpdatedGoal: ToGoalStatusResponse(u.Status),
		GoalReached: u.GoalReached,
		Message:     u.Message,
	}
}

// ParseTargetDate reads the calendar date prefix of a validated target date.
func ParseTargetDate(s string) (time.Time, error) {
	if len(s) > len(domain.DateLayout) {
		s = s[:len(domain.DateLayout)]
	}
	return time.Parse(domain.DateLayout, s)
}
