package dto

import (
	"github.com/SscSPs/ecobudget_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

const ReflectionHeadline = "What did this cost you?"

// PurchaseReflectionRequest describes a purchase to reflect on.
type PurchaseReflectionRequest struct {
	Amount   *decimal.Decimal `json:"amount" binding:"required"`
	Merchant string           `json:"merchant"`
}

type LaborCost struct {
	Hours   decimal.Decimal `json:"hours"`
	Message string          `json:"message"`
}

type GoalImpact struct {
	GoalName  string          `json:"goal_name"`
	DelayDays decimal.Decimal `json:"delay_days"`
	Message   string          `json:"message"`
}

// PurchaseReflectionResponse omits the cost sections when the goal needs no more saving.
type PurchaseReflectionResponse struct {
	Headline   string              `json:"headline"`
	Merchant   string              `json:"merchant"`
	Amount     decimal.Decimal     `json:"amount"`
	Message    string              `json:"message,omitempty"`
	GoalStatus *GoalStatusResponse `json:"goal_status,omitempty"`
	LaborCost  *LaborCost          `json:"labor_cost,omitempty"`
	GoalImpact *GoalImpact         `json:"goal_impact,omitempty"`
}

func ToPurchaseReflectionResponse(r domain.PurchaseReflection) PurchaseReflectionResponse {
	resp := PurchaseReflectionResponse{
		Headline: ReflectionHeadline,
		Merchant: r.Merchant,
		Amount:   r.PurchaseAmount.Round(2),
	}
	if r.GoalFunded {
		resp.Message = r.Message
		status := ToGoalStatusResponse(r.Status)
		resp.GoalStatus = &status
		return resp
	}
	resp.LaborCost = &LaborCost{Hours: r.LaborHours, Message: r.LaborMessage}
	resp.GoalImpact = &GoalImpact{GoalName: r.GoalName, DelayDays: r.GoalDelayDays, Message: r.GoalMessage}
	return resp
}
