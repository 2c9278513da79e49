package dto

import (
	"github.com/SscSPs/ecobudget_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BudgetParams are the query parameters of GET /budget.
type BudgetParams struct {
	// LastN restricts the budget to the N most recent transactions; 0 means all.
	LastN   int  `form:"last_n" binding:"min=0"`
	Refresh bool `form:"refresh"`
}

type BudgetResponse struct {
	Income        decimal.Decimal            `json:"income"`
	Expenses      decimal.Decimal            `json:"expenses"`
	Savings       decimal.Decimal            `json:"savings"`
	LegacySavings decimal.Decimal            `json:"legacy_savings"`
	Categories    map[string]decimal.Decimal `json:"categories"`
}

// UpdatePlanRequest replaces the budget plan.
// Plan values are kept only when numeric and non-negative.
type UpdatePlanRequest struct {
	Plan          map[string]any `json:"plan"`
	SavingsGoal   string         `json:"savings_goal"`
	SavingsReason string         `json:"savings_reason"`
}

type BudgetPlanResponse struct {
	Plan          map[string]decimal.Decimal `json:"plan"`
	SavingsGoal   string                     `json:"savings_goal"`
	SavingsReason string                     `json:"savings_reason"`
}

func ToBudgetResponse(s domain.BudgetSummary) BudgetResponse {
	categories := s.Categories
	if categories == nil {
		categories = map[string]decimal.Decimal{}
	}
	return BudgetResponse{
		Income:        s.Income,
		Expenses:      s.Expenses,
		Savings:       s.Savings,
		LegacySavings: s.LegacySavings,
		Categories:    categories,
	}
}

func ToBudgetPlanResponse(p domain.BudgetPlan) BudgetPlanResponse {
	limits := p.Limits
	if limits == nil {
		limits = map[string]decimal.Decimal{}
	}
	return BudgetPlanResponse{Plan: limits, SavingsGoal: p.SavingsGoal, SavingsReason: p.SavingsReason}
}
