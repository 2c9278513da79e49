package domain

import "github.com/shopspring/decimal"

// Prediction is the narrative spending forecast produced by the language model.
type Prediction struct {
	Description      string          `json:"description"`
	PredictionAmount decimal.Decimal `json:"prediction_amount"`
	PercentageChange decimal.Decimal `json:"percentage_change"`
	SavingsCategory  string          `json:"savings_category"`
	SavingsAmount    decimal.Decimal `json:"savings_amount"`
	MonthsSaved      decimal.Decimal `json:"months_saved"`
}

// PredictionInput is everything the model sees about a user.
type PredictionInput struct {
	Budget         BudgetSummary
	Plan           BudgetPlan
	RecentExpenses []Transaction
}
