package models

import "github.com/shopspring/decimal"

// BudgetDocument is the persisted form of a computed budget summary (users.budget).
type BudgetDocument struct {
	Income        decimal.Decimal            `json:"income"`
	Expenses      decimal.Decimal            `json:"expenses"`
	Savings       decimal.Decimal            `json:"savings"`
	LegacySavings decimal.Decimal            `json:"legacy_savings"`
	Categories    map[string]decimal.Decimal `json:"categories"`
}

// BudgetRow holds the budget related columns of a user.
type BudgetRow struct {
	Budget        *BudgetDocument
	PlanLimits    map[string]decimal.Decimal
	SavingsGoal   *string
	SavingsReason *string
}
