package domain

import "github.com/shopspring/decimal"

// BudgetSummary is derived from a transaction list.
// Expenses and every Categories value keep their natural negative sign.
type BudgetSummary struct {
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	// Savings is income - |expenses|.
	Savings decimal.Decimal `json:"savings"`
	// LegacySavings is income - expenses with expenses still negative, kept for older clients.
	LegacySavings decimal.Decimal            `json:"legacy_savings"`
	Categories    map[string]decimal.Decimal `json:"categories"`
}

// BudgetPlan is the user-authored plan, stored separately from the computed summary.
type BudgetPlan struct {
	Limits        map[string]decimal.Decimal `json:"plan"`
	SavingsGoal   string                     `json:"savings_goal"`
	SavingsReason string                     `json:"savings_reason"`
}

// BudgetRecord is the persisted budget state of a user.
type BudgetRecord struct {
	// Budget is nil when no summary has been persisted yet.
	Budget *BudgetSummary
	Plan   BudgetPlan
}
