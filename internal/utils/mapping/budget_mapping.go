package mapping

import (
	"github.com/SscSPs/ecobudget_backend/internal/core/domain"
	"github.com/SscSPs/ecobudget_backend/internal/models"
	"github.com/shopspring/decimal"
)

// ToBudgetDocument converts a summary for storage.
func ToBudgetDocument(d domain.BudgetSummary) models.BudgetDocument {
	return models.BudgetDocument{
		Income:        d.Income,
		Expenses:      d.Expenses,
		Savings:       d.Savings,
		LegacySavings: d.LegacySavings,
		Categories:    d.Categories,
	}
}

// ToDomainBudgetSummary converts a stored budget.
func ToDomainBudgetSummary(m models.BudgetDocument) domain.BudgetSummary {
	categories := m.Categories
	if categories == nil {
		categories = map[string]decimal.Decimal{}
	}
	return domain.BudgetSummary{
		Income:        m.Income,
		Expenses:      m.Expenses,
		Savings:       m.Savings,
		LegacySavings: m.LegacySavings,
		Categories:    categories,
	}
}

// ToDomainBudgetRecord converts the budget columns of a user, filling empty defaults.
func ToDomainBudgetRecord(m models.BudgetRow) domain.BudgetRecord {
	rec := domain.BudgetRecord{
		Plan: domain.BudgetPlan{Limits: m.PlanLimits},
	}
	if rec.Plan.Limits == nil {
		rec.Plan.Limits = map[string]decimal.Decimal{}
	}
	if m.SavingsGoal != nil {
		rec.Plan.SavingsGoal = *m.SavingsGoal
	}
	if m.SavingsReason != nil {
		rec.Plan.SavingsReason = *m.SavingsReason
	}
	if m.Budget != nil {
		summary := ToDomainBudgetSummary(*m.Budget)
		rec.Budget = &summary
	}
	return rec
}
