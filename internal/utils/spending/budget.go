package spending

import (
	"encoding/json"

	"github.com/SscSPs/ecobudget_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BuildBudget derives income, expenses and per-category expense totals.
// Expenses and category totals stay negative. Every value is rounded to cents.
func BuildBudget(txns []domain.Transaction, lastN int) domain.BudgetSummary {
	income := decimal.Zero
	expenses := decimal.Zero
	categories := map[string]decimal.Decimal{}

	for _, t := range LastN(txns, lastN) {
		switch {
		case t.IsIncome():
			income = income.Add(t.Amount.Decimal)
		case t.IsExpense():
			expenses = expenses.Add(t.Amount.Decimal)
			categories[t.Category] = categories[t.Category].Add(t.Amount.Decimal)
		}
	}

	return domain.BudgetSummary{
		Income:        income.Round(2),
		Expenses:      expenses.Round(2),
		Savings:       income.Sub(expenses.Abs()).Round(2),
		LegacySavings: income.Sub(expenses).Round(2),
		Categories:    roundAll(categories, 2),
	}
}

// SanitizePlanLimits keeps the numeric, non-negative entries of a raw plan payload.
// Numbers arrive as float64 from encoding/json or as json.Number when UseNumber is set.
// Strings, booleans, nulls and negative values are dropped.
func SanitizePlanLimits(raw map[string]any) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(raw))
	for category, v := range raw {
		var d decimal.Decimal
		switch n := v.(type) {
		case float64:
			d = decimal.NewFromFloat(n)
		case json.Number:
			parsed, err := decimal.NewFromString(n.String())
			if err != nil {
				continue
			}
			d = parsed
		case int:
			d = decimal.NewFromInt(int64(n))
		case decimal.Decimal:
			d = n
		default:
			continue
		}
		if d.IsNegative() {
			continue
		}
		out[category] = d
	}
	return out
}
