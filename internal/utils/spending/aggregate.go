package spending

import (
	"fmt"
	"strings"

	"github.com/SscSPs/ecobudget_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SubscriptionsCategory is the category whose debits are broken down by merchant.
const SubscriptionsCategory = "Subscriptions"

// SpendingByCategory splits transactions by sign and sums them per category.
// Debit totals are sign-flipped. Transactions without a numeric amount are skipped.
func SpendingByCategory(txns []domain.Transaction) domain.SpendingAnalysis {
	debit := map[string]decimal.Decimal{}
	credit := map[string]decimal.Decimal{}
	for _, t := range txns {
		switch {
		case t.IsExpense():
			debit[t.Category] = debit[t.Category].Add(t.Amount.Decimal.Neg())
		case t.IsIncome():
			credit[t.Category] = credit[t.Category].Add(t.Amount.Decimal)
		}
	}
	return domain.SpendingAnalysis{Debit: roundAll(debit, 2), Credit: roundAll(credit, 2)}
}

// SubscriptionsByPlace sums subscription debits per merchant.
func SubscriptionsByPlace(txns []domain.Transaction) map[string]decimal.Decimal {
	out := map[string]decimal.Decimal{}
	for _, t := range txns {
		if !t.IsExpense() || strings.TrimSpace(t.Category) != SubscriptionsCategory {
			continue
		}
		out[t.Place] = out[t.Place].Add(t.Amount.Decimal.Neg())
	}
	return roundAll(out, 2)
}

// MonthlyBreakdown restricts txns to the (year, month) of the latest dated
// transaction and additionally groups expenses by ISO week.
// ok is false when no transaction carries a valid date.
func MonthlyBreakdown(txns []domain.Transaction) (domain.MonthlyBreakdown, bool) {
	latest, found := LatestDate(txns)
	if !found {
		return domain.MonthlyBreakdown{}, false
	}
	ref, _ := latest.ParsedDate()

	var inMonth []domain.Transaction
	weekly := map[string]decimal.Decimal{}
	for _, t := range txns {
		d, ok := t.ParsedDate()
		if !ok || d.Year() != ref.Year() || d.Month() != ref.Month() {
			continue
		}
		inMonth = append(inMonth, t)
		if t.IsExpense() {
			_, week := d.ISOWeek()
			key := fmt.Sprintf("Week %d", week)
			weekly[key] = weekly[key].Add(t.Amount.Decimal.Neg())
		}
	}

	analysis := SpendingByCategory(inMonth)
	return domain.MonthlyBreakdown{
		Year:   ref.Year(),
		Month:  ref.Month(),
		Debit:  analysis.Debit,
		Credit: analysis.Credit,
		Weekly: roundAll(weekly, 2),
	}, true
}

// RecentExpenses returns the expenses dated within days of the latest transaction.
func RecentExpenses(txns []domain.Transaction, days int) []domain.Transaction {
	latest, found := LatestDate(txns)
	if !found {
		return nil
	}
	ref, _ := latest.ParsedDate()
	cutoff := ref.AddDate(0, 0, -days)

	var out []domain.Transaction
	for _, t := range txns {
		d, ok := t.ParsedDate()
		if !ok || !t.IsExpense() || d.Before(cutoff) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func roundAll(m map[string]decimal.Decimal, places int32) map[string]decimal.Decimal {
	for k, v := range m {
		m[k] = v.Round(places)
	}
	return m
}
