package spending

import (
	"github.com/SscSPs/ecobudget_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Impact ratio bounds. Both bounds are inclusive for Medium.
var (
	LowImpactThreshold  = decimal.RequireFromString("0.70")
	HighImpactThreshold = decimal.RequireFromString("1.30")
)

// ClassifyImpact maps a ratio to its impact label.
func ClassifyImpact(ratio decimal.Decimal) domain.ImpactLevel {
	switch {
	case ratio.LessThan(LowImpactThreshold):
		return domain.ImpactLow
	case ratio.LessThanOrEqual(HighImpactThreshold):
		return domain.ImpactMedium
	default:
		return domain.ImpactHigh
	}
}

type categoryTotals struct {
	spent decimal.Decimal
	count int64
}

// ComputeFootprint builds a carbon report over the expenses of txns,
// optionally windowed to the lastN latest transactions.
func ComputeFootprint(txns []domain.Transaction, lastN int, includeTransactions bool) domain.CarbonFootprintReport {
	var expenses []domain.Transaction
	for _, t := range LastN(txns, lastN) {
		if t.IsExpense() {
			expenses = append(expenses, t)
		}
	}

	// first pass: mean |amount| per category
	totals := map[string]*categoryTotals{}
	for _, t := range expenses {
		ct, ok := totals[t.Category]
		if !ok {
			ct = &categoryTotals{}
			totals[t.Category] = ct
		}
		ct.spent = ct.spent.Add(t.Amount.Decimal.Abs())
		ct.count++
	}
	baselines := make(map[string]decimal.Decimal, len(totals))
	for cat, ct := range totals {
		baselines[cat] = ct.spent.Div(decimal.NewFromInt(ct.count))
	}

	report := domain.CarbonFootprintReport{
		TotalKgCO2e:          decimal.Zero,
		ByCategory:           make(map[string]domain.CategoryFootprint, len(totals)),
		TransactionCountUsed: len(expenses),
	}
	spent := map[string]decimal.Decimal{}
	kgByCat := map[string]decimal.Decimal{}
	impacts := map[string]domain.ImpactBreakdown{}

	for _, t := range expenses {
		abs := t.Amount.Decimal.Abs()
		kg := Footprint(t.Amount.Decimal, t.Category)
		ratio := ratioToBaseline(abs, baselines[t.Category])
		level := ClassifyImpact(ratio)

		spent[t.Category] = spent[t.Category].Add(abs)
		kgByCat[t.Category] = kgByCat[t.Category].Add(kg)
		report.TotalKgCO2e = report.TotalKgCO2e.Add(kg)

		ib := impacts[t.Category]
		switch level {
		case domain.ImpactLow:
			ib.Low++
		case domain.ImpactMedium:
			ib.Medium++
		default:
			ib.High++
		}
		impacts[t.Category] = ib

		if includeTransactions {
			report.Transactions = append(report.Transactions, domain.TransactionImpact{
				TransactionID:   t.TransactionID,
				Place:           t.Place,
				Amount:          abs.Round(2),
				Category:        t.Category,
				KgCO2e:          kg,
				RatioToBaseline: ratio.Round(4),
				ImpactLevel:     level,
			})
		}
	}

	for cat := range totals {
		report.ByCategory[cat] = domain.CategoryFootprint{
			AmountSpent:    spent[cat].Round(2),
			KgCO2e:         kgByCat[cat].Round(4),
			EmissionFactor: FactorFor(cat),
			Baseline:       baselines[cat].Round(2),
			Impact:         impacts[cat],
		}
	}
	report.TotalKgCO2e = report.TotalKgCO2e.Round(4)
	return report
}

// ratioToBaseline treats a missing or zero baseline as the amount itself, giving a neutral 1.0.
func ratioToBaseline(abs, baseline decimal.Decimal) decimal.Decimal {
	if baseline.IsZero() {
		return decimal.NewFromInt(1)
	}
	return abs.Div(baseline)
}
