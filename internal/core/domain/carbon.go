package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// ImpactLevel classifies a transaction against its category baseline.
type ImpactLevel string

const (
	ImpactLow    ImpactLevel = "Low"
	ImpactMedium ImpactLevel = "Medium"
	ImpactHigh   ImpactLevel = "High"
)

type ImpactBreakdown struct {
	Low    int `json:"low"`
	Medium int `json:"medium"`
	High   int `json:"high"`
}

// CategoryFootprint aggregates the expense transactions of one category.
type CategoryFootprint struct {
	AmountSpent    decimal.Decimal `json:"amount_spent_usd"`
	KgCO2e         decimal.Decimal `json:"kg_co2e"`
	EmissionFactor decimal.Decimal `json:"emission_factor_kg_co2e_per_usd"`
	Baseline       decimal.Decimal `json:"baseline_avg_usd_per_txn"`
	Impact         ImpactBreakdown `json:"impact_breakdown"`
}

// TransactionImpact is the per-transaction detail of a footprint report.
type TransactionImpact struct {
	TransactionID   string          `json:"transaction_id"`
	Place           string          `json:"place"`
	Amount          decimal.Decimal `json:"amount_usd"`
	Category        string          `json:"category"`
	KgCO2e          decimal.Decimal `json:"kg_co2e"`
	RatioToBaseline decimal.Decimal `json:"ratio_to_baseline"`
	ImpactLevel     ImpactLevel     `json:"impact_level"`
}

type CarbonFootprintReport struct {
	TotalKgCO2e          decimal.Decimal              `json:"total_kg_co2e"`
	ByCategory           map[string]CategoryFootprint `json:"by_category"`
	TransactionCountUsed int                          `json:"transaction_count_used"`
	Transactions         []TransactionImpact          `json:"transactions_with_impact,omitempty"`
}

// CategoryNames returns the report's categories in lexicographic order.
func (r CarbonFootprintReport) CategoryNames() []string {
	names := make([]string, 0, len(r.ByCategory))
	for name := range r.ByCategory {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
