package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SpendingAnalysis holds per-category totals split by sign.
// Debit values are reported as positive magnitudes.
type SpendingAnalysis struct {
	Debit  map[string]decimal.Decimal `json:"debit"`
	Credit map[string]decimal.Decimal `json:"credit"`
}

// MonthlyBreakdown is the analysis restricted to the month of the latest transaction.
type MonthlyBreakdown struct {
	Year   int                        `json:"year"`
	Month  time.Month                 `json:"month"`
	Debit  map[string]decimal.Decimal `json:"debit"`
	Credit map[string]decimal.Decimal `json:"credit"`
	// Weekly holds expense magnitudes keyed "Week {n}" by ISO week number.
	Weekly map[string]decimal.Decimal `json:"weekly"`
}
