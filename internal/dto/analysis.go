package dto

import (
	"github.com/SscSPs/ecobudget_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

type SpendingAnalysisResponse struct {
	Debit  map[string]decimal.Decimal `json:"debit"`
	Credit map[string]decimal.Decimal `json:"credit"`
}

type SubscriptionsResponse struct {
	Subscriptions map[string]decimal.Decimal `json:"subscriptions"`
}

type MonthlyBreakdownResponse struct {
	Year   int                        `json:"year"`
	Month  int                        `json:"month"`
	Debit  map[string]decimal.Decimal `json:"debit"`
	Credit map[string]decimal.Decimal `json:"credit"`
	Weekly map[string]decimal.Decimal `json:"weekly"`
}

func ToSpendingAnalysisResponse(a domain.SpendingAnalysis) SpendingAnalysisResponse {
	return SpendingAnalysisResponse{Debit: a.Debit, Credit: a.Credit}
}

// ToMonthlyBreakdownResponse renders an empty breakdown with zero year and month when there is no dated data.
func ToMonthlyBreakdownResponse(m domain.MonthlyBreakdown) MonthlyBreakdownResponse {
	resp := MonthlyBreakdownResponse{
		Year:   m.Year,
		Month:  int(m.Month),
		Debit:  m.Debit,
		Credit: m.Credit,
		Weekly: m.Weekly,
	}
	if resp.Debit == nil {
		resp.Debit = map[string]decimal.Decimal{}
	}
	if resp.Credit == nil {
		resp.Credit = map[string]decimal.Decimal{}
	}
	if resp.Weekly == nil {
		resp.Weekly = map[string]decimal.Decimal{}
	}
	return resp
}
