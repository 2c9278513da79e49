package dto

import (
	"github.com/SscSPs/ecobudget_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FootprintParams are the query parameters of GET /carbon/footprint.
type FootprintParams struct {
	LastN               int  `form:"last_n" binding:"min=0"`
	IncludeTransactions bool `form:"include_transactions"`
}

type EmissionFactorsResponse struct {
	Factors                   map[string]decimal.Decimal `json:"factors_kg_co2e_per_usd"`
	DefaultForUnknownCategory decimal.Decimal            `json:"default_for_unknown_category"`
}

type ClassificationLogic struct {
	Baseline string `json:"baseline"`
	Low      string `json:"low"`
	Medium   string `json:"medium"`
	High     string `json:"high"`
}

type CategoryFootprintResponse struct {
	Category string `json:"category"`
	domain.CategoryFootprint
}

type CarbonFootprintResponse struct {
	TotalKgCO2e          decimal.Decimal             `json:"total_kg_co2e"`
	ByCategory           []CategoryFootprintResponse `json:"by_category"`
	TransactionCountUsed int                         `json:"transaction_count_used"`
	ClassificationLogic  ClassificationLogic         `json:"classification_logic"`
	Transactions         []domain.TransactionImpact  `json:"transactions_with_impact,omitempty"`
}

// DefaultClassificationLogic explains how impact levels are assigned.
var DefaultClassificationLogic = ClassificationLogic{
	Baseline: "Average absolute spend per transaction within the same category",
	Low:      "Spend below 70% of the category baseline",
	Medium:   "Spend between 70% and 130% of the category baseline",
	High:     "Spend above 130% of the category baseline",
}

// ToCarbonFootprintResponse lists categories in lexicographic order.
func ToCarbonFootprintResponse(r domain.CarbonFootprintReport) CarbonFootprintResponse {
	names := r.CategoryNames()
	byCategory := make([]CategoryFootprintResponse, 0, len(names))
	for _, name := range names {
		byCategory = append(byCategory, CategoryFootprintResponse{Category: name, CategoryFootprint: r.ByCategory[name]})
	}
	return CarbonFootprintResponse{
		TotalKgCO2e:          r.TotalKgCO2e,
		ByCategory:           byCategory,
		TransactionCountUsed: r.TransactionCountUsed,
		ClassificationLogic:  DefaultClassificationLogic,
		Transactions:         r.Transactions,
	}
}
