package spending

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultEmissionFactor applies to any category missing from the table.
var DefaultEmissionFactor = decimal.RequireFromString("0.2")

// emissionFactors is kg CO2e per dollar spent, keyed by exact category name.
var emissionFactors = map[string]decimal.Decimal{
	"Fuel":          decimal.RequireFromString("1.0"),
	"Food":          decimal.RequireFromString("0.5"),
	"Groceries":     decimal.RequireFromString("0.4"),
	"Utilities":     decimal.RequireFromString("0.4"),
	"Rent":          decimal.RequireFromString("0.03"),
	"Insurance":     decimal.RequireFromString("0.03"),
	"Subscriptions": decimal.RequireFromString("0.02"),
	"Leisure":       decimal.RequireFromString("0.25"),
}

// FactorFor returns the emission factor of the trimmed, case-sensitive category.
func FactorFor(category string) decimal.Decimal {
	if f, ok := emissionFactors[strings.TrimSpace(category)]; ok {
		return f
	}
	return DefaultEmissionFactor
}

// Footprint returns round(|amount| * factor, 4). The sign of amount is ignored.
func Footprint(amount decimal.Decimal, category string) decimal.Decimal {
	return amount.Abs().Mul(FactorFor(category)).Round(4)
}

// EmissionFactors returns a copy of the factor table.
func EmissionFactors() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(emissionFactors))
	for k, v := range emissionFactors {
		out[k] = v
	}
	return out
}
