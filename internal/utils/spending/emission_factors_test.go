package spending

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFactorFor(t *testing.T) {
	tests := []struct {
		category string
		want     string
	}{
		{"Fuel", "1.0"},
		{"Food", "0.5"},
		{"  Groceries ", "0.4"},
		{"Utilities", "0.4"},
		{"Rent", "0.03"},
		{"Insurance", "0.03"},
		{"Subscriptions", "0.02"},
		{"Leisure", "0.25"},
		{"fuel", "0.2"},
		{"Pets", "0.2"},
		{"", "0.2"},
	}
	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			assertDecimal(t, tt.want, FactorFor(tt.category))
		})
	}
}

func TestFootprint_NonNegativeAndSignInvariant(t *testing.T) {
	amounts := []string{"-40", "40", "-0.01", "123.456789", "0"}
	categories := []string{"Fuel", "Food", "Unknown", " Rent "}
	for _, a := range amounts {
		for _, c := range categories {
			pos := Footprint(dec(a), c)
			neg := Footprint(dec(a).Neg(), c)
			assert.False(t, pos.IsNegative(), "footprint(%s, %s) negative", a, c)
			assert.True(t, pos.Equal(neg), "footprint(%s, %s) depends on sign", a, c)
		}
	}
}

func TestFootprint_Values(t *testing.T) {
	assertDecimal(t, "40.0", Footprint(dec("-40"), "Fuel"))
	assertDecimal(t, "2.4691", Footprint(dec("12.34567"), "Mystery"))
	assertDecimal(t, "0.0003", Footprint(dec("-0.01"), "Rent"))
}

func TestEmissionFactors_ReturnsCopy(t *testing.T) {
	factors := EmissionFactors()
	assert.Len(t, factors, 8)
	delete(factors, "Fuel")
	assertDecimal(t, "1.0", FactorFor("Fuel"))
}
