package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func amount(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func TestTransaction_DateKey(t *testing.T) {
	tests := []struct {
		name string
		date string
		want string
	}{
		{"plain date", "2024-03-05", "2024-03-05"},
		{"timestamp", "2024-03-05T10:11:12Z", "2024-03-05"},
		{"empty", "", ""},
		{"short", "2024-3", "2024-3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Transaction{Date: tt.date}.DateKey())
		})
	}
}

func TestTransaction_ParsedDate(t *testing.T) {
	d, ok := Transaction{Date: "2024-03-05T08:00:00"}.ParsedDate()
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), d)

	_, ok = Transaction{Date: "yesterday"}.ParsedDate()
	assert.False(t, ok)
}

func TestTransaction_Sign(t *testing.T) {
	tests := []struct {
		name      string
		txn       Transaction
		isExpense bool
		isIncome  bool
	}{
		{"negative is expense", Transaction{Amount: amount("-12.50")}, true, false},
		{"positive is income", Transaction{Amount: amount("100")}, false, true},
		{"zero is income", Transaction{Amount: amount("0")}, false, true},
		{"missing amount is neither", Transaction{}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isExpense, tt.txn.IsExpense())
			assert.Equal(t, tt.isIncome, tt.txn.IsIncome())
		})
	}
}

func TestCarbonFootprintReport_CategoryNames(t *testing.T) {
	r := CarbonFootprintReport{ByCategory: map[string]CategoryFootprint{
		"Leisure": {}, "Food": {}, "Fuel": {},
	}}
	assert.Equal(t, []string{"Food", "Fuel", "Leisure"}, r.CategoryNames())
}
