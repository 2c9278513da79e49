package spending

import (
	"encoding/json"
	"testing"

	"github.com/SscSPs/ecobudget_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildBudget_Example(t *testing.T) {
	txns := []domain.Transaction{
		txn("1", "2024-01-01", "-50", "Food"),
		txn("2", "2024-01-02", "-10", "Food"),
		txn("3", "2024-01-03", "200", "Income"),
	}

	b := BuildBudget(txns, 0)
	assertDecimal(t, "200.00", b.Income)
	assertDecimal(t, "-60.00", b.Expenses)
	assertDecimal(t, "140.00", b.Savings)
	assertDecimal(t, "260.00", b.LegacySavings)
	require.Len(t, b.Categories, 1)
	assertDecimal(t, "-60.00", b.Categories["Food"])
}

func TestBuildBudget_RoundsOnceAtOutput(t *testing.T) {
	txns := []domain.Transaction{
		txn("1", "", "-0.004", "Food"),
		txn("2", "", "-0.004", "Food"),
		txn("3", "", "0.333", "Gift"),
		txn("4", "", "0.333", "Gift"),
		txn("5", "", "", "Food"),
	}
	b := BuildBudget(txns, 0)
	assertDecimal(t, "-0.01", b.Expenses)
	assertDecimal(t, "-0.01", b.Categories["Food"])
	assertDecimal(t, "0.67", b.Income)
}

func TestBuildBudget_Window(t *testing.T) {
	txns := []domain.Transaction{
		txn("1", "2024-01-03", "-30", "Fuel"),
		txn("2", "2024-01-01", "500", "Salary"),
		txn("3", "2024-01-02", "-20", "Food"),
	}
	b := BuildBudget(txns, 2)
	assertDecimal(t, "0", b.Income)
	assertDecimal(t, "-50", b.Expenses)
	assert.Len(t, b.Categories, 2)
}

func TestBuildBudget_Empty(t *testing.T) {
	b := BuildBudget(nil, 0)
	assertDecimal(t, "0", b.Income)
	assertDecimal(t, "0", b.Expenses)
	assertDecimal(t, "0", b.Savings)
	assert.NotNil(t, b.Categories)
}

func TestSanitizePlanLimits(t *testing.T) {
	var raw map[string]any
	require.NoError(t, json.Unmarshal([]byte(`{
		"Food": 300,
		"Fuel": 120.5,
		"Rent": 0,
		"Leisure": -10,
		"Travel": "lots",
		"Gifts": null,
		"Pets": true
	}`), &raw))

	got := SanitizePlanLimits(raw)
	assert.Len(t, got, 3)
	assertDecimal(t, "300", got["Food"])
	assertDecimal(t, "120.5", got["Fuel"])
	assertDecimal(t, "0", got["Rent"])
}

func TestSanitizePlanLimits_JSONNumber(t *testing.T) {
	got := SanitizePlanLimits(map[string]any{
		"Food": json.Number("42.10"),
		"Bad":  json.Number("1e"),
	})
	assert.Len(t, got, 1)
	assertDecimal(t, "42.1", got["Food"])
}
