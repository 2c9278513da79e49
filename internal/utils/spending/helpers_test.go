package spending

import (
	"testing"

	"github.com/SscSPs/ecobudget_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func txn(id, date, amt, category string) domain.Transaction {
	t := domain.Transaction{TransactionID: id, Date: date, Category: category, Place: "place-" + id}
	if amt != "" {
		t.Amount = decimal.NewNullDecimal(dec(amt))
	}
	return t
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "expected %s, got %s %v", want, got.String(), msgAndArgs)
}
