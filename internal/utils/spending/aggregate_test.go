package spending

import (
	"testing"

	"github.com/SscSPs/ecobudget_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSpendingByCategory(t *testing.T) {
	txns := []domain.Transaction{
		txn("1", "2024-01-01", "-50", "Food"),
		txn("2", "2024-01-02", "-10.005", "Food"),
		txn("3", "2024-01-03", "200", "Income"),
		txn("4", "2024-01-04", "", "Food"),
		txn("5", "2024-01-05", "0", "Refund"),
	}

	got := SpendingByCategory(txns)
	assert.Len(t, got.Debit, 1)
	assertDecimal(t, "60.01", got.Debit["Food"])
	assertDecimal(t, "200", got.Credit["Income"])
	assertDecimal(t, "0", got.Credit["Refund"])
}

func TestSpendingByCategory_NetSumProperty(t *testing.T) {
	sets := [][]domain.Transaction{
		{},
		{txn("1", "", "-1.25", "A"), txn("2", "", "3.50", "B"), txn("3", "", "-7", "A")},
		{txn("1", "", "100", "X"), txn("2", "", "-100", "X"), txn("3", "", "", "X")},
	}
	for _, txns := range sets {
		net := decimal.Zero
		for _, tx := range txns {
			if tx.HasAmount() {
				net = net.Add(tx.Amount.Decimal)
			}
		}
		got := SpendingByCategory(txns)
		total := decimal.Zero
		for _, v := range got.Credit {
			total = total.Add(v)
		}
		for _, v := range got.Debit {
			total = total.Sub(v)
		}
		assert.True(t, net.Equal(total), "net %s != credit-debit %s", net, total)
	}
}

func TestSubscriptionsByPlace(t *testing.T) {
	txns := []domain.Transaction{
		{Place: "Netflix", Category: "Subscriptions", Amount: decimal.NewNullDecimal(dec("-15.99"))},
		{Place: "Netflix", Category: "Subscriptions ", Amount: decimal.NewNullDecimal(dec("-15.99"))},
		{Place: "Spotify", Category: "Subscriptions", Amount: decimal.NewNullDecimal(dec("-9.99"))},
		{Place: "Cafe", Category: "Food", Amount: decimal.NewNullDecimal(dec("-4"))},
		{Place: "Refund", Category: "Subscriptions", Amount: decimal.NewNullDecimal(dec("5"))},
	}
	got := SubscriptionsByPlace(txns)
	assert.Len(t, got, 2)
	assertDecimal(t, "31.98", got["Netflix"])
	assertDecimal(t, "9.99", got["Spotify"])
}

func TestMonthlyBreakdown(t *testing.T) {
	txns := []domain.Transaction{
		txn("1", "2024-02-28", "-100", "Rent"),
		txn("2", "2024-03-01", "-10", "Food"),
		txn("3", "2024-03-04", "-5", "Food"),
		txn("4", "2024-03-05", "-20", "Fuel"),
		txn("5", "2024-03-10", "1000", "Salary"),
		txn("6", "2023-03-20", "-99", "Food"),
	}

	got, ok := MonthlyBreakdown(txns)
	assert.True(t, ok)
	assert.Equal(t, 2024, got.Year)
	assert.Equal(t, 3, int(got.Month))
	assertDecimal(t, "15", got.Debit["Food"])
	assertDecimal(t, "20", got.Debit["Fuel"])
	_, hasRent := got.Debit["Rent"]
	assert.False(t, hasRent)
	assertDecimal(t, "1000", got.Credit["Salary"])

	// 2024-03-01 is ISO week 9, 03-04 and 03-05 are week 10
	assert.Len(t, got.Weekly, 2)
	assertDecimal(t, "10", got.Weekly["Week 9"])
	assertDecimal(t, "25", got.Weekly["Week 10"])
}

func TestMonthlyBreakdown_NoDates(t *testing.T) {
	_, ok := MonthlyBreakdown([]domain.Transaction{txn("1", "", "-1", "Food")})
	assert.False(t, ok)
}

func TestRecentExpenses(t *testing.T) {
	txns := []domain.Transaction{
		txn("old", "2024-01-01", "-10", "Food"),
		txn("edge", "2024-02-01", "-10", "Food"),
		txn("new", "2024-03-01", "-10", "Food"),
		txn("income", "2024-03-02", "50", "Salary"),
	}
	got := RecentExpenses(txns, 30)
	assert.Equal(t, []string{"edge", "new"}, ids(got))
	assert.Nil(t, RecentExpenses(nil, 30))
}
