package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format used by transaction records.
const DateLayout = "2006-01-02"

// Transaction is a single bank/card movement owned by a user.
// A negative amount is an expense (debit), a non-negative amount is income (credit).
type Transaction struct {
	TransactionID string              `json:"transaction_id"`
	Date          string              `json:"date"`
	Time          string              `json:"time,omitempty"`
	Amount        decimal.NullDecimal `json:"amount"`
	Place         string              `json:"place"`
	Category      string              `json:"category"`
}

// DateKey returns the YYYY-MM-DD prefix of the date used for chronological ordering.
// Records with no date sort before every dated record.
func (t Transaction) DateKey() string {
	if len(t.Date) > 10 {
		return t.Date[:10]
	}
	return t.Date
}

// ParsedDate parses DateKey as a calendar date.
func (t Transaction) ParsedDate() (time.Time, bool) {
	d, err := time.Parse(DateLayout, t.DateKey())
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// HasAmount reports whether the amount was present and numeric.
func (t Transaction) HasAmount() bool {
	return t.Amount.Valid
}

// IsExpense reports whether the transaction is a debit.
func (t Transaction) IsExpense() bool {
	return t.Amount.Valid && t.Amount.Decimal.IsNegative()
}

// IsIncome reports whether the transaction is a credit.
func (t Transaction) IsIncome() bool {
	return t.Amount.Valid && !t.Amount.Decimal.IsNegative()
}
