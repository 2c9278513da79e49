package mapping

import (
	"encoding/json"
	"strings"

	"github.com/SscSPs/ecobudget_backend/internal/core/domain"
	"github.com/SscSPs/ecobudget_backend/internal/models"
	"github.com/shopspring/decimal"
)

// DefaultCategory is assigned to documents without a category.
const DefaultCategory = "Other"

// ToDomainTransaction converts a stored document. Non-numeric amounts become an invalid NullDecimal.
func ToDomainTransaction(m models.TransactionDocument) domain.Transaction {
	category := m.Category
	if strings.TrimSpace(category) == "" {
		category = DefaultCategory
	}
	return domain.Transaction{
		TransactionID: m.TransactionID,
		Date:          m.Date,
		Time:          m.Time,
		Amount:        parseAmount(m.Amount),
		Place:         m.Place,
		Category:      category,
	}
}

// ToDomainTransactionSlice converts a slice of stored documents.
func ToDomainTransactionSlice(ms []models.TransactionDocument) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}

// ToTransactionDocument converts a domain transaction for storage. Amounts are written as JSON numbers.
func ToTransactionDocument(d domain.Transaction) models.TransactionDocument {
	var amount any
	if d.Amount.Valid {
		amount = json.Number(d.Amount.Decimal.String())
	}
	return models.TransactionDocument{
		TransactionID: d.TransactionID,
		Date:          d.Date,
		Time:          d.Time,
		Amount:        amount,
		Place:         d.Place,
		Category:      d.Category,
	}
}

func parseAmount(v any) decimal.NullDecimal {
	switch a := v.(type) {
	case json.Number:
		if d, err := decimal.NewFromString(a.String()); err == nil {
			return decimal.NewNullDecimal(d)
		}
	case float64:
		return decimal.NewNullDecimal(decimal.NewFromFloat(a))
	case string:
		if d, err := decimal.NewFromString(strings.TrimSpace(a)); err == nil {
			return decimal.NewNullDecimal(d)
		}
	}
	return decimal.NullDecimal{}
}
