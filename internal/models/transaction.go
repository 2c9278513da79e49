package models

import (
	"bytes"
	"encoding/json"
)

// TransactionDocument is one element of the user_transactions.transactions JSONB array.
// Amount is left untyped because imported documents carry numbers, numeric strings or nothing.
type TransactionDocument struct {
	TransactionID string `json:"transaction_id"`
	Date          string `json:"date"`
	Time          string `json:"time,omitempty"`
	Amount        any    `json:"amount"`
	Place         string `json:"place"`
	Category      string `json:"category"`
}

// DecodeTransactionDocuments decodes a JSONB array keeping numbers as json.Number.
func DecodeTransactionDocuments(raw []byte) ([]TransactionDocument, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var docs []TransactionDocument
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&docs); err != nil {
		return nil, err
	}
	return docs, nil
}
