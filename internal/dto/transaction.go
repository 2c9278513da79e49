package dto

import (
	"github.com/SscSPs/ecobudget_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionInput is a single transaction to append.
type TransactionInput struct {
	TransactionID string           `json:"transaction_id"`
	Date          string           `json:"date" binding:"required,yyyymmdd"`
	Time          string           `json:"time"`
	Amount        *decimal.Decimal `json:"amount" binding:"required"`
	Place         string           `json:"place" binding:"required"`
	Category      string           `json:"category"`
}

// CreateTransactionsRequest appends one or more transactions.
type CreateTransactionsRequest struct {
	Transactions []TransactionInput `json:"transactions" binding:"required,min=1,max=500,dive"`
}

type CreateTransactionsResponse struct {
	Count int `json:"count"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Limit     int    `form:"limit,default=50" binding:"min=1,max=500"`
	NextToken string `form:"next_token"`
}

type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"next_token,omitempty"`
}

type TransactionResponse struct {
	TransactionID string           `json:"transaction_id"`
	Date          string           `json:"date"`
	Time          string           `json:"time,omitempty"`
	Amount        *decimal.Decimal `json:"amount"`
	Place         string           `json:"place"`
	Category      string           `json:"category"`
}

func ToTransactionResponse(t domain.Transaction) TransactionResponse {
	resp := TransactionResponse{
		TransactionID: t.TransactionID,
		Date:          t.Date,
		Time:          t.Time,
		Place:         t.Place,
		Category:      t.Category,
	}
	if t.Amount.Valid {
		a := t.Amount.Decimal
		resp.Amount = &a
	}
	return resp
}

func ToTransactionResponseList(txns []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(txns))
	for i, t := range txns {
		out[i] = ToTransactionResponse(t)
	}
	return out
}
