package repositories

import (
	"context"

	"github.com/SscSPs/ecobudget_backend/internal/core/domain"
)

// TransactionReader loads the transaction document of a user.
type TransactionReader interface {
	// LoadTransactions returns every transaction of the user in stored order.
	// A user without a document yields an empty slice, never ErrNotFound.
	LoadTransactions(ctx context.Context, userID string) ([]domain.Transaction, error)
}

// TransactionWriter appends to the transaction document of a user.
type TransactionWriter interface {
	// AppendTransaction atomically appends txns and returns the new document length.
	AppendTransaction(ctx context.Context, userID string, txns ...domain.Transaction) (int, error)
}

// TransactionRepositoryFacade combines transaction read and write operations
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
