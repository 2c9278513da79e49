package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/SscSPs/ecobudget_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/ecobudget_backend/internal/core/ports/repositories"
	"github.com/SscSPs/ecobudget_backend/internal/models"
	"github.com/SscSPs/ecobudget_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxTransactionRepository keeps all transactions of a user in a single JSONB array.
type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(db *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const (
	loadTransactionsQuery = `
		SELECT transactions
		FROM user_transactions
		WHERE user_id = $1
	`

	appendTransactionsQuery = `
		INSERT INTO user_transactions (user_id, transactions)
		VALUES ($1, $2::jsonb)
		ON CONFLICT (user_id) DO UPDATE SET
			transactions = user_transactions.transactions || EXCLUDED.transactions,
			last_updated_at = NOW()
		RETURNING jsonb_array_length(transactions)
	`
)

func (r *PgxTransactionRepository) LoadTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	var raw []byte
	err := r.Pool.QueryRow(ctx, loadTransactionsQuery, userID).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Transaction{}, nil
		}
		return nil, fmt.Errorf("failed to load transactions for user %s: %w", userID, err)
	}

	docs, err := models.DecodeTransactionDocuments(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode transactions for user %s: %w", userID, err)
	}
	return mapping.ToDomainTransactionSlice(docs), nil
}

func (r *PgxTransactionRepository) AppendTransaction(ctx context.Context, userID string, txns ...domain.Transaction) (int, error) {
	docs := make([]models.TransactionDocument, len(txns))
	for i, t := range txns {
		docs[i] = mapping.ToTransactionDocument(t)
	}
	payload, err := json.Marshal(docs)
	if err != nil {
		return 0, fmt.Errorf("failed to encode transactions: %w", err)
	}

	var count int
	if err := r.Pool.QueryRow(ctx, appendTransactionsQuery, userID, string(payload)).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to append transactions for user %s: %w", userID, err)
	}
	return count, nil
}
