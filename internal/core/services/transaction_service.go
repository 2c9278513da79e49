package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/SscSPs/ecobudget_backend/internal/apperrors"
	"github.com/SscSPs/ecobudget_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/ecobudget_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ecobudget_backend/internal/core/ports/services"
	"github.com/SscSPs/ecobudget_backend/internal/dto"
	"github.com/SscSPs/ecobudget_backend/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const defaultCategory = "Other"

type transactionService struct {
	BaseService
	txnRepo    portsrepo.TransactionRepositoryFacade
	budgetRepo portsrepo.BudgetRepository
}

// NewTransactionService creates the transaction service. Appends clear the persisted budget.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade, budgetRepo portsrepo.BudgetRepository) portssvc.TransactionSvcFacade {
	return &transactionService{txnRepo: txnRepo, budgetRepo: budgetRepo}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 50
	}

	offset := 0
	lastID := ""
	if params.NextToken != "" {
		var err error
		offset, lastID, err = pagination.DecodeOffsetToken(params.NextToken)
		if err != nil {
			return nil, fmt.Errorf("invalid next_token: %w", apperrors.ErrValidation)
		}
	}

	txns, err := s.txnRepo.LoadTransactions(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	sorted := make([]domain.Transaction, len(txns))
	copy(sorted, txns)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DateKey() > sorted[j].DateKey()
	})

	// the token remembers the last id it handed out so a concurrent append is detected
	if offset > 0 {
		if offset > len(sorted) || sorted[offset-1].TransactionID != lastID {
			return nil, fmt.Errorf("stale next_token: %w", apperrors.ErrValidation)
		}
	}

	end := offset + limit
	if end > len(sorted) {
		end = len(sorted)
	}
	page := sorted[offset:end]

	resp := &dto.ListTransactionsResponse{Transactions: dto.ToTransactionResponseList(page)}
	if end < len(sorted) && len(page) > 0 {
		token := pagination.EncodeOffsetToken(end, page[len(page)-1].TransactionID)
		resp.NextToken = &token
	}
	return resp, nil
}

func (s *transactionService) AddTransactions(ctx context.Context, userID string, req dto.CreateTransactionsRequest) (int, error) {
	if len(req.Transactions) == 0 {
		return 0, fmt.Errorf("no transactions supplied: %w", apperrors.ErrValidation)
	}

	txns := make([]domain.Transaction, 0, len(req.Transactions))
	for _, in := range req.Transactions {
		if in.Amount == nil {
			return 0, fmt.Errorf("transaction amount is required: %w", apperrors.ErrValidation)
		}
		txn := domain.Transaction{
			TransactionID: strings.TrimSpace(in.TransactionID),
			Date:          strings.TrimSpace(in.Date),
			Time:          strings.TrimSpace(in.Time),
			Amount:        decimal.NewNullDecimal(*in.Amount),
			Place:         strings.TrimSpace(in.Place),
			Category:      strings.TrimSpace(in.Category),
		}
		if txn.TransactionID == "" {
			txn.TransactionID = uuid.NewString()
		}
		if txn.Category == "" {
			txn.Category = defaultCategory
		}
		txns = append(txns, txn)
	}

	// cleared before the append so a failure here never leaves a budget that omits new rows
	if err := s.budgetRepo.ClearBudget(ctx, userID); err != nil {
		return 0, fmt.Errorf("failed to invalidate budget: %w", err)
	}

	count, err := s.txnRepo.AppendTransaction(ctx, userID, txns...)
	if err != nil {
		s.LogError(ctx, err, "Failed to append transactions", slog.String("user_id", userID))
		return 0, fmt.Errorf("failed to append transactions: %w", err)
	}

	// a budget read racing the append may have persisted a stale summary
	if err := s.budgetRepo.ClearBudget(ctx, userID); err != nil {
		s.LogError(ctx, err, "Failed to invalidate budget after append", slog.String("user_id", userID))
	}

	s.LogInfo(ctx, "Transactions appended", slog.String("user_id", userID), slog.Int("added", len(txns)), slog.Int("total", count))
	return count, nil
}
