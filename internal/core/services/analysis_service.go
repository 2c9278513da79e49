package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/ecobudget_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/ecobudget_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ecobudget_backend/internal/core/ports/services"
	"github.com/SscSPs/ecobudget_backend/internal/utils/spending"
	"github.com/shopspring/decimal"
)

type analysisService struct {
	BaseService
	txnRepo portsrepo.TransactionReader
}

func NewAnalysisService(txnRepo portsrepo.TransactionReader) portssvc.AnalysisSvc {
	return &analysisService{txnRepo: txnRepo}
}

var _ portssvc.AnalysisSvc = (*analysisService)(nil)

func (s *analysisService) load(ctx context.Context, userID string) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.LoadTransactions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	return txns, nil
}

func (s *analysisService) SpendingByCategory(ctx context.Context, userID string) (domain.SpendingAnalysis, error) {
	txns, err := s.load(ctx, userID)
	if err != nil {
		return domain.SpendingAnalysis{}, err
	}
	return spending.SpendingByCategory(txns), nil
}

func (s *analysisService) SubscriptionsByPlace(ctx context.Context, userID string) (map[string]decimal.Decimal, error) {
	txns, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return spending.SubscriptionsByPlace(txns), nil
}

// MonthlyBreakdown returns an empty breakdown when no transaction carries a parseable date.
func (s *analysisService) MonthlyBreakdown(ctx context.Context, userID string) (domain.MonthlyBreakdown, error) {
	txns, err := s.load(ctx, userID)
	if err != nil {
		return domain.MonthlyBreakdown{}, err
	}
	breakdown, ok := spending.MonthlyBreakdown(txns)
	if !ok {
		return domain.MonthlyBreakdown{
			Debit:  map[string]decimal.Decimal{},
			Credit: map[string]decimal.Decimal{},
			Weekly: map[string]decimal.Decimal{},
		}, nil
	}
	return breakdown, nil
}
