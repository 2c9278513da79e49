package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/ecobudget_backend/internal/apperrors"
	"github.com/SscSPs/ecobudget_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/ecobudget_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ecobudget_backend/internal/core/ports/services"
	"github.com/SscSPs/ecobudget_backend/internal/utils/spending"
	"github.com/shopspring/decimal"
)

type carbonService struct {
	txnRepo portsrepo.TransactionReader
}

func NewCarbonService(txnRepo portsrepo.TransactionReader) portssvc.CarbonSvc {
	return &carbonService{txnRepo: txnRepo}
}

var _ portssvc.CarbonSvc = (*carbonService)(nil)

func (s *carbonService) EmissionFactors() (map[string]decimal.Decimal, decimal.Decimal) {
	return spending.EmissionFactors(), spending.DefaultEmissionFactor
}

func (s *carbonService) Footprint(ctx context.Context, userID string, lastN int, includeTransactions bool) (domain.CarbonFootprintReport, error) {
	if lastN < 0 {
		return domain.CarbonFootprintReport{}, fmt.Errorf("last_n must not be negative: %w", apperrors.ErrValidation)
	}
	txns, err := s.txnRepo.LoadTransactions(ctx, userID)
	if err != nil {
		return domain.CarbonFootprintReport{}, fmt.Errorf("failed to load transactions: %w", err)
	}
	return spending.ComputeFootprint(txns, lastN, includeTransactions), nil
}
