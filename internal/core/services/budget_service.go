package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/ecobudget_backend/internal/apperrors"
	"github.com/SscSPs/ecobudget_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/ecobudget_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ecobudget_backend/internal/core/ports/services"
	"github.com/SscSPs/ecobudget_backend/internal/dto"
	"github.com/SscSPs/ecobudget_backend/internal/utils/spending"
	"github.com/shopspring/decimal"
)

type budgetService struct {
	BaseService
	txnRepo    portsrepo.TransactionReader
	budgetRepo portsrepo.BudgetRepository
}

func NewBudgetService(txnRepo portsrepo.TransactionReader, budgetRepo portsrepo.BudgetRepository) portssvc.BudgetSvcFacade {
	return &budgetService{txnRepo: txnRepo, budgetRepo: budgetRepo}
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

// GetBudget serves the persisted budget for unwindowed reads and writes it through on first compute.
// Windowed budgets are never persisted.
func (s *budgetService) GetBudget(ctx context.Context, userID string, lastN int, refresh bool) (domain.BudgetSummary, error) {
	if lastN < 0 {
		return domain.BudgetSummary{}, fmt.Errorf("last_n must not be negative: %w", apperrors.ErrValidation)
	}

	persistable := true
	record, err := s.budgetRepo.LoadBudgetRecord(ctx, userID)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		persistable = false
	case err != nil:
		return domain.BudgetSummary{}, fmt.Errorf("failed to load budget: %w", err)
	}

	if lastN == 0 && !refresh && record != nil && record.Budget != nil {
		return *record.Budget, nil
	}

	txns, err := s.txnRepo.LoadTransactions(ctx, userID)
	if err != nil {
		return domain.BudgetSummary{}, fmt.Errorf("failed to load transactions: %w", err)
	}
	summary := spending.BuildBudget(txns, lastN)

	if lastN == 0 && persistable {
		if err := s.budgetRepo.SaveBudget(ctx, userID, summary); err != nil {
			s.LogError(ctx, err, "Failed to persist budget", slog.String("user_id", userID))
		}
	}
	return summary, nil
}

func (s *budgetService) GetPlan(ctx context.Context, userID string) (domain.BudgetPlan, error) {
	record, err := s.budgetRepo.LoadBudgetRecord(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.BudgetPlan{Limits: map[string]decimal.Decimal{}}, nil
		}
		return domain.BudgetPlan{}, fmt.Errorf("failed to load budget plan: %w", err)
	}
	plan := record.Plan
	if plan.Limits == nil {
		plan.Limits = map[string]decimal.Decimal{}
	}
	return plan, nil
}

func (s *budgetService) SetPlan(ctx context.Context, userID string, req dto.UpdatePlanRequest) (domain.BudgetPlan, error) {
	plan := domain.BudgetPlan{
		Limits:        spending.SanitizePlanLimits(req.Plan),
		SavingsGoal:   strings.TrimSpace(req.SavingsGoal),
		SavingsReason: strings.TrimSpace(req.SavingsReason),
	}
	if err := s.budgetRepo.SavePlan(ctx, userID, plan); err != nil {
		s.LogError(ctx, err, "Failed to save budget plan", slog.String("user_id", userID))
		return domain.BudgetPlan{}, fmt.Errorf("failed to save budget plan: %w", err)
	}
	return plan, nil
}

func (s *budgetService) InvalidateBudget(ctx context.Context, userID string) error {
	if err := s.budgetRepo.ClearBudget(ctx, userID); err != nil {
		return fmt.Errorf("failed to invalidate budget: %w", err)
	}
	return nil
}
