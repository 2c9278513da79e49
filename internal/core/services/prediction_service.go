package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/ecobudget_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/ecobudget_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ecobudget_backend/internal/core/ports/services"
	"github.com/SscSPs/ecobudget_backend/internal/utils/spending"
	"golang.org/x/sync/errgroup"
)

// recentExpenseDays is how far back, from the latest transaction, the model sees expenses.
const recentExpenseDays = 30

type predictionService struct {
	BaseService
	model   portssvc.PredictionModel
	budget  portssvc.BudgetReaderSvc
	txnRepo portsrepo.TransactionReader
	timeout time.Duration
}

// NewPredictionService wires the forecast model. A nil model disables predictions.
func NewPredictionService(model portssvc.PredictionModel, budget portssvc.BudgetReaderSvc, txnRepo portsrepo.TransactionReader, timeout time.Duration) portssvc.PredictionSvc {
	return &predictionService{model: model, budget: budget, txnRepo: txnRepo, timeout: timeout}
}

var _ portssvc.PredictionSvc = (*predictionService)(nil)

func (s *predictionService) Predict(ctx context.Context, userID string) (*domain.Prediction, error) {
	if s.model == nil {
		return nil, nil
	}

	var input domain.PredictionInput
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		budget, err := s.budget.GetBudget(gctx, userID, 0, false)
		if err != nil {
			return fmt.Errorf("budget: %w", err)
		}
		input.Budget = budget
		return nil
	})
	g.Go(func() error {
		plan, err := s.budget.GetPlan(gctx, userID)
		if err != nil {
			return fmt.Errorf("plan: %w", err)
		}
		input.Plan = plan
		return nil
	})
	g.Go(func() error {
		txns, err := s.txnRepo.LoadTransactions(gctx, userID)
		if err != nil {
			return fmt.Errorf("transactions: %w", err)
		}
		input.RecentExpenses = spending.RecentExpenses(txns, recentExpenseDays)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to assemble prediction input: %w", err)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	prediction, err := s.model.Predict(ctx, input)
	if err != nil {
		s.LogError(ctx, err, "Prediction model failed", slog.String("user_id", userID))
		return nil, nil
	}
	return prediction, nil
}
