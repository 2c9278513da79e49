package services

import (
	"context"

	"github.com/SscSPs/ecobudget_backend/internal/core/domain"
	"github.com/SscSPs/ecobudget_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// TransactionReaderSvc lists a user's transactions.
type TransactionReaderSvc interface {
	// ListTransactions returns a page of transactions, newest date first.
	ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
}

// TransactionWriterSvc appends transactions.
type TransactionWriterSvc interface {
	// AddTransactions appends to the user's document and invalidates the persisted budget.
	// Returns the new document length.
	AddTransactions(ctx context.Context, userID string, req dto.CreateTransactionsRequest) (int, error)
}

type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}

// AnalysisSvc aggregates spending by category.
type AnalysisSvc interface {
	SpendingByCategory(ctx context.Context, userID string) (domain.SpendingAnalysis, error)
	SubscriptionsByPlace(ctx context.Context, userID string) (map[string]decimal.Decimal, error)
	// MonthlyBreakdown covers the month of the latest dated transaction.
	MonthlyBreakdown(ctx context.Context, userID string) (domain.MonthlyBreakdown, error)
}

// BudgetReaderSvc reads budgets and plans.
type BudgetReaderSvc interface {
	// GetBudget returns the budget over the last lastN transactions (0 = all).
	// Unwindowed results are persisted the first time they are computed; refresh forces a recompute.
	GetBudget(ctx context.Context, userID string, lastN int, refresh bool) (domain.BudgetSummary, error)
	GetPlan(ctx context.Context, userID string) (domain.BudgetPlan, error)
}

// BudgetWriterSvc writes the user-authored plan.
type BudgetWriterSvc interface {
	SetPlan(ctx context.Context, userID string, req dto.UpdatePlanRequest) (domain.BudgetPlan, error)
	// InvalidateBudget drops the persisted budget so the next read recomputes it.
	InvalidateBudget(ctx context.Context, userID string) error
}

type BudgetSvcFacade interface {
	BudgetReaderSvc
	BudgetWriterSvc
}

// CarbonSvc estimates the carbon footprint of spending.
type CarbonSvc interface {
	EmissionFactors() (map[string]decimal.Decimal, decimal.Decimal)
	Footprint(ctx context.Context, userID string, lastN int, includeTransactions bool) (domain.CarbonFootprintReport, error)
}

// GoalReaderSvc reads the savings goal.
type GoalReaderSvc interface {
	// GetGoal returns the stored goal, or a zero-valued profile if the user has none.
	GetGoal(ctx context.Context, userID string) (domain.GoalProfile, error)
	GetStatus(ctx context.Context, userID string) (domain.GoalStatus, error)
}

// GoalWriterSvc changes the savings goal.
type GoalWriterSvc interface {
	UpsertGoal(ctx context.Context, userID string, req dto.UpsertGoalRequest) (domain.GoalStatus, error)
	// AddSavings rejects non-positive amounts with apperrors.ErrInvalidAmount.
	AddSavings(ctx context.Context, userID string, amount decimal.Decimal) (domain.SavingsUpdate, error)
}

type GoalSvcFacade interface {
	GoalReaderSvc
	GoalWriterSvc
}

// ReflectionSvc translates a purchase into work time and goal delay.
type ReflectionSvc interface {
	ReflectOnPurchase(ctx context.Context, userID string, amount decimal.Decimal, merchant string) (*domain.PurchaseReflection, error)
}

// PredictionSvc produces a narrative spending forecast.
type PredictionSvc interface {
	// Predict returns nil without error when no forecast is available.
	Predict(ctx context.Context, userID string) (*domain.Prediction, error)
}

// PredictionModel is the language model behind PredictionSvc.
type PredictionModel interface {
	Predict(ctx context.Context, input domain.PredictionInput) (*domain.Prediction, error)
}
