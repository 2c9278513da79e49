package repositories

import (
	"context"

	"github.com/SscSPs/ecobudget_backend/internal/core/domain"
)

// BudgetRepository stores the computed budget and the user-authored plan of a user.
type BudgetRepository interface {
	// LoadBudgetRecord returns the persisted budget (nil if never computed) and the plan.
	// Returns apperrors.ErrNotFound for unknown users.
	LoadBudgetRecord(ctx context.Context, userID string) (*domain.BudgetRecord, error)

	// SaveBudget persists summary as the current budget.
	SaveBudget(ctx context.Context, userID string, summary domain.BudgetSummary) error

	// ClearBudget drops the persisted budget so the next read recomputes it.
	ClearBudget(ctx context.Context, userID string) error

	// SavePlan persists the plan limits and free-text goal fields.
	SavePlan(ctx context.Context, userID string, plan domain.BudgetPlan) error
}
