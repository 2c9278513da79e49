package repositories

import (
	"context"

	"github.com/SscSPs/ecobudget_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GoalRepository stores one savings goal per user.
type GoalRepository interface {
	// FindGoal returns apperrors.ErrNotFound if the user has no goal.
	FindGoal(ctx context.Context, userID string) (*domain.GoalProfile, error)

	// SaveGoal creates or replaces the goal of goal.UserID.
	SaveGoal(ctx context.Context, goal domain.GoalProfile) error

	// AddSavings atomically increments current savings and returns the updated goal.
	// Returns apperrors.ErrNotFound if the user has no goal.
	AddSavings(ctx context.Context, userID string, amount decimal.Decimal) (*domain.GoalProfile, error)
}
