package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/SscSPs/ecobudget_backend/internal/apperrors"
	"github.com/SscSPs/ecobudget_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/ecobudget_backend/internal/core/ports/repositories"
	"github.com/SscSPs/ecobudget_backend/internal/models"
	"github.com/SscSPs/ecobudget_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgxBudgetRepository stores budget state on the users row.
type PgxBudgetRepository struct {
	BaseRepository
}

func newPgxBudgetRepository(db *pgxpool.Pool) portsrepo.BudgetRepository {
	return &PgxBudgetRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.BudgetRepository = (*PgxBudgetRepository)(nil)

const (
	loadBudgetQuery = `
		SELECT budget, budget_plan, savings_goal, savings_reason
		FROM users
		WHERE user_id = $1 AND deleted_at IS NULL
	`

	saveBudgetQuery = `
		UPDATE users
		SET budget = $2::jsonb, last_updated_at = NOW()
		WHERE user_id = $1 AND deleted_at IS NULL
	`

	clearBudgetQuery = `
		UPDATE users
		SET budget = NULL
		WHERE user_id = $1 AND deleted_at IS NULL
	`

	savePlanQuery = `
		UPDATE users
		SET budget_plan = $2::jsonb, savings_goal = $3, savings_reason = $4, last_updated_at = NOW()
		WHERE user_id = $1 AND deleted_at IS NULL
	`
)

func (r *PgxBudgetRepository) LoadBudgetRecord(ctx context.Context, userID string) (*domain.BudgetRecord, error) {
	var budgetRaw, planRaw []byte
	var row models.BudgetRow
	err := r.Pool.QueryRow(ctx, loadBudgetQuery, userID).Scan(&budgetRaw, &planRaw, &row.SavingsGoal, &row.SavingsReason)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load budget for user %s: %w", userID, err)
	}

	if len(budgetRaw) > 0 {
		var doc models.BudgetDocument
		if err := json.Unmarshal(budgetRaw, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode budget for user %s: %w", userID, err)
		}
		row.Budget = &doc
	}
	if len(planRaw) > 0 {
		if err := json.Unmarshal(planRaw, &row.PlanLimits); err != nil {
			return nil, fmt.Errorf("failed to decode budget plan for user %s: %w", userID, err)
		}
	}

	rec := mapping.ToDomainBudgetRecord(row)
	return &rec, nil
}

func (r *PgxBudgetRepository) SaveBudget(ctx context.Context, userID string, summary domain.BudgetSummary) error {
	payload, err := json.Marshal(mapping.ToBudgetDocument(summary))
	if err != nil {
		return fmt.Errorf("failed to encode budget: %w", err)
	}
	return r.execForUser(ctx, saveBudgetQuery, userID, string(payload))
}

func (r *PgxBudgetRepository) ClearBudget(ctx context.Context, userID string) error {
	return r.execForUser(ctx, clearBudgetQuery, userID)
}

func (r *PgxBudgetRepository) SavePlan(ctx context.Context, userID string, plan domain.BudgetPlan) error {
	limits := plan.Limits
	if limits == nil {
		limits = map[string]decimal.Decimal{}
	}
	payload, err := json.Marshal(limits)
	if err != nil {
		return fmt.Errorf("failed to encode budget plan: %w", err)
	}
	return r.execForUser(ctx, savePlanQuery, userID, string(payload), plan.SavingsGoal, plan.SavingsReason)
}

func (r *PgxBudgetRepository) execForUser(ctx context.Context, query string, userID string, args ...any) error {
	cmdTag, err := r.Pool.Exec(ctx, query, append([]any{userID}, args...)...)
	if err != nil {
		return fmt.Errorf("failed to update budget state for user %s: %w", userID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", userID, apperrors.ErrNotFound)
	}
	return nil
}
