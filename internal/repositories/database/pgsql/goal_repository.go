package pgsql

import (
	"context"
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

type PgxGoalRepository struct {
	BaseRepository
}

func newPgxGoalRepository(db *pgxpool.Pool) portsrepo.GoalRepository {
	return &PgxGoalRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.GoalRepository = (*PgxGoalRepository)(nil)

const (
	selectGoalFields = `user_id, name, target_date, target_amount, current_savings, updated_at`

	findGoalQuery = `
		SELECT ` + selectGoalFields + `
		FROM savings_goals
		WHERE user_id = $1
	`

	upsertGoalQuery = `
		INSERT INTO savings_goals (user_id, name, target_date, target_amount, current_savings, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			name = EXCLUDED.name,
			target_date = EXCLUDED.target_date,
			target_amount = EXCLUDED.target_amount,
			current_savings = EXCLUDED.current_savings,
			updated_at = NOW()
	`

	// single statement so concurrent deposits never lose an update
	addSavingsQuery = `
		UPDATE savings_goals
		SET current_savings = current_savings + $2, updated_at = NOW()
		WHERE user_id = $1
		RETURNING ` + selectGoalFields
)

func (r *PgxGoalRepository) FindGoal(ctx context.Context, userID string) (*domain.GoalProfile, error) {
	return r.scanGoal(r.Pool.QueryRow(ctx, findGoalQuery, userID), userID)
}

func (r *PgxGoalRepository) SaveGoal(ctx context.Context, goal domain.GoalProfile) error {
	m := mapping.ToModelSavingsGoal(goal)
	_, err := r.Pool.Exec(ctx, upsertGoalQuery, m.UserID, m.Name, m.TargetDate, m.TargetAmount, m.CurrentSavings)
	if err != nil {
		return fmt.Errorf("failed to save savings goal for user %s: %w", goal.UserID, err)
	}
	return nil
}

func (r *PgxGoalRepository) AddSavings(ctx context.Context, userID string, amount decimal.Decimal) (*domain.GoalProfile, error) {
	return r.scanGoal(r.Pool.QueryRow(ctx, addSavingsQuery, userID, amount), userID)
}

func (r *PgxGoalRepository) scanGoal(row pgx.Row, userID string) (*domain.GoalProfile, error) {
	var m models.SavingsGoal
	err := row.Scan(&m.UserID, &m.Name, &m.TargetDate, &m.TargetAmount, &m.CurrentSavings, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read savings goal for user %s: %w", userID, err)
	}
	g := mapping.ToDomainGoalProfile(m)
	return &g, nil
}
