package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/ecobudget_backend/internal/apperrors"
	"github.com/SscSPs/ecobudget_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/ecobudget_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ecobudget_backend/internal/core/ports/services"
	"github.com/SscSPs/ecobudget_backend/internal/dto"
	"github.com/SscSPs/ecobudget_backend/internal/utils/spending"
	"github.com/shopspring/decimal"
)

type goalService struct {
	BaseService
	goalRepo portsrepo.GoalRepository
	now      func() time.Time
}

// GoalServiceOption configures a goal service.
type GoalServiceOption func(*goalService)

// WithClock overrides the clock used for days-left projections.
func WithClock(now func() time.Time) GoalServiceOption {
	return func(s *goalService) {
		s.now = now
	}
}

func NewGoalService(goalRepo portsrepo.GoalRepository, opts ...GoalServiceOption) portssvc.GoalSvcFacade {
	s := &goalService{goalRepo: goalRepo, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.GoalSvcFacade = (*goalService)(nil)

func (s *goalService) GetGoal(ctx context.Context, userID string) (domain.GoalProfile, error) {
	goal, err := s.goalRepo.FindGoal(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.GoalProfile{UserID: userID}, nil
		}
		return domain.GoalProfile{}, fmt.Errorf("failed to load goal: %w", err)
	}
	return *goal, nil
}

func (s *goalService) GetStatus(ctx context.Context, userID string) (domain.GoalStatus, error) {
	goal, err := s.GetGoal(ctx, userID)
	if err != nil {
		return domain.GoalStatus{}, err
	}
	return spending.GoalStatusAt(goal, s.now()), nil
}

func (s *goalService) UpsertGoal(ctx context.Context, userID string, req dto.UpsertGoalRequest) (domain.GoalStatus, error) {
	if req.TargetAmount == nil {
		return domain.GoalStatus{}, apperrors.ErrInvalidAmount
	}
	target, err := spending.CentsAmount(*req.TargetAmount)
	if err != nil {
		return domain.GoalStatus{}, err
	}
	current := decimal.Zero
	if req.CurrentSavings != nil {
		if req.CurrentSavings.IsNegative() {
			return domain.GoalStatus{}, apperrors.ErrInvalidAmount
		}
		current = req.CurrentSavings.Round(2)
	}
	targetDate, err := dto.ParseTargetDate(req.TargetDate)
	if err != nil {
		return domain.GoalStatus{}, fmt.Errorf("invalid target_date: %w", apperrors.ErrValidation)
	}

	goal := domain.GoalProfile{
		UserID:         userID,
		Name:           strings.TrimSpace(req.Name),
		TargetDate:     targetDate,
		TargetAmount:   target,
		CurrentSavings: current,
		UpdatedAt:      s.now().UTC(),
	}
	if err := s.goalRepo.SaveGoal(ctx, goal); err != nil {
		s.LogError(ctx, err, "Failed to save goal", slog.String("user_id", userID))
		return domain.GoalStatus{}, fmt.Errorf("failed to save goal: %w", err)
	}
	return spending.GoalStatusAt(goal, s.now()), nil
}

// AddSavings increments the stored savings atomically; there is no read-modify-write.
func (s *goalService) AddSavings(ctx context.Context, userID string, amount decimal.Decimal) (domain.SavingsUpdate, error) {
	amount, err := spending.CentsAmount(amount)
	if err != nil {
		return domain.SavingsUpdate{}, err
	}

	goal, err := s.goalRepo.AddSavings(ctx, userID, amount)
	if err != nil {
		return domain.SavingsUpdate{}, fmt.Errorf("failed to add savings: %w", err)
	}

	update := spending.SavingsOutcome(*goal, amount, s.now())
	if update.GoalReached {
		s.LogInfo(ctx, "Savings goal reached", slog.String("user_id", userID), slog.String("goal", goal.Name))
	}
	return update, nil
}
