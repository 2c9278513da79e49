package spending

import (
	"fmt"
	"time"

	"github.com/SscSPs/ecobudget_backend/internal/apperrors"
	"github.com/SscSPs/ecobudget_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

const (
	GoalReachedMessage = "Congratulations! You have reached your savings goal!"
	savingsAddedFormat = "Added $%s to savings"
)

// GoalStatusAt projects goal onto the calendar day of now.
// DaysLeft and RemainingAmount never go below zero.
func GoalStatusAt(goal domain.GoalProfile, now time.Time) domain.GoalStatus {
	daysLeft := 0
	if !goal.TargetDate.IsZero() {
		daysLeft = int(civilDate(goal.TargetDate).Sub(civilDate(now)) / (24 * time.Hour))
	}
	if daysLeft < 0 {
		daysLeft = 0
	}

	remaining := goal.TargetAmount.Sub(goal.CurrentSavings)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	daily := decimal.Zero
	if daysLeft > 0 {
		daily = remaining.Div(decimal.NewFromInt(int64(daysLeft))).Round(2)
	}

	return domain.GoalStatus{
		GoalName:             goal.Name,
		TargetDate:           goal.TargetDate,
		DaysLeft:             daysLeft,
		CurrentSavings:       goal.CurrentSavings.Round(2),
		RemainingAmount:      remaining.Round(2),
		DailySavingsRequired: daily,
	}
}

// CentsAmount rounds a goal amount to the stored precision of two decimal
// places and rejects anything that is not positive after rounding.
func CentsAmount(amount decimal.Decimal) (decimal.Decimal, error) {
	rounded := amount.Round(2)
	if !rounded.IsPositive() {
		return decimal.Zero, apperrors.ErrInvalidAmount
	}
	return rounded, nil
}

// SavingsOutcome builds the response after amount was added to goal.
// goal must already include the deposit.
func SavingsOutcome(goal domain.GoalProfile, amount decimal.Decimal, now time.Time) domain.SavingsUpdate {
	reached := goal.CurrentSavings.GreaterThanOrEqual(goal.TargetAmount)
	msg := fmt.Sprintf(savingsAddedFormat, amount.StringFixed(2))
	if reached {
		msg = GoalReachedMessage
	}
	return domain.SavingsUpdate{
		Status:      GoalStatusAt(goal, now),
		GoalReached: reached,
		Message:     msg,
	}
}

func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
