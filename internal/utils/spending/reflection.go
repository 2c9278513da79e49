package spending

import (
	"fmt"

	"github.com/SscSPs/ecobudget_backend/internal/apperrors"
	"github.com/SscSPs/ecobudget_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

const GoalFundedMessage = "Goal already funded or no time left"

// Reflect converts a purchase into labor hours and days of goal delay.
func Reflect(amount, hourlyWage decimal.Decimal, merchant string, status domain.GoalStatus) (*domain.PurchaseReflection, error) {
	if !amount.IsPositive() {
		return nil, apperrors.ErrInvalidAmount
	}
	if !hourlyWage.IsPositive() {
		return nil, apperrors.ErrInvalidWage
	}

	r := &domain.PurchaseReflection{
		Merchant:       merchant,
		PurchaseAmount: amount,
		Status:         status,
	}
	if !status.DailySavingsRequired.IsPositive() {
		r.GoalFunded = true
		r.Message = GoalFundedMessage
		return r, nil
	}

	r.LaborHours = amount.Div(hourlyWage).Round(2)
	r.GoalName = status.GoalName
	r.GoalDelayDays = amount.Div(status.DailySavingsRequired).Round(1)
	r.LaborMessage = fmt.Sprintf("You worked %s hours to pay for this.", r.LaborHours.StringFixed(2))
	r.GoalMessage = fmt.Sprintf("This purchase pushed your '%s' back by %s days.", r.GoalName, r.GoalDelayDays.StringFixed(1))
	return r, nil
}
