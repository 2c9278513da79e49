package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoalProfile is the savings goal of a user. CurrentSavings only ever grows.
type GoalProfile struct {
	UserID         string          `json:"userID"`
	Name           string          `json:"name"`
	TargetDate     time.Time       `json:"target_date"`
	TargetAmount   decimal.Decimal `json:"target_amount"`
	CurrentSavings decimal.Decimal `json:"current_savings"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// GoalStatus is the projection of a GoalProfile at a given day.
type GoalStatus struct {
	GoalName             string          `json:"goal_name"`
	TargetDate           time.Time       `json:"target_date"`
	DaysLeft             int             `json:"days_left"`
	CurrentSavings       decimal.Decimal `json:"current_savings"`
	RemainingAmount      decimal.Decimal `json:"remaining_amount"`
	DailySavingsRequired decimal.Decimal `json:"daily_savings_required"`
}

// SavingsUpdate is the result of adding money to a goal.
type SavingsUpdate struct {
	Status      GoalStatus `json:"updated_goal"`
	GoalReached bool       `json:"goal_reached"`
	Message     string     `json:"message"`
}
