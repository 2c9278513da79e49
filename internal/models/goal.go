package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SavingsGoal is a row of the savings_goals table.
type SavingsGoal struct {
	UserID         string          `db:"user_id"`
	Name           string          `db:"name"`
	TargetDate     time.Time       `db:"target_date"`
	TargetAmount   decimal.Decimal `db:"target_amount"`
	CurrentSavings decimal.Decimal `db:"current_savings"`
	UpdatedAt      time.Time       `db:"updated_at"`
}
