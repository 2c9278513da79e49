package domain

import "github.com/shopspring/decimal"

// PurchaseReflection translates a purchase into labor hours and goal delay.
// When GoalFunded is set only Message and Status are meaningful.
type PurchaseReflection struct {
	Merchant       string
	PurchaseAmount decimal.Decimal
	GoalFunded     bool
	Message        string
	Status         GoalStatus

	LaborHours    decimal.Decimal
	LaborMessage  string
	GoalName      string
	GoalDelayDays decimal.Decimal
	GoalMessage   string
}
