package mapping

import (
	"github.com/SscSPs/ecobudget_backend/internal/core/domain"
	"github.com/SscSPs/ecobudget_backend/internal/models"
)

// ToModelSavingsGoal converts a domain GoalProfile to a model SavingsGoal
func ToModelSavingsGoal(d domain.GoalProfile) models.SavingsGoal {
	return models.SavingsGoal{
		UserID:         d.UserID,
		Name:           d.Name,
		TargetDate:     d.TargetDate,
		TargetAmount:   d.TargetAmount,
		CurrentSavings: d.CurrentSavings,
		UpdatedAt:      d.UpdatedAt,
	}
}

// ToDomainGoalProfile converts a model SavingsGoal to a domain GoalProfile
func ToDomainGoalProfile(m models.SavingsGoal) domain.GoalProfile {
	return domain.GoalProfile{
		UserID:         m.UserID,
		Name:           m.Name,
		TargetDate:     m.TargetDate,
		TargetAmount:   m.TargetAmount,
		CurrentSavings: m.CurrentSavings,
		UpdatedAt:      m.UpdatedAt,
	}
}
