package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/ecobudget_backend/internal/core/domain"
	portssvc "github.com/SscSPs/ecobudget_backend/internal/core/ports/services"
	"github.com/SscSPs/ecobudget_backend/internal/utils/spending"
	"github.com/shopspring/decimal"
)

type reflectionService struct {
	userSvc     portssvc.UserReaderSvc
	goalSvc     portssvc.GoalReaderSvc
	defaultWage decimal.Decimal
}

// NewReflectionService uses defaultWage for users without a personal hourly wage.
func NewReflectionService(userSvc portssvc.UserReaderSvc, goalSvc portssvc.GoalReaderSvc, defaultWage decimal.Decimal) portssvc.ReflectionSvc {
	return &reflectionService{userSvc: userSvc, goalSvc: goalSvc, defaultWage: defaultWage}
}

var _ portssvc.ReflectionSvc = (*reflectionService)(nil)

func (s *reflectionService) ReflectOnPurchase(ctx context.Context, userID string, amount decimal.Decimal, merchant string) (*domain.PurchaseReflection, error) {
	user, err := s.userSvc.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	wage := s.defaultWage
	if user.HourlyWage.Valid {
		wage = user.HourlyWage.Decimal
	}

	status, err := s.goalSvc.GetStatus(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load goal status: %w", err)
	}

	return spending.Reflect(amount, wage, strings.TrimSpace(merchant), status)
}
