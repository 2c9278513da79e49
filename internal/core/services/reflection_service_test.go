package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/ecobudget_backend/internal/apperrors"
	"github.com/SscSPs/ecobudget_backend/internal/core/domain"
	portssvc "github.com/SscSPs/ecobudget_backend/internal/core/ports/services"
	"github.com/SscSPs/ecobudget_backend/internal/core/services"
	"github.com/SscSPs/ecobudget_backend/internal/utils/spending"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ReflectionServiceTestSuite struct {
	suite.Suite
	userRepo *MockUserRepository
	goalRepo *MockGoalRepository
	service  portssvc.ReflectionSvc
}

func (suite *ReflectionServiceTestSuite) SetupTest() {
	suite.userRepo = new(MockUserRepository)
	suite.goalRepo = new(MockGoalRepository)
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	goals := services.NewGoalService(suite.goalRepo, services.WithClock(func() time.Time { return now }))
	suite.service = services.NewReflectionService(services.NewUserService(suite.userRepo), goals, dec("15"))
}

func (suite *ReflectionServiceTestSuite) withGoal(userID string) {
	suite.goalRepo.On("FindGoal", context.Background(), userID).Return(&domain.GoalProfile{
		UserID:         userID,
		Name:           "Trip",
		TargetDate:     time.Date(2024, time.June, 21, 0, 0, 0, 0, time.UTC),
		TargetAmount:   dec("1000"),
		CurrentSavings: dec("0"),
	}, nil)
}

func (suite *ReflectionServiceTestSuite) TestDefaultWage() {
	ctx := context.Background()
	suite.userRepo.On("FindUserByID", ctx, "u1").Return(&domain.User{UserID: "u1"}, nil)
	suite.withGoal("u1")

	r, err := suite.service.ReflectOnPurchase(ctx, "u1", dec("30"), " Shoe Shop ")

	suite.Require().NoError(err)
	suite.False(r.GoalFunded)
	suite.Equal("Shoe Shop", r.Merchant)
	suite.Equal("2.00", r.LaborHours.StringFixed(2))
	suite.Equal("0.6", r.GoalDelayDays.StringFixed(1))
	suite.Equal("This purchase pushed your 'Trip' back by 0.6 days.", r.GoalMessage)
}

func (suite *ReflectionServiceTestSuite) TestPersonalWage() {
	ctx := context.Background()
	suite.userRepo.On("FindUserByID", ctx, "u2").Return(&domain.User{UserID: "u2", HourlyWage: decimal.NewNullDecimal(dec("40"))}, nil)
	suite.withGoal("u2")

	r, err := suite.service.ReflectOnPurchase(ctx, "u2", dec("30"), "")

	suite.Require().NoError(err)
	suite.Equal("0.75", r.LaborHours.StringFixed(2))
}

func (suite *ReflectionServiceTestSuite) TestNoGoalMeansFunded() {
	ctx := context.Background()
	suite.userRepo.On("FindUserByID", ctx, "u3").Return(&domain.User{UserID: "u3"}, nil)
	suite.goalRepo.On("FindGoal", ctx, "u3").Return(nil, apperrors.ErrNotFound)

	r, err := suite.service.ReflectOnPurchase(ctx, "u3", dec("30"), "x")

	suite.Require().NoError(err)
	suite.True(r.GoalFunded)
	suite.Equal(spending.GoalFundedMessage, r.Message)
}

func (suite *ReflectionServiceTestSuite) TestInvalidAmount() {
	ctx := context.Background()
	suite.userRepo.On("FindUserByID", ctx, "u1").Return(&domain.User{UserID: "u1"}, nil)
	suite.withGoal("u1")

	_, err := suite.service.ReflectOnPurchase(ctx, "u1", dec("0"), "x")
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
}

func TestReflectionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReflectionServiceTestSuite))
}
