package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/ecobudget_backend/internal/apperrors"
	"github.com/SscSPs/ecobudget_backend/internal/core/domain"
	portssvc "github.com/SscSPs/ecobudget_backend/internal/core/ports/services"
	"github.com/SscSPs/ecobudget_backend/internal/core/services"
	"github.com/SscSPs/ecobudget_backend/internal/dto"
	"github.com/SscSPs/ecobudget_backend/internal/utils/spending"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type GoalServiceTestSuite struct {
	suite.Suite
	goalRepo *MockGoalRepository
	now      time.Time
	service  portssvc.GoalSvcFacade
}

func (suite *GoalServiceTestSuite) SetupTest() {
	suite.goalRepo = new(MockGoalRepository)
	suite.now = time.Date(2024, time.June, 1, 15, 0, 0, 0, time.UTC)
	suite.service = services.NewGoalService(suite.goalRepo, services.WithClock(func() time.Time { return suite.now }))
}

func (suite *GoalServiceTestSuite) goal(current string) *domain.GoalProfile {
	return &domain.GoalProfile{
		UserID:         "u1",
		Name:           "Bike",
		TargetDate:     time.Date(2024, time.June, 11, 0, 0, 0, 0, time.UTC),
		TargetAmount:   dec("1000"),
		CurrentSavings: dec(current),
	}
}

func (suite *GoalServiceTestSuite) TestGetStatus() {
	ctx := context.Background()
	suite.goalRepo.On("FindGoal", ctx, "u1").Return(suite.goal("400"), nil).Once()

	status, err := suite.service.GetStatus(ctx, "u1")

	suite.Require().NoError(err)
	suite.Equal(10, status.DaysLeft)
	suite.Equal("600.00", status.RemainingAmount.StringFixed(2))
	suite.Equal("60.00", status.DailySavingsRequired.StringFixed(2))
}

func (suite *GoalServiceTestSuite) TestGetStatus_NoGoal() {
	ctx := context.Background()
	suite.goalRepo.On("FindGoal", ctx, "u1").Return(nil, apperrors.ErrNotFound).Once()

	status, err := suite.service.GetStatus(ctx, "u1")

	suite.Require().NoError(err)
	suite.Zero(status.DaysLeft)
	suite.True(status.DailySavingsRequired.IsZero())
}

func (suite *GoalServiceTestSuite) TestAddSavings_RejectsNonPositive() {
	for _, amount := range []string{"0", "-5", "0.004"} {
		_, err := suite.service.AddSavings(context.Background(), "u1", dec(amount))
		suite.ErrorIs(err, apperrors.ErrInvalidAmount)
		suite.Equal("InvalidAmount", apperrors.ValidationCode(err))
	}
	suite.goalRepo.AssertNotCalled(suite.T(), "AddSavings", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *GoalServiceTestSuite) TestAddSavings_Confirmation() {
	ctx := context.Background()
	suite.goalRepo.On("AddSavings", ctx, "u1", decEq("50")).Return(suite.goal("450"), nil).Once()

	update, err := suite.service.AddSavings(ctx, "u1", dec("50"))

	suite.Require().NoError(err)
	suite.False(update.GoalReached)
	suite.Equal("Added $50.00 to savings", update.Message)
	suite.Equal("450.00", update.Status.CurrentSavings.StringFixed(2))
}

func (suite *GoalServiceTestSuite) TestAddSavings_RoundsToCents() {
	ctx := context.Background()
	suite.goalRepo.On("AddSavings", ctx, "u1", decEq("10.13")).Return(suite.goal("410.13"), nil).Once()

	update, err := suite.service.AddSavings(ctx, "u1", dec("10.125"))

	suite.Require().NoError(err)
	suite.Equal("Added $10.13 to savings", update.Message)
}

func (suite *GoalServiceTestSuite) TestAddSavings_GoalReached() {
	ctx := context.Background()
	suite.goalRepo.On("AddSavings", ctx, "u1", decEq("600")).Return(suite.goal("1000"), nil).Once()

	update, err := suite.service.AddSavings(ctx, "u1", dec("600"))

	suite.Require().NoError(err)
	suite.True(update.GoalReached)
	suite.Equal(spending.GoalReachedMessage, update.Message)
	suite.True(update.Status.RemainingAmount.IsZero())
}

func (suite *GoalServiceTestSuite) TestAddSavings_NoGoal() {
	ctx := context.Background()
	suite.goalRepo.On("AddSavings", ctx, "u1", decEq("5")).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.AddSavings(ctx, "u1", dec("5"))
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *GoalServiceTestSuite) TestUpsertGoal() {
	ctx := context.Background()
	target := dec("1000")
	req := dto.UpsertGoalRequest{Name: " Bike ", TargetDate: "2024-06-11", TargetAmount: &target}
	suite.goalRepo.On("SaveGoal", ctx, mock.MatchedBy(func(g domain.GoalProfile) bool {
		return g.UserID == "u1" && g.Name == "Bike" && g.CurrentSavings.IsZero()
	})).Return(nil).Once()

	status, err := suite.service.UpsertGoal(ctx, "u1", req)

	suite.Require().NoError(err)
	suite.Equal(10, status.DaysLeft)
	suite.Equal("100.00", status.DailySavingsRequired.StringFixed(2))
	suite.goalRepo.AssertExpectations(suite.T())
}

func (suite *GoalServiceTestSuite) TestUpsertGoal_InvalidAmounts() {
	zero := dec("0")
	target := dec("10")
	negative := dec("-1")

	_, err := suite.service.UpsertGoal(context.Background(), "u1", dto.UpsertGoalRequest{TargetDate: "2024-06-11", TargetAmount: &zero})
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)

	_, err = suite.service.UpsertGoal(context.Background(), "u1", dto.UpsertGoalRequest{TargetDate: "2024-06-11", TargetAmount: &target, CurrentSavings: &negative})
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)

	subCent := dec("0.001")
	_, err = suite.service.UpsertGoal(context.Background(), "u1", dto.UpsertGoalRequest{TargetDate: "2024-06-11", TargetAmount: &subCent})
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
	suite.goalRepo.AssertNotCalled(suite.T(), "SaveGoal", mock.Anything, mock.Anything)
}

func (suite *GoalServiceTestSuite) TestUpsertGoal_RoundsToCents() {
	ctx := context.Background()
	target := dec("999.995")
	current := dec("10.004")
	req := dto.UpsertGoalRequest{Name: "Bike", TargetDate: "2024-06-11", TargetAmount: &target, CurrentSavings: &current}
	suite.goalRepo.On("SaveGoal", ctx, mock.MatchedBy(func(g domain.GoalProfile) bool {
		return g.TargetAmount.Equal(dec("1000")) && g.CurrentSavings.Equal(dec("10"))
	})).Return(nil).Once()

	_, err := suite.service.UpsertGoal(ctx, "u1", req)

	suite.Require().NoError(err)
	suite.goalRepo.AssertExpectations(suite.T())
}

func TestGoalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GoalServiceTestSuite))
}
