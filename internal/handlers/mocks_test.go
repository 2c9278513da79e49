package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/ecobudget_backend/internal/core/domain"
	portssvc "github.com/SscSPs/ecobudget_backend/internal/core/ports/services"
	"github.com/SscSPs/ecobudget_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) CreateUser(ctx context.Context, req dto.SignupRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) CreateOAuthUser(ctx context.Context, name, email, authProvider, providerUserID string, emailVerified bool) (*domain.User, error) {
	args := m.Called(ctx, name, email, authProvider, providerUserID, emailVerified)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) DeleteUser(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockUserService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

// --- Mock GoogleOAuthService ---
type MockGoogleOAuthService struct {
	mock.Mock
}

func (m *MockGoogleOAuthService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oauth2.Token), args.Error(1)
}

func (m *MockGoogleOAuthService) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	args := m.Called(ctx, idTokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*idtoken.Payload), args.Error(1)
}

var _ portssvc.GoogleOAuthHandlerSvcFacade = (*MockGoogleOAuthService)(nil)

// --- Mock APITokenService ---
type MockAPITokenService struct {
	mock.Mock
}

func (m *MockAPITokenService) CreateToken(ctx context.Context, userID, name string, expiresIn *time.Duration) (string, *domain.APIToken, error) {
	args := m.Called(ctx, userID, name, expiresIn)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*domain.APIToken), args.Error(2)
}

func (m *MockAPITokenService) ListTokens(ctx context.Context, userID string) ([]domain.APIToken, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.APIToken), args.Error(1)
}

func (m *MockAPITokenService) RevokeToken(ctx context.Context, userID, tokenID string) error {
	return m.Called(ctx, userID, tokenID).Error(0)
}

func (m *MockAPITokenService) RevokeAllTokens(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockAPITokenService) ValidateToken(ctx context.Context, tokenString string) (*domain.User, error) {
	args := m.Called(ctx, tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.APITokenSvc = (*MockAPITokenService)(nil)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListTransactionsResponse), args.Error(1)
}

func (m *MockTransactionService) AddTransactions(ctx context.Context, userID string, req dto.CreateTransactionsRequest) (int, error) {
	args := m.Called(ctx, userID, req)
	return args.Int(0), args.Error(1)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Mock BudgetService ---
type MockBudgetService struct {
	mock.Mock
}

func (m *MockBudgetService) GetBudget(ctx context.Context, userID string, lastN int, refresh bool) (domain.BudgetSummary, error) {
	args := m.Called(ctx, userID, lastN, refresh)
	return args.Get(0).(domain.BudgetSummary), args.Error(1)
}

func (m *MockBudgetService) GetPlan(ctx context.Context, userID string) (domain.BudgetPlan, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.BudgetPlan), args.Error(1)
}

func (m *MockBudgetService) SetPlan(ctx context.Context, userID string, req dto.UpdatePlanRequest) (domain.BudgetPlan, error) {
	args := m.Called(ctx, userID, req)
	return args.Get(0).(domain.BudgetPlan), args.Error(1)
}

func (m *MockBudgetService) InvalidateBudget(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

var _ portssvc.BudgetSvcFacade = (*MockBudgetService)(nil)

// --- Mock GoalService ---
type MockGoalService struct {
	mock.Mock
}

func (m *MockGoalService) GetGoal(ctx context.Context, userID string) (domain.GoalProfile, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.GoalProfile), args.Error(1)
}

func (m *MockGoalService) GetStatus(ctx context.Context, userID string) (domain.GoalStatus, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.GoalStatus), args.Error(1)
}

func (m *MockGoalService) UpsertGoal(ctx context.Context, userID string, req dto.UpsertGoalRequest) (domain.GoalStatus, error) {
	args := m.Called(ctx, userID, req)
	return args.Get(0).(domain.GoalStatus), args.Error(1)
}

func (m *MockGoalService) AddSavings(ctx context.Context, userID string, amount decimal.Decimal) (domain.SavingsUpdate, error) {
	args := m.Called(ctx, userID, amount)
	return args.Get(0).(domain.SavingsUpdate), args.Error(1)
}

var _ portssvc.GoalSvcFacade = (*MockGoalService)(nil)

// --- Mock ReflectionService ---
type MockReflectionService struct {
	mock.Mock
}

func (m *MockReflectionService) ReflectOnPurchase(ctx context.Context, userID string, amount decimal.Decimal, merchant string) (*domain.PurchaseReflection, error) {
	args := m.Called(ctx, userID, amount, merchant)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseReflection), args.Error(1)
}

var _ portssvc.ReflectionSvc = (*MockReflectionService)(nil)

// --- Mock PredictionService ---
type MockPredictionService struct {
	mock.Mock
}

func (m *MockPredictionService) Predict(ctx context.Context, userID string) (*domain.Prediction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Prediction), args.Error(1)
}

var _ portssvc.PredictionSvc = (*MockPredictionService)(nil)

// --- Mock CarbonService ---
type MockCarbonService struct {
	mock.Mock
}

func (m *MockCarbonService) EmissionFactors() (map[string]decimal.Decimal, decimal.Decimal) {
	args := m.Called()
	return args.Get(0).(map[string]decimal.Decimal), args.Get(1).(decimal.Decimal)
}

func (m *MockCarbonService) Footprint(ctx context.Context, userID string, lastN int, includeTransactions bool) (domain.CarbonFootprintReport, error) {
	args := m.Called(ctx, userID, lastN, includeTransactions)
	return args.Get(0).(domain.CarbonFootprintReport), args.Error(1)
}

var _ portssvc.CarbonSvc = (*MockCarbonService)(nil)
