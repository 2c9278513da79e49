package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/ecobudget_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByProviderDetails(ctx context.Context, authProvider string, providerUserID string) (*domain.User, error) {
	args := m.Called(ctx, authProvider, providerUserID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, userID, deletedAt, deletedBy)
	return args.Error(0)
}

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) LoadTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

func (m *MockTransactionRepository) AppendTransaction(ctx context.Context, userID string, txns ...domain.Transaction) (int, error) {
	args := m.Called(ctx, userID, txns)
	return args.Int(0), args.Error(1)
}

// --- Mock BudgetRepository ---
type MockBudgetRepository struct {
	mock.Mock
}

func (m *MockBudgetRepository) LoadBudgetRecord(ctx context.Context, userID string) (*domain.BudgetRecord, error) {
	args := m.Called(ctx, userID)
	var rec *domain.BudgetRecord
	if args.Get(0) != nil {
		rec = args.Get(0).(*domain.BudgetRecord)
	}
	return rec, args.Error(1)
}

func (m *MockBudgetRepository) SaveBudget(ctx context.Context, userID string, summary domain.BudgetSummary) error {
	args := m.Called(ctx, userID, summary)
	return args.Error(0)
}

func (m *MockBudgetRepository) ClearBudget(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockBudgetRepository) SavePlan(ctx context.Context, userID string, plan domain.BudgetPlan) error {
	args := m.Called(ctx, userID, plan)
	return args.Error(0)
}

// --- Mock GoalRepository ---
type MockGoalRepository struct {
	mock.Mock
}

func (m *MockGoalRepository) FindGoal(ctx context.Context, userID string) (*domain.GoalProfile, error) {
	args := m.Called(ctx, userID)
	var goal *domain.GoalProfile
	if args.Get(0) != nil {
		goal = args.Get(0).(*domain.GoalProfile)
	}
	return goal, args.Error(1)
}

func (m *MockGoalRepository) SaveGoal(ctx context.Context, goal domain.GoalProfile) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

func (m *MockGoalRepository) AddSavings(ctx context.Context, userID string, amount decimal.Decimal) (*domain.GoalProfile, error) {
	args := m.Called(ctx, userID, amount)
	var goal *domain.GoalProfile
	if args.Get(0) != nil {
		goal = args.Get(0).(*domain.GoalProfile)
	}
	return goal, args.Error(1)
}

// --- Mock APITokenRepository ---
type MockAPITokenRepository struct {
	mock.Mock
}

func (m *MockAPITokenRepository) Create(ctx context.Context, token *domain.APIToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockAPITokenRepository) FindByID(ctx context.Context, id string) (*domain.APIToken, error) {
	args := m.Called(ctx, id)
	var token *domain.APIToken
	if args.Get(0) != nil {
		token = args.Get(0).(*domain.APIToken)
	}
	return token, args.Error(1)
}

func (m *MockAPITokenRepository) FindByUserID(ctx context.Context, userID string) ([]domain.APIToken, error) {
	args := m.Called(ctx, userID)
	var tokens []domain.APIToken
	if args.Get(0) != nil {
		tokens = args.Get(0).([]domain.APIToken)
	}
	return tokens, args.Error(1)
}

func (m *MockAPITokenRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*domain.APIToken, error) {
	args := m.Called(ctx, tokenHash)
	var token *domain.APIToken
	if args.Get(0) != nil {
		token = args.Get(0).(*domain.APIToken)
	}
	return token, args.Error(1)
}

func (m *MockAPITokenRepository) TouchLastUsed(ctx context.Context, id string, usedAt time.Time) error {
	args := m.Called(ctx, id, usedAt)
	return args.Error(0)
}

func (m *MockAPITokenRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAPITokenRepository) DeleteByUserID(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Mock PredictionModel ---
type MockPredictionModel struct {
	mock.Mock
}

func (m *MockPredictionModel) Predict(ctx context.Context, input domain.PredictionInput) (*domain.Prediction, error) {
	args := m.Called(ctx, input)
	var p *domain.Prediction
	if args.Get(0) != nil {
		p = args.Get(0).(*domain.Prediction)
	}
	return p, args.Error(1)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// decEq matches a decimal argument by value rather than representation.
func decEq(s string) interface{} {
	want := dec(s)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(want) })
}

func txn(id, date, amount, place, category string) domain.Transaction {
	return domain.Transaction{
		TransactionID: id,
		Date:          date,
		Amount:        decimal.NewNullDecimal(dec(amount)),
		Place:         place,
		Category:      category,
	}
}
