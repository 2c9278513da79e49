package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/ecobudget_backend/internal/apperrors"
	"github.com/SscSPs/ecobudget_backend/internal/core/domain"
	portssvc "github.com/SscSPs/ecobudget_backend/internal/core/ports/services"
	"github.com/SscSPs/ecobudget_backend/internal/core/services"
	"github.com/SscSPs/ecobudget_backend/internal/dto"
	"github.com/SscSPs/ecobudget_backend/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	txnRepo    *MockTransactionRepository
	budgetRepo *MockBudgetRepository
	service    portssvc.TransactionSvcFacade
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.txnRepo = new(MockTransactionRepository)
	suite.budgetRepo = new(MockBudgetRepository)
	suite.service = services.NewTransactionService(suite.txnRepo, suite.budgetRepo)
}

func (suite *TransactionServiceTestSuite) TestAddTransactions_FillsDefaultsAndInvalidatesBudget() {
	ctx := context.Background()
	amount := dec("-12.50")
	req := dto.CreateTransactionsRequest{Transactions: []dto.TransactionInput{
		{Date: "2024-05-01", Amount: &amount, Place: " Cafe "},
	}}

	suite.budgetRepo.On("ClearBudget", ctx, "u1").Return(nil).Twice()
	suite.txnRepo.On("AppendTransaction", ctx, "u1", mock.MatchedBy(func(txns []domain.Transaction) bool {
		return len(txns) == 1 &&
			txns[0].TransactionID != "" &&
			txns[0].Category == "Other" &&
			txns[0].Place == "Cafe" &&
			txns[0].Amount.Decimal.Equal(amount)
	})).Return(7, nil).Once()

	count, err := suite.service.AddTransactions(ctx, "u1", req)

	suite.Require().NoError(err)
	suite.Equal(7, count)
	suite.budgetRepo.AssertExpectations(suite.T())
	suite.txnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestAddTransactions_ClearFailureStopsAppend() {
	ctx := context.Background()
	amount := dec("5")
	req := dto.CreateTransactionsRequest{Transactions: []dto.TransactionInput{{Date: "2024-05-01", Amount: &amount, Place: "x"}}}

	suite.budgetRepo.On("ClearBudget", ctx, "u1").Return(assert.AnError).Once()

	_, err := suite.service.AddTransactions(ctx, "u1", req)

	suite.ErrorIs(err, assert.AnError)
	suite.txnRepo.AssertNotCalled(suite.T(), "AppendTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestAddTransactions_Empty() {
	_, err := suite.service.AddTransactions(context.Background(), "u1", dto.CreateTransactionsRequest{})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_PagesNewestFirst() {
	ctx := context.Background()
	stored := []domain.Transaction{
		txn("a", "2024-01-01", "-1", "p", "Food"),
		txn("b", "2024-03-01", "-2", "p", "Food"),
		txn("c", "2024-02-01", "-3", "p", "Food"),
	}
	suite.txnRepo.On("LoadTransactions", ctx, "u1").Return(stored, nil)

	first, err := suite.service.ListTransactions(ctx, "u1", dto.ListTransactionsParams{Limit: 2})
	suite.Require().NoError(err)
	suite.Require().Len(first.Transactions, 2)
	suite.Equal("b", first.Transactions[0].TransactionID)
	suite.Equal("c", first.Transactions[1].TransactionID)
	suite.Require().NotNil(first.NextToken)

	second, err := suite.service.ListTransactions(ctx, "u1", dto.ListTransactionsParams{Limit: 2, NextToken: *first.NextToken})
	suite.Require().NoError(err)
	suite.Require().Len(second.Transactions, 1)
	suite.Equal("a", second.Transactions[0].TransactionID)
	suite.Nil(second.NextToken)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_IDContainingSeparator() {
	ctx := context.Background()
	stored := []domain.Transaction{
		txn("bank|001", "2024-01-02", "-5", "p", "Food"),
		txn("bank|002", "2024-01-01", "-6", "p", "Food"),
	}
	suite.txnRepo.On("LoadTransactions", ctx, "u1").Return(stored, nil)

	first, err := suite.service.ListTransactions(ctx, "u1", dto.ListTransactionsParams{Limit: 1})
	suite.Require().NoError(err)
	suite.Require().NotNil(first.NextToken)

	second, err := suite.service.ListTransactions(ctx, "u1", dto.ListTransactionsParams{Limit: 1, NextToken: *first.NextToken})
	suite.Require().NoError(err)
	suite.Require().Len(second.Transactions, 1)
	suite.Equal("bank|002", second.Transactions[0].TransactionID)
	suite.Nil(second.NextToken)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_StaleOrInvalidToken() {
	ctx := context.Background()
	suite.txnRepo.On("LoadTransactions", ctx, "u1").Return([]domain.Transaction{txn("a", "2024-01-01", "1", "p", "Pay")}, nil)

	_, err := suite.service.ListTransactions(ctx, "u1", dto.ListTransactionsParams{Limit: 1, NextToken: "%%%"})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.ListTransactions(ctx, "u1", dto.ListTransactionsParams{Limit: 1, NextToken: pagination.EncodeOffsetToken(1, "zzz")})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_EmptyDocument() {
	ctx := context.Background()
	suite.txnRepo.On("LoadTransactions", ctx, "u1").Return([]domain.Transaction{}, nil)

	resp, err := suite.service.ListTransactions(ctx, "u1", dto.ListTransactionsParams{Limit: 10})

	suite.Require().NoError(err)
	suite.Empty(resp.Transactions)
	suite.NotNil(resp.Transactions)
	suite.Nil(resp.NextToken)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
