package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/SscSPs/ecobudget_backend/internal/apperrors"
	"github.com/SscSPs/ecobudget_backend/internal/core/domain"
	"github.com/SscSPs/ecobudget_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestCarbonFactors_Public() {
	factors := map[string]decimal.Decimal{"Travel": decimal.RequireFromString("0.42")}
	suite.mockCarbon.On("EmissionFactors").Return(factors, decimal.RequireFromString("0.15")).Once()

	w := suite.do(http.MethodGet, "/api/v1/carbon/factors", "", false)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.EmissionFactorsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Factors["Travel"].Equal(decimal.RequireFromString("0.42")))
	suite.True(resp.DefaultForUnknownCategory.Equal(decimal.RequireFromString("0.15")))
}

func (suite *HandlerTestSuite) TestCarbonFootprint() {
	report := domain.CarbonFootprintReport{
		TotalKgCO2e: decimal.RequireFromString("21"),
		ByCategory: map[string]domain.CategoryFootprint{
			"Travel":    {AmountSpent: decimal.NewFromInt(50), KgCO2e: decimal.NewFromInt(21)},
			"Groceries": {AmountSpent: decimal.NewFromInt(0), KgCO2e: decimal.Zero},
		},
		TransactionCountUsed: 3,
	}
	suite.mockCarbon.On("Footprint", mock.Anything, suite.userID, 3, true).Return(report, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/carbon/footprint?last_n=3&include_transactions=true", "", true)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.CarbonFootprintResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(3, resp.TransactionCountUsed)
	suite.Require().Len(resp.ByCategory, 2)
	suite.Equal("Groceries", resp.ByCategory[0].Category)
	suite.Equal("Travel", resp.ByCategory[1].Category)
	suite.Equal(dto.DefaultClassificationLogic, resp.ClassificationLogic)
}

func (suite *HandlerTestSuite) TestCarbonFootprint_NegativeWindow() {
	w := suite.do(http.MethodGet, "/api/v1/carbon/footprint?last_n=-2", "", true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("ValidationError", suite.decodeError(w).Code)
}

func (suite *HandlerTestSuite) TestCarbonFootprint_Unauthorized() {
	w := suite.do(http.MethodGet, "/api/v1/carbon/footprint", "", false)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlerTestSuite) TestCreateAPIToken() {
	created := &domain.APIToken{ID: uuid.NewString(), UserID: suite.userID, Name: "importer", CreatedAt: time.Now()}
	hour := time.Hour
	suite.mockAPIToken.On("CreateToken", mock.Anything, suite.userID, "importer", &hour).Return("eb_secret", created, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/tokens", `{"name":"importer","expires_in_seconds":3600}`, true)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.CreateAPITokenResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("eb_secret", resp.TokenString)
	suite.Equal(created.ID, resp.Details.ID)
}

func (suite *HandlerTestSuite) TestCreateAPIToken_ShortName() {
	w := suite.do(http.MethodPost, "/api/v1/tokens", `{"name":"ab"}`, true)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestRevokeAPIToken() {
	tokenID := uuid.NewString()

	suite.Run("invalid id", func() {
		w := suite.do(http.MethodDelete, "/api/v1/tokens/not-a-uuid", "", true)
		suite.Equal(http.StatusBadRequest, w.Code)
		suite.Equal("Invalid token ID", suite.decodeError(w).Error)
	})

	suite.Run("other user's token", func() {
		suite.mockAPIToken.On("RevokeToken", mock.Anything, suite.userID, tokenID).Return(apperrors.ErrNotFound).Once()
		w := suite.do(http.MethodDelete, "/api/v1/tokens/"+tokenID, "", true)
		suite.Equal(http.StatusNotFound, w.Code)
	})

	suite.Run("success", func() {
		suite.mockAPIToken.On("RevokeToken", mock.Anything, suite.userID, tokenID).Return(nil).Once()
		w := suite.do(http.MethodDelete, "/api/v1/tokens/"+tokenID, "", true)
		suite.Equal(http.StatusNoContent, w.Code)
	})
}

func (suite *HandlerTestSuite) TestGetMe() {
	user := &domain.User{
		UserID:       suite.userID,
		Email:        "ada@example.com",
		Name:         "Ada",
		AuthProvider: domain.ProviderLocal,
		HourlyWage:   decimal.NewNullDecimal(decimal.RequireFromString("22.5")),
	}
	suite.mockUser.On("GetUserByID", mock.Anything, suite.userID).Return(user, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/users/me", "", true)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.UserResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("ada@example.com", resp.Email)
	suite.Equal("LOCAL", resp.AuthProvider)
	suite.Require().NotNil(resp.HourlyWage)
	suite.True(resp.HourlyWage.Equal(decimal.RequireFromString("22.5")))
}

func (suite *HandlerTestSuite) TestUpdateMe_InvalidWage() {
	suite.mockUser.On("UpdateUser", mock.Anything, suite.userID, mock.AnythingOfType("dto.UpdateUserRequest")).
		Return(nil, apperrors.ErrInvalidWage).Once()

	w := suite.do(http.MethodPut, "/api/v1/users/me", `{"hourly_wage":-3}`, true)

	suite.Equal(http.StatusBadRequest, w.Code)
	resp := suite.decodeError(w)
	suite.Equal("InvalidWage", resp.Code)
	suite.Equal("Hourly wage must be positive", resp.Error)
}

func (suite *HandlerTestSuite) TestDeleteMe_RevokesTokensFirst() {
	suite.mockAPIToken.On("RevokeAllTokens", mock.Anything, suite.userID).Return(errors.New("db down")).Once()
	suite.mockUser.On("DeleteUser", mock.Anything, suite.userID).Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/users/me", "", true)

	suite.Equal(http.StatusNoContent, w.Code)
}
