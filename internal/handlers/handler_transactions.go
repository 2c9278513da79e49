package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/ecobudget_backend/internal/core/ports/services"
	"github.com/SscSPs/ecobudget_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

type transactionHandler struct {
	txnService portssvc.TransactionSvcFacade
}

// RegisterTransactionRoutes registers the transaction list and append routes.
func RegisterTransactionRoutes(rg *gin.RouterGroup, txnService portssvc.TransactionSvcFacade) {
	h := &transactionHandler{txnService: txnService}

	txns := rg.Group("/transactions")
	{
		txns.GET("", h.listTransactions)
		txns.POST("", h.addTransactions)
	}
}

// listTransactions godoc
// @Summary List transactions
// @Description Pages through the caller's transactions, newest date first.
// @Tags transactions
// @Produce json
// @Param limit query int false "Page size (1-500)" default(50)
// @Param next_token query string false "Token from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}
	resp, err := h.txnService.ListTransactions(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// addTransactions godoc
// @Summary Append transactions
// @Description Appends transactions to the caller's history and invalidates the persisted budget.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transactions body dto.CreateTransactionsRequest true "Transactions"
// @Success 201 {object} dto.CreateTransactionsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /transactions [post]
func (h *transactionHandler) addTransactions(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.CreateTransactionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	count, err := h.txnService.AddTransactions(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to add transactions")
		return
	}
	c.JSON(http.StatusCreated, dto.CreateTransactionsResponse{Count: count})
}
