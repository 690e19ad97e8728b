package handlers

import (
	"net/http"

	request "gestao_reparos/internal/adapter/http/dto/request"
	response "gestao_reparos/internal/adapter/http/dto/response"
	"gestao_reparos/internal/usecase"

	"github.com/gin-gonic/gin"
)

// FinanceHandler handles HTTP requests for the financial aggregator.
type FinanceHandler struct {
	usecase usecase.IFinanceUseCase
}

func NewFinanceHandler(uc usecase.IFinanceUseCase) *FinanceHandler {
	return &FinanceHandler{usecase: uc}
}

// Summary godoc
// @Summary  Revenue, expenses, profit and average ticket
// @Tags     finance
// @Produce  json
// @Success  200  {object}  response.FinancialSummaryResponse
// @Failure  500  {object}  pkg.HTTPError
// @Router   /finance/summary [get]
func (h *FinanceHandler) Summary(c *gin.Context) {
	summary, err := h.usecase.FinancialSummary(c.Request.Context())
	if err != nil {
		writeError(c, mapFinanceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromFinancialSummary(summary))
}

// RecordExpense godoc
// @Summary  Record an expense
// @Tags     finance
// @Accept   json
// @Produce  json
// @Param    body  body      request.RecordExpenseRequest  true  "Expense"
// @Success  201   {object}  response.ExpenseResponse
// @Failure  400   {object}  pkg.HTTPError
// @Router   /finance/expenses [post]
func (h *FinanceHandler) RecordExpense(c *gin.Context) {
	var payload request.RecordExpenseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	expense, err := h.usecase.RecordExpense(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, mapFinanceError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromExpense(expense))
}

// ListExpenses godoc
// @Summary  List expenses, newest first
// @Tags     finance
// @Produce  json
// @Success  200  {array}   response.ExpenseResponse
// @Router   /finance/expenses [get]
func (h *FinanceHandler) ListExpenses(c *gin.Context) {
	expenses, err := h.usecase.ListExpenses(c.Request.Context())
	if err != nil {
		writeError(c, mapFinanceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromExpenses(expenses))
}

// ListFinishedServices godoc
// @Summary  List finished services, newest first
// @Tags     finance
// @Produce  json
// @Success  200  {array}   response.FinishedServiceResponse
// @Router   /finance/finished-services [get]
func (h *FinanceHandler) ListFinishedServices(c *gin.Context) {
	finished, err := h.usecase.ListFinishedServices(c.Request.Context())
	if err != nil {
		writeError(c, mapFinanceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromFinishedServices(finished))
}
