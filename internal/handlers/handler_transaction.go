package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/bookkeeping_app/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_app/internal/dto"
	"github.com/SscSPs/bookkeeping_app/internal/middleware"
	"github.com/SscSPs/bookkeeping_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to the ledger.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
	posthogClient      *utils.PosthogClientWrapper
}

// RegisterTransactionRoutes registers the /transactions routes.
func RegisterTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade, posthogClient *utils.PosthogClientWrapper) {
	h := &transactionHandler{transactionService: transactionService, posthogClient: posthogClient}

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/summary", h.getSummary)
		transactions.GET("/:id", h.getTransaction)
		transactions.PUT("/:id", h.updateTransaction)
		transactions.DELETE("/:id", h.deleteTransaction)
	}
}

// createTransaction godoc
// @Summary Create a transaction
// @Description Records an income or expense. The category type must match the transaction type.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.Envelope{data=domain.Transaction}
// @Failure 400 {object} dto.Envelope "Validation error or category/type mismatch"
// @Failure 401 {object} dto.Envelope "Unauthorized"
// @Failure 403 {object} dto.Envelope "No access to the company"
// @Failure 404 {object} dto.Envelope "Referenced entity not found"
// @Failure 409 {object} dto.Envelope "Duplicate document number"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	input, err := req.ToDomain()
	if err != nil {
		respondWithError(c, err)
		return
	}

	created, err := h.transactionService.CreateTransaction(c.Request.Context(), userID, input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	middleware.PosthogEvent(c, h.posthogClient, "transaction_created", map[string]any{
		"transaction_id": created.ID,
		"type":           string(created.Type),
		"amount_total":   created.AmountTotal.StringFixed(2),
	})
	respondData(c, http.StatusCreated, created)
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists the caller's transactions, newest first, with payment totals.
// @Tags transactions
// @Produce  json
// @Param   startDate      query string false "Inclusive start date (YYYY-MM-DD)"
// @Param   endDate        query string false "Inclusive end date (YYYY-MM-DD)"
// @Param   categoryId     query int    false "Category ID"
// @Param   vendorId       query int    false "Vendor ID"
// @Param   statusId       query int    false "Status ID"
// @Param   documentTypeId query int    false "Document type ID"
// @Param   taxRateId      query int    false "Tax rate ID"
// @Param   companyId      query int    false "Company ID"
// @Param   type           query string false "income or expense"
// @Param   documentNumber query string false "Document number substring"
// @Param   page           query int    false "Page" default(1)
// @Param   limit          query int    false "Page size (max 100)" default(50)
// @Success 200 {object} dto.Envelope{data=[]domain.TransactionListItem}
// @Failure 400 {object} dto.Envelope "Invalid query parameters"
// @Failure 401 {object} dto.Envelope "Unauthorized"
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	filter, page, err := params.ToFilter()
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.transactionService.ListTransactions(c.Request.Context(), userID, filter, page)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPageEnvelope(result.Data, result.Pagination))
}

// getSummary godoc
// @Summary Income and expense totals
// @Tags transactions
// @Produce  json
// @Param   startDate query string false "Inclusive start date (YYYY-MM-DD)"
// @Param   endDate   query string false "Inclusive end date (YYYY-MM-DD)"
// @Param   companyId query int    false "Company ID"
// @Success 200 {object} dto.Envelope{data=domain.TransactionSummary}
// @Failure 401 {object} dto.Envelope "Unauthorized"
// @Security BearerAuth
// @Router /transactions/summary [get]
func (h *transactionHandler) getSummary(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var params dto.SummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	filter, err := params.ToFilter()
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.transactionService.GetSummary(c.Request.Context(), userID, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondData(c, http.StatusOK, summary)
}

// getTransaction godoc
// @Summary Get a transaction
// @Tags transactions
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 200 {object} dto.Envelope{data=domain.Transaction}
// @Failure 404 {object} dto.Envelope "Transaction not found"
// @Security BearerAuth
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	txn, err := h.transactionService.GetTransaction(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondData(c, http.StatusOK, txn)
}

// updateTransaction godoc
// @Summary Update a transaction
// @Description Applies a partial update. References are re-validated as on create.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   id          path string                       true "Transaction ID"
// @Param   transaction body dto.UpdateTransactionRequest true "Fields to change"
// @Success 200 {object} dto.Envelope{data=domain.Transaction}
// @Failure 400 {object} dto.Envelope "Validation error"
// @Failure 404 {object} dto.Envelope "Transaction not found"
// @Failure 409 {object} dto.Envelope "Duplicate document number"
// @Security BearerAuth
// @Router /transactions/{id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	patch, err := req.ToPatch()
	if err != nil {
		respondWithError(c, err)
		return
	}

	updated, err := h.transactionService.UpdateTransaction(c.Request.Context(), userID, c.Param("id"), patch)
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondData(c, http.StatusOK, updated)
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Deletes the transaction together with its payments.
// @Tags transactions
// @Param   id path string true "Transaction ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.Envelope "Transaction not found"
// @Security BearerAuth
// @Router /transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	if err := h.transactionService.DeleteTransaction(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
