package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/bookkeeping_app/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_app/internal/dto"
	"github.com/SscSPs/bookkeeping_app/internal/middleware"
	"github.com/SscSPs/bookkeeping_app/internal/utils"
	"github.com/gin-gonic/gin"
)

type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
	posthogClient  *utils.PosthogClientWrapper
}

// RegisterPaymentRoutes registers the payment routes nested under a transaction and the /payments routes.
func RegisterPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade, posthogClient *utils.PosthogClientWrapper) {
	h := &paymentHandler{paymentService: paymentService, posthogClient: posthogClient}

	byTransaction := rg.Group("/transaction/:transactionId/payments")
	{
		byTransaction.POST("", h.createPayment)
		byTransaction.GET("", h.listPayments)
		byTransaction.GET("/summary", h.getPaymentSummary)
	}

	payments := rg.Group("/payments")
	{
		payments.GET("/:id", h.getPayment)
		payments.PUT("/:id", h.updatePayment)
		payments.DELETE("/:id", h.deletePayment)
	}
}

// createPayment godoc
// @Summary Record a payment
// @Description Records a payment against a transaction. The payments of a transaction never exceed its total.
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   transactionId path string                   true "Transaction ID"
// @Param   payment       body dto.CreatePaymentRequest true "Payment details"
// @Success 201 {object} dto.Envelope{data=domain.Payment}
// @Failure 400 {object} dto.Envelope "Validation error or amount over the remaining balance"
// @Failure 404 {object} dto.Envelope "Transaction or payment type not found"
// @Security BearerAuth
// @Router /transaction/{transactionId}/payments [post]
func (h *paymentHandler) createPayment(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	input, err := req.ToDomain()
	if err != nil {
		respondWithError(c, err)
		return
	}

	created, err := h.paymentService.CreatePayment(c.Request.Context(), userID, c.Param("transactionId"), input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	middleware.PosthogEvent(c, h.posthogClient, "payment_recorded", map[string]any{
		"payment_id":     created.ID,
		"transaction_id": created.TransactionID,
		"amount":         created.Amount.StringFixed(2),
	})
	respondData(c, http.StatusCreated, created)
}

// listPayments godoc
// @Summary List a transaction's payments
// @Tags payments
// @Produce  json
// @Param   transactionId path string true "Transaction ID"
// @Success 200 {object} dto.Envelope{data=[]domain.Payment}
// @Failure 404 {object} dto.Envelope "Transaction not found"
// @Security BearerAuth
// @Router /transaction/{transactionId}/payments [get]
func (h *paymentHandler) listPayments(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	payments, err := h.paymentService.ListPayments(c.Request.Context(), userID, c.Param("transactionId"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondData(c, http.StatusOK, payments)
}

// getPaymentSummary godoc
// @Summary Settlement summary of a transaction
// @Tags payments
// @Produce  json
// @Param   transactionId path string true "Transaction ID"
// @Success 200 {object} dto.Envelope{data=domain.PaymentSummary}
// @Failure 404 {object} dto.Envelope "Transaction not found"
// @Security BearerAuth
// @Router /transaction/{transactionId}/payments/summary [get]
func (h *paymentHandler) getPaymentSummary(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	summary, err := h.paymentService.GetPaymentSummary(c.Request.Context(), userID, c.Param("transactionId"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondData(c, http.StatusOK, summary)
}

// getPayment godoc
// @Summary Get a payment
// @Tags payments
// @Produce  json
// @Param   id path int true "Payment ID"
// @Success 200 {object} dto.Envelope{data=domain.Payment}
// @Failure 403 {object} dto.Envelope "Payment of another user's transaction"
// @Failure 404 {object} dto.Envelope "Payment not found"
// @Security BearerAuth
// @Router /payments/{id} [get]
func (h *paymentHandler) getPayment(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	paymentID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	payment, err := h.paymentService.GetPayment(c.Request.Context(), userID, paymentID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondData(c, http.StatusOK, payment)
}

// updatePayment godoc
// @Summary Update a payment
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   id      path int                      true "Payment ID"
// @Param   payment body dto.UpdatePaymentRequest true "Fields to change"
// @Success 200 {object} dto.Envelope{data=domain.Payment}
// @Failure 400 {object} dto.Envelope "Validation error or amount over the remaining balance"
// @Failure 403 {object} dto.Envelope "Payment of another user's transaction"
// @Failure 404 {object} dto.Envelope "Payment not found"
// @Security BearerAuth
// @Router /payments/{id} [put]
func (h *paymentHandler) updatePayment(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	paymentID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var req dto.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	patch, err := req.ToPatch()
	if err != nil {
		respondWithError(c, err)
		return
	}

	updated, err := h.paymentService.UpdatePayment(c.Request.Context(), userID, paymentID, patch)
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondData(c, http.StatusOK, updated)
}

// deletePayment godoc
// @Summary Delete a payment
// @Tags payments
// @Param   id path int true "Payment ID"
// @Success 204 "No Content"
// @Failure 403 {object} dto.Envelope "Payment of another user's transaction"
// @Failure 404 {object} dto.Envelope "Payment not found"
// @Security BearerAuth
// @Router /payments/{id} [delete]
func (h *paymentHandler) deletePayment(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	paymentID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	if err := h.paymentService.DeletePayment(c.Request.Context(), userID, paymentID); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
