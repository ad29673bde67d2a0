package services

import (
	"context"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
)

// PaymentSvcFacade records payments against the caller's transactions.
// The sum of a transaction's payments never exceeds its amount_total.
type PaymentSvcFacade interface {
	CreatePayment(ctx context.Context, callerID, transactionID string, input domain.Payment) (*domain.Payment, error)
	GetPayment(ctx context.Context, callerID string, paymentID int64) (*domain.Payment, error)
	ListPayments(ctx context.Context, callerID, transactionID string) ([]domain.Payment, error)
	UpdatePayment(ctx context.Context, callerID string, paymentID int64, patch domain.PaymentPatch) (*domain.Payment, error)
	DeletePayment(ctx context.Context, callerID string, paymentID int64) error
	GetPaymentSummary(ctx context.Context, callerID, transactionID string) (*domain.PaymentSummary, error)
}
