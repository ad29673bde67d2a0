package repositories

import (
	"context"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PaymentLimitCheck decides whether a payment may be written. total is the locked transaction's amount_total,
// alreadyPaid the sum of its other payments.
type PaymentLimitCheck func(total, alreadyPaid decimal.Decimal) error

// PaymentReader defines read operations for payments
type PaymentReader interface {
	FindPaymentByID(ctx context.Context, paymentID int64) (*domain.Payment, error)

	// ListPaymentsByTransaction returns a transaction's payments, newest payment date first.
	ListPaymentsByTransaction(ctx context.Context, transactionID string) ([]domain.Payment, error)

	// GetTotalPaid returns the sum of a transaction's payments, zero if there are none.
	GetTotalPaid(ctx context.Context, transactionID string) (decimal.Decimal, error)
}

// PaymentWriter defines write operations for payments.
// The limit-checked writes lock the parent transaction row for the duration of the check and the write.
type PaymentWriter interface {
	CreatePaymentWithinLimit(ctx context.Context, payment domain.Payment, check PaymentLimitCheck) (*domain.Payment, error)

	// UpdatePaymentWithinLimit runs check only when the patch changes the amount.
	UpdatePaymentWithinLimit(ctx context.Context, paymentID int64, patch domain.PaymentPatch, check PaymentLimitCheck) (*domain.Payment, error)

	DeletePayment(ctx context.Context, paymentID int64) (bool, error)
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
