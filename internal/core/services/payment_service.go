package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/bookkeeping_app/internal/apperrors"
	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookkeeping_app/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// paymentService implements the PaymentSvcFacade interface
type paymentService struct {
	BaseService
	paymentRepo     portsrepo.PaymentRepositoryFacade
	transactionRepo portsrepo.TransactionReader
	referenceRepo   portsrepo.ReferenceReader
}

// NewPaymentService creates a new payment settlement service.
func NewPaymentService(
	paymentRepo portsrepo.PaymentRepositoryFacade,
	transactionRepo portsrepo.TransactionReader,
	referenceRepo portsrepo.ReferenceReader,
) portssvc.PaymentSvcFacade {
	return &paymentService{
		paymentRepo:     paymentRepo,
		transactionRepo: transactionRepo,
		referenceRepo:   referenceRepo,
	}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

func (s *paymentService) CreatePayment(ctx context.Context, callerID, transactionID string, input domain.Payment) (*domain.Payment, error) {
	if err := s.RequireCaller(callerID); err != nil {
		return nil, err
	}
	if _, err := s.transactionOwnedBy(ctx, callerID, transactionID, false); err != nil {
		return nil, err
	}

	switch {
	case input.PaymentTypeID <= 0:
		return nil, apperrors.NewValidationError("payment_type_id is required")
	case !input.Amount.IsPositive():
		return nil, apperrors.NewValidationError("payment amount must be greater than zero")
	case input.PaymentDate.IsZero():
		return nil, apperrors.NewValidationError("payment_date is required")
	}
	if _, err := s.referenceRepo.FindPaymentTypeByID(ctx, input.PaymentTypeID); err != nil {
		return nil, err
	}

	input.TransactionID = transactionID
	amount := input.Amount
	created, err := s.paymentRepo.CreatePaymentWithinLimit(ctx, input, func(total, alreadyPaid decimal.Decimal) error {
		return accounting.CheckPaymentLimit(total, alreadyPaid, amount)
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to record payment", slog.String("transaction_id", transactionID))
		return nil, err
	}
	s.LogInfo(ctx, "Payment recorded",
		slog.Int64("payment_id", created.ID),
		slog.String("transaction_id", transactionID),
		slog.String("amount", amount.StringFixed(2)))
	return created, nil
}

func (s *paymentService) GetPayment(ctx context.Context, callerID string, paymentID int64) (*domain.Payment, error) {
	if err := s.RequireCaller(callerID); err != nil {
		return nil, err
	}
	return s.guardedPayment(ctx, callerID, paymentID)
}

func (s *paymentService) ListPayments(ctx context.Context, callerID, transactionID string) ([]domain.Payment, error) {
	if err := s.RequireCaller(callerID); err != nil {
		return nil, err
	}
	if _, err := s.transactionOwnedBy(ctx, callerID, transactionID, false); err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.ListPaymentsByTransaction(ctx, transactionID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments", slog.String("transaction_id", transactionID))
		return nil, err
	}
	return payments, nil
}

func (s *paymentService) UpdatePayment(ctx context.Context, callerID string, paymentID int64, patch domain.PaymentPatch) (*domain.Payment, error) {
	if err := s.RequireCaller(callerID); err != nil {
		return nil, err
	}
	if _, err := s.guardedPayment(ctx, callerID, paymentID); err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return nil, apperrors.NewValidationError("no fields to update")
	}
	if patch.Amount != nil && !patch.Amount.IsPositive() {
		return nil, apperrors.NewValidationError("payment amount must be greater than zero")
	}
	if patch.PaymentTypeID != nil {
		if _, err := s.referenceRepo.FindPaymentTypeByID(ctx, *patch.PaymentTypeID); err != nil {
			return nil, err
		}
	}

	var check portsrepo.PaymentLimitCheck
	if patch.Amount != nil {
		amount := *patch.Amount
		check = func(total, alreadyPaid decimal.Decimal) error {
			return accounting.CheckPaymentLimit(total, alreadyPaid, amount)
		}
	}
	updated, err := s.paymentRepo.UpdatePaymentWithinLimit(ctx, paymentID, patch, check)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to update payment", slog.Int64("payment_id", paymentID))
		return nil, err
	}
	return updated, nil
}

func (s *paymentService) DeletePayment(ctx context.Context, callerID string, paymentID int64) error {
	if err := s.RequireCaller(callerID); err != nil {
		return err
	}
	if _, err := s.guardedPayment(ctx, callerID, paymentID); err != nil {
		return err
	}
	deleted, err := s.paymentRepo.DeletePayment(ctx, paymentID)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete payment", slog.Int64("payment_id", paymentID))
		return err
	}
	if !deleted {
		return apperrors.NewNotFoundError("payment not found")
	}
	return nil
}

func (s *paymentService) GetPaymentSummary(ctx context.Context, callerID, transactionID string) (*domain.PaymentSummary, error) {
	if err := s.RequireCaller(callerID); err != nil {
		return nil, err
	}
	txn, err := s.transactionOwnedBy(ctx, callerID, transactionID, false)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.ListPaymentsByTransaction(ctx, transactionID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments", slog.String("transaction_id", transactionID))
		return nil, err
	}
	paid, err := s.paymentRepo.GetTotalPaid(ctx, transactionID)
	if err != nil {
		s.LogError(ctx, err, "Failed to total payments", slog.String("transaction_id", transactionID))
		return nil, err
	}

	return &domain.PaymentSummary{
		TransactionTotal: txn.AmountTotal,
		TotalPaid:        paid,
		RemainingAmount:  accounting.Remaining(txn.AmountTotal, paid),
		PaymentCount:     len(payments),
		Settlement:       accounting.SettlementOf(txn.AmountTotal, paid),
		Payments:         payments,
	}, nil
}

// guardedPayment resolves a payment and checks that its transaction belongs to the caller.
func (s *paymentService) guardedPayment(ctx context.Context, callerID string, paymentID int64) (*domain.Payment, error) {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if _, err := s.transactionOwnedBy(ctx, callerID, payment.TransactionID, true); err != nil {
		return nil, err
	}
	return payment, nil
}

// transactionOwnedBy resolves the parent transaction. A foreign transaction is reported
// as Forbidden when reached through one of its payments and as NotFound otherwise.
func (s *paymentService) transactionOwnedBy(ctx context.Context, callerID, transactionID string, viaPayment bool) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.UserID != callerID {
		if viaPayment {
			return nil, apperrors.NewForbiddenError("you do not have access to this payment")
		}
		return nil, apperrors.NewNotFoundError("transaction not found")
	}
	return txn, nil
}
