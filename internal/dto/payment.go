package dto

import (
	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePaymentRequest is the body of POST /transaction/:transactionId/payments.
type CreatePaymentRequest struct {
	PaymentTypeID   int64            `json:"payment_type_id" binding:"required,gt=0"`
	Amount          *decimal.Decimal `json:"amount" binding:"required,decimalgt0" swaggertype:"string" example:"70.00"`
	PaymentDate     string           `json:"payment_date" binding:"required,datetime=2006-01-02" example:"2024-04-01"`
	ReferenceNumber *string          `json:"reference_number" binding:"omitempty,max=100"`
	Notes           *string          `json:"notes" binding:"omitempty,max=1000"`
}

func (r CreatePaymentRequest) ToDomain() (domain.Payment, error) {
	date, err := parseDate("payment_date", r.PaymentDate)
	if err != nil {
		return domain.Payment{}, err
	}
	payment := domain.Payment{
		PaymentTypeID:   r.PaymentTypeID,
		PaymentDate:     date,
		ReferenceNumber: r.ReferenceNumber,
		Notes:           r.Notes,
	}
	if r.Amount != nil {
		payment.Amount = *r.Amount
	}
	return payment, nil
}

// UpdatePaymentRequest is the body of PUT /payments/:id.
type UpdatePaymentRequest struct {
	PaymentTypeID   *int64           `json:"payment_type_id" binding:"omitempty,gt=0"`
	Amount          *decimal.Decimal `json:"amount" binding:"omitempty,decimalgt0" swaggertype:"string"`
	PaymentDate     *string          `json:"payment_date" binding:"omitempty,datetime=2006-01-02"`
	ReferenceNumber *string          `json:"reference_number" binding:"omitempty,max=100"`
	Notes           *string          `json:"notes" binding:"omitempty,max=1000"`
}

func (r UpdatePaymentRequest) ToPatch() (domain.PaymentPatch, error) {
	date, err := parseOptionalDate("payment_date", r.PaymentDate)
	if err != nil {
		return domain.PaymentPatch{}, err
	}
	return domain.PaymentPatch{
		PaymentTypeID:   r.PaymentTypeID,
		Amount:          r.Amount,
		PaymentDate:     date,
		ReferenceNumber: r.ReferenceNumber,
		Notes:           r.Notes,
	}, nil
}
