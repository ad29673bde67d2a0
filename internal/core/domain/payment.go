package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment settles part (or all) of a transaction. It is owned through its transaction.
type Payment struct {
	ID              int64           `json:"id"`
	TransactionID   string          `json:"transaction_id"`
	PaymentTypeID   int64           `json:"payment_type_id"`
	PaymentTypeName *string         `json:"payment_type_name"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentDate     time.Time       `json:"payment_date"`
	ReferenceNumber *string         `json:"reference_number"`
	Notes           *string         `json:"notes"`
	AuditFields
}

// PaymentPatch lists the columns a payment update may change.
type PaymentPatch struct {
	PaymentTypeID   *int64
	Amount          *decimal.Decimal
	PaymentDate     *time.Time
	ReferenceNumber *string
	Notes           *string
}

func (p PaymentPatch) IsEmpty() bool {
	return p.PaymentTypeID == nil && p.Amount == nil && p.PaymentDate == nil &&
		p.ReferenceNumber == nil && p.Notes == nil
}

// PaymentSummary is the settlement state of one transaction.
type PaymentSummary struct {
	TransactionTotal decimal.Decimal `json:"transaction_total"`
	TotalPaid        decimal.Decimal `json:"total_paid"`
	RemainingAmount  decimal.Decimal `json:"remaining_amount"`
	PaymentCount     int             `json:"payment_count"`
	Settlement       Settlement      `json:"settlement"`
	Payments         []Payment       `json:"payments"`
}
