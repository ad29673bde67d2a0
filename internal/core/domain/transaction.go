package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType tells whether money comes in or goes out.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// IsValid reports whether t is one of the known transaction types.
func (t TransactionType) IsValid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction is an income or expense record owned by a single user.
// The *Name/*Code fields are display values joined from the referenced rows and are never written.
type Transaction struct {
	ID              string          `json:"id"`
	DocumentNumber  string          `json:"document_number"`
	DocumentTypeID  int64           `json:"document_type_id"`
	TransactionDate time.Time       `json:"transaction_date"`
	Description     *string         `json:"description"`
	AmountNet       decimal.Decimal `json:"amount_net"`
	TaxAmount       decimal.Decimal `json:"tax_amount"`
	TaxRateID       *int64          `json:"tax_rate_id"`
	AmountTotal     decimal.Decimal `json:"amount_total"`
	CategoryID      int64           `json:"category_id"`
	VendorID        int64           `json:"vendor_id"`
	StatusID        int64           `json:"status_id"`
	CompanyID       *int64          `json:"company_id"`
	UserID          string          `json:"user_id"`
	Type            TransactionType `json:"type"`
	AuditFields

	CategoryName     string           `json:"category_name"`
	VendorName       *string          `json:"vendor_name"`
	StatusName       *string          `json:"status_name"`
	DocumentTypeName *string          `json:"document_type_name"`
	DocumentTypeCode *string          `json:"document_type_code"`
	TaxRateName      *string          `json:"tax_rate_name"`
	TaxRate          *decimal.Decimal `json:"tax_rate"`
	CompanyName      *string          `json:"company_name"`
}

// TransactionListItem is a transaction plus its settlement figures as shown in listings.
type TransactionListItem struct {
	Transaction
	PaymentsCount int             `json:"payments_count"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	PendingAmount decimal.Decimal `json:"pending_amount"`
	Settlement    Settlement      `json:"settlement"`
	StatusColor   StatusColor     `json:"status_color"`
}

// TransactionPatch lists the columns an update may change. A nil field is left untouched.
type TransactionPatch struct {
	DocumentNumber  *string
	DocumentTypeID  *int64
	TransactionDate *time.Time
	Description     *string
	AmountNet       *decimal.Decimal
	TaxAmount       *decimal.Decimal
	TaxRateID       *int64
	AmountTotal     *decimal.Decimal
	CategoryID      *int64
	VendorID        *int64
	StatusID        *int64
	CompanyID       *int64
	Type            *TransactionType
}

// IsEmpty reports whether the patch changes nothing.
func (p TransactionPatch) IsEmpty() bool {
	return p.DocumentNumber == nil && p.DocumentTypeID == nil && p.TransactionDate == nil &&
		p.Description == nil && p.AmountNet == nil && p.TaxAmount == nil && p.TaxRateID == nil &&
		p.AmountTotal == nil && p.CategoryID == nil && p.VendorID == nil && p.StatusID == nil &&
		p.CompanyID == nil && p.Type == nil
}

// TransactionFilter narrows a listing. All set fields are AND-combined; dates are inclusive.
type TransactionFilter struct {
	StartDate      *time.Time
	EndDate        *time.Time
	CategoryID     *int64
	VendorID       *int64
	StatusID       *int64
	DocumentTypeID *int64
	TaxRateID      *int64
	CompanyID      *int64
	Type           *TransactionType
	DocumentNumber *string
}

// SummaryFilter narrows the income/expense aggregate.
type SummaryFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	CompanyID *int64
}

// TransactionSummary is the income/expense aggregate for a caller.
type TransactionSummary struct {
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	NetBalance   decimal.Decimal `json:"netBalance"`
}

// CategoryMonthlyRow holds one category's totals for each month of a year. Months[0] is January.
type CategoryMonthlyRow struct {
	CategoryID   int64               `json:"category_id"`
	CategoryName string              `json:"category_name"`
	CategoryType TransactionType     `json:"category_type"`
	Months       [12]decimal.Decimal `json:"months"`
	Total        decimal.Decimal     `json:"total"`
}

// CategoryMonthlyFilter selects the transactions of the consolidated report.
type CategoryMonthlyFilter struct {
	Year      int
	Type      *TransactionType
	CompanyID *int64
}

// TransactionPage is one page of a transaction listing.
type TransactionPage struct {
	Data       []TransactionListItem `json:"data"`
	Pagination Pagination            `json:"pagination"`
}
