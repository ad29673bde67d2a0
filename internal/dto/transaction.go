package dto

import (
	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest is the body of POST /transactions.
type CreateTransactionRequest struct {
	DocumentNumber  string           `json:"document_number" binding:"required,max=50"`
	DocumentTypeID  int64            `json:"document_type_id" binding:"required,gt=0"`
	TransactionDate string           `json:"transaction_date" binding:"required,datetime=2006-01-02" example:"2024-03-15"`
	Description     *string          `json:"description" binding:"omitempty,max=1000"`
	AmountNet       *decimal.Decimal `json:"amount_net" binding:"required,decimalgte0" swaggertype:"string" example:"100.00"`
	TaxAmount       *decimal.Decimal `json:"tax_amount" binding:"omitempty,decimalgte0" swaggertype:"string" example:"19.00"`
	TaxRateID       *int64           `json:"tax_rate_id" binding:"omitempty,gt=0"`
	AmountTotal     *decimal.Decimal `json:"amount_total" binding:"required,decimalgte0" swaggertype:"string" example:"119.00"`
	CategoryID      int64            `json:"category_id" binding:"required,gt=0"`
	VendorID        int64            `json:"vendor_id" binding:"required,gt=0"`
	StatusID        int64            `json:"status_id" binding:"required,gt=0"`
	CompanyID       *int64           `json:"company_id" binding:"omitempty,gt=0"`
	Type            string           `json:"type" binding:"required,txtype" enums:"income,expense"`
}

func (r CreateTransactionRequest) ToDomain() (domain.Transaction, error) {
	date, err := parseDate("transaction_date", r.TransactionDate)
	if err != nil {
		return domain.Transaction{}, err
	}
	txn := domain.Transaction{
		DocumentNumber:  r.DocumentNumber,
		DocumentTypeID:  r.DocumentTypeID,
		TransactionDate: date,
		Description:     r.Description,
		TaxRateID:       r.TaxRateID,
		CategoryID:      r.CategoryID,
		VendorID:        r.VendorID,
		StatusID:        r.StatusID,
		CompanyID:       r.CompanyID,
		Type:            domain.TransactionType(r.Type),
	}
	if r.AmountNet != nil {
		txn.AmountNet = *r.AmountNet
	}
	if r.TaxAmount != nil {
		txn.TaxAmount = *r.TaxAmount
	}
	if r.AmountTotal != nil {
		txn.AmountTotal = *r.AmountTotal
	}
	return txn, nil
}

// UpdateTransactionRequest is the body of PUT /transactions/:id. Omitted fields are left untouched.
type UpdateTransactionRequest struct {
	DocumentNumber  *string          `json:"document_number" binding:"omitempty,min=1,max=50"`
	DocumentTypeID  *int64           `json:"document_type_id" binding:"omitempty,gt=0"`
	TransactionDate *string          `json:"transaction_date" binding:"omitempty,datetime=2006-01-02"`
	Description     *string          `json:"description" binding:"omitempty,max=1000"`
	AmountNet       *decimal.Decimal `json:"amount_net" binding:"omitempty,decimalgte0" swaggertype:"string"`
	TaxAmount       *decimal.Decimal `json:"tax_amount" binding:"omitempty,decimalgte0" swaggertype:"string"`
	TaxRateID       *int64           `json:"tax_rate_id" binding:"omitempty,gt=0"`
	AmountTotal     *decimal.Decimal `json:"amount_total" binding:"omitempty,decimalgte0" swaggertype:"string"`
	CategoryID      *int64           `json:"category_id" binding:"omitempty,gt=0"`
	VendorID        *int64           `json:"vendor_id" binding:"omitempty,gt=0"`
	StatusID        *int64           `json:"status_id" binding:"omitempty,gt=0"`
	CompanyID       *int64           `json:"company_id" binding:"omitempty,gt=0"`
	Type            *string          `json:"type" binding:"omitempty,txtype" enums:"income,expense"`
}

func (r UpdateTransactionRequest) ToPatch() (domain.TransactionPatch, error) {
	date, err := parseOptionalDate("transaction_date", r.TransactionDate)
	if err != nil {
		return domain.TransactionPatch{}, err
	}
	return domain.TransactionPatch{
		DocumentNumber:  r.DocumentNumber,
		DocumentTypeID:  r.DocumentTypeID,
		TransactionDate: date,
		Description:     r.Description,
		AmountNet:       r.AmountNet,
		TaxAmount:       r.TaxAmount,
		TaxRateID:       r.TaxRateID,
		AmountTotal:     r.AmountTotal,
		CategoryID:      r.CategoryID,
		VendorID:        r.VendorID,
		StatusID:        r.StatusID,
		CompanyID:       r.CompanyID,
		Type:            optionalType[domain.TransactionType](r.Type),
	}, nil
}

// ListTransactionsParams are the query parameters of GET /transactions.
type ListTransactionsParams struct {
	StartDate      *string `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate        *string `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
	CategoryID     *int64  `form:"categoryId"`
	VendorID       *int64  `form:"vendorId"`
	StatusID       *int64  `form:"statusId"`
	DocumentTypeID *int64  `form:"documentTypeId"`
	TaxRateID      *int64  `form:"taxRateId"`
	CompanyID      *int64  `form:"companyId"`
	Type           *string `form:"type" binding:"omitempty,txtype"`
	DocumentNumber *string `form:"documentNumber"`
	Page           int     `form:"page"`
	Limit          int     `form:"limit"`
}

func (p ListTransactionsParams) ToFilter() (domain.TransactionFilter, domain.PageRequest, error) {
	start, err := parseOptionalDate("startDate", p.StartDate)
	if err != nil {
		return domain.TransactionFilter{}, domain.PageRequest{}, err
	}
	end, err := parseOptionalDate("endDate", p.EndDate)
	if err != nil {
		return domain.TransactionFilter{}, domain.PageRequest{}, err
	}
	documentNumber := p.DocumentNumber
	if documentNumber != nil && *documentNumber == "" {
		documentNumber = nil
	}
	filter := domain.TransactionFilter{
		StartDate:      start,
		EndDate:        end,
		CategoryID:     p.CategoryID,
		VendorID:       p.VendorID,
		StatusID:       p.StatusID,
		DocumentTypeID: p.DocumentTypeID,
		TaxRateID:      p.TaxRateID,
		CompanyID:      p.CompanyID,
		Type:           optionalType[domain.TransactionType](p.Type),
		DocumentNumber: documentNumber,
	}
	return filter, domain.PageRequest{Page: p.Page, Limit: p.Limit}, nil
}

// SummaryParams are the query parameters of GET /transactions/summary.
type SummaryParams struct {
	StartDate *string `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate   *string `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
	CompanyID *int64  `form:"companyId"`
}

func (p SummaryParams) ToFilter() (domain.SummaryFilter, error) {
	start, err := parseOptionalDate("startDate", p.StartDate)
	if err != nil {
		return domain.SummaryFilter{}, err
	}
	end, err := parseOptionalDate("endDate", p.EndDate)
	if err != nil {
		return domain.SummaryFilter{}, err
	}
	return domain.SummaryFilter{StartDate: start, EndDate: end, CompanyID: p.CompanyID}, nil
}

// MonthlyConsolidatedParams are the query parameters of GET /categories/monthly-consolidated.
type MonthlyConsolidatedParams struct {
	Year      int     `form:"year" binding:"omitempty,min=1900,max=9999"`
	Type      *string `form:"type" binding:"omitempty,txtype"`
	CompanyID *int64  `form:"companyId"`
}

func (p MonthlyConsolidatedParams) ToFilter() domain.CategoryMonthlyFilter {
	return domain.CategoryMonthlyFilter{
		Year:      p.Year,
		Type:      optionalType[domain.TransactionType](p.Type),
		CompanyID: p.CompanyID,
	}
}
