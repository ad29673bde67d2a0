package services

import (
	"context"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
)

// TransactionReaderSvc defines read operations on the caller's ledger
type TransactionReaderSvc interface {
	GetTransaction(ctx context.Context, callerID, transactionID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, callerID string, filter domain.TransactionFilter, page domain.PageRequest) (*domain.TransactionPage, error)
	GetSummary(ctx context.Context, callerID string, filter domain.SummaryFilter) (*domain.TransactionSummary, error)
	GetCategoryMonthlyConsolidated(ctx context.Context, callerID string, filter domain.CategoryMonthlyFilter) ([]domain.CategoryMonthlyRow, error)
}

// TransactionWriterSvc defines write operations on the caller's ledger.
// Every write validates the referenced category, document type, tax rate and company first.
type TransactionWriterSvc interface {
	CreateTransaction(ctx context.Context, callerID string, input domain.Transaction) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, callerID, transactionID string, patch domain.TransactionPatch) (*domain.Transaction, error)

	// DeleteTransaction removes the transaction and its payments.
	DeleteTransaction(ctx context.Context, callerID, transactionID string) error
}

// TransactionSvcFacade combines all ledger service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
