package repositories

import (
	"context"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AmountTotalCheck decides whether a transaction's amount_total may become newTotal
// while alreadyPaid is settled against it.
type AmountTotalCheck func(newTotal, alreadyPaid decimal.Decimal) error

// TransactionReader defines read operations for ledger transactions
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction with its joined display fields, whoever owns it.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// FindTransactionByDocumentNumber retrieves the transaction holding a document number.
	FindTransactionByDocumentNumber(ctx context.Context, documentNumber string) (*domain.Transaction, error)

	// ListTransactions returns one page of the user's transactions and the total number of matching rows.
	// Items carry PaymentsCount and PaidAmount; the other derived fields are left to the caller.
	ListTransactions(ctx context.Context, userID string, filter domain.TransactionFilter, page domain.PageRequest) ([]domain.TransactionListItem, int, error)

	// SummarizeTransactions sums the user's income and expenses.
	SummarizeTransactions(ctx context.Context, userID string, filter domain.SummaryFilter) (*domain.TransactionSummary, error)

	// CategoryMonthlyConsolidated totals the user's transactions per category and month.
	CategoryMonthlyConsolidated(ctx context.Context, userID string, filter domain.CategoryMonthlyFilter) ([]domain.CategoryMonthlyRow, error)
}

// TransactionWriter defines write operations for ledger transactions
type TransactionWriter interface {
	// SaveTransaction inserts a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransaction applies a patch to a transaction owned by userID. It reports false if no row matched.
	// When the patch changes amount_total, the row is locked and check runs against its payments before the write.
	UpdateTransaction(ctx context.Context, transactionID, userID string, patch domain.TransactionPatch, check AmountTotalCheck) (bool, error)

	// DeleteTransaction removes a transaction owned by userID together with its payments.
	DeleteTransaction(ctx context.Context, transactionID, userID string) (bool, error)
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
