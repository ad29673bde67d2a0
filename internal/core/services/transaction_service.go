package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/bookkeeping_app/internal/apperrors"
	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookkeeping_app/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_app/internal/utils/accounting"
	"github.com/SscSPs/bookkeeping_app/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// transactionService implements the TransactionSvcFacade interface
type transactionService struct {
	BaseService
	transactionRepo  portsrepo.TransactionRepositoryFacade
	categoryRepo     portsrepo.CategoryReader
	documentTypeRepo portsrepo.DocumentTypeReader
	taxRateRepo      portsrepo.TaxRateReader
	vendorRepo       portsrepo.PartyReader
	companyRepo      portsrepo.CompanyReader
	now              func() time.Time
}

// NewTransactionService creates a new ledger service.
func NewTransactionService(
	transactionRepo portsrepo.TransactionRepositoryFacade,
	categoryRepo portsrepo.CategoryReader,
	documentTypeRepo portsrepo.DocumentTypeReader,
	taxRateRepo portsrepo.TaxRateReader,
	vendorRepo portsrepo.PartyReader,
	companyRepo portsrepo.CompanyReader,
	companyAuthorizer portssvc.CompanyAuthorizerSvc,
) portssvc.TransactionSvcFacade {
	return &transactionService{
		BaseService:      BaseService{CompanyAuthorizer: companyAuthorizer},
		transactionRepo:  transactionRepo,
		categoryRepo:     categoryRepo,
		documentTypeRepo: documentTypeRepo,
		taxRateRepo:      taxRateRepo,
		vendorRepo:       vendorRepo,
		companyRepo:      companyRepo,
		now:              time.Now,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) CreateTransaction(ctx context.Context, callerID string, input domain.Transaction) (*domain.Transaction, error) {
	if err := s.RequireCaller(callerID); err != nil {
		return nil, err
	}
	if err := validateNewTransaction(&input); err != nil {
		return nil, err
	}

	if err := s.ensureDocumentNumberFree(ctx, input.DocumentNumber, ""); err != nil {
		return nil, err
	}
	category, err := s.categoryRepo.FindCategoryByID(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}
	if _, err := s.documentTypeRepo.FindDocumentTypeByID(ctx, input.DocumentTypeID); err != nil {
		return nil, err
	}
	if input.TaxRateID != nil {
		if _, err := s.taxRateRepo.FindTaxRateByID(ctx, *input.TaxRateID); err != nil {
			return nil, err
		}
	}
	if err := s.checkVendorOwnership(ctx, callerID, input.VendorID); err != nil {
		return nil, err
	}
	if input.CompanyID != nil {
		if err := s.checkCompanyAccess(ctx, callerID, *input.CompanyID); err != nil {
			return nil, err
		}
	}
	if err := checkCategoryType(category, input.Type); err != nil {
		return nil, err
	}

	input.ID = uuid.NewString()
	input.UserID = callerID
	if err := s.transactionRepo.SaveTransaction(ctx, input); err != nil {
		s.LogFailure(ctx, err, "Failed to save transaction", slog.String("document_number", input.DocumentNumber))
		return nil, err
	}
	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", input.ID), slog.String("type", string(input.Type)))

	return s.transactionRepo.FindTransactionByID(ctx, input.ID)
}

func (s *transactionService) GetTransaction(ctx context.Context, callerID, transactionID string) (*domain.Transaction, error) {
	if err := s.RequireCaller(callerID); err != nil {
		return nil, err
	}
	return s.ownedTransaction(ctx, callerID, transactionID)
}

func (s *transactionService) ListTransactions(ctx context.Context, callerID string, filter domain.TransactionFilter, page domain.PageRequest) (*domain.TransactionPage, error) {
	if err := s.RequireCaller(callerID); err != nil {
		return nil, err
	}
	if filter.Type != nil && !filter.Type.IsValid() {
		return nil, apperrors.NewValidationError("type must be income or expense")
	}
	page = pagination.Normalize(page.Page, page.Limit)

	items, total, err := s.transactionRepo.ListTransactions(ctx, callerID, filter, page)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, err
	}
	if items == nil {
		items = []domain.TransactionListItem{}
	}
	for i := range items {
		item := &items[i]
		item.PendingAmount = accounting.Remaining(item.AmountTotal, item.PaidAmount)
		item.Settlement = accounting.SettlementOf(item.AmountTotal, item.PaidAmount)
		item.StatusColor = accounting.StatusColorFor(item.StatusName)
	}
	return &domain.TransactionPage{Data: items, Pagination: pagination.NewMeta(page, total)}, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, callerID, transactionID string, patch domain.TransactionPatch) (*domain.Transaction, error) {
	if err := s.RequireCaller(callerID); err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return nil, apperrors.NewValidationError("no fields to update")
	}
	if err := validateTransactionPatch(&patch); err != nil {
		return nil, err
	}
	current, err := s.ownedTransaction(ctx, callerID, transactionID)
	if err != nil {
		return nil, err
	}

	if patch.DocumentNumber != nil && *patch.DocumentNumber != current.DocumentNumber {
		if err := s.ensureDocumentNumberFree(ctx, *patch.DocumentNumber, transactionID); err != nil {
			return nil, err
		}
	}
	if patch.CategoryID != nil || patch.Type != nil {
		categoryID, txType := current.CategoryID, current.Type
		if patch.CategoryID != nil {
			categoryID = *patch.CategoryID
		}
		if patch.Type != nil {
			txType = *patch.Type
		}
		category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
		if err != nil {
			return nil, err
		}
		if err := checkCategoryType(category, txType); err != nil {
			return nil, err
		}
	}
	if patch.DocumentTypeID != nil {
		if _, err := s.documentTypeRepo.FindDocumentTypeByID(ctx, *patch.DocumentTypeID); err != nil {
			return nil, err
		}
	}
	if patch.TaxRateID != nil {
		if _, err := s.taxRateRepo.FindTaxRateByID(ctx, *patch.TaxRateID); err != nil {
			return nil, err
		}
	}
	if patch.VendorID != nil && *patch.VendorID != current.VendorID {
		if err := s.checkVendorOwnership(ctx, callerID, *patch.VendorID); err != nil {
			return nil, err
		}
	}
	if patch.CompanyID != nil {
		if err := s.checkCompanyAccess(ctx, callerID, *patch.CompanyID); err != nil {
			return nil, err
		}
	}

	updated, err := s.transactionRepo.UpdateTransaction(ctx, transactionID, callerID, patch, coversPayments)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, err
	}
	if !updated {
		return nil, apperrors.NewNotFoundError("transaction not found")
	}
	return s.transactionRepo.FindTransactionByID(ctx, transactionID)
}

func (s *transactionService) DeleteTransaction(ctx context.Context, callerID, transactionID string) error {
	if err := s.RequireCaller(callerID); err != nil {
		return err
	}
	deleted, err := s.transactionRepo.DeleteTransaction(ctx, transactionID, callerID)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return err
	}
	if !deleted {
		return apperrors.NewNotFoundError("transaction not found")
	}
	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

func (s *transactionService) GetSummary(ctx context.Context, callerID string, filter domain.SummaryFilter) (*domain.TransactionSummary, error) {
	if err := s.RequireCaller(callerID); err != nil {
		return nil, err
	}
	summary, err := s.transactionRepo.SummarizeTransactions(ctx, callerID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to summarize transactions")
		return nil, err
	}
	summary.NetBalance = summary.TotalIncome.Sub(summary.TotalExpense)
	return summary, nil
}

func (s *transactionService) GetCategoryMonthlyConsolidated(ctx context.Context, callerID string, filter domain.CategoryMonthlyFilter) ([]domain.CategoryMonthlyRow, error) {
	if err := s.RequireCaller(callerID); err != nil {
		return nil, err
	}
	if filter.Type != nil && !filter.Type.IsValid() {
		return nil, apperrors.NewValidationError("type must be income or expense")
	}
	if filter.Year == 0 {
		filter.Year = s.now().Year()
	}
	rows, err := s.transactionRepo.CategoryMonthlyConsolidated(ctx, callerID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to build monthly consolidated report", slog.Int("year", filter.Year))
		return nil, err
	}
	if rows == nil {
		rows = []domain.CategoryMonthlyRow{}
	}
	return rows, nil
}

// ownedTransaction hides transactions of other users behind NotFound.
func (s *transactionService) ownedTransaction(ctx context.Context, callerID, transactionID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.UserID != callerID {
		s.LogDebug(ctx, "Transaction owned by another user", slog.String("transaction_id", transactionID))
		return nil, apperrors.NewNotFoundError("transaction not found")
	}
	return txn, nil
}

func (s *transactionService) ensureDocumentNumberFree(ctx context.Context, documentNumber, selfID string) error {
	existing, err := s.transactionRepo.FindTransactionByDocumentNumber(ctx, documentNumber)
	switch {
	case err == nil && existing.ID != selfID:
		return apperrors.NewConflictError(fmt.Sprintf("a transaction with document number %s already exists", documentNumber))
	case err != nil && !errors.Is(err, apperrors.ErrNotFound):
		s.LogError(ctx, err, "Failed to check document number", slog.String("document_number", documentNumber))
		return err
	}
	return nil
}

func (s *transactionService) checkCompanyAccess(ctx context.Context, callerID string, companyID int64) error {
	if _, err := s.companyRepo.FindCompanyByID(ctx, companyID); err != nil {
		return err
	}
	return s.AuthorizeCompanyMember(ctx, callerID, companyID)
}

// checkVendorOwnership hides vendors of other users behind NotFound.
func (s *transactionService) checkVendorOwnership(ctx context.Context, callerID string, vendorID int64) error {
	vendor, err := s.vendorRepo.FindPartyByID(ctx, vendorID)
	if err != nil {
		return err
	}
	if vendor.UserID != callerID {
		s.LogDebug(ctx, "Vendor owned by another user", slog.Int64("vendor_id", vendorID))
		return apperrors.NewNotFoundError("vendor not found")
	}
	return nil
}

// coversPayments rejects an amount_total below what the transaction has already been paid.
func coversPayments(newTotal, alreadyPaid decimal.Decimal) error {
	if alreadyPaid.GreaterThan(newTotal) {
		return apperrors.NewValidationError(fmt.Sprintf(
			"amount_total cannot be lower than the amount already paid (%s)", alreadyPaid.StringFixed(2)))
	}
	return nil
}

func checkCategoryType(category *domain.Category, txType domain.TransactionType) error {
	if category.Type != txType {
		return apperrors.NewValidationError(fmt.Sprintf("category is not valid for %s transactions", txType))
	}
	return nil
}

func validateNewTransaction(input *domain.Transaction) error {
	input.DocumentNumber = strings.TrimSpace(input.DocumentNumber)
	switch {
	case input.DocumentNumber == "":
		return apperrors.NewValidationError("document_number is required")
	case input.DocumentTypeID <= 0:
		return apperrors.NewValidationError("document_type_id is required")
	case input.TransactionDate.IsZero():
		return apperrors.NewValidationError("transaction_date is required")
	case input.CategoryID <= 0:
		return apperrors.NewValidationError("category_id is required")
	case input.VendorID <= 0:
		return apperrors.NewValidationError("vendor_id is required")
	case input.StatusID <= 0:
		return apperrors.NewValidationError("status_id is required")
	case !input.Type.IsValid():
		return apperrors.NewValidationError("type must be income or expense")
	}
	return checkAmounts(&input.AmountNet, &input.TaxAmount, &input.AmountTotal)
}

func validateTransactionPatch(patch *domain.TransactionPatch) error {
	if patch.DocumentNumber != nil {
		trimmed := strings.TrimSpace(*patch.DocumentNumber)
		if trimmed == "" {
			return apperrors.NewValidationError("document_number cannot be empty")
		}
		patch.DocumentNumber = &trimmed
	}
	if patch.Type != nil && !patch.Type.IsValid() {
		return apperrors.NewValidationError("type must be income or expense")
	}
	return checkAmounts(patch.AmountNet, patch.TaxAmount, patch.AmountTotal)
}

// checkAmounts rejects negative money values. nil means "not provided".
func checkAmounts(net, tax, total *decimal.Decimal) error {
	for _, a := range []struct {
		name  string
		value *decimal.Decimal
	}{{"amount_net", net}, {"tax_amount", tax}, {"amount_total", total}} {
		if a.value != nil && a.value.IsNegative() {
			return apperrors.NewValidationError(a.name + " cannot be negative")
		}
	}
	return nil
}
