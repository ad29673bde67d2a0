package handlers_test

import (
	"context"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	portssvc "github.com/SscSPs/bookkeeping_app/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) GetTransaction(ctx context.Context, callerID, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, callerID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, callerID string, filter domain.TransactionFilter, page domain.PageRequest) (*domain.TransactionPage, error) {
	args := m.Called(ctx, callerID, filter, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionPage), args.Error(1)
}

func (m *MockTransactionService) GetSummary(ctx context.Context, callerID string, filter domain.SummaryFilter) (*domain.TransactionSummary, error) {
	args := m.Called(ctx, callerID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionSummary), args.Error(1)
}

func (m *MockTransactionService) GetCategoryMonthlyConsolidated(ctx context.Context, callerID string, filter domain.CategoryMonthlyFilter) ([]domain.CategoryMonthlyRow, error) {
	args := m.Called(ctx, callerID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryMonthlyRow), args.Error(1)
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, callerID string, input domain.Transaction) (*domain.Transaction, error) {
	args := m.Called(ctx, callerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) UpdateTransaction(ctx context.Context, callerID, transactionID string, patch domain.TransactionPatch) (*domain.Transaction, error) {
	args := m.Called(ctx, callerID, transactionID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) DeleteTransaction(ctx context.Context, callerID, transactionID string) error {
	args := m.Called(ctx, callerID, transactionID)
	return args.Error(0)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Mock PaymentService ---
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) CreatePayment(ctx context.Context, callerID, transactionID string, input domain.Payment) (*domain.Payment, error) {
	args := m.Called(ctx, callerID, transactionID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) GetPayment(ctx context.Context, callerID string, paymentID int64) (*domain.Payment, error) {
	args := m.Called(ctx, callerID, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) ListPayments(ctx context.Context, callerID, transactionID string) ([]domain.Payment, error) {
	args := m.Called(ctx, callerID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentService) UpdatePayment(ctx context.Context, callerID string, paymentID int64, patch domain.PaymentPatch) (*domain.Payment, error) {
	args := m.Called(ctx, callerID, paymentID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) DeletePayment(ctx context.Context, callerID string, paymentID int64) error {
	args := m.Called(ctx, callerID, paymentID)
	return args.Error(0)
}

func (m *MockPaymentService) GetPaymentSummary(ctx context.Context, callerID, transactionID string) (*domain.PaymentSummary, error) {
	args := m.Called(ctx, callerID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentSummary), args.Error(1)
}

var _ portssvc.PaymentSvcFacade = (*MockPaymentService)(nil)

// --- Mock PartyService ---
type MockPartyService struct {
	mock.Mock
	kind domain.PartyKind
}

func (m *MockPartyService) Kind() domain.PartyKind { return m.kind }

func (m *MockPartyService) CreateParty(ctx context.Context, callerID string, input domain.Party) (*domain.Party, error) {
	args := m.Called(ctx, callerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyService) GetParty(ctx context.Context, callerID string, partyID int64) (*domain.Party, error) {
	args := m.Called(ctx, callerID, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyService) ListParties(ctx context.Context, callerID string, filter domain.PartyFilter) ([]domain.Party, error) {
	args := m.Called(ctx, callerID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Party), args.Error(1)
}

func (m *MockPartyService) UpdateParty(ctx context.Context, callerID string, partyID int64, patch domain.PartyPatch) (*domain.Party, error) {
	args := m.Called(ctx, callerID, partyID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyService) DeleteParty(ctx context.Context, callerID string, partyID int64) error {
	args := m.Called(ctx, callerID, partyID)
	return args.Error(0)
}

var _ portssvc.PartySvcFacade = (*MockPartyService)(nil)

// --- Mock CompanyService ---
type MockCompanyService struct {
	mock.Mock
}

func (m *MockCompanyService) ListAssignedCompanies(ctx context.Context, callerID string) ([]domain.Company, error) {
	args := m.Called(ctx, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}

func (m *MockCompanyService) GetCompany(ctx context.Context, callerID string, companyID int64) (*domain.Company, error) {
	args := m.Called(ctx, callerID, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyService) ListCompanyUsers(ctx context.Context, callerID string, companyID int64) ([]domain.CompanyUser, error) {
	args := m.Called(ctx, callerID, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CompanyUser), args.Error(1)
}

func (m *MockCompanyService) CreateCompany(ctx context.Context, callerID string, input domain.Company) (*domain.Company, error) {
	args := m.Called(ctx, callerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyService) UpdateCompany(ctx context.Context, callerID string, companyID int64, patch domain.CompanyPatch) (*domain.Company, error) {
	args := m.Called(ctx, callerID, companyID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyService) AddUserToCompany(ctx context.Context, callerID string, companyID int64, targetUserID string, isAdmin bool) error {
	args := m.Called(ctx, callerID, companyID, targetUserID, isAdmin)
	return args.Error(0)
}

func (m *MockCompanyService) RemoveUserFromCompany(ctx context.Context, callerID string, companyID int64, targetUserID string) error {
	args := m.Called(ctx, callerID, companyID, targetUserID)
	return args.Error(0)
}

func (m *MockCompanyService) AuthorizeMember(ctx context.Context, userID string, companyID int64) error {
	args := m.Called(ctx, userID, companyID)
	return args.Error(0)
}

func (m *MockCompanyService) AuthorizeAdmin(ctx context.Context, userID string, companyID int64) error {
	args := m.Called(ctx, userID, companyID)
	return args.Error(0)
}

var _ portssvc.CompanySvcFacade = (*MockCompanyService)(nil)

// --- Mock CategoryService ---
type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) ListCategories(ctx context.Context, categoryType *domain.TransactionType, page domain.PageRequest) ([]domain.Category, domain.Pagination, error) {
	args := m.Called(ctx, categoryType, page)
	if args.Get(0) == nil {
		return nil, domain.Pagination{}, args.Error(2)
	}
	return args.Get(0).([]domain.Category), args.Get(1).(domain.Pagination), args.Error(2)
}

func (m *MockCategoryService) GetCategory(ctx context.Context, categoryID int64) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryService) CreateCategory(ctx context.Context, input domain.Category) (*domain.Category, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryService) UpdateCategory(ctx context.Context, categoryID int64, patch domain.CategoryPatch) (*domain.Category, error) {
	args := m.Called(ctx, categoryID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryService) DeleteCategory(ctx context.Context, categoryID int64) error {
	return m.Called(ctx, categoryID).Error(0)
}

var _ portssvc.CategorySvcFacade = (*MockCategoryService)(nil)

// --- Mock TaxRateService ---
type MockTaxRateService struct {
	mock.Mock
}

func (m *MockTaxRateService) ListTaxRates(ctx context.Context) ([]domain.TaxRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TaxRate), args.Error(1)
}

func (m *MockTaxRateService) GetTaxRate(ctx context.Context, taxRateID int64) (*domain.TaxRate, error) {
	args := m.Called(ctx, taxRateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaxRate), args.Error(1)
}

func (m *MockTaxRateService) GetDefaultTaxRate(ctx context.Context) (*domain.TaxRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaxRate), args.Error(1)
}

func (m *MockTaxRateService) CreateTaxRate(ctx context.Context, input domain.TaxRate) (*domain.TaxRate, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaxRate), args.Error(1)
}

func (m *MockTaxRateService) UpdateTaxRate(ctx context.Context, taxRateID int64, patch domain.TaxRatePatch) (*domain.TaxRate, error) {
	args := m.Called(ctx, taxRateID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaxRate), args.Error(1)
}

func (m *MockTaxRateService) DeleteTaxRate(ctx context.Context, taxRateID int64) error {
	return m.Called(ctx, taxRateID).Error(0)
}

var _ portssvc.TaxRateSvcFacade = (*MockTaxRateService)(nil)

// --- Mock DocumentTypeService ---
type MockDocumentTypeService struct {
	mock.Mock
}

func (m *MockDocumentTypeService) ListDocumentTypes(ctx context.Context) ([]domain.DocumentType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DocumentType), args.Error(1)
}

func (m *MockDocumentTypeService) GetDocumentType(ctx context.Context, documentTypeID int64) (*domain.DocumentType, error) {
	args := m.Called(ctx, documentTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentType), args.Error(1)
}

func (m *MockDocumentTypeService) CreateDocumentType(ctx context.Context, input domain.DocumentType) (*domain.DocumentType, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentType), args.Error(1)
}

func (m *MockDocumentTypeService) UpdateDocumentType(ctx context.Context, documentTypeID int64, patch domain.DocumentTypePatch) (*domain.DocumentType, error) {
	args := m.Called(ctx, documentTypeID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentType), args.Error(1)
}

func (m *MockDocumentTypeService) DeleteDocumentType(ctx context.Context, documentTypeID int64) error {
	return m.Called(ctx, documentTypeID).Error(0)
}

var _ portssvc.DocumentTypeSvcFacade = (*MockDocumentTypeService)(nil)

// --- Mock ReferenceService ---
type MockReferenceService struct {
	mock.Mock
}

func (m *MockReferenceService) ListRegions(ctx context.Context) ([]domain.Region, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Region), args.Error(1)
}

func (m *MockReferenceService) ListCommunes(ctx context.Context, regionID *int64) ([]domain.Commune, error) {
	args := m.Called(ctx, regionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Commune), args.Error(1)
}

func (m *MockReferenceService) ListPaymentTypes(ctx context.Context) ([]domain.PaymentType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentType), args.Error(1)
}

func (m *MockReferenceService) GetPaymentType(ctx context.Context, paymentTypeID int64) (*domain.PaymentType, error) {
	args := m.Called(ctx, paymentTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentType), args.Error(1)
}

func (m *MockReferenceService) ListStatuses(ctx context.Context) ([]domain.Status, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Status), args.Error(1)
}

func (m *MockReferenceService) GetStatus(ctx context.Context, statusID int64) (*domain.Status, error) {
	args := m.Called(ctx, statusID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Status), args.Error(1)
}

var _ portssvc.ReferenceSvcFacade = (*MockReferenceService)(nil)
