package services_test

import (
	"context"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionByDocumentNumber(ctx context.Context, documentNumber string) (*domain.Transaction, error) {
	args := m.Called(ctx, documentNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, userID string, filter domain.TransactionFilter, page domain.PageRequest) ([]domain.TransactionListItem, int, error) {
	args := m.Called(ctx, userID, filter, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.TransactionListItem), args.Int(1), args.Error(2)
}

func (m *MockTransactionRepository) SummarizeTransactions(ctx context.Context, userID string, filter domain.SummaryFilter) (*domain.TransactionSummary, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionSummary), args.Error(1)
}

func (m *MockTransactionRepository) CategoryMonthlyConsolidated(ctx context.Context, userID string, filter domain.CategoryMonthlyFilter) ([]domain.CategoryMonthlyRow, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryMonthlyRow), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

// UpdateTransaction runs check when the expectation returns a third value, the amount already paid.
func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, transactionID, userID string, patch domain.TransactionPatch, check portsrepo.AmountTotalCheck) (bool, error) {
	args := m.Called(ctx, transactionID, userID, patch)
	if len(args) > 2 && patch.AmountTotal != nil {
		if err := check(*patch.AmountTotal, args.Get(2).(decimal.Decimal)); err != nil {
			return false, err
		}
	}
	return args.Bool(0), args.Error(1)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID, userID string) (bool, error) {
	args := m.Called(ctx, transactionID, userID)
	return args.Bool(0), args.Error(1)
}

// --- Mock CategoryRepository ---
type MockCategoryRepository struct {
	mock.Mock
}

var _ portsrepo.CategoryRepositoryFacade = (*MockCategoryRepository)(nil)

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, categoryID int64) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindCategoryByNameAndType(ctx context.Context, name string, categoryType domain.TransactionType) (*domain.Category, error) {
	args := m.Called(ctx, name, categoryType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context, categoryType *domain.TransactionType, page domain.PageRequest) ([]domain.Category, int, error) {
	args := m.Called(ctx, categoryType, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Category), args.Int(1), args.Error(2)
}

func (m *MockCategoryRepository) CountTransactionsByCategory(ctx context.Context, categoryID int64) (int, error) {
	args := m.Called(ctx, categoryID)
	return args.Int(0), args.Error(1)
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) (*domain.Category, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, categoryID int64, patch domain.CategoryPatch) (bool, error) {
	args := m.Called(ctx, categoryID, patch)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryRepository) DeleteCategory(ctx context.Context, categoryID int64) (bool, error) {
	args := m.Called(ctx, categoryID)
	return args.Bool(0), args.Error(1)
}

// --- Mock DocumentTypeRepository ---
type MockDocumentTypeRepository struct {
	mock.Mock
}

var _ portsrepo.DocumentTypeRepositoryFacade = (*MockDocumentTypeRepository)(nil)

func (m *MockDocumentTypeRepository) ListDocumentTypes(ctx context.Context) ([]domain.DocumentType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DocumentType), args.Error(1)
}

func (m *MockDocumentTypeRepository) FindDocumentTypeByID(ctx context.Context, documentTypeID int64) (*domain.DocumentType, error) {
	args := m.Called(ctx, documentTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentType), args.Error(1)
}

func (m *MockDocumentTypeRepository) FindDocumentTypeByCode(ctx context.Context, code string) (*domain.DocumentType, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentType), args.Error(1)
}

func (m *MockDocumentTypeRepository) SaveDocumentType(ctx context.Context, documentType domain.DocumentType) (*domain.DocumentType, error) {
	args := m.Called(ctx, documentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentType), args.Error(1)
}

func (m *MockDocumentTypeRepository) UpdateDocumentType(ctx context.Context, documentTypeID int64, patch domain.DocumentTypePatch) (bool, error) {
	args := m.Called(ctx, documentTypeID, patch)
	return args.Bool(0), args.Error(1)
}

func (m *MockDocumentTypeRepository) DeleteDocumentType(ctx context.Context, documentTypeID int64) (bool, error) {
	args := m.Called(ctx, documentTypeID)
	return args.Bool(0), args.Error(1)
}

// --- Mock TaxRateRepository ---
type MockTaxRateRepository struct {
	mock.Mock
}

var _ portsrepo.TaxRateRepositoryFacade = (*MockTaxRateRepository)(nil)

func (m *MockTaxRateRepository) ListTaxRates(ctx context.Context) ([]domain.TaxRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TaxRate), args.Error(1)
}

func (m *MockTaxRateRepository) FindTaxRateByID(ctx context.Context, taxRateID int64) (*domain.TaxRate, error) {
	args := m.Called(ctx, taxRateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaxRate), args.Error(1)
}

func (m *MockTaxRateRepository) FindDefaultTaxRate(ctx context.Context) (*domain.TaxRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaxRate), args.Error(1)
}

func (m *MockTaxRateRepository) SaveTaxRate(ctx context.Context, taxRate domain.TaxRate) (*domain.TaxRate, error) {
	args := m.Called(ctx, taxRate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaxRate), args.Error(1)
}

func (m *MockTaxRateRepository) UpdateTaxRate(ctx context.Context, taxRateID int64, patch domain.TaxRatePatch) (bool, error) {
	args := m.Called(ctx, taxRateID, patch)
	return args.Bool(0), args.Error(1)
}

func (m *MockTaxRateRepository) DeleteTaxRate(ctx context.Context, taxRateID int64) (bool, error) {
	args := m.Called(ctx, taxRateID)
	return args.Bool(0), args.Error(1)
}

// --- Mock CompanyRepository ---
type MockCompanyRepository struct {
	mock.Mock
}

var _ portsrepo.CompanyRepositoryFacade = (*MockCompanyRepository)(nil)

func (m *MockCompanyRepository) FindCompanyByID(ctx context.Context, companyID int64) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindCompanyByTaxID(ctx context.Context, taxID string) (*domain.Company, error) {
	args := m.Called(ctx, taxID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) ListCompaniesByUserID(ctx context.Context, userID string) ([]domain.Company, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) CreateCompanyWithAdmin(ctx context.Context, company domain.Company, adminUserID string) (*domain.Company, error) {
	args := m.Called(ctx, company, adminUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) UpdateCompany(ctx context.Context, companyID int64, patch domain.CompanyPatch) (bool, error) {
	args := m.Called(ctx, companyID, patch)
	return args.Bool(0), args.Error(1)
}

func (m *MockCompanyRepository) AddCompanyUser(ctx context.Context, membership domain.CompanyUser) error {
	args := m.Called(ctx, membership)
	return args.Error(0)
}

func (m *MockCompanyRepository) FindCompanyUser(ctx context.Context, companyID int64, userID string) (*domain.CompanyUser, error) {
	args := m.Called(ctx, companyID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyUser), args.Error(1)
}

func (m *MockCompanyRepository) ListCompanyUsers(ctx context.Context, companyID int64) ([]domain.CompanyUser, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CompanyUser), args.Error(1)
}

func (m *MockCompanyRepository) RemoveCompanyUser(ctx context.Context, companyID int64, userID string) (bool, error) {
	args := m.Called(ctx, companyID, userID)
	return args.Bool(0), args.Error(1)
}

// --- Mock PartyRepository ---
type MockPartyRepository struct {
	mock.Mock
	kind domain.PartyKind
}

var _ portsrepo.PartyRepositoryFacade = (*MockPartyRepository)(nil)

func (m *MockPartyRepository) Kind() domain.PartyKind { return m.kind }

func (m *MockPartyRepository) SaveParty(ctx context.Context, party domain.Party) (*domain.Party, error) {
	args := m.Called(ctx, party)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyRepository) FindPartyByID(ctx context.Context, partyID int64) (*domain.Party, error) {
	args := m.Called(ctx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyRepository) FindPartyByTaxID(ctx context.Context, taxID string) (*domain.Party, error) {
	args := m.Called(ctx, taxID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyRepository) ListParties(ctx context.Context, userID string, filter domain.PartyFilter) ([]domain.Party, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Party), args.Error(1)
}

func (m *MockPartyRepository) UpdateParty(ctx context.Context, partyID int64, userID string, patch domain.PartyPatch) (bool, error) {
	args := m.Called(ctx, partyID, userID, patch)
	return args.Bool(0), args.Error(1)
}

func (m *MockPartyRepository) DeleteParty(ctx context.Context, partyID int64, userID string) (bool, error) {
	args := m.Called(ctx, partyID, userID)
	return args.Bool(0), args.Error(1)
}

// --- Mock ReferenceRepository ---
type MockReferenceRepository struct {
	mock.Mock
}

var _ portsrepo.ReferenceReader = (*MockReferenceRepository)(nil)

func (m *MockReferenceRepository) ListRegions(ctx context.Context) ([]domain.Region, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Region), args.Error(1)
}

func (m *MockReferenceRepository) ListCommunes(ctx context.Context, regionID *int64) ([]domain.Commune, error) {
	args := m.Called(ctx, regionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Commune), args.Error(1)
}

func (m *MockReferenceRepository) ListPaymentTypes(ctx context.Context) ([]domain.PaymentType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentType), args.Error(1)
}

func (m *MockReferenceRepository) FindPaymentTypeByID(ctx context.Context, paymentTypeID int64) (*domain.PaymentType, error) {
	args := m.Called(ctx, paymentTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentType), args.Error(1)
}

func (m *MockReferenceRepository) ListStatuses(ctx context.Context) ([]domain.Status, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Status), args.Error(1)
}

func (m *MockReferenceRepository) FindStatusByID(ctx context.Context, statusID int64) (*domain.Status, error) {
	args := m.Called(ctx, statusID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Status), args.Error(1)
}

// --- Fake PaymentRepository ---

// fakePaymentRepo keeps payments in memory and runs the limit check the way the
// pgx repository does: total of the parent, sum of the other payments, then write.
type fakePaymentRepo struct {
	totals   map[string]decimal.Decimal
	payments map[int64]domain.Payment
	nextID   int64
}

var _ portsrepo.PaymentRepositoryFacade = (*fakePaymentRepo)(nil)

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{totals: map[string]decimal.Decimal{}, payments: map[int64]domain.Payment{}}
}

func (f *fakePaymentRepo) FindPaymentByID(_ context.Context, paymentID int64) (*domain.Payment, error) {
	p, ok := f.payments[paymentID]
	if !ok {
		return nil, notFound("payment not found")
	}
	return &p, nil
}

func (f *fakePaymentRepo) ListPaymentsByTransaction(_ context.Context, transactionID string) ([]domain.Payment, error) {
	out := []domain.Payment{}
	for _, p := range f.payments {
		if p.TransactionID == transactionID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) GetTotalPaid(_ context.Context, transactionID string) (decimal.Decimal, error) {
	return f.sumExcluding(transactionID, 0), nil
}

func (f *fakePaymentRepo) CreatePaymentWithinLimit(_ context.Context, payment domain.Payment, check portsrepo.PaymentLimitCheck) (*domain.Payment, error) {
	if err := check(f.totals[payment.TransactionID], f.sumExcluding(payment.TransactionID, 0)); err != nil {
		return nil, err
	}
	f.nextID++
	payment.ID = f.nextID
	f.payments[payment.ID] = payment
	return &payment, nil
}

func (f *fakePaymentRepo) UpdatePaymentWithinLimit(_ context.Context, paymentID int64, patch domain.PaymentPatch, check portsrepo.PaymentLimitCheck) (*domain.Payment, error) {
	p, ok := f.payments[paymentID]
	if !ok {
		return nil, notFound("payment not found")
	}
	if patch.Amount != nil {
		if err := check(f.totals[p.TransactionID], f.sumExcluding(p.TransactionID, paymentID)); err != nil {
			return nil, err
		}
		p.Amount = *patch.Amount
	}
	if patch.Notes != nil {
		p.Notes = patch.Notes
	}
	f.payments[paymentID] = p
	return &p, nil
}

func (f *fakePaymentRepo) DeletePayment(_ context.Context, paymentID int64) (bool, error) {
	_, ok := f.payments[paymentID]
	delete(f.payments, paymentID)
	return ok, nil
}

func (f *fakePaymentRepo) sumExcluding(transactionID string, excludeID int64) decimal.Decimal {
	sum := decimal.Zero
	for id, p := range f.payments {
		if p.TransactionID == transactionID && id != excludeID {
			sum = sum.Add(p.Amount)
		}
	}
	return sum
}
