package pgsql

import (
	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo:  newPgxTransactionRepository(dbPool),
		PaymentRepo:      newPgxPaymentRepository(dbPool),
		ClientRepo:       newPgxPartyRepository(dbPool, domain.PartyClient),
		VendorRepo:       newPgxPartyRepository(dbPool, domain.PartyVendor),
		CategoryRepo:     newPgxCategoryRepository(dbPool),
		CompanyRepo:      newPgxCompanyRepository(dbPool),
		TaxRateRepo:      newPgxTaxRateRepository(dbPool),
		DocumentTypeRepo: newPgxDocumentTypeRepository(dbPool),
		ReferenceRepo:    newPgxReferenceRepository(dbPool),
	}
}
