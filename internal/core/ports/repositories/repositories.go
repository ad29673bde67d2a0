package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	TransactionRepo  TransactionRepositoryFacade
	PaymentRepo      PaymentRepositoryFacade
	ClientRepo       PartyRepositoryFacade
	VendorRepo       PartyRepositoryFacade
	CategoryRepo     CategoryRepositoryFacade
	CompanyRepo      CompanyRepositoryFacade
	TaxRateRepo      TaxRateRepositoryFacade
	DocumentTypeRepo DocumentTypeRepositoryFacade
	ReferenceRepo    ReferenceReader
}
