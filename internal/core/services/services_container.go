package services

import (
	portsrepo "github.com/SscSPs/bookkeeping_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookkeeping_app/internal/core/ports/services"
)

// NewServiceContainer wires every service from the repositories in repos.
// The company service doubles as the membership authorizer of the ledger.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	companySvc := NewCompanyService(repos.CompanyRepo)

	return &portssvc.ServiceContainer{
		Transaction: NewTransactionService(
			repos.TransactionRepo,
			repos.CategoryRepo,
			repos.DocumentTypeRepo,
			repos.TaxRateRepo,
			repos.VendorRepo,
			repos.CompanyRepo,
			companySvc,
		),
		Payment:      NewPaymentService(repos.PaymentRepo, repos.TransactionRepo, repos.ReferenceRepo),
		Client:       NewPartyService(repos.ClientRepo),
		Vendor:       NewPartyService(repos.VendorRepo),
		Company:      companySvc,
		Category:     NewCategoryService(repos.CategoryRepo),
		TaxRate:      NewTaxRateService(repos.TaxRateRepo),
		DocumentType: NewDocumentTypeService(repos.DocumentTypeRepo),
		Reference:    NewReferenceService(repos.ReferenceRepo),
	}
}
