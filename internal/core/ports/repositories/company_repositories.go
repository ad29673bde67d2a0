package repositories

import (
	"context"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
)

// CompanyReader defines read operations for company data
type CompanyReader interface {
	// FindCompanyByID retrieves a specific company by its ID.
	FindCompanyByID(ctx context.Context, companyID int64) (*domain.Company, error)

	// FindCompanyByTaxID retrieves the company registered under a tax id.
	FindCompanyByTaxID(ctx context.Context, taxID string) (*domain.Company, error)

	// ListCompaniesByUserID retrieves all companies a user is assigned to.
	ListCompaniesByUserID(ctx context.Context, userID string) ([]domain.Company, error)
}

// CompanyWriter defines write operations for company data
type CompanyWriter interface {
	// CreateCompanyWithAdmin persists a new company and makes adminUserID its first admin, atomically.
	CreateCompanyWithAdmin(ctx context.Context, company domain.Company, adminUserID string) (*domain.Company, error)

	// UpdateCompany applies a patch. It reports false if no row matched.
	UpdateCompany(ctx context.Context, companyID int64, patch domain.CompanyPatch) (bool, error)
}

// CompanyMembershipManager defines operations for managing company memberships
type CompanyMembershipManager interface {
	// AddCompanyUser assigns a user to a company.
	AddCompanyUser(ctx context.Context, membership domain.CompanyUser) error

	// FindCompanyUser retrieves a user's membership in a company.
	FindCompanyUser(ctx context.Context, companyID int64, userID string) (*domain.CompanyUser, error)

	// ListCompanyUsers retrieves every membership of a company.
	ListCompanyUsers(ctx context.Context, companyID int64) ([]domain.CompanyUser, error)

	// RemoveCompanyUser deletes a membership. It reports false if the user was not assigned.
	RemoveCompanyUser(ctx context.Context, companyID int64, userID string) (bool, error)
}

// CompanyRepositoryFacade combines all company-related repository interfaces
type CompanyRepositoryFacade interface {
	CompanyReader
	CompanyWriter
	CompanyMembershipManager
}

// CompanyRepositoryWithTx extends CompanyRepositoryFacade with transaction capabilities
type CompanyRepositoryWithTx interface {
	CompanyRepositoryFacade
	TransactionManager
}
