package services

import (
	"context"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
)

// CompanyReaderSvc defines read operations for company data.
// Only members of a company may read it.
type CompanyReaderSvc interface {
	// ListAssignedCompanies retrieves the companies the caller is assigned to.
	ListAssignedCompanies(ctx context.Context, callerID string) ([]domain.Company, error)

	GetCompany(ctx context.Context, callerID string, companyID int64) (*domain.Company, error)

	// ListCompanyUsers retrieves the memberships of a company.
	ListCompanyUsers(ctx context.Context, callerID string, companyID int64) ([]domain.CompanyUser, error)
}

// CompanyWriterSvc defines write operations for company data
type CompanyWriterSvc interface {
	// CreateCompany persists a new company with the caller as its admin.
	CreateCompany(ctx context.Context, callerID string, input domain.Company) (*domain.Company, error)

	// UpdateCompany requires the caller to be an admin of the company.
	UpdateCompany(ctx context.Context, callerID string, companyID int64, patch domain.CompanyPatch) (*domain.Company, error)
}

// CompanyMembershipSvc defines operations for managing company membership.
// Only company admins can manage members.
type CompanyMembershipSvc interface {
	AddUserToCompany(ctx context.Context, callerID string, companyID int64, targetUserID string, isAdmin bool) error
	RemoveUserFromCompany(ctx context.Context, callerID string, companyID int64, targetUserID string) error
}

// CompanyAuthorizerSvc defines operations for company authorization
type CompanyAuthorizerSvc interface {
	// AuthorizeMember returns ErrForbidden unless userID is assigned to the company.
	AuthorizeMember(ctx context.Context, userID string, companyID int64) error

	// AuthorizeAdmin returns ErrForbidden unless userID is an admin of the company.
	AuthorizeAdmin(ctx context.Context, userID string, companyID int64) error
}

// CompanySvcFacade combines all company-related service interfaces
type CompanySvcFacade interface {
	CompanyReaderSvc
	CompanyWriterSvc
	CompanyMembershipSvc
	CompanyAuthorizerSvc
}
