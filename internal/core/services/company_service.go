package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/bookkeeping_app/internal/apperrors"
	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookkeeping_app/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_app/internal/utils/rut"
)

// chileCountry is the country whose companies must carry a valid RUT.
const chileCountry = "chile"

// companyService implements the CompanySvcFacade interface
type companyService struct {
	BaseService
	companyRepo portsrepo.CompanyRepositoryFacade
}

// NewCompanyService creates a new company service. It is also the CompanyAuthorizer used by the other services.
func NewCompanyService(companyRepo portsrepo.CompanyRepositoryFacade) portssvc.CompanySvcFacade {
	return &companyService{companyRepo: companyRepo}
}

var _ portssvc.CompanySvcFacade = (*companyService)(nil)

func (s *companyService) CreateCompany(ctx context.Context, callerID string, input domain.Company) (*domain.Company, error) {
	if err := s.RequireCaller(callerID); err != nil {
		return nil, err
	}
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, apperrors.NewValidationError("company name is required")
	}
	taxID, err := canonicalCompanyTaxID(input.TaxID, input.Country)
	if err != nil {
		return nil, err
	}
	input.TaxID = taxID

	if err := s.ensureTaxIDFree(ctx, taxID, 0); err != nil {
		return nil, err
	}

	created, err := s.companyRepo.CreateCompanyWithAdmin(ctx, input, callerID)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to create company", slog.String("tax_id", taxID))
		return nil, err
	}
	s.LogInfo(ctx, "Company created", slog.Int64("company_id", created.ID), slog.String("admin_user_id", callerID))
	return created, nil
}

func (s *companyService) GetCompany(ctx context.Context, callerID string, companyID int64) (*domain.Company, error) {
	if err := s.RequireCaller(callerID); err != nil {
		return nil, err
	}
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to get company", slog.Int64("company_id", companyID))
		return nil, err
	}
	if err := s.AuthorizeMember(ctx, callerID, companyID); err != nil {
		return nil, err
	}
	return company, nil
}

func (s *companyService) ListAssignedCompanies(ctx context.Context, callerID string) ([]domain.Company, error) {
	if err := s.RequireCaller(callerID); err != nil {
		return nil, err
	}
	companies, err := s.companyRepo.ListCompaniesByUserID(ctx, callerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list assigned companies")
		return nil, err
	}
	if companies == nil {
		companies = []domain.Company{}
	}
	return companies, nil
}

func (s *companyService) UpdateCompany(ctx context.Context, callerID string, companyID int64, patch domain.CompanyPatch) (*domain.Company, error) {
	if err := s.RequireCaller(callerID); err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return nil, apperrors.NewValidationError("no fields to update")
	}
	current, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeAdmin(ctx, callerID, companyID); err != nil {
		return nil, err
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, apperrors.NewValidationError("company name cannot be empty")
		}
		patch.Name = &name
	}
	if patch.TaxID != nil || patch.Country != nil {
		taxID, country := current.TaxID, current.Country
		if patch.TaxID != nil {
			taxID = *patch.TaxID
		}
		if patch.Country != nil {
			country = patch.Country
		}
		canonical, err := canonicalCompanyTaxID(taxID, country)
		if err != nil {
			return nil, err
		}
		if canonical != current.TaxID {
			if err := s.ensureTaxIDFree(ctx, canonical, companyID); err != nil {
				return nil, err
			}
			patch.TaxID = &canonical
		}
	}

	updated, err := s.companyRepo.UpdateCompany(ctx, companyID, patch)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to update company", slog.Int64("company_id", companyID))
		return nil, err
	}
	if !updated {
		return nil, apperrors.NewNotFoundError("company not found")
	}
	return s.companyRepo.FindCompanyByID(ctx, companyID)
}

func (s *companyService) ListCompanyUsers(ctx context.Context, callerID string, companyID int64) ([]domain.CompanyUser, error) {
	if err := s.RequireCaller(callerID); err != nil {
		return nil, err
	}
	if _, err := s.companyRepo.FindCompanyByID(ctx, companyID); err != nil {
		return nil, err
	}
	if err := s.AuthorizeMember(ctx, callerID, companyID); err != nil {
		return nil, err
	}
	users, err := s.companyRepo.ListCompanyUsers(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list company users", slog.Int64("company_id", companyID))
		return nil, err
	}
	if users == nil {
		users = []domain.CompanyUser{}
	}
	return users, nil
}

func (s *companyService) AddUserToCompany(ctx context.Context, callerID string, companyID int64, targetUserID string, isAdmin bool) error {
	if err := s.RequireCaller(callerID); err != nil {
		return err
	}
	targetUserID = strings.TrimSpace(targetUserID)
	if targetUserID == "" {
		return apperrors.NewValidationError("user_id is required")
	}
	if _, err := s.companyRepo.FindCompanyByID(ctx, companyID); err != nil {
		return err
	}
	if err := s.AuthorizeAdmin(ctx, callerID, companyID); err != nil {
		return err
	}

	_, err := s.companyRepo.FindCompanyUser(ctx, companyID, targetUserID)
	switch {
	case err == nil:
		return apperrors.NewConflictError("user is already assigned to this company")
	case !errors.Is(err, apperrors.ErrNotFound):
		s.LogError(ctx, err, "Failed to check company membership", slog.Int64("company_id", companyID))
		return err
	}

	if err := s.companyRepo.AddCompanyUser(ctx, domain.CompanyUser{
		CompanyID: companyID,
		UserID:    targetUserID,
		IsAdmin:   isAdmin,
	}); err != nil {
		s.LogFailure(ctx, err, "Failed to add user to company", slog.Int64("company_id", companyID))
		return err
	}
	s.LogInfo(ctx, "User added to company",
		slog.Int64("company_id", companyID), slog.String("target_user_id", targetUserID), slog.Bool("is_admin", isAdmin))
	return nil
}

func (s *companyService) RemoveUserFromCompany(ctx context.Context, callerID string, companyID int64, targetUserID string) error {
	if err := s.RequireCaller(callerID); err != nil {
		return err
	}
	if _, err := s.companyRepo.FindCompanyByID(ctx, companyID); err != nil {
		return err
	}
	if err := s.AuthorizeAdmin(ctx, callerID, companyID); err != nil {
		return err
	}
	if err := s.ensureAnotherAdmin(ctx, companyID, targetUserID); err != nil {
		return err
	}
	removed, err := s.companyRepo.RemoveCompanyUser(ctx, companyID, targetUserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to remove user from company", slog.Int64("company_id", companyID))
		return err
	}
	if !removed {
		return apperrors.NewNotFoundError("user is not assigned to this company")
	}
	return nil
}

// AuthorizeMember implements CompanyAuthorizerSvc.
func (s *companyService) AuthorizeMember(ctx context.Context, userID string, companyID int64) error {
	_, err := s.membership(ctx, userID, companyID)
	return err
}

// AuthorizeAdmin implements CompanyAuthorizerSvc.
func (s *companyService) AuthorizeAdmin(ctx context.Context, userID string, companyID int64) error {
	membership, err := s.membership(ctx, userID, companyID)
	if err != nil {
		return err
	}
	if !membership.IsAdmin {
		return apperrors.NewForbiddenError("only company admins can perform this action")
	}
	return nil
}

// ensureAnotherAdmin rejects removing targetUserID when it is the company's only admin.
func (s *companyService) ensureAnotherAdmin(ctx context.Context, companyID int64, targetUserID string) error {
	members, err := s.companyRepo.ListCompanyUsers(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list company users", slog.Int64("company_id", companyID))
		return err
	}
	admins, targetIsAdmin := 0, false
	for _, m := range members {
		if !m.IsAdmin {
			continue
		}
		admins++
		if m.UserID == targetUserID {
			targetIsAdmin = true
		}
	}
	if targetIsAdmin && admins == 1 {
		return apperrors.NewValidationError("a company must keep at least one admin")
	}
	return nil
}

func (s *companyService) membership(ctx context.Context, userID string, companyID int64) (*domain.CompanyUser, error) {
	if userID == "" {
		return nil, apperrors.NewUnauthenticatedError("authentication required")
	}
	membership, err := s.companyRepo.FindCompanyUser(ctx, companyID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewForbiddenError("you do not have access to this company")
		}
		s.LogError(ctx, err, "Failed to check company membership",
			slog.String("user_id", userID), slog.Int64("company_id", companyID))
		return nil, err
	}
	return membership, nil
}

func (s *companyService) ensureTaxIDFree(ctx context.Context, taxID string, selfID int64) error {
	existing, err := s.companyRepo.FindCompanyByTaxID(ctx, taxID)
	switch {
	case err == nil && existing.ID != selfID:
		return apperrors.NewConflictError(fmt.Sprintf("a company with tax id %s already exists", taxID))
	case err != nil && !errors.Is(err, apperrors.ErrNotFound):
		s.LogError(ctx, err, "Failed to check company tax id", slog.String("tax_id", taxID))
		return err
	}
	return nil
}

// canonicalCompanyTaxID requires a tax id and, for Chilean companies, a valid RUT in canonical form.
func canonicalCompanyTaxID(taxID string, country *string) (string, error) {
	taxID = strings.TrimSpace(taxID)
	if taxID == "" {
		return "", apperrors.NewValidationError("company tax_id is required")
	}
	if country == nil || !strings.EqualFold(strings.TrimSpace(*country), chileCountry) {
		return taxID, nil
	}
	formatted, ok := rut.ValidateAndFormat(taxID)
	if !ok {
		return "", apperrors.NewValidationError("invalid RUT for a Chilean company")
	}
	return formatted, nil
}
