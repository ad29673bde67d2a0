package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/SscSPs/bookkeeping_app/internal/apperrors"
	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookkeeping_app/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_app/internal/utils"
)

type taxRateService struct {
	BaseService
	taxRateRepo portsrepo.TaxRateRepositoryFacade
}

func NewTaxRateService(taxRateRepo portsrepo.TaxRateRepositoryFacade) portssvc.TaxRateSvcFacade {
	return &taxRateService{taxRateRepo: taxRateRepo}
}

var _ portssvc.TaxRateSvcFacade = (*taxRateService)(nil)

func (s *taxRateService) ListTaxRates(ctx context.Context) ([]domain.TaxRate, error) {
	rates, err := s.taxRateRepo.ListTaxRates(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list tax rates")
		return nil, err
	}
	if rates == nil {
		rates = []domain.TaxRate{}
	}
	return rates, nil
}

func (s *taxRateService) GetTaxRate(ctx context.Context, taxRateID int64) (*domain.TaxRate, error) {
	return s.taxRateRepo.FindTaxRateByID(ctx, taxRateID)
}

func (s *taxRateService) GetDefaultTaxRate(ctx context.Context) (*domain.TaxRate, error) {
	return s.taxRateRepo.FindDefaultTaxRate(ctx)
}

// CreateTaxRate persists a tax rate. A new default replaces the previous one.
func (s *taxRateService) CreateTaxRate(ctx context.Context, input domain.TaxRate) (*domain.TaxRate, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, apperrors.NewValidationError("tax rate name is required")
	}
	if input.Rate.IsNegative() {
		return nil, apperrors.NewValidationError("rate cannot be negative")
	}
	created, err := s.taxRateRepo.SaveTaxRate(ctx, input)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to save tax rate", slog.String("name", input.Name))
		return nil, err
	}
	s.LogInfo(ctx, "Tax rate created",
		slog.Int64("tax_rate_id", created.ID),
		slog.String("rate", utils.FormatWithPrecision(created.Rate, 4)),
		slog.Bool("is_default", created.IsDefault))
	return created, nil
}

func (s *taxRateService) UpdateTaxRate(ctx context.Context, taxRateID int64, patch domain.TaxRatePatch) (*domain.TaxRate, error) {
	if patch.IsEmpty() {
		return nil, apperrors.NewValidationError("no fields to update")
	}
	current, err := s.taxRateRepo.FindTaxRateByID(ctx, taxRateID)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, apperrors.NewValidationError("tax rate name cannot be empty")
		}
		patch.Name = &name
	}
	if patch.Rate != nil && patch.Rate.IsNegative() {
		return nil, apperrors.NewValidationError("rate cannot be negative")
	}
	if current.IsDefault && patch.IsDefault != nil && !*patch.IsDefault {
		return nil, apperrors.NewValidationError("set another tax rate as default instead of unsetting the current default")
	}

	updated, err := s.taxRateRepo.UpdateTaxRate(ctx, taxRateID, patch)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to update tax rate", slog.Int64("tax_rate_id", taxRateID))
		return nil, err
	}
	if !updated {
		return nil, apperrors.NewNotFoundError("tax rate not found")
	}
	return s.taxRateRepo.FindTaxRateByID(ctx, taxRateID)
}

func (s *taxRateService) DeleteTaxRate(ctx context.Context, taxRateID int64) error {
	current, err := s.taxRateRepo.FindTaxRateByID(ctx, taxRateID)
	if err != nil {
		return err
	}
	if current.IsDefault {
		return apperrors.NewValidationError("the default tax rate cannot be deleted")
	}
	deleted, err := s.taxRateRepo.DeleteTaxRate(ctx, taxRateID)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to delete tax rate", slog.Int64("tax_rate_id", taxRateID))
		return err
	}
	if !deleted {
		return apperrors.NewNotFoundError("tax rate not found")
	}
	return nil
}
