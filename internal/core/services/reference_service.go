package services

import (
	"context"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookkeeping_app/internal/core/ports/services"
)

// referenceService is a thin read-only pass-through. Caching happens in the reader it is given.
type referenceService struct {
	BaseService
	referenceRepo portsrepo.ReferenceReader
}

func NewReferenceService(referenceRepo portsrepo.ReferenceReader) portssvc.ReferenceSvcFacade {
	return &referenceService{referenceRepo: referenceRepo}
}

var _ portssvc.ReferenceSvcFacade = (*referenceService)(nil)

func (s *referenceService) ListRegions(ctx context.Context) ([]domain.Region, error) {
	regions, err := s.referenceRepo.ListRegions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list regions")
	}
	return regions, err
}

func (s *referenceService) ListCommunes(ctx context.Context, regionID *int64) ([]domain.Commune, error) {
	communes, err := s.referenceRepo.ListCommunes(ctx, regionID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list communes")
	}
	return communes, err
}

func (s *referenceService) ListPaymentTypes(ctx context.Context) ([]domain.PaymentType, error) {
	types, err := s.referenceRepo.ListPaymentTypes(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payment types")
	}
	return types, err
}

func (s *referenceService) GetPaymentType(ctx context.Context, paymentTypeID int64) (*domain.PaymentType, error) {
	return s.referenceRepo.FindPaymentTypeByID(ctx, paymentTypeID)
}

func (s *referenceService) ListStatuses(ctx context.Context) ([]domain.Status, error) {
	statuses, err := s.referenceRepo.ListStatuses(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list statuses")
	}
	return statuses, err
}

func (s *referenceService) GetStatus(ctx context.Context, statusID int64) (*domain.Status, error) {
	return s.referenceRepo.FindStatusByID(ctx, statusID)
}
