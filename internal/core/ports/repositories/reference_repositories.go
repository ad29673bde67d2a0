package repositories

import (
	"context"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
)

// ReferenceReader serves the read-only catalogs seeded by migrations.
type ReferenceReader interface {
	ListRegions(ctx context.Context) ([]domain.Region, error)

	// ListCommunes returns every commune, or only those of a region when regionID is set.
	ListCommunes(ctx context.Context, regionID *int64) ([]domain.Commune, error)

	ListPaymentTypes(ctx context.Context) ([]domain.PaymentType, error)
	FindPaymentTypeByID(ctx context.Context, paymentTypeID int64) (*domain.PaymentType, error)

	ListStatuses(ctx context.Context) ([]domain.Status, error)
	FindStatusByID(ctx context.Context, statusID int64) (*domain.Status, error)
}
