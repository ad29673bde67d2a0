package repositories

import (
	"context"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
)

type TaxRateReader interface {
	ListTaxRates(ctx context.Context) ([]domain.TaxRate, error)
	FindTaxRateByID(ctx context.Context, taxRateID int64) (*domain.TaxRate, error)
	FindDefaultTaxRate(ctx context.Context) (*domain.TaxRate, error)
}

// TaxRateWriter keeps at most one default: a write that sets is_default clears it on every other row
// in the same database transaction.
type TaxRateWriter interface {
	SaveTaxRate(ctx context.Context, taxRate domain.TaxRate) (*domain.TaxRate, error)
	UpdateTaxRate(ctx context.Context, taxRateID int64, patch domain.TaxRatePatch) (bool, error)
	DeleteTaxRate(ctx context.Context, taxRateID int64) (bool, error)
}

type TaxRateRepositoryFacade interface {
	TaxRateReader
	TaxRateWriter
}
