package services

import (
	"context"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
)

// CategorySvcFacade manages the shared category catalog. Default categories are read-only.
type CategorySvcFacade interface {
	ListCategories(ctx context.Context, categoryType *domain.TransactionType, page domain.PageRequest) ([]domain.Category, domain.Pagination, error)
	GetCategory(ctx context.Context, categoryID int64) (*domain.Category, error)
	CreateCategory(ctx context.Context, input domain.Category) (*domain.Category, error)
	UpdateCategory(ctx context.Context, categoryID int64, patch domain.CategoryPatch) (*domain.Category, error)
	DeleteCategory(ctx context.Context, categoryID int64) error
}

// TaxRateSvcFacade manages tax rates. Exactly one may be the default and it cannot be deleted.
type TaxRateSvcFacade interface {
	ListTaxRates(ctx context.Context) ([]domain.TaxRate, error)
	GetTaxRate(ctx context.Context, taxRateID int64) (*domain.TaxRate, error)
	GetDefaultTaxRate(ctx context.Context) (*domain.TaxRate, error)
	CreateTaxRate(ctx context.Context, input domain.TaxRate) (*domain.TaxRate, error)
	UpdateTaxRate(ctx context.Context, taxRateID int64, patch domain.TaxRatePatch) (*domain.TaxRate, error)
	DeleteTaxRate(ctx context.Context, taxRateID int64) error
}

type DocumentTypeSvcFacade interface {
	ListDocumentTypes(ctx context.Context) ([]domain.DocumentType, error)
	GetDocumentType(ctx context.Context, documentTypeID int64) (*domain.DocumentType, error)
	CreateDocumentType(ctx context.Context, input domain.DocumentType) (*domain.DocumentType, error)
	UpdateDocumentType(ctx context.Context, documentTypeID int64, patch domain.DocumentTypePatch) (*domain.DocumentType, error)
	DeleteDocumentType(ctx context.Context, documentTypeID int64) error
}

// ReferenceSvcFacade serves read-only lookups.
type ReferenceSvcFacade interface {
	ListRegions(ctx context.Context) ([]domain.Region, error)
	ListCommunes(ctx context.Context, regionID *int64) ([]domain.Commune, error)
	ListPaymentTypes(ctx context.Context) ([]domain.PaymentType, error)
	GetPaymentType(ctx context.Context, paymentTypeID int64) (*domain.PaymentType, error)
	ListStatuses(ctx context.Context) ([]domain.Status, error)
	GetStatus(ctx context.Context, statusID int64) (*domain.Status, error)
}
