package repositories

import (
	"context"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
)

type DocumentTypeReader interface {
	// ListDocumentTypes returns all document types ordered by code.
	ListDocumentTypes(ctx context.Context) ([]domain.DocumentType, error)
	FindDocumentTypeByID(ctx context.Context, documentTypeID int64) (*domain.DocumentType, error)
	FindDocumentTypeByCode(ctx context.Context, code string) (*domain.DocumentType, error)
}

type DocumentTypeWriter interface {
	SaveDocumentType(ctx context.Context, documentType domain.DocumentType) (*domain.DocumentType, error)
	UpdateDocumentType(ctx context.Context, documentTypeID int64, patch domain.DocumentTypePatch) (bool, error)
	DeleteDocumentType(ctx context.Context, documentTypeID int64) (bool, error)
}

type DocumentTypeRepositoryFacade interface {
	DocumentTypeReader
	DocumentTypeWriter
}
