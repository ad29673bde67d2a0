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
)

type documentTypeService struct {
	BaseService
	documentTypeRepo portsrepo.DocumentTypeRepositoryFacade
}

func NewDocumentTypeService(documentTypeRepo portsrepo.DocumentTypeRepositoryFacade) portssvc.DocumentTypeSvcFacade {
	return &documentTypeService{documentTypeRepo: documentTypeRepo}
}

var _ portssvc.DocumentTypeSvcFacade = (*documentTypeService)(nil)

func (s *documentTypeService) ListDocumentTypes(ctx context.Context) ([]domain.DocumentType, error) {
	types, err := s.documentTypeRepo.ListDocumentTypes(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list document types")
		return nil, err
	}
	if types == nil {
		types = []domain.DocumentType{}
	}
	return types, nil
}

func (s *documentTypeService) GetDocumentType(ctx context.Context, documentTypeID int64) (*domain.DocumentType, error) {
	return s.documentTypeRepo.FindDocumentTypeByID(ctx, documentTypeID)
}

func (s *documentTypeService) CreateDocumentType(ctx context.Context, input domain.DocumentType) (*domain.DocumentType, error) {
	input.Code = strings.TrimSpace(input.Code)
	input.Name = strings.TrimSpace(input.Name)
	if input.Code == "" || input.Name == "" {
		return nil, apperrors.NewValidationError("code and name are required")
	}
	if err := s.ensureCodeFree(ctx, input.Code, 0); err != nil {
		return nil, err
	}
	created, err := s.documentTypeRepo.SaveDocumentType(ctx, input)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to save document type", slog.String("code", input.Code))
		return nil, err
	}
	return created, nil
}

func (s *documentTypeService) UpdateDocumentType(ctx context.Context, documentTypeID int64, patch domain.DocumentTypePatch) (*domain.DocumentType, error) {
	if patch.IsEmpty() {
		return nil, apperrors.NewValidationError("no fields to update")
	}
	current, err := s.documentTypeRepo.FindDocumentTypeByID(ctx, documentTypeID)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, apperrors.NewValidationError("name cannot be empty")
		}
		patch.Name = &name
	}
	if patch.Code != nil {
		code := strings.TrimSpace(*patch.Code)
		if code == "" {
			return nil, apperrors.NewValidationError("code cannot be empty")
		}
		if code != current.Code {
			if err := s.ensureCodeFree(ctx, code, documentTypeID); err != nil {
				return nil, err
			}
		}
		patch.Code = &code
	}

	updated, err := s.documentTypeRepo.UpdateDocumentType(ctx, documentTypeID, patch)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to update document type", slog.Int64("document_type_id", documentTypeID))
		return nil, err
	}
	if !updated {
		return nil, apperrors.NewNotFoundError("document type not found")
	}
	return s.documentTypeRepo.FindDocumentTypeByID(ctx, documentTypeID)
}

func (s *documentTypeService) DeleteDocumentType(ctx context.Context, documentTypeID int64) error {
	deleted, err := s.documentTypeRepo.DeleteDocumentType(ctx, documentTypeID)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to delete document type", slog.Int64("document_type_id", documentTypeID))
		return err
	}
	if !deleted {
		return apperrors.NewNotFoundError("document type not found")
	}
	return nil
}

func (s *documentTypeService) ensureCodeFree(ctx context.Context, code string, selfID int64) error {
	existing, err := s.documentTypeRepo.FindDocumentTypeByCode(ctx, code)
	switch {
	case err == nil && existing.ID != selfID:
		return apperrors.NewConflictError(fmt.Sprintf("a document type with code %s already exists", code))
	case err != nil && !errors.Is(err, apperrors.ErrNotFound):
		return err
	}
	return nil
}
