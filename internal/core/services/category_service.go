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
	"github.com/SscSPs/bookkeeping_app/internal/utils/pagination"
)

type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
}

func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: categoryRepo}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) ListCategories(ctx context.Context, categoryType *domain.TransactionType, page domain.PageRequest) ([]domain.Category, domain.Pagination, error) {
	if categoryType != nil && !categoryType.IsValid() {
		return nil, domain.Pagination{}, apperrors.NewValidationError("type must be income or expense")
	}
	page = pagination.Normalize(page.Page, page.Limit)
	categories, total, err := s.categoryRepo.ListCategories(ctx, categoryType, page)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories")
		return nil, domain.Pagination{}, err
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	return categories, pagination.NewMeta(page, total), nil
}

func (s *categoryService) GetCategory(ctx context.Context, categoryID int64) (*domain.Category, error) {
	return s.categoryRepo.FindCategoryByID(ctx, categoryID)
}

func (s *categoryService) CreateCategory(ctx context.Context, input domain.Category) (*domain.Category, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, apperrors.NewValidationError("category name is required")
	}
	if !input.Type.IsValid() {
		return nil, apperrors.NewValidationError("type must be income or expense")
	}
	if err := s.ensureNameFree(ctx, input.Name, input.Type, 0); err != nil {
		return nil, err
	}

	input.IsDefault = false
	created, err := s.categoryRepo.SaveCategory(ctx, input)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to save category", slog.String("name", input.Name))
		return nil, err
	}
	return created, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, categoryID int64, patch domain.CategoryPatch) (*domain.Category, error) {
	current, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if current.IsDefault {
		return nil, apperrors.NewForbiddenError("default categories cannot be modified")
	}
	if patch.IsEmpty() {
		return nil, apperrors.NewValidationError("no fields to update")
	}
	if patch.Type != nil && !patch.Type.IsValid() {
		return nil, apperrors.NewValidationError("type must be income or expense")
	}
	name, categoryType := current.Name, current.Type
	if patch.Name != nil {
		name = strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, apperrors.NewValidationError("category name cannot be empty")
		}
		patch.Name = &name
	}
	if patch.Type != nil {
		categoryType = *patch.Type
	}
	if categoryType != current.Type {
		inUse, err := s.categoryRepo.CountTransactionsByCategory(ctx, categoryID)
		if err != nil {
			s.LogError(ctx, err, "Failed to count category transactions", slog.Int64("category_id", categoryID))
			return nil, err
		}
		if inUse > 0 {
			return nil, apperrors.NewConflictError(fmt.Sprintf(
				"category type cannot change while %d transactions use it", inUse))
		}
	}
	if !strings.EqualFold(name, current.Name) || categoryType != current.Type {
		if err := s.ensureNameFree(ctx, name, categoryType, categoryID); err != nil {
			return nil, err
		}
	}

	updated, err := s.categoryRepo.UpdateCategory(ctx, categoryID, patch)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to update category", slog.Int64("category_id", categoryID))
		return nil, err
	}
	if !updated {
		return nil, apperrors.NewNotFoundError("category not found")
	}
	return s.categoryRepo.FindCategoryByID(ctx, categoryID)
}

func (s *categoryService) DeleteCategory(ctx context.Context, categoryID int64) error {
	current, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return err
	}
	if current.IsDefault {
		return apperrors.NewForbiddenError("default categories cannot be deleted")
	}
	deleted, err := s.categoryRepo.DeleteCategory(ctx, categoryID)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to delete category", slog.Int64("category_id", categoryID))
		return err
	}
	if !deleted {
		return apperrors.NewNotFoundError("category not found")
	}
	return nil
}

func (s *categoryService) ensureNameFree(ctx context.Context, name string, categoryType domain.TransactionType, selfID int64) error {
	existing, err := s.categoryRepo.FindCategoryByNameAndType(ctx, name, categoryType)
	switch {
	case err == nil && existing.ID != selfID:
		return apperrors.NewConflictError(fmt.Sprintf("a %s category named %q already exists", categoryType, name))
	case err != nil && !errors.Is(err, apperrors.ErrNotFound):
		s.LogError(ctx, err, "Failed to check category name", slog.String("name", name))
		return err
	}
	return nil
}
