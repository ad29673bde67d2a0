package repositories

import (
	"context"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
)

type CategoryReader interface {
	FindCategoryByID(ctx context.Context, categoryID int64) (*domain.Category, error)
	FindCategoryByNameAndType(ctx context.Context, name string, categoryType domain.TransactionType) (*domain.Category, error)

	// ListCategories returns a page of categories, optionally of one type, and the total count.
	ListCategories(ctx context.Context, categoryType *domain.TransactionType, page domain.PageRequest) ([]domain.Category, int, error)

	// CountTransactionsByCategory counts the transactions of every user that reference the category.
	CountTransactionsByCategory(ctx context.Context, categoryID int64) (int, error)
}

// CategoryWriter never touches default categories: updates and deletes of a default row match nothing.
type CategoryWriter interface {
	SaveCategory(ctx context.Context, category domain.Category) (*domain.Category, error)
	UpdateCategory(ctx context.Context, categoryID int64, patch domain.CategoryPatch) (bool, error)
	DeleteCategory(ctx context.Context, categoryID int64) (bool, error)
}

type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
