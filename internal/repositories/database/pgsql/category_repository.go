package pgsql

import (
	"context"
	"fmt"
	"strconv"

	"github.com/SscSPs/bookkeeping_app/internal/apperrors"
	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCategoryRepository struct {
	BaseRepository
}

func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

const categorySelect = `SELECT id, name, type, is_default, description, created_at, updated_at FROM categories `

func (r *PgxCategoryRepository) getCategories(ctx context.Context, filterQuery string, args ...any) ([]domain.Category, error) {
	rows, err := r.Pool.Query(ctx, categorySelect+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query categories", err)
	}
	categories, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Category])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect category rows", err)
	}
	return categories, nil
}

func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID int64) (*domain.Category, error) {
	categories, err := r.getCategories(ctx, "WHERE id = $1", categoryID)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, apperrors.NewNotFoundError("category not found")
	}
	return &categories[0], nil
}

func (r *PgxCategoryRepository) FindCategoryByNameAndType(ctx context.Context, name string, categoryType domain.TransactionType) (*domain.Category, error) {
	categories, err := r.getCategories(ctx, "WHERE LOWER(name) = LOWER($1) AND type = $2", name, string(categoryType))
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, apperrors.NewNotFoundError("category not found")
	}
	return &categories[0], nil
}

func (r *PgxCategoryRepository) ListCategories(ctx context.Context, categoryType *domain.TransactionType, page domain.PageRequest) ([]domain.Category, int, error) {
	w := &whereBuilder{}
	if categoryType != nil {
		w.add("type = %s", string(*categoryType))
	}

	var total int
	if err := r.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM categories"+w.String(), w.args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count categories", err)
	}

	argNum := w.next()
	filter := w.String() + fmt.Sprintf(" ORDER BY type, name, id LIMIT $%d OFFSET $%d", argNum, argNum+1)
	categories, err := r.getCategories(ctx, filter, append(w.args, page.Limit, page.Offset())...)
	if err != nil {
		return nil, 0, err
	}
	return categories, total, nil
}

func (r *PgxCategoryRepository) CountTransactionsByCategory(ctx context.Context, categoryID int64) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM transactions WHERE category_id = $1`, categoryID).Scan(&count)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to count transactions of category "+strconv.FormatInt(categoryID, 10), err)
	}
	return count, nil
}

func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) (*domain.Category, error) {
	query := `
		INSERT INTO categories (name, type, is_default, description, created_at, updated_at)
		VALUES ($1, $2, FALSE, $3, NOW(), NOW())
		RETURNING id;
	`
	var id int64
	err := r.Pool.QueryRow(ctx, query, category.Name, string(category.Type), category.Description).Scan(&id)
	if err != nil {
		return nil, mapWriteError(err,
			"a "+string(category.Type)+" category named "+category.Name+" already exists",
			"failed to save category")
	}
	return r.FindCategoryByID(ctx, id)
}

func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, categoryID int64, patch domain.CategoryPatch) (bool, error) {
	var s setClause
	if patch.Name != nil {
		s.set("name", *patch.Name)
	}
	if patch.Type != nil {
		s.set("type", string(*patch.Type))
	}
	if patch.Description != nil {
		s.set("description", *patch.Description)
	}
	if s.empty() {
		return false, apperrors.NewValidationError("no fields to update")
	}

	query := fmt.Sprintf("UPDATE categories SET %s WHERE id = %s AND NOT is_default", s.String(), s.arg(categoryID))
	result, err := r.Pool.Exec(ctx, query, s.args...)
	if err != nil {
		return false, mapWriteError(err, "a category with that name and type already exists",
			"failed to update category "+strconv.FormatInt(categoryID, 10))
	}
	return result.RowsAffected() > 0, nil
}

func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, categoryID int64) (bool, error) {
	result, err := r.Pool.Exec(ctx, `DELETE FROM categories WHERE id = $1 AND NOT is_default`, categoryID)
	if err != nil {
		if isReferenced(err) {
			return false, apperrors.NewConflictError("category is used by existing transactions")
		}
		return false, apperrors.NewAppError(500, "failed to delete category "+strconv.FormatInt(categoryID, 10), err)
	}
	return result.RowsAffected() > 0, nil
}
