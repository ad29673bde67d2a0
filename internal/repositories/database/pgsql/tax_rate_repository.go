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

type PgxTaxRateRepository struct {
	BaseRepository
}

func newPgxTaxRateRepository(pool *pgxpool.Pool) portsrepo.TaxRateRepositoryFacade {
	return &PgxTaxRateRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TaxRateRepositoryFacade = (*PgxTaxRateRepository)(nil)

const taxRateSelect = `SELECT id, name, rate, description, is_default, created_at, updated_at FROM tax_rates `

func (r *PgxTaxRateRepository) getTaxRates(ctx context.Context, filterQuery string, args ...any) ([]domain.TaxRate, error) {
	rows, err := r.Pool.Query(ctx, taxRateSelect+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query tax rates", err)
	}
	defer rows.Close()

	rates := []domain.TaxRate{}
	for rows.Next() {
		var t domain.TaxRate
		if err := rows.Scan(&t.ID, &t.Name, &t.Rate, &t.Description, &t.IsDefault, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan tax rate row", err)
		}
		rates = append(rates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating tax rates", err)
	}
	return rates, nil
}

func (r *PgxTaxRateRepository) first(rates []domain.TaxRate, err error) (*domain.TaxRate, error) {
	if err != nil {
		return nil, err
	}
	if len(rates) == 0 {
		return nil, apperrors.NewNotFoundError("tax rate not found")
	}
	return &rates[0], nil
}

func (r *PgxTaxRateRepository) ListTaxRates(ctx context.Context) ([]domain.TaxRate, error) {
	return r.getTaxRates(ctx, "ORDER BY name, id")
}

func (r *PgxTaxRateRepository) FindTaxRateByID(ctx context.Context, taxRateID int64) (*domain.TaxRate, error) {
	return r.first(r.getTaxRates(ctx, "WHERE id = $1", taxRateID))
}

func (r *PgxTaxRateRepository) FindDefaultTaxRate(ctx context.Context) (*domain.TaxRate, error) {
	return r.first(r.getTaxRates(ctx, "WHERE is_default LIMIT 1"))
}

func clearDefaultTaxRate(ctx context.Context, tx pgx.Tx, exceptID int64) error {
	if _, err := tx.Exec(ctx, `UPDATE tax_rates SET is_default = FALSE, updated_at = NOW() WHERE is_default AND id <> $1`, exceptID); err != nil {
		return apperrors.NewAppError(500, "failed to clear default tax rate", err)
	}
	return nil
}

func (r *PgxTaxRateRepository) SaveTaxRate(ctx context.Context, taxRate domain.TaxRate) (*domain.TaxRate, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) // no-op after commit

	if taxRate.IsDefault {
		if err := clearDefaultTaxRate(ctx, tx, 0); err != nil {
			return nil, err
		}
	}

	var id int64
	err = tx.QueryRow(ctx, `
		INSERT INTO tax_rates (name, rate, description, is_default, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id;
	`, taxRate.Name, taxRate.Rate, taxRate.Description, taxRate.IsDefault).Scan(&id)
	if err != nil {
		return nil, mapWriteError(err, "another tax rate is already the default", "failed to save tax rate")
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return r.FindTaxRateByID(ctx, id)
}

func (r *PgxTaxRateRepository) UpdateTaxRate(ctx context.Context, taxRateID int64, patch domain.TaxRatePatch) (bool, error) {
	var s setClause
	if patch.Name != nil {
		s.set("name", *patch.Name)
	}
	if patch.Rate != nil {
		s.set("rate", *patch.Rate)
	}
	if patch.Description != nil {
		s.set("description", *patch.Description)
	}
	if patch.IsDefault != nil {
		s.set("is_default", *patch.IsDefault)
	}
	if s.empty() {
		return false, apperrors.NewValidationError("no fields to update")
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer r.Rollback(ctx, tx) // no-op after commit

	if patch.IsDefault != nil && *patch.IsDefault {
		if err := clearDefaultTaxRate(ctx, tx, taxRateID); err != nil {
			return false, err
		}
	}

	query := fmt.Sprintf("UPDATE tax_rates SET %s WHERE id = %s", s.String(), s.arg(taxRateID))
	result, err := tx.Exec(ctx, query, s.args...)
	if err != nil {
		return false, mapWriteError(err, "another tax rate is already the default",
			"failed to update tax rate "+strconv.FormatInt(taxRateID, 10))
	}
	if result.RowsAffected() == 0 {
		return false, nil
	}

	if err := r.Commit(ctx, tx); err != nil {
		return false, err
	}
	return true, nil
}

func (r *PgxTaxRateRepository) DeleteTaxRate(ctx context.Context, taxRateID int64) (bool, error) {
	result, err := r.Pool.Exec(ctx, `DELETE FROM tax_rates WHERE id = $1 AND NOT is_default`, taxRateID)
	if err != nil {
		if isReferenced(err) {
			return false, apperrors.NewConflictError("tax rate is used by existing transactions")
		}
		return false, apperrors.NewAppError(500, "failed to delete tax rate "+strconv.FormatInt(taxRateID, 10), err)
	}
	return result.RowsAffected() > 0, nil
}
