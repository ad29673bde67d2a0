package pgsql

import (
	"context"
	"fmt"
	"strconv"

	"github.com/SscSPs/bookkeeping_app/internal/apperrors"
	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCompanyRepository struct {
	BaseRepository
}

func newPgxCompanyRepository(pool *pgxpool.Pool) portsrepo.CompanyRepositoryWithTx {
	return &PgxCompanyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CompanyRepositoryWithTx = (*PgxCompanyRepository)(nil)

const companySelect = `
SELECT co.id, co.name, co.tax_id, co.address, co.city, co.country, co.phone, co.email, co.created_at, co.updated_at
FROM companies co
`

func (r *PgxCompanyRepository) getCompanies(ctx context.Context, filterQuery string, args ...any) ([]domain.Company, error) {
	rows, err := r.Pool.Query(ctx, companySelect+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query companies", err)
	}
	defer rows.Close()

	companies := []domain.Company{}
	for rows.Next() {
		var c domain.Company
		err := rows.Scan(&c.ID, &c.Name, &c.TaxID, &c.Address, &c.City, &c.Country, &c.Phone, &c.Email, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan company row", err)
		}
		companies = append(companies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating companies", err)
	}
	return companies, nil
}

func (r *PgxCompanyRepository) findOne(ctx context.Context, filterQuery string, arg any) (*domain.Company, error) {
	companies, err := r.getCompanies(ctx, filterQuery, arg)
	if err != nil {
		return nil, err
	}
	if len(companies) == 0 {
		return nil, apperrors.NewNotFoundError("company not found")
	}
	return &companies[0], nil
}

func (r *PgxCompanyRepository) FindCompanyByID(ctx context.Context, companyID int64) (*domain.Company, error) {
	return r.findOne(ctx, "WHERE co.id = $1", companyID)
}

func (r *PgxCompanyRepository) FindCompanyByTaxID(ctx context.Context, taxID string) (*domain.Company, error) {
	return r.findOne(ctx, "WHERE co.tax_id = $1", taxID)
}

func (r *PgxCompanyRepository) ListCompaniesByUserID(ctx context.Context, userID string) ([]domain.Company, error) {
	return r.getCompanies(ctx, "JOIN company_users cu ON cu.company_id = co.id WHERE cu.user_id = $1 ORDER BY co.name, co.id", userID)
}

func (r *PgxCompanyRepository) CreateCompanyWithAdmin(ctx context.Context, company domain.Company, adminUserID string) (*domain.Company, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) // no-op after commit

	var id int64
	err = tx.QueryRow(ctx, `
		INSERT INTO companies (name, tax_id, address, city, country, phone, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id;
	`, company.Name, company.TaxID, company.Address, company.City, company.Country, company.Phone, company.Email).Scan(&id)
	if err != nil {
		return nil, mapWriteError(err, "a company with tax id "+company.TaxID+" already exists", "failed to save company")
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO company_users (company_id, user_id, is_admin, created_at)
		VALUES ($1, $2, TRUE, NOW());
	`, id, adminUserID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to assign company admin", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return r.FindCompanyByID(ctx, id)
}

func (r *PgxCompanyRepository) UpdateCompany(ctx context.Context, companyID int64, patch domain.CompanyPatch) (bool, error) {
	var s setClause
	columns := []struct {
		name  string
		value *string
	}{
		{"name", patch.Name},
		{"tax_id", patch.TaxID},
		{"address", patch.Address},
		{"city", patch.City},
		{"country", patch.Country},
		{"phone", patch.Phone},
		{"email", patch.Email},
	}
	for _, col := range columns {
		if col.value != nil {
			s.set(col.name, *col.value)
		}
	}
	if s.empty() {
		return false, apperrors.NewValidationError("no fields to update")
	}

	query := fmt.Sprintf("UPDATE companies SET %s WHERE id = %s", s.String(), s.arg(companyID))
	result, err := r.Pool.Exec(ctx, query, s.args...)
	if err != nil {
		return false, mapWriteError(err, "a company with that tax id already exists",
			"failed to update company "+strconv.FormatInt(companyID, 10))
	}
	return result.RowsAffected() > 0, nil
}

func (r *PgxCompanyRepository) AddCompanyUser(ctx context.Context, membership domain.CompanyUser) error {
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO company_users (company_id, user_id, is_admin, created_at)
		VALUES ($1, $2, $3, NOW());
	`, membership.CompanyID, membership.UserID, membership.IsAdmin)
	if err != nil {
		return mapWriteError(err, "user "+membership.UserID+" is already assigned to this company",
			"failed to add user "+membership.UserID+" to company "+strconv.FormatInt(membership.CompanyID, 10))
	}
	return nil
}

func (r *PgxCompanyRepository) FindCompanyUser(ctx context.Context, companyID int64, userID string) (*domain.CompanyUser, error) {
	var cu domain.CompanyUser
	err := r.Pool.QueryRow(ctx, `
		SELECT company_id, user_id, is_admin, created_at
		FROM company_users
		WHERE company_id = $1 AND user_id = $2;
	`, companyID, userID).Scan(&cu.CompanyID, &cu.UserID, &cu.IsAdmin, &cu.CreatedAt)
	if err != nil {
		if errNoRows(err) {
			return nil, apperrors.NewNotFoundError("user is not assigned to this company")
		}
		return nil, apperrors.NewAppError(500, "failed to find membership of "+userID, err)
	}
	return &cu, nil
}

func (r *PgxCompanyRepository) ListCompanyUsers(ctx context.Context, companyID int64) ([]domain.CompanyUser, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT company_id, user_id, is_admin, created_at
		FROM company_users
		WHERE company_id = $1
		ORDER BY created_at, user_id;
	`, companyID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list company users", err)
	}
	defer rows.Close()

	users := []domain.CompanyUser{}
	for rows.Next() {
		var cu domain.CompanyUser
		if err := rows.Scan(&cu.CompanyID, &cu.UserID, &cu.IsAdmin, &cu.CreatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan company user row", err)
		}
		users = append(users, cu)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating company users", err)
	}
	return users, nil
}

func (r *PgxCompanyRepository) RemoveCompanyUser(ctx context.Context, companyID int64, userID string) (bool, error) {
	result, err := r.Pool.Exec(ctx, `DELETE FROM company_users WHERE company_id = $1 AND user_id = $2`, companyID, userID)
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to remove user "+userID+" from company", err)
	}
	return result.RowsAffected() > 0, nil
}
