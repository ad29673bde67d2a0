package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/SscSPs/bookkeeping_app/internal/apperrors"
	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxPartyRepository stores clients or vendors. Both tables have the same columns.
type PgxPartyRepository struct {
	BaseRepository
	kind  domain.PartyKind
	table string
}

func newPgxPartyRepository(pool *pgxpool.Pool, kind domain.PartyKind) portsrepo.PartyRepositoryFacade {
	table := "vendors"
	if kind == domain.PartyClient {
		table = "clients"
	}
	return &PgxPartyRepository{
		BaseRepository: BaseRepository{Pool: pool},
		kind:           kind,
		table:          table,
	}
}

var _ portsrepo.PartyRepositoryFacade = (*PgxPartyRepository)(nil)

const partyColumns = `id, name, tax_id, contact_name, email, phone, address, city, country, industry, notes, user_id, created_at, updated_at`

func (r *PgxPartyRepository) Kind() domain.PartyKind {
	return r.kind
}

func (r *PgxPartyRepository) getParties(ctx context.Context, filterQuery string, args ...any) ([]domain.Party, error) {
	query := "SELECT " + partyColumns + " FROM " + r.table + " " + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query "+r.table, err)
	}
	defer rows.Close()

	parties := []domain.Party{}
	for rows.Next() {
		p := domain.Party{Kind: r.kind}
		err := rows.Scan(
			&p.ID, &p.Name, &p.TaxID, &p.ContactName, &p.Email, &p.Phone, &p.Address,
			&p.City, &p.Country, &p.Industry, &p.Notes, &p.UserID, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan "+string(r.kind)+" row", err)
		}
		parties = append(parties, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating "+r.table, err)
	}
	return parties, nil
}

func (r *PgxPartyRepository) findOne(ctx context.Context, filterQuery string, arg any) (*domain.Party, error) {
	parties, err := r.getParties(ctx, filterQuery, arg)
	if err != nil {
		return nil, err
	}
	if len(parties) == 0 {
		return nil, apperrors.NewNotFoundError(string(r.kind) + " not found")
	}
	return &parties[0], nil
}

func (r *PgxPartyRepository) SaveParty(ctx context.Context, party domain.Party) (*domain.Party, error) {
	query := `INSERT INTO ` + r.table + ` (
			name, tax_id, contact_name, email, phone, address, city, country, industry, notes, user_id, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING id;`
	var id int64
	err := r.Pool.QueryRow(ctx, query,
		party.Name,
		party.TaxID,
		party.ContactName,
		party.Email,
		party.Phone,
		party.Address,
		party.City,
		party.Country,
		party.Industry,
		party.Notes,
		party.UserID,
	).Scan(&id)
	if err != nil {
		return nil, mapWriteError(err,
			"a "+string(r.kind)+" with tax id "+party.TaxID+" already exists",
			"failed to save "+string(r.kind))
	}
	return r.FindPartyByID(ctx, id)
}

func (r *PgxPartyRepository) FindPartyByID(ctx context.Context, partyID int64) (*domain.Party, error) {
	return r.findOne(ctx, "WHERE id = $1", partyID)
}

func (r *PgxPartyRepository) FindPartyByTaxID(ctx context.Context, taxID string) (*domain.Party, error) {
	return r.findOne(ctx, "WHERE tax_id = $1", taxID)
}

func (r *PgxPartyRepository) ListParties(ctx context.Context, userID string, filter domain.PartyFilter) ([]domain.Party, error) {
	w := &whereBuilder{}
	w.add("user_id = %s", userID)
	substring := func(column string, value *string) {
		if value != nil && *value != "" {
			w.add(column+" ILIKE %s", "%"+*value+"%")
		}
	}
	substring("name", filter.Name)
	substring("industry", filter.Industry)
	substring("country", filter.Country)
	substring("tax_id", filter.TaxID)

	return r.getParties(ctx, w.String()+" ORDER BY name, id", w.args...)
}

func (r *PgxPartyRepository) UpdateParty(ctx context.Context, partyID int64, userID string, patch domain.PartyPatch) (bool, error) {
	var s setClause
	columns := []struct {
		name  string
		value *string
	}{
		{"name", patch.Name},
		{"tax_id", patch.TaxID},
		{"contact_name", patch.ContactName},
		{"email", patch.Email},
		{"phone", patch.Phone},
		{"address", patch.Address},
		{"city", patch.City},
		{"country", patch.Country},
		{"industry", patch.Industry},
		{"notes", patch.Notes},
	}
	for _, col := range columns {
		if col.value != nil {
			s.set(col.name, *col.value)
		}
	}
	if s.empty() {
		return false, apperrors.NewValidationError("no fields to update")
	}

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = %s AND user_id = %s", r.table, s.String(), s.arg(partyID), s.arg(userID))
	result, err := r.Pool.Exec(ctx, query, s.args...)
	if err != nil {
		return false, mapWriteError(err,
			"a "+string(r.kind)+" with that tax id already exists",
			"failed to update "+string(r.kind)+" "+strconv.FormatInt(partyID, 10))
	}
	return result.RowsAffected() > 0, nil
}

func (r *PgxPartyRepository) DeleteParty(ctx context.Context, partyID int64, userID string) (bool, error) {
	result, err := r.Pool.Exec(ctx, "DELETE FROM "+r.table+" WHERE id = $1 AND user_id = $2", partyID, userID)
	if err != nil {
		if isReferenced(err) {
			return false, apperrors.NewConflictError(string(r.kind) + " is referenced by existing transactions")
		}
		return false, apperrors.NewAppError(500, "failed to delete "+string(r.kind)+" "+strconv.FormatInt(partyID, 10), err)
	}
	return result.RowsAffected() > 0, nil
}

// errNoRows is a guard for QueryRow helpers that must tell "absent" apart from failure.
func errNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
