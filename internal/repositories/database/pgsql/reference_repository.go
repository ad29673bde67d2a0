package pgsql

import (
	"context"

	"github.com/SscSPs/bookkeeping_app/internal/apperrors"
	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxReferenceRepository reads the catalogs seeded by migrations.
type PgxReferenceRepository struct {
	BaseRepository
}

func newPgxReferenceRepository(pool *pgxpool.Pool) portsrepo.ReferenceReader {
	return &PgxReferenceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ReferenceReader = (*PgxReferenceRepository)(nil)

// collectAll runs query and maps every row onto T by column name.
func collectAll[T any](ctx context.Context, pool *pgxpool.Pool, what, query string, args ...any) ([]T, error) {
	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query "+what, err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect "+what+" rows", err)
	}
	return items, nil
}

func collectOne[T any](ctx context.Context, pool *pgxpool.Pool, what, query string, args ...any) (*T, error) {
	items, err := collectAll[T](ctx, pool, what, query, args...)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, apperrors.NewNotFoundError(what + " not found")
	}
	return &items[0], nil
}

func (r *PgxReferenceRepository) ListRegions(ctx context.Context) ([]domain.Region, error) {
	return collectAll[domain.Region](ctx, r.Pool, "regions", `SELECT id, name, code FROM regions ORDER BY id`)
}

func (r *PgxReferenceRepository) ListCommunes(ctx context.Context, regionID *int64) ([]domain.Commune, error) {
	if regionID != nil {
		return collectAll[domain.Commune](ctx, r.Pool, "communes",
			`SELECT id, name, region_id FROM communes WHERE region_id = $1 ORDER BY name`, *regionID)
	}
	return collectAll[domain.Commune](ctx, r.Pool, "communes", `SELECT id, name, region_id FROM communes ORDER BY name`)
}

func (r *PgxReferenceRepository) ListPaymentTypes(ctx context.Context) ([]domain.PaymentType, error) {
	return collectAll[domain.PaymentType](ctx, r.Pool, "payment types", `SELECT id, name, description FROM payment_types ORDER BY name`)
}

func (r *PgxReferenceRepository) FindPaymentTypeByID(ctx context.Context, paymentTypeID int64) (*domain.PaymentType, error) {
	return collectOne[domain.PaymentType](ctx, r.Pool, "payment type",
		`SELECT id, name, description FROM payment_types WHERE id = $1`, paymentTypeID)
}

func (r *PgxReferenceRepository) ListStatuses(ctx context.Context) ([]domain.Status, error) {
	return collectAll[domain.Status](ctx, r.Pool, "statuses", `SELECT id, name, description FROM statuses ORDER BY id`)
}

func (r *PgxReferenceRepository) FindStatusByID(ctx context.Context, statusID int64) (*domain.Status, error) {
	return collectOne[domain.Status](ctx, r.Pool, "status", `SELECT id, name, description FROM statuses WHERE id = $1`, statusID)
}
