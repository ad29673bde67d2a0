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
	"github.com/shopspring/decimal"
)

type PgxPaymentRepository struct {
	BaseRepository
}

func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

const paymentSelect = `
SELECT p.id, p.transaction_id, p.payment_type_id, pt.name, p.amount, p.payment_date,
	p.reference_number, p.notes, p.created_at, p.updated_at
FROM payments p
LEFT JOIN payment_types pt ON p.payment_type_id = pt.id
`

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	var p domain.Payment
	err := row.Scan(
		&p.ID, &p.TransactionID, &p.PaymentTypeID, &p.PaymentTypeName, &p.Amount, &p.PaymentDate,
		&p.ReferenceNumber, &p.Notes, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID int64) (*domain.Payment, error) {
	p, err := scanPayment(r.Pool.QueryRow(ctx, paymentSelect+"WHERE p.id = $1", paymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("payment not found")
		}
		return nil, apperrors.NewAppError(500, "failed to query payment "+strconv.FormatInt(paymentID, 10), err)
	}
	return p, nil
}

func (r *PgxPaymentRepository) ListPaymentsByTransaction(ctx context.Context, transactionID string) ([]domain.Payment, error) {
	rows, err := r.Pool.Query(ctx, paymentSelect+"WHERE p.transaction_id = $1 ORDER BY p.payment_date DESC, p.id DESC", transactionID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list payments", err)
	}
	defer rows.Close()

	payments := []domain.Payment{}
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan payment row", err)
		}
		payments = append(payments, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating payment rows", err)
	}
	return payments, nil
}

func (r *PgxPaymentRepository) GetTotalPaid(ctx context.Context, transactionID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.Pool.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0) FROM payments WHERE transaction_id = $1`, transactionID).Scan(&total)
	if err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to sum payments", err)
	}
	return total, nil
}

// lockTransactionTotal takes the row lock that serializes every payment write on a transaction.
func lockTransactionTotal(ctx context.Context, tx pgx.Tx, transactionID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := tx.QueryRow(ctx, `SELECT amount_total FROM transactions WHERE id = $1 FOR UPDATE`, transactionID).Scan(&total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, apperrors.NewNotFoundError("transaction not found")
		}
		return decimal.Zero, apperrors.NewAppError(500, "failed to lock transaction "+transactionID, err)
	}
	return total, nil
}

// sumPaymentsExcluding sums the transaction's payments, leaving out excludeID (0 excludes nothing).
func sumPaymentsExcluding(ctx context.Context, tx pgx.Tx, transactionID string, excludeID int64) (decimal.Decimal, error) {
	var paid decimal.Decimal
	err := tx.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM payments WHERE transaction_id = $1 AND id <> $2`,
		transactionID, excludeID,
	).Scan(&paid)
	if err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to sum payments", err)
	}
	return paid, nil
}

func (r *PgxPaymentRepository) CreatePaymentWithinLimit(ctx context.Context, payment domain.Payment, check portsrepo.PaymentLimitCheck) (*domain.Payment, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) // no-op after commit

	total, err := lockTransactionTotal(ctx, tx, payment.TransactionID)
	if err != nil {
		return nil, err
	}
	paid, err := sumPaymentsExcluding(ctx, tx, payment.TransactionID, 0)
	if err != nil {
		return nil, err
	}
	if err := check(total, paid); err != nil {
		return nil, err
	}

	var id int64
	err = tx.QueryRow(ctx, `
		INSERT INTO payments (transaction_id, payment_type_id, amount, payment_date, reference_number, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id;
	`,
		payment.TransactionID,
		payment.PaymentTypeID,
		payment.Amount,
		payment.PaymentDate,
		payment.ReferenceNumber,
		payment.Notes,
	).Scan(&id)
	if err != nil {
		return nil, mapWriteError(err, "payment already exists", "failed to save payment")
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return r.FindPaymentByID(ctx, id)
}

func (r *PgxPaymentRepository) UpdatePaymentWithinLimit(ctx context.Context, paymentID int64, patch domain.PaymentPatch, check portsrepo.PaymentLimitCheck) (*domain.Payment, error) {
	var s setClause
	if patch.PaymentTypeID != nil {
		s.set("payment_type_id", *patch.PaymentTypeID)
	}
	if patch.Amount != nil {
		s.set("amount", *patch.Amount)
	}
	if patch.PaymentDate != nil {
		s.set("payment_date", *patch.PaymentDate)
	}
	if patch.ReferenceNumber != nil {
		s.set("reference_number", *patch.ReferenceNumber)
	}
	if patch.Notes != nil {
		s.set("notes", *patch.Notes)
	}
	if s.empty() {
		return nil, apperrors.NewValidationError("no fields to update")
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) // no-op after commit

	var transactionID string
	err = tx.QueryRow(ctx, `SELECT transaction_id FROM payments WHERE id = $1`, paymentID).Scan(&transactionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("payment not found")
		}
		return nil, apperrors.NewAppError(500, "failed to query payment "+strconv.FormatInt(paymentID, 10), err)
	}

	total, err := lockTransactionTotal(ctx, tx, transactionID)
	if err != nil {
		return nil, err
	}
	if patch.Amount != nil {
		paid, err := sumPaymentsExcluding(ctx, tx, transactionID, paymentID)
		if err != nil {
			return nil, err
		}
		if err := check(total, paid); err != nil {
			return nil, err
		}
	}

	query := fmt.Sprintf("UPDATE payments SET %s WHERE id = %s", s.String(), s.arg(paymentID))
	result, err := tx.Exec(ctx, query, s.args...)
	if err != nil {
		return nil, mapWriteError(err, "payment already exists", "failed to update payment "+strconv.FormatInt(paymentID, 10))
	}
	if result.RowsAffected() == 0 {
		return nil, apperrors.NewNotFoundError("payment not found")
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return r.FindPaymentByID(ctx, paymentID)
}

func (r *PgxPaymentRepository) DeletePayment(ctx context.Context, paymentID int64) (bool, error) {
	result, err := r.Pool.Exec(ctx, `DELETE FROM payments WHERE id = $1`, paymentID)
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to delete payment "+strconv.FormatInt(paymentID, 10), err)
	}
	return result.RowsAffected() > 0, nil
}
