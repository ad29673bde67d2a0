package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/bookkeeping_app/internal/apperrors"
	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionColumns = `
	t.id, t.document_number, t.document_type_id, t.transaction_date, t.description,
	t.amount_net, t.tax_amount, t.tax_rate_id, t.amount_total,
	t.category_id, t.vendor_id, t.status_id, t.company_id, t.user_id, t.type,
	t.created_at, t.updated_at,
	c.name, v.name, s.name, dt.name, dt.code, tr.name, tr.rate, comp.name`

const transactionJoins = `
FROM transactions t
JOIN categories c ON t.category_id = c.id
LEFT JOIN vendors v ON t.vendor_id = v.id
LEFT JOIN statuses s ON t.status_id = s.id
LEFT JOIN document_types dt ON t.document_type_id = dt.id
LEFT JOIN tax_rates tr ON t.tax_rate_id = tr.id
LEFT JOIN companies comp ON t.company_id = comp.id`

const paymentTotalsJoin = `
LEFT JOIN (
	SELECT transaction_id, COUNT(*) AS payments_count, SUM(amount) AS paid_amount
	FROM payments
	GROUP BY transaction_id
) pay ON pay.transaction_id = t.id`

func transactionScanTargets(t *domain.Transaction) []any {
	return []any{
		&t.ID, &t.DocumentNumber, &t.DocumentTypeID, &t.TransactionDate, &t.Description,
		&t.AmountNet, &t.TaxAmount, &t.TaxRateID, &t.AmountTotal,
		&t.CategoryID, &t.VendorID, &t.StatusID, &t.CompanyID, &t.UserID, &t.Type,
		&t.CreatedAt, &t.UpdatedAt,
		&t.CategoryName, &t.VendorName, &t.StatusName, &t.DocumentTypeName, &t.DocumentTypeCode,
		&t.TaxRateName, &t.TaxRate, &t.CompanyName,
	}
}

func (r *PgxTransactionRepository) findOne(ctx context.Context, where string, arg any) (*domain.Transaction, error) {
	query := "SELECT" + transactionColumns + transactionJoins + " " + where
	var t domain.Transaction
	err := r.Pool.QueryRow(ctx, query, arg).Scan(transactionScanTargets(&t)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("transaction not found")
		}
		return nil, apperrors.NewAppError(500, "failed to query transaction", err)
	}
	return &t, nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return r.findOne(ctx, "WHERE t.id = $1", transactionID)
}

func (r *PgxTransactionRepository) FindTransactionByDocumentNumber(ctx context.Context, documentNumber string) (*domain.Transaction, error) {
	return r.findOne(ctx, "WHERE t.document_number = $1", documentNumber)
}

// transactionFilterWhere builds the WHERE clause shared by the listing and its count.
func transactionFilterWhere(userID string, filter domain.TransactionFilter) *whereBuilder {
	w := &whereBuilder{}
	w.add("t.user_id = %s", userID)
	if filter.StartDate != nil {
		w.add("t.transaction_date >= %s", *filter.StartDate)
	}
	if filter.EndDate != nil {
		w.add("t.transaction_date <= %s", *filter.EndDate)
	}
	if filter.CategoryID != nil {
		w.add("t.category_id = %s", *filter.CategoryID)
	}
	if filter.VendorID != nil {
		w.add("t.vendor_id = %s", *filter.VendorID)
	}
	if filter.StatusID != nil {
		w.add("t.status_id = %s", *filter.StatusID)
	}
	if filter.DocumentTypeID != nil {
		w.add("t.document_type_id = %s", *filter.DocumentTypeID)
	}
	if filter.TaxRateID != nil {
		w.add("t.tax_rate_id = %s", *filter.TaxRateID)
	}
	if filter.CompanyID != nil {
		w.add("t.company_id = %s", *filter.CompanyID)
	}
	if filter.Type != nil {
		w.add("t.type = %s", string(*filter.Type))
	}
	if filter.DocumentNumber != nil && *filter.DocumentNumber != "" {
		w.add("t.document_number ILIKE %s", "%"+*filter.DocumentNumber+"%")
	}
	return w
}

func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, userID string, filter domain.TransactionFilter, page domain.PageRequest) ([]domain.TransactionListItem, int, error) {
	w := transactionFilterWhere(userID, filter)

	var total int
	countQuery := "SELECT COUNT(*) FROM transactions t" + w.String()
	if err := r.Pool.QueryRow(ctx, countQuery, w.args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count transactions", err)
	}

	argNum := w.next()
	query := "SELECT" + transactionColumns + `,
	COALESCE(pay.payments_count, 0), COALESCE(pay.paid_amount, 0)` +
		transactionJoins + paymentTotalsJoin + w.String() +
		fmt.Sprintf(" ORDER BY t.transaction_date DESC, t.id DESC LIMIT $%d OFFSET $%d", argNum, argNum+1)
	args := append(w.args, page.Limit, page.Offset())

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to list transactions", err)
	}
	defer rows.Close()

	items := []domain.TransactionListItem{}
	for rows.Next() {
		var item domain.TransactionListItem
		targets := append(transactionScanTargets(&item.Transaction), &item.PaymentsCount, &item.PaidAmount)
		if err := rows.Scan(targets...); err != nil {
			return nil, 0, apperrors.NewAppError(500, "failed to scan transaction row", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(500, "error iterating transaction rows", err)
	}
	return items, total, nil
}

func (r *PgxTransactionRepository) SummarizeTransactions(ctx context.Context, userID string, filter domain.SummaryFilter) (*domain.TransactionSummary, error) {
	w := transactionFilterWhere(userID, domain.TransactionFilter{
		StartDate: filter.StartDate,
		EndDate:   filter.EndDate,
		CompanyID: filter.CompanyID,
	})
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN t.type = 'income' THEN t.amount_total END), 0),
			COALESCE(SUM(CASE WHEN t.type = 'expense' THEN t.amount_total END), 0)
		FROM transactions t` + w.String()

	var summary domain.TransactionSummary
	if err := r.Pool.QueryRow(ctx, query, w.args...).Scan(&summary.TotalIncome, &summary.TotalExpense); err != nil {
		return nil, apperrors.NewAppError(500, "failed to summarize transactions", err)
	}
	summary.NetBalance = summary.TotalIncome.Sub(summary.TotalExpense)
	return &summary, nil
}

func (r *PgxTransactionRepository) CategoryMonthlyConsolidated(ctx context.Context, userID string, filter domain.CategoryMonthlyFilter) ([]domain.CategoryMonthlyRow, error) {
	w := &whereBuilder{}
	w.add("t.user_id = %s", userID)
	w.add("EXTRACT(YEAR FROM t.transaction_date) = %s", filter.Year)
	if filter.Type != nil {
		w.add("t.type = %s", string(*filter.Type))
	}
	if filter.CompanyID != nil {
		w.add("t.company_id = %s", *filter.CompanyID)
	}
	query := `
		SELECT c.id, c.name, c.type, EXTRACT(MONTH FROM t.transaction_date)::int AS month, SUM(t.amount_total)
		FROM transactions t
		JOIN categories c ON t.category_id = c.id` + w.String() + `
		GROUP BY c.id, c.name, c.type, month
		ORDER BY c.name, c.id, month`

	rows, err := r.Pool.Query(ctx, query, w.args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query monthly totals", err)
	}
	defer rows.Close()

	result := []domain.CategoryMonthlyRow{}
	index := map[int64]int{}
	for rows.Next() {
		var (
			categoryID   int64
			categoryName string
			categoryType domain.TransactionType
			month        int
			sum          decimal.Decimal
		)
		if err := rows.Scan(&categoryID, &categoryName, &categoryType, &month, &sum); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan monthly total", err)
		}
		i, ok := index[categoryID]
		if !ok {
			row := domain.CategoryMonthlyRow{CategoryID: categoryID, CategoryName: categoryName, CategoryType: categoryType}
			for m := range row.Months {
				row.Months[m] = decimal.Zero
			}
			row.Total = decimal.Zero
			result = append(result, row)
			i = len(result) - 1
			index[categoryID] = i
		}
		if month >= 1 && month <= 12 {
			result[i].Months[month-1] = sum
			result[i].Total = result[i].Total.Add(sum)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating monthly totals", err)
	}
	return result, nil
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
		INSERT INTO transactions (
			id, document_number, document_type_id, transaction_date, description,
			amount_net, tax_amount, tax_rate_id, amount_total,
			category_id, vendor_id, status_id, company_id, user_id, type,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW(), NOW());
	`
	_, err := r.Pool.Exec(ctx, query,
		txn.ID,
		txn.DocumentNumber,
		txn.DocumentTypeID,
		txn.TransactionDate,
		txn.Description,
		txn.AmountNet,
		txn.TaxAmount,
		txn.TaxRateID,
		txn.AmountTotal,
		txn.CategoryID,
		txn.VendorID,
		txn.StatusID,
		txn.CompanyID,
		txn.UserID,
		string(txn.Type),
	)
	if err != nil {
		return mapWriteError(err,
			"a transaction with document number "+txn.DocumentNumber+" already exists",
			"failed to save transaction "+txn.ID)
	}
	return nil
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, transactionID, userID string, patch domain.TransactionPatch, check portsrepo.AmountTotalCheck) (bool, error) {
	var s setClause
	if patch.DocumentNumber != nil {
		s.set("document_number", *patch.DocumentNumber)
	}
	if patch.DocumentTypeID != nil {
		s.set("document_type_id", *patch.DocumentTypeID)
	}
	if patch.TransactionDate != nil {
		s.set("transaction_date", *patch.TransactionDate)
	}
	if patch.Description != nil {
		s.set("description", *patch.Description)
	}
	if patch.AmountNet != nil {
		s.set("amount_net", *patch.AmountNet)
	}
	if patch.TaxAmount != nil {
		s.set("tax_amount", *patch.TaxAmount)
	}
	if patch.TaxRateID != nil {
		s.set("tax_rate_id", *patch.TaxRateID)
	}
	if patch.AmountTotal != nil {
		s.set("amount_total", *patch.AmountTotal)
	}
	if patch.CategoryID != nil {
		s.set("category_id", *patch.CategoryID)
	}
	if patch.VendorID != nil {
		s.set("vendor_id", *patch.VendorID)
	}
	if patch.StatusID != nil {
		s.set("status_id", *patch.StatusID)
	}
	if patch.CompanyID != nil {
		s.set("company_id", *patch.CompanyID)
	}
	if patch.Type != nil {
		s.set("type", string(*patch.Type))
	}
	if s.empty() {
		return false, apperrors.NewValidationError("no fields to update")
	}

	query := fmt.Sprintf("UPDATE transactions SET %s WHERE id = %s AND user_id = %s", s.String(), s.arg(transactionID), s.arg(userID))
	conflict := "document number already exists"
	if patch.DocumentNumber != nil {
		conflict = "a transaction with document number " + *patch.DocumentNumber + " already exists"
	}

	if patch.AmountTotal == nil {
		result, err := r.Pool.Exec(ctx, query, s.args...)
		if err != nil {
			return false, mapWriteError(err, conflict, "failed to update transaction "+transactionID)
		}
		return result.RowsAffected() > 0, nil
	}

	// A new total is checked against the payments under the same row lock the payment writes take.
	tx, err := r.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer r.Rollback(ctx, tx) // no-op after commit

	if _, err := lockTransactionTotal(ctx, tx, transactionID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	paid, err := sumPaymentsExcluding(ctx, tx, transactionID, 0)
	if err != nil {
		return false, err
	}
	if check != nil {
		if err := check(*patch.AmountTotal, paid); err != nil {
			return false, err
		}
	}

	result, err := tx.Exec(ctx, query, s.args...)
	if err != nil {
		return false, mapWriteError(err, conflict, "failed to update transaction "+transactionID)
	}
	if result.RowsAffected() == 0 {
		return false, nil
	}
	if err := r.Commit(ctx, tx); err != nil {
		return false, err
	}
	return true, nil
}

// DeleteTransaction locks the row, removes its payments and then the row itself in one database transaction,
// so a concurrent payment write either completes first or finds the transaction gone.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID, userID string) (bool, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer r.Rollback(ctx, tx) // no-op after commit

	var lockedID string
	err = tx.QueryRow(ctx, `SELECT id FROM transactions WHERE id = $1 AND user_id = $2 FOR UPDATE`, transactionID, userID).Scan(&lockedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, apperrors.NewAppError(500, "failed to lock transaction "+transactionID, err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM payments WHERE transaction_id = $1`, transactionID); err != nil {
		return false, apperrors.NewAppError(500, "failed to delete payments of transaction "+transactionID, err)
	}
	result, err := tx.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, transactionID)
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to delete transaction "+transactionID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return false, err
	}
	return result.RowsAffected() > 0, nil
}
