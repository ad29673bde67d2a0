package pgsql

import (
	"errors"

	"github.com/SscSPs/bookkeeping_app/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// mapWriteError translates constraint violations of an INSERT or UPDATE into application errors.
// conflictMsg is reported for unique violations; everything unrecognised becomes a 500 with failMsg.
func mapWriteError(err error, conflictMsg, failMsg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return apperrors.NewConflictError(conflictMsg)
		case pgForeignKeyViolation:
			return apperrors.NewValidationFailedError(foreignKeyMessage(pgErr.ConstraintName))
		case pgCheckViolation:
			return apperrors.NewValidationFailedError("value out of range: " + pgErr.ConstraintName)
		}
	}
	return apperrors.NewAppError(500, failMsg, err)
}

func foreignKeyMessage(constraint string) string {
	switch constraint {
	case "fk_transactions_vendor":
		return "vendor does not exist"
	case "fk_transactions_status":
		return "status does not exist"
	case "fk_transactions_category":
		return "category does not exist"
	case "fk_transactions_document_type":
		return "document type does not exist"
	case "fk_transactions_tax_rate":
		return "tax rate does not exist"
	case "fk_transactions_company":
		return "company does not exist"
	case "fk_payments_payment_type":
		return "payment type does not exist"
	case "fk_payments_transaction":
		return "transaction does not exist"
	case "fk_company_users_company":
		return "company does not exist"
	default:
		return "referenced record does not exist"
	}
}

// isReferenced reports whether err is a foreign key violation raised by deleting a row still in use.
func isReferenced(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}
