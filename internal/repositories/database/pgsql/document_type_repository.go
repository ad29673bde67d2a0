package pgsql

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/bookkeeping_app/internal/apperrors"
	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxDocumentTypeRepository struct {
	BaseRepository
}

func newPgxDocumentTypeRepository(pool *pgxpool.Pool) portsrepo.DocumentTypeRepositoryFacade {
	return &PgxDocumentTypeRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.DocumentTypeRepositoryFacade = (*PgxDocumentTypeRepository)(nil)

func (r *PgxDocumentTypeRepository) getDocumentTypes(ctx context.Context, filterQuery string, args ...any) ([]domain.DocumentType, error) {
	query := `SELECT id, code, name, description, is_electronic FROM document_types ` + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query document types", err)
	}
	documentTypes, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.DocumentType])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect document type rows", err)
	}
	return documentTypes, nil
}

func (r *PgxDocumentTypeRepository) findOne(ctx context.Context, filterQuery string, arg any) (*domain.DocumentType, error) {
	documentTypes, err := r.getDocumentTypes(ctx, filterQuery, arg)
	if err != nil {
		return nil, err
	}
	if len(documentTypes) == 0 {
		return nil, apperrors.NewNotFoundError("document type not found")
	}
	return &documentTypes[0], nil
}

func (r *PgxDocumentTypeRepository) ListDocumentTypes(ctx context.Context) ([]domain.DocumentType, error) {
	return r.getDocumentTypes(ctx, "ORDER BY code")
}

func (r *PgxDocumentTypeRepository) FindDocumentTypeByID(ctx context.Context, documentTypeID int64) (*domain.DocumentType, error) {
	return r.findOne(ctx, "WHERE id = $1", documentTypeID)
}

func (r *PgxDocumentTypeRepository) FindDocumentTypeByCode(ctx context.Context, code string) (*domain.DocumentType, error) {
	return r.findOne(ctx, "WHERE code = $1", code)
}

func (r *PgxDocumentTypeRepository) SaveDocumentType(ctx context.Context, documentType domain.DocumentType) (*domain.DocumentType, error) {
	var id int64
	err := r.Pool.QueryRow(ctx, `
		INSERT INTO document_types (code, name, description, is_electronic)
		VALUES ($1, $2, $3, $4)
		RETURNING id;
	`, documentType.Code, documentType.Name, documentType.Description, documentType.IsElectronic).Scan(&id)
	if err != nil {
		return nil, mapWriteError(err, "a document type with code "+documentType.Code+" already exists", "failed to save document type")
	}
	return r.FindDocumentTypeByID(ctx, id)
}

func (r *PgxDocumentTypeRepository) UpdateDocumentType(ctx context.Context, documentTypeID int64, patch domain.DocumentTypePatch) (bool, error) {
	var s setClause
	if patch.Code != nil {
		s.set("code", *patch.Code)
	}
	if patch.Name != nil {
		s.set("name", *patch.Name)
	}
	if patch.Description != nil {
		s.set("description", *patch.Description)
	}
	if patch.IsElectronic != nil {
		s.set("is_electronic", *patch.IsElectronic)
	}
	if s.empty() {
		return false, apperrors.NewValidationError("no fields to update")
	}

	// document_types carries no updated_at column
	query := fmt.Sprintf("UPDATE document_types SET %s WHERE id = %s", strings.Join(s.parts, ", "), s.arg(documentTypeID))
	result, err := r.Pool.Exec(ctx, query, s.args...)
	if err != nil {
		return false, mapWriteError(err, "a document type with that code already exists",
			"failed to update document type "+strconv.FormatInt(documentTypeID, 10))
	}
	return result.RowsAffected() > 0, nil
}

func (r *PgxDocumentTypeRepository) DeleteDocumentType(ctx context.Context, documentTypeID int64) (bool, error) {
	result, err := r.Pool.Exec(ctx, `DELETE FROM document_types WHERE id = $1`, documentTypeID)
	if err != nil {
		if isReferenced(err) {
			return false, apperrors.NewConflictError("document type is used by existing transactions")
		}
		return false, apperrors.NewAppError(500, "failed to delete document type "+strconv.FormatInt(documentTypeID, 10), err)
	}
	return result.RowsAffected() > 0, nil
}
