package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/citizen-services/internal/domain"
)

// DocumentRepository persists document metadata.
type DocumentRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]domain.Document, error)
}

type documentRepository struct {
	pool *pgxpool.Pool
}

// NewDocumentRepository constructs repository.
func NewDocumentRepository(pool *pgxpool.Pool) DocumentRepository {
	return &documentRepository{pool: pool}
}

func (r *documentRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Document, error) {
	const query = `
        SELECT id, user_id, document_type, document_name, file_path, file_size,
               is_verified, verified_by, verified_at, created_at
        FROM documents WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Document{}
	for rows.Next() {
		var doc domain.Document
		if err := rows.Scan(
			&doc.ID,
			&doc.UserID,
			&doc.DocumentType,
			&doc.DocumentName,
			&doc.FilePath,
			&doc.FileSize,
			&doc.IsVerified,
			&doc.VerifiedBy,
			&doc.VerifiedAt,
			&doc.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, doc)
	}
	return result, rows.Err()
}
