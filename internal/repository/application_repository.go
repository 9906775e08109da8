package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/citizen-services/internal/domain"
)

// ApplicationRepository lists scheme applications.
type ApplicationRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]domain.Application, error)
}

type applicationRepository struct {
	pool *pgxpool.Pool
}

// NewApplicationRepository constructs repository.
func NewApplicationRepository(pool *pgxpool.Pool) ApplicationRepository {
	return &applicationRepository{pool: pool}
}

func (r *applicationRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Application, error) {
	const query = `
        SELECT id, user_id, scheme_id, ticket_id, applied_by, status, application_number,
               submitted_at, approved_at, rejection_reason, created_at, updated_at
        FROM applications WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Application{}
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID,
			&app.UserID,
			&app.SchemeID,
			&app.TicketID,
			&app.AppliedBy,
			&app.Status,
			&app.ApplicationNumber,
			&app.SubmittedAt,
			&app.ApprovedAt,
			&app.RejectionReason,
			&app.CreatedAt,
			&app.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, app)
	}
	return result, rows.Err()
}
