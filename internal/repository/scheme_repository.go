package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/citizen-services/internal/domain"
)

// SchemeRepository reads and seeds the scheme directory.
type SchemeRepository interface {
	Create(ctx context.Context, scheme *domain.Scheme) error
	List(ctx context.Context) ([]domain.Scheme, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Scheme, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]domain.Scheme, error)
	Search(ctx context.Context, term string) ([]domain.Scheme, error)
}

type schemeRepository struct {
	pool *pgxpool.Pool
}

// NewSchemeRepository builds the repository.
func NewSchemeRepository(pool *pgxpool.Pool) SchemeRepository {
	return &schemeRepository{pool: pool}
}

const schemeColumns = `id, category_id, title, slug, ministry, description, benefits, eligibility,
               how_to_apply, official_link, image_url, is_active, created_at, updated_at`

func (r *schemeRepository) Create(ctx context.Context, scheme *domain.Scheme) error {
	const query = `
        INSERT INTO schemes (category_id, title, slug, ministry, description, benefits, eligibility,
                             how_to_apply, official_link, image_url, is_active)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		scheme.CategoryID,
		scheme.Title,
		scheme.Slug,
		scheme.Ministry,
		scheme.Description,
		scheme.Benefits,
		scheme.Eligibility,
		scheme.HowToApply,
		scheme.OfficialLink,
		scheme.ImageURL,
		scheme.IsActive,
	).Scan(&scheme.ID, &scheme.CreatedAt, &scheme.UpdatedAt)
}

func (r *schemeRepository) List(ctx context.Context) ([]domain.Scheme, error) {
	return r.query(ctx, `SELECT `+schemeColumns+` FROM schemes ORDER BY id`)
}

func (r *schemeRepository) GetBySlug(ctx context.Context, slug string) (*domain.Scheme, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+schemeColumns+` FROM schemes WHERE slug=$1`, slug)
	return scanScheme(row)
}

func (r *schemeRepository) ListByCategory(ctx context.Context, categoryID int64) ([]domain.Scheme, error) {
	return r.query(ctx, `SELECT `+schemeColumns+` FROM schemes WHERE category_id=$1 ORDER BY id`, categoryID)
}

func (r *schemeRepository) Search(ctx context.Context, term string) ([]domain.Scheme, error) {
	const where = ` WHERE title ILIKE $1 OR description ILIKE $1 OR ministry ILIKE $1 ORDER BY id`
	return r.query(ctx, `SELECT `+schemeColumns+` FROM schemes`+where, "%"+term+"%")
}

func (r *schemeRepository) query(ctx context.Context, query string, args ...any) ([]domain.Scheme, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Scheme{}
	for rows.Next() {
		scheme, err := scanScheme(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *scheme)
	}
	return result, rows.Err()
}

func scanScheme(row pgx.Row) (*domain.Scheme, error) {
	var s domain.Scheme
	if err := row.Scan(
		&s.ID,
		&s.CategoryID,
		&s.Title,
		&s.Slug,
		&s.Ministry,
		&s.Description,
		&s.Benefits,
		&s.Eligibility,
		&s.HowToApply,
		&s.OfficialLink,
		&s.ImageURL,
		&s.IsActive,
		&s.CreatedAt,
		&s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}
