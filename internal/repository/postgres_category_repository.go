package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vonhatphuongahihi/venture-travel-backend/internal/domain"
)

// PostgresPriceCategoryRepository implements PriceCategoryRepository
// using PostgreSQL
type PostgresPriceCategoryRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresPriceCategoryRepository creates a new
// PostgresPriceCategoryRepository
func NewPostgresPriceCategoryRepository(pool *pgxpool.Pool) *PostgresPriceCategoryRepository {
	return &PostgresPriceCategoryRepository{pool: pool}
}

// List retrieves all price categories ordered by name
func (r *PostgresPriceCategoryRepository) List(ctx context.Context) ([]*domain.PriceCategory, error) {
	query := `SELECT id, name FROM price_categories ORDER BY name, id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*domain.PriceCategory
	for rows.Next() {
		category := &domain.PriceCategory{}
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}
