package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vonhatphuongahihi/venture-travel-backend/internal/domain"
)

// PostgresTourRepository implements TourRepository using PostgreSQL
type PostgresTourRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresTourRepository creates a new PostgresTourRepository
func NewPostgresTourRepository(pool *pgxpool.Pool) *PostgresTourRepository {
	return &PostgresTourRepository{pool: pool}
}

// ListActive retrieves all active tours with their nested ticket type,
// price entry and review data. Tours come back newest first with id as
// the final key, so repeated calls over unchanged data produce the same
// order (the listing pipeline's "default" sort depends on this).
func (r *PostgresTourRepository) ListActive(ctx context.Context) ([]*domain.Tour, error) {
	query := `SELECT id, name, is_active, created_at FROM tours
		WHERE is_active = true AND deleted_at IS NULL
		ORDER BY created_at DESC, id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tours []*domain.Tour
	var ids []string
	for rows.Next() {
		tour := &domain.Tour{}
		if err := rows.Scan(&tour.ID, &tour.Name, &tour.IsActive, &tour.CreatedAt); err != nil {
			return nil, err
		}
		tours = append(tours, tour)
		ids = append(ids, tour.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(tours) == 0 {
		return tours, nil
	}

	if err := r.attachTicketTypes(ctx, tours, ids); err != nil {
		return nil, err
	}
	if err := r.attachReviews(ctx, tours, ids); err != nil {
		return nil, err
	}
	return tours, nil
}

// GetByID retrieves one tour with nested data, or (nil, nil) when absent
func (r *PostgresTourRepository) GetByID(ctx context.Context, id string) (*domain.Tour, error) {
	query := `SELECT id, name, is_active, created_at FROM tours
		WHERE id = $1 AND deleted_at IS NULL`
	tour := &domain.Tour{}
	err := r.pool.QueryRow(ctx, query, id).Scan(&tour.ID, &tour.Name, &tour.IsActive, &tour.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	tours := []*domain.Tour{tour}
	ids := []string{tour.ID}
	if err := r.attachTicketTypes(ctx, tours, ids); err != nil {
		return nil, err
	}
	if err := r.attachReviews(ctx, tours, ids); err != nil {
		return nil, err
	}
	return tour, nil
}

// attachTicketTypes loads ticket types and their price entries for the
// given tours and wires them onto the snapshots.
func (r *PostgresTourRepository) attachTicketTypes(ctx context.Context, tours []*domain.Tour, tourIDs []string) error {
	byTour := make(map[string]*domain.Tour, len(tours))
	for _, tour := range tours {
		byTour[tour.ID] = tour
	}

	query := `SELECT id, tour_id, name, quantity FROM ticket_types
		WHERE tour_id = ANY($1) AND deleted_at IS NULL
		ORDER BY tour_id, sort_order, id`
	rows, err := r.pool.Query(ctx, query, tourIDs)
	if err != nil {
		return err
	}
	defer rows.Close()

	byType := make(map[string]*indexedType)
	var typeIDs []string
	for rows.Next() {
		var tt domain.TicketType
		var tourID string
		if err := rows.Scan(&tt.ID, &tourID, &tt.Name, &tt.Quantity); err != nil {
			return err
		}
		tour := byTour[tourID]
		tour.TicketTypes = append(tour.TicketTypes, tt)
		byType[tt.ID] = &indexedType{tour: tour, index: len(tour.TicketTypes) - 1}
		typeIDs = append(typeIDs, tt.ID)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if len(typeIDs) == 0 {
		return nil
	}

	entryQuery := `SELECT ticket_type_id, category_id, price, quantity FROM price_entries
		WHERE ticket_type_id = ANY($1)
		ORDER BY ticket_type_id, category_id`
	entryRows, err := r.pool.Query(ctx, entryQuery, typeIDs)
	if err != nil {
		return err
	}
	defer entryRows.Close()

	for entryRows.Next() {
		var typeID string
		var entry domain.PriceEntry
		if err := entryRows.Scan(&typeID, &entry.CategoryID, &entry.Price, &entry.Quantity); err != nil {
			return err
		}
		loc := byType[typeID]
		tt := &loc.tour.TicketTypes[loc.index]
		tt.PriceEntries = append(tt.PriceEntries, entry)
	}
	return entryRows.Err()
}

// indexedType locates a ticket type inside its tour's slice; the slice
// backing array may move while rows append, so store the index, not a
// pointer.
type indexedType struct {
	tour  *domain.Tour
	index int
}

// attachReviews loads reviews for the given tours.
func (r *PostgresTourRepository) attachReviews(ctx context.Context, tours []*domain.Tour, tourIDs []string) error {
	byTour := make(map[string]*domain.Tour, len(tours))
	for _, tour := range tours {
		byTour[tour.ID] = tour
	}

	query := `SELECT id, tour_id, rate FROM reviews
		WHERE tour_id = ANY($1)
		ORDER BY tour_id, created_at, id`
	rows, err := r.pool.Query(ctx, query, tourIDs)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var review domain.Review
		var tourID string
		if err := rows.Scan(&review.ID, &tourID, &review.Rate); err != nil {
			return err
		}
		tour := byTour[tourID]
		tour.Reviews = append(tour.Reviews, review)
	}
	return rows.Err()
}
