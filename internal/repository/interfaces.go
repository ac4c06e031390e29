package repository

import (
	"context"

	"github.com/vonhatphuongahihi/venture-travel-backend/internal/domain"
)

// TourRepository loads tour snapshots with their ticket type, price and
// review trees fully materialized. The aggregation core never fetches
// lazily; whatever a computation needs must be on the snapshot already.
type TourRepository interface {
	// ListActive retrieves all active tours with nested data, in
	// deterministic order (newest first).
	ListActive(ctx context.Context) ([]*domain.Tour, error)
	// GetByID retrieves one tour with nested data. Returns (nil, nil)
	// when no such tour exists.
	GetByID(ctx context.Context, id string) (*domain.Tour, error)
}

// PriceCategoryRepository loads the shared rider classifications.
type PriceCategoryRepository interface {
	// List retrieves all price categories ordered by name.
	List(ctx context.Context) ([]*domain.PriceCategory, error)
}
