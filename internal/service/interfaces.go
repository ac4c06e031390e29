package service

import (
	"context"

	"github.com/vonhatphuongahihi/venture-travel-backend/internal/domain"
	"github.com/vonhatphuongahihi/venture-travel-backend/internal/dto"
	"github.com/vonhatphuongahihi/venture-travel-backend/internal/pricing"
)

// TourService defines the interface for catalog read business logic
type TourService interface {
	// ListTours runs the aggregate, sort, paginate pipeline over the
	// active catalog
	ListTours(ctx context.Context, query *dto.TourListQuery) (*pricing.Page, error)
	// GetTour retrieves one tour as an aggregated projection
	GetTour(ctx context.Context, id string) (*domain.AggregatedTour, error)
	// ListCategories lists the shared price categories
	ListCategories(ctx context.Context) ([]*domain.PriceCategory, error)
}

// BookingService defines the interface for booking quote business logic
type BookingService interface {
	// QuoteBooking validates and prices a booking selection against a
	// tour snapshot
	QuoteBooking(ctx context.Context, tourID string, selection []domain.SelectionLine) (*domain.Quote, error)
}
