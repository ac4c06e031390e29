package service

import (
	"context"

	"github.com/vonhatphuongahihi/venture-travel-backend/internal/domain"
	"github.com/vonhatphuongahihi/venture-travel-backend/internal/pricing"
	"github.com/vonhatphuongahihi/venture-travel-backend/internal/repository"
)

// bookingService implements the BookingService interface
type bookingService struct {
	tourRepo repository.TourRepository
}

// NewBookingService creates a new BookingService
func NewBookingService(tourRepo repository.TourRepository) BookingService {
	return &bookingService{
		tourRepo: tourRepo,
	}
}

// QuoteBooking validates and prices a booking selection against the
// tour's current snapshot. The capacity check is against the stated
// capacity on the snapshot; the booking service that persists a
// confirmed booking owns the live seat ledger.
func (s *bookingService) QuoteBooking(ctx context.Context, tourID string, selection []domain.SelectionLine) (*domain.Quote, error) {
	tour, err := s.tourRepo.GetByID(ctx, tourID)
	if err != nil {
		return nil, err
	}
	if tour == nil {
		return nil, ErrTourNotFound
	}

	return pricing.QuoteBooking(tour, selection)
}
