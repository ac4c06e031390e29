package service

import (
	"context"
	"errors"

	"github.com/vonhatphuongahihi/venture-travel-backend/internal/domain"
	"github.com/vonhatphuongahihi/venture-travel-backend/internal/dto"
	"github.com/vonhatphuongahihi/venture-travel-backend/internal/pricing"
	"github.com/vonhatphuongahihi/venture-travel-backend/internal/repository"
)

// TourService errors
var (
	ErrTourNotFound = errors.New("tour not found")
)

// tourService implements the TourService interface
type tourService struct {
	tourRepo     repository.TourRepository
	categoryRepo repository.PriceCategoryRepository
}

// NewTourService creates a new TourService
func NewTourService(tourRepo repository.TourRepository, categoryRepo repository.PriceCategoryRepository) TourService {
	return &tourService{
		tourRepo:     tourRepo,
		categoryRepo: categoryRepo,
	}
}

// ListTours loads the active catalog snapshot and runs the aggregate,
// sort, paginate pipeline over it. The sort keys are computed fields, so
// the whole matching set is aggregated and ordered in memory before the
// requested window is sliced; storage-side sorting cannot help here.
func (s *tourService) ListTours(ctx context.Context, query *dto.TourListQuery) (*pricing.Page, error) {
	tours, err := s.tourRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	aggregated, err := pricing.Aggregate(tours)
	if err != nil {
		return nil, err
	}

	sorted := pricing.Sort(aggregated, query.SortBy)
	return pricing.Paginate(sorted, query.Page, query.Limit)
}

// GetTour retrieves one tour as an aggregated projection
func (s *tourService) GetTour(ctx context.Context, id string) (*domain.AggregatedTour, error) {
	tour, err := s.tourRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tour == nil {
		return nil, ErrTourNotFound
	}

	aggregated, err := pricing.Aggregate([]*domain.Tour{tour})
	if err != nil {
		return nil, err
	}
	return &aggregated[0], nil
}

// ListCategories lists the shared price categories
func (s *tourService) ListCategories(ctx context.Context) ([]*domain.PriceCategory, error) {
	return s.categoryRepo.List(ctx)
}
