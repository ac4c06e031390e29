// Package pricing implements the tour aggregation and booking pricing
// core: minimum price and average rating over a tour snapshot, stable
// sorting and pagination of the aggregated projection, and validation
// plus pricing of a multi-tier booking selection.
//
// Every function here is a pure, synchronous computation over an
// already-materialized snapshot. Loading that snapshot from storage is
// the repository layer's concern; nothing in this package does I/O.
package pricing

import (
	"github.com/vonhatphuongahihi/venture-travel-backend/internal/domain"
)

// MinPrice returns the minimum price across all price entries of all
// ticket types of the tour. A tour with no price entries yields 0 by
// policy: an unpriced tour is valid, it just carries no ranking signal.
// A negative price is an upstream data bug and fails with
// *domain.InvalidInputError rather than being clamped.
func MinPrice(tour *domain.Tour) (float64, error) {
	min := 0.0
	found := false
	for i := range tour.TicketTypes {
		tt := &tour.TicketTypes[i]
		for j := range tt.PriceEntries {
			entry := &tt.PriceEntries[j]
			if entry.Price < 0 {
				return 0, &domain.InvalidInputError{
					TourID:       tour.ID,
					TicketTypeID: tt.ID,
					CategoryID:   entry.CategoryID,
					Price:        entry.Price,
				}
			}
			if !found || entry.Price < min {
				min = entry.Price
				found = true
			}
		}
	}
	return min, nil
}

// AvgRating returns the arithmetic mean of the tour's review rates as a
// float64, unrounded. A tour with no reviews yields 0.
//
// Note the zero default conflates "unrated" with the lowest possible
// rating under rating-desc sorting. That matches the behavior of the
// existing platform and is kept deliberately.
func AvgRating(tour *domain.Tour) float64 {
	if len(tour.Reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range tour.Reviews {
		sum += r.Rate
	}
	return float64(sum) / float64(len(tour.Reviews))
}

// Aggregate computes one AggregatedTour per input tour, preserving input
// order. Each tour is independent; ordering across tours is the sorter's
// responsibility.
//
// A malformed nested snapshot (duplicate ids, out-of-range review rate)
// fails with *domain.DataIntegrityError identifying the offending tour.
// Excluding the tour instead would silently corrupt pagination totals.
func Aggregate(tours []*domain.Tour) ([]domain.AggregatedTour, error) {
	aggregated := make([]domain.AggregatedTour, 0, len(tours))
	for _, tour := range tours {
		if err := validateSnapshot(tour); err != nil {
			return nil, err
		}
		minPrice, err := MinPrice(tour)
		if err != nil {
			return nil, err
		}
		aggregated = append(aggregated, domain.AggregatedTour{
			Tour:      tour,
			MinPrice:  minPrice,
			AvgRating: AvgRating(tour),
		})
	}
	return aggregated, nil
}

// validateSnapshot checks the referential invariants of one tour's
// nested data.
func validateSnapshot(tour *domain.Tour) error {
	seenTypes := make(map[string]struct{}, len(tour.TicketTypes))
	for i := range tour.TicketTypes {
		tt := &tour.TicketTypes[i]
		if tt.ID == "" {
			return &domain.DataIntegrityError{
				TourID: tour.ID, Entity: "ticketType", Reason: "missing id",
			}
		}
		if _, dup := seenTypes[tt.ID]; dup {
			return &domain.DataIntegrityError{
				TourID: tour.ID, Entity: "ticketType", EntityID: tt.ID, Reason: "duplicate id",
			}
		}
		seenTypes[tt.ID] = struct{}{}

		seenCategories := make(map[string]struct{}, len(tt.PriceEntries))
		for _, entry := range tt.PriceEntries {
			if entry.CategoryID == "" {
				return &domain.DataIntegrityError{
					TourID: tour.ID, Entity: "priceEntry", EntityID: tt.ID, Reason: "missing category id",
				}
			}
			if _, dup := seenCategories[entry.CategoryID]; dup {
				return &domain.DataIntegrityError{
					TourID: tour.ID, Entity: "priceEntry", EntityID: entry.CategoryID,
					Reason: "duplicate category on ticket type " + tt.ID,
				}
			}
			seenCategories[entry.CategoryID] = struct{}{}
		}
	}
	for _, review := range tour.Reviews {
		if review.Rate < 1 || review.Rate > 5 {
			return &domain.DataIntegrityError{
				TourID: tour.ID, Entity: "review", EntityID: review.ID, Reason: "rate out of range",
			}
		}
	}
	return nil
}
