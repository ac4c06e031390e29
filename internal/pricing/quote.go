package pricing

import (
	"github.com/vonhatphuongahihi/venture-travel-backend/internal/domain"
)

// QuoteBooking validates a booking selection against the tour snapshot
// and prices it. Validation runs as staged passes in a fixed order, each
// failing on the first offending line in selection order:
//
//  1. every ticket type id must belong to the tour
//  2. every (ticket type, category) pair must resolve to a price entry
//  3. every quantity must be positive
//  4. per ticket type, summed quantities must not exceed its stated
//     capacity
//
// The capacity check is against the capacity figure carried in the
// snapshot. A live remaining-capacity ledger under concurrent bookings
// is the booking persistence layer's job, not this one's.
//
// On success the breakdown preserves the selection's order and the total
// is the plain sum of line totals. No currency, tax, or discount logic
// applies here.
func QuoteBooking(tour *domain.Tour, selection []domain.SelectionLine) (*domain.Quote, error) {
	for _, line := range selection {
		if tour.TicketTypeByID(line.TicketTypeID) == nil {
			return nil, &domain.UnknownTicketTypeError{
				TourID:       tour.ID,
				TicketTypeID: line.TicketTypeID,
			}
		}
	}

	for _, line := range selection {
		tt := tour.TicketTypeByID(line.TicketTypeID)
		if tt.PriceEntryFor(line.CategoryID) == nil {
			return nil, &domain.UnknownPriceCategoryError{
				TicketTypeID: line.TicketTypeID,
				CategoryID:   line.CategoryID,
			}
		}
	}

	for _, line := range selection {
		if line.Quantity < 1 {
			return nil, &domain.InvalidQuantityError{
				TicketTypeID: line.TicketTypeID,
				CategoryID:   line.CategoryID,
				Quantity:     line.Quantity,
			}
		}
	}

	// Capacity sums, checked per ticket type in order of first
	// appearance in the selection.
	requested := make(map[string]int)
	var typeOrder []string
	for _, line := range selection {
		if _, seen := requested[line.TicketTypeID]; !seen {
			typeOrder = append(typeOrder, line.TicketTypeID)
		}
		requested[line.TicketTypeID] += line.Quantity
	}
	for _, id := range typeOrder {
		tt := tour.TicketTypeByID(id)
		if requested[id] > tt.Quantity {
			return nil, &domain.CapacityExceededError{
				TicketTypeID: id,
				Requested:    requested[id],
				Available:    tt.Quantity,
			}
		}
	}

	quote := &domain.Quote{Breakdown: make([]domain.LineItem, 0, len(selection))}
	for _, line := range selection {
		entry := tour.TicketTypeByID(line.TicketTypeID).PriceEntryFor(line.CategoryID)
		lineTotal := entry.Price * float64(line.Quantity)
		quote.Breakdown = append(quote.Breakdown, domain.LineItem{
			TicketTypeID: line.TicketTypeID,
			CategoryID:   line.CategoryID,
			UnitPrice:    entry.Price,
			Quantity:     line.Quantity,
			LineTotal:    lineTotal,
		})
		quote.Total += lineTotal
	}
	return quote, nil
}
