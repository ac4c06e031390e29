package domain

import "time"

// Review is a single user rating attached to a tour. Rate is constrained
// to the closed range [1,5] by the review service that writes it.
type Review struct {
	ID   string `json:"reviewId"`
	Rate int    `json:"rate"`
}

// PriceCategory is a rider classification (adult, child, ...) shared
// across tours.
type PriceCategory struct {
	ID   string `json:"categoryId"`
	Name string `json:"name"`
}

// PriceEntry prices one (ticket type, category) pair. Quantity is an
// optional per-category cap; nil means the parent ticket type's capacity
// applies.
type PriceEntry struct {
	CategoryID string  `json:"categoryId"`
	Price      float64 `json:"price"`
	Quantity   *int    `json:"quantity,omitempty"`
}

// TicketType is a purchasable tier of a tour with a stated capacity.
type TicketType struct {
	ID           string       `json:"ticketTypeId"`
	Name         string       `json:"name"`
	Quantity     int          `json:"quantity"`
	PriceEntries []PriceEntry `json:"priceEntries"`
}

// PriceEntryFor returns the price entry for the given category, or nil
// if the pair is not priced.
func (tt *TicketType) PriceEntryFor(categoryID string) *PriceEntry {
	for i := range tt.PriceEntries {
		if tt.PriceEntries[i].CategoryID == categoryID {
			return &tt.PriceEntries[i]
		}
	}
	return nil
}

// CategoryQuantity resolves the effective cap for a price entry: the
// entry's own quantity when set, otherwise the ticket type's capacity.
func (tt *TicketType) CategoryQuantity(entry *PriceEntry) int {
	if entry != nil && entry.Quantity != nil {
		return *entry.Quantity
	}
	return tt.Quantity
}

// Tour is the catalog snapshot this service computes over. The nested
// ticket type and review collections are loaded up front by the
// repository; nothing here lazy-fetches.
type Tour struct {
	ID          string       `json:"tourId"`
	Name        string       `json:"name"`
	IsActive    bool         `json:"isActive"`
	CreatedAt   time.Time    `json:"createdAt"`
	TicketTypes []TicketType `json:"ticketTypes"`
	Reviews     []Review     `json:"reviews"`
}

// TicketTypeByID returns the tour's ticket type with the given id, or
// nil if the tour has no such type.
func (t *Tour) TicketTypeByID(id string) *TicketType {
	for i := range t.TicketTypes {
		if t.TicketTypes[i].ID == id {
			return &t.TicketTypes[i]
		}
	}
	return nil
}

// AggregatedTour is the derived, non-persisted projection of a tour:
// the tour plus its computed minimum price and average rating. It is
// rebuilt on every aggregation call, never cached or mutated in place.
type AggregatedTour struct {
	Tour      *Tour   `json:"tour"`
	MinPrice  float64 `json:"minPrice"`
	AvgRating float64 `json:"avgRating"`
}

// SelectionLine is one (ticket type, category, quantity) choice in a
// client-proposed booking selection.
type SelectionLine struct {
	TicketTypeID string `json:"ticketTypeId"`
	CategoryID   string `json:"categoryId"`
	Quantity     int    `json:"quantity"`
}

// LineItem is one priced line of a booking quote breakdown.
type LineItem struct {
	TicketTypeID string  `json:"ticketTypeId"`
	CategoryID   string  `json:"categoryId"`
	UnitPrice    float64 `json:"unitPrice"`
	Quantity     int     `json:"quantity"`
	LineTotal    float64 `json:"lineTotal"`
}

// Quote is a validated, priced booking selection. Persisting the
// resulting booking is the booking service's responsibility, not ours.
type Quote struct {
	Total     float64    `json:"total"`
	Breakdown []LineItem `json:"breakdown"`
}
