package dto

import (
	"github.com/vonhatphuongahihi/venture-travel-backend/internal/domain"
)

// SelectionLineRequest is one requested (ticket type, category,
// quantity) choice.
type SelectionLineRequest struct {
	TicketTypeID string `json:"ticketTypeId"`
	CategoryID   string `json:"categoryId"`
	Quantity     int    `json:"quantity"`
}

// QuoteBookingRequest is the booking quote body: a plain array of
// selection lines, matching what the web client submits.
type QuoteBookingRequest []SelectionLineRequest

// Validate validates the QuoteBookingRequest. Quantity bounds are
// deliberately not checked here: the pricing core reports them with the
// offending line attached.
func (r QuoteBookingRequest) Validate() (bool, string) {
	if len(r) == 0 {
		return false, "Selection must contain at least one line"
	}
	for _, line := range r {
		if line.TicketTypeID == "" {
			return false, "Ticket type ID is required on every selection line"
		}
		if line.CategoryID == "" {
			return false, "Category ID is required on every selection line"
		}
	}
	return true, ""
}

// ToSelection maps the request to the domain selection, preserving
// order.
func (r QuoteBookingRequest) ToSelection() []domain.SelectionLine {
	selection := make([]domain.SelectionLine, 0, len(r))
	for _, line := range r {
		selection = append(selection, domain.SelectionLine{
			TicketTypeID: line.TicketTypeID,
			CategoryID:   line.CategoryID,
			Quantity:     line.Quantity,
		})
	}
	return selection
}

// LineItemResponse is one priced breakdown line.
type LineItemResponse struct {
	TicketTypeID string  `json:"ticketTypeId"`
	CategoryID   string  `json:"categoryId"`
	UnitPrice    float64 `json:"unitPrice"`
	Quantity     int     `json:"quantity"`
	LineTotal    float64 `json:"lineTotal"`
}

// QuoteResponse is a validated, priced booking selection. The quote id
// is generated per request; persisting an actual booking happens in the
// booking flow, not here.
type QuoteResponse struct {
	QuoteID   string             `json:"quoteId"`
	TourID    string             `json:"tourId"`
	Total     float64            `json:"total"`
	Breakdown []LineItemResponse `json:"breakdown"`
}

// ToQuoteResponse maps a priced quote.
func ToQuoteResponse(quoteID, tourID string, quote *domain.Quote) *QuoteResponse {
	resp := &QuoteResponse{
		QuoteID:   quoteID,
		TourID:    tourID,
		Total:     quote.Total,
		Breakdown: make([]LineItemResponse, 0, len(quote.Breakdown)),
	}
	for _, item := range quote.Breakdown {
		resp.Breakdown = append(resp.Breakdown, LineItemResponse{
			TicketTypeID: item.TicketTypeID,
			CategoryID:   item.CategoryID,
			UnitPrice:    item.UnitPrice,
			Quantity:     item.Quantity,
			LineTotal:    item.LineTotal,
		})
	}
	return resp
}
