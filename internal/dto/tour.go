package dto

import (
	"strconv"

	"github.com/vonhatphuongahihi/venture-travel-backend/internal/domain"
	"github.com/vonhatphuongahihi/venture-travel-backend/internal/pricing"
)

// DefaultPageLimit applies when a listing request carries no limit.
const DefaultPageLimit = 10

// TourListQuery carries the catalog listing parameters. Page and limit
// are parsed from their raw query strings so that an explicit page=0 is
// distinguishable from an absent parameter: absent gets the default,
// explicit out-of-domain values are rejected downstream instead of being
// clamped.
type TourListQuery struct {
	Page   int
	Limit  int
	SortBy pricing.SortKey
}

// ParseTourListQuery builds a TourListQuery from raw query values,
// applying defaults only for absent parameters. Non-numeric page or
// limit values fail here; out-of-domain numeric values are left for the
// paginator to reject.
func ParseTourListQuery(rawPage, rawLimit, rawSortBy string, defaultLimit int) (*TourListQuery, bool) {
	q := &TourListQuery{Page: 1, Limit: defaultLimit, SortBy: pricing.ParseSortKey(rawSortBy)}
	if rawPage != "" {
		page, err := strconv.Atoi(rawPage)
		if err != nil {
			return nil, false
		}
		q.Page = page
	}
	if rawLimit != "" {
		limit, err := strconv.Atoi(rawLimit)
		if err != nil {
			return nil, false
		}
		q.Limit = limit
	}
	return q, true
}

// TourSummaryResponse is one row of the catalog listing.
type TourSummaryResponse struct {
	TourID      string  `json:"tourId"`
	Name        string  `json:"name"`
	IsActive    bool    `json:"isActive"`
	MinPrice    float64 `json:"minPrice"`
	AvgRating   float64 `json:"avgRating"`
	ReviewCount int     `json:"reviewCount"`
}

// PriceEntryResponse is one priced category on a ticket type. Quantity
// is the resolved per-category cap (the entry's own cap, or the ticket
// type's capacity when the entry has none).
type PriceEntryResponse struct {
	CategoryID string  `json:"categoryId"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

// TicketTypeResponse is one purchasable tier in a tour detail.
type TicketTypeResponse struct {
	TicketTypeID string               `json:"ticketTypeId"`
	Name         string               `json:"name"`
	Quantity     int                  `json:"quantity"`
	Prices       []PriceEntryResponse `json:"prices"`
}

// TourDetailResponse is the aggregated tour detail.
type TourDetailResponse struct {
	TourID      string               `json:"tourId"`
	Name        string               `json:"name"`
	IsActive    bool                 `json:"isActive"`
	CreatedAt   string               `json:"createdAt"`
	MinPrice    float64              `json:"minPrice"`
	AvgRating   float64              `json:"avgRating"`
	ReviewCount int                  `json:"reviewCount"`
	TicketTypes []TicketTypeResponse `json:"ticketTypes"`
}

// PriceCategoryResponse is one rider classification.
type PriceCategoryResponse struct {
	CategoryID string `json:"categoryId"`
	Name       string `json:"name"`
}

// ToTourSummaryResponse maps an aggregated tour to its listing row.
func ToTourSummaryResponse(a *domain.AggregatedTour) *TourSummaryResponse {
	return &TourSummaryResponse{
		TourID:      a.Tour.ID,
		Name:        a.Tour.Name,
		IsActive:    a.Tour.IsActive,
		MinPrice:    a.MinPrice,
		AvgRating:   a.AvgRating,
		ReviewCount: len(a.Tour.Reviews),
	}
}

// ToTourDetailResponse maps an aggregated tour to its detail view.
func ToTourDetailResponse(a *domain.AggregatedTour) *TourDetailResponse {
	detail := &TourDetailResponse{
		TourID:      a.Tour.ID,
		Name:        a.Tour.Name,
		IsActive:    a.Tour.IsActive,
		CreatedAt:   a.Tour.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		MinPrice:    a.MinPrice,
		AvgRating:   a.AvgRating,
		ReviewCount: len(a.Tour.Reviews),
		TicketTypes: make([]TicketTypeResponse, 0, len(a.Tour.TicketTypes)),
	}
	for i := range a.Tour.TicketTypes {
		tt := &a.Tour.TicketTypes[i]
		ttResp := TicketTypeResponse{
			TicketTypeID: tt.ID,
			Name:         tt.Name,
			Quantity:     tt.Quantity,
			Prices:       make([]PriceEntryResponse, 0, len(tt.PriceEntries)),
		}
		for j := range tt.PriceEntries {
			entry := &tt.PriceEntries[j]
			ttResp.Prices = append(ttResp.Prices, PriceEntryResponse{
				CategoryID: entry.CategoryID,
				Price:      entry.Price,
				Quantity:   tt.CategoryQuantity(entry),
			})
		}
		detail.TicketTypes = append(detail.TicketTypes, ttResp)
	}
	return detail
}

// ToPriceCategoryResponse maps a price category.
func ToPriceCategoryResponse(c *domain.PriceCategory) *PriceCategoryResponse {
	return &PriceCategoryResponse{CategoryID: c.ID, Name: c.Name}
}
