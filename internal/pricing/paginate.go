package pricing

import (
	"github.com/vonhatphuongahihi/venture-travel-backend/internal/domain"
)

// Page is one window of a sorted aggregated sequence plus the figures a
// client needs to render paging controls.
type Page struct {
	Data       []domain.AggregatedTour
	Page       int
	Limit      int
	Total      int
	TotalPages int
}

// Paginate slices the window [(page-1)*limit, (page-1)*limit+limit) out
// of sorted, clipped to the sequence bounds. page and limit must both be
// >= 1; anything else fails with *domain.InvalidArgumentError rather
// than being clamped to a default, since clamping would mask client-side
// paging bugs.
//
// A page beyond the last is not an error: it yields empty data with the
// true total, which is how a client discovers it ran off the end.
func Paginate(sorted []domain.AggregatedTour, page, limit int) (*Page, error) {
	if page < 1 {
		return nil, &domain.InvalidArgumentError{Param: "page", Value: page}
	}
	if limit < 1 {
		return nil, &domain.InvalidArgumentError{Param: "limit", Value: limit}
	}

	total := len(sorted)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return &Page{
		Data:       sorted[start:end],
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}
