package pricing

import (
	"sort"

	"github.com/vonhatphuongahihi/venture-travel-backend/internal/domain"
)

// SortKey selects the comparator for ordering aggregated tours.
type SortKey string

const (
	SortPriceAsc   SortKey = "price-asc"
	SortPriceDesc  SortKey = "price-desc"
	SortRatingDesc SortKey = "rating-desc"
	SortDefault    SortKey = "default"
)

// DefaultSortKey is applied when a listing request carries no sortBy.
const DefaultSortKey = SortPriceAsc

// ParseSortKey maps a sortBy query value to a SortKey. Empty or
// unrecognized values fall back to the default key.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortPriceAsc, SortPriceDesc, SortRatingDesc, SortDefault:
		return SortKey(s)
	default:
		return DefaultSortKey
	}
}

// Sort returns a new slice ordered by the given key. Equal-key elements
// keep their relative input order: the keys define only a preorder, and
// the input-order tie-break is what makes the result deterministic
// across repeated calls, so the sort must be stable.
func Sort(aggregated []domain.AggregatedTour, key SortKey) []domain.AggregatedTour {
	sorted := make([]domain.AggregatedTour, len(aggregated))
	copy(sorted, aggregated)

	switch key {
	case SortPriceAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].MinPrice < sorted[j].MinPrice
		})
	case SortPriceDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].MinPrice > sorted[j].MinPrice
		})
	case SortRatingDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].AvgRating > sorted[j].AvgRating
		})
	default:
		// SortDefault: input order unchanged.
	}
	return sorted
}
