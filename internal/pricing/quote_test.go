package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vonhatphuongahihi/venture-travel-backend/internal/domain"
)

func quoteTour() *domain.Tour {
	return &domain.Tour{
		ID: "tour-1",
		TicketTypes: []domain.TicketType{
			{ID: "T1", Name: "Standard 2D1N", Quantity: 10, PriceEntries: []domain.PriceEntry{
				{CategoryID: "adult", Price: 500000},
				{CategoryID: "child", Price: 300000},
			}},
			{ID: "T2", Name: "VIP 2D1N", Quantity: 4, PriceEntries: []domain.PriceEntry{
				{CategoryID: "adult", Price: 1200000},
			}},
		},
	}
}

// Three adults on T1 at 500000 price out to 1500000.
func TestQuoteBooking_SingleLine(t *testing.T) {
	quote, err := QuoteBooking(quoteTour(), []domain.SelectionLine{
		{TicketTypeID: "T1", CategoryID: "adult", Quantity: 3},
	})

	require.NoError(t, err)
	assert.Equal(t, float64(1500000), quote.Total)
	require.Len(t, quote.Breakdown, 1)
	assert.Equal(t, domain.LineItem{
		TicketTypeID: "T1",
		CategoryID:   "adult",
		UnitPrice:    500000,
		Quantity:     3,
		LineTotal:    1500000,
	}, quote.Breakdown[0])
}

func TestQuoteBooking_BreakdownPreservesSelectionOrder(t *testing.T) {
	selection := []domain.SelectionLine{
		{TicketTypeID: "T2", CategoryID: "adult", Quantity: 1},
		{TicketTypeID: "T1", CategoryID: "child", Quantity: 2},
		{TicketTypeID: "T1", CategoryID: "adult", Quantity: 1},
	}

	quote, err := QuoteBooking(quoteTour(), selection)

	require.NoError(t, err)
	require.Len(t, quote.Breakdown, 3)
	assert.Equal(t, "T2", quote.Breakdown[0].TicketTypeID)
	assert.Equal(t, "child", quote.Breakdown[1].CategoryID)
	assert.Equal(t, "adult", quote.Breakdown[2].CategoryID)
	assert.Equal(t, float64(1200000+600000+500000), quote.Total)
}

// Same tour and selection, same quote.
func TestQuoteBooking_Idempotent(t *testing.T) {
	tour := quoteTour()
	selection := []domain.SelectionLine{
		{TicketTypeID: "T1", CategoryID: "adult", Quantity: 2},
		{TicketTypeID: "T1", CategoryID: "child", Quantity: 1},
	}

	first, err := QuoteBooking(tour, selection)
	require.NoError(t, err)
	second, err := QuoteBooking(tour, selection)
	require.NoError(t, err)

	assert.Equal(t, first.Total, second.Total)
	assert.Equal(t, first.Breakdown, second.Breakdown)
}

func TestQuoteBooking_UnknownTicketType(t *testing.T) {
	_, err := QuoteBooking(quoteTour(), []domain.SelectionLine{
		{TicketTypeID: "T9", CategoryID: "adult", Quantity: 1},
	})

	var unknown *domain.UnknownTicketTypeError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "tour-1", unknown.TourID)
	assert.Equal(t, "T9", unknown.TicketTypeID)
}

func TestQuoteBooking_UnknownPriceCategory(t *testing.T) {
	_, err := QuoteBooking(quoteTour(), []domain.SelectionLine{
		{TicketTypeID: "T2", CategoryID: "child", Quantity: 1},
	})

	var unknown *domain.UnknownPriceCategoryError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "T2", unknown.TicketTypeID)
	assert.Equal(t, "child", unknown.CategoryID)
}

func TestQuoteBooking_InvalidQuantity(t *testing.T) {
	for _, quantity := range []int{0, -2} {
		_, err := QuoteBooking(quoteTour(), []domain.SelectionLine{
			{TicketTypeID: "T1", CategoryID: "adult", Quantity: quantity},
		})

		var invalid *domain.InvalidQuantityError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, quantity, invalid.Quantity)
	}
}

// The checks run as ordered stages over the whole selection: an unknown
// ticket type anywhere outranks an earlier line's bad category.
func TestQuoteBooking_ValidationStageOrder(t *testing.T) {
	_, err := QuoteBooking(quoteTour(), []domain.SelectionLine{
		{TicketTypeID: "T2", CategoryID: "child", Quantity: 1},
		{TicketTypeID: "T9", CategoryID: "adult", Quantity: 1},
	})

	var unknownType *domain.UnknownTicketTypeError
	require.ErrorAs(t, err, &unknownType)
	assert.Equal(t, "T9", unknownType.TicketTypeID)
}

// A selection hitting capacity exactly succeeds; one over fails and the
// error names the shortfall.
func TestQuoteBooking_CapacityBoundary(t *testing.T) {
	quote, err := QuoteBooking(quoteTour(), []domain.SelectionLine{
		{TicketTypeID: "T1", CategoryID: "adult", Quantity: 10},
	})
	require.NoError(t, err)
	assert.Equal(t, float64(5000000), quote.Total)

	_, err = QuoteBooking(quoteTour(), []domain.SelectionLine{
		{TicketTypeID: "T1", CategoryID: "adult", Quantity: 11},
	})
	var capacity *domain.CapacityExceededError
	require.ErrorAs(t, err, &capacity)
	assert.Equal(t, "T1", capacity.TicketTypeID)
	assert.Equal(t, 11, capacity.Requested)
	assert.Equal(t, 10, capacity.Available)
}

// Capacity is summed across categories of the same ticket type.
func TestQuoteBooking_CapacitySummedAcrossCategories(t *testing.T) {
	_, err := QuoteBooking(quoteTour(), []domain.SelectionLine{
		{TicketTypeID: "T1", CategoryID: "adult", Quantity: 6},
		{TicketTypeID: "T1", CategoryID: "child", Quantity: 5},
	})

	var capacity *domain.CapacityExceededError
	require.ErrorAs(t, err, &capacity)
	assert.Equal(t, "T1", capacity.TicketTypeID)
	assert.Equal(t, 11, capacity.Requested)
	assert.Equal(t, 10, capacity.Available)
}

func TestQuoteBooking_EmptySelection(t *testing.T) {
	quote, err := QuoteBooking(quoteTour(), nil)

	require.NoError(t, err)
	assert.Equal(t, float64(0), quote.Total)
	assert.Empty(t, quote.Breakdown)
}
