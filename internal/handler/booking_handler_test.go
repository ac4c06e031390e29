package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/vonhatphuongahihi/venture-travel-backend/internal/domain"
	"github.com/vonhatphuongahihi/venture-travel-backend/internal/pricing"
	"github.com/vonhatphuongahihi/venture-travel-backend/internal/service"
)

// MockBookingService is a mock implementation of BookingService
type MockBookingService struct {
	tours map[string]*domain.Tour
}

func NewMockBookingService() *MockBookingService {
	return &MockBookingService{
		tours: make(map[string]*domain.Tour),
	}
}

func (m *MockBookingService) QuoteBooking(ctx context.Context, tourID string, selection []domain.SelectionLine) (*domain.Quote, error) {
	tour, ok := m.tours[tourID]
	if !ok {
		return nil, service.ErrTourNotFound
	}
	return pricing.QuoteBooking(tour, selection)
}

// AddTour adds a tour to the mock service
func (m *MockBookingService) AddTour(tour *domain.Tour) {
	m.tours[tour.ID] = tour
}

func setupBookingRouter(h *BookingHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/tours/:id/quotes", h.Quote)
	return router
}

func bookableTour() *domain.Tour {
	return &domain.Tour{
		ID:       "tour-1",
		Name:     "City Walking Tour",
		IsActive: true,
		TicketTypes: []domain.TicketType{
			{
				ID:       "tt-standard",
				Name:     "Standard",
				Quantity: 10,
				PriceEntries: []domain.PriceEntry{
					{CategoryID: "cat-adult", Price: 500000},
					{CategoryID: "cat-child", Price: 250000},
				},
			},
		},
	}
}

func postQuote(t *testing.T, router *gin.Engine, tourID string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}
	req, _ := http.NewRequest(http.MethodPost, "/tours/"+tourID+"/quotes", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestBookingHandler_Quote(t *testing.T) {
	mockSvc := NewMockBookingService()
	mockSvc.AddTour(bookableTour())
	handler := NewBookingHandler(mockSvc)
	router := setupBookingRouter(handler)

	resp := postQuote(t, router, "tour-1", []domain.SelectionLine{
		{TicketTypeID: "tt-standard", CategoryID: "cat-adult", Quantity: 3},
	})

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, resp.Code, resp.Body.String())
	}

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			QuoteID   string  `json:"quoteId"`
			TourID    string  `json:"tourId"`
			Total     float64 `json:"total"`
			Breakdown []struct {
				TicketTypeID string  `json:"ticketTypeId"`
				CategoryID   string  `json:"categoryId"`
				UnitPrice    float64 `json:"unitPrice"`
				Quantity     int     `json:"quantity"`
				LineTotal    float64 `json:"lineTotal"`
			} `json:"breakdown"`
		} `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Data.QuoteID == "" {
		t.Error("expected a generated quote id")
	}
	if body.Data.TourID != "tour-1" {
		t.Errorf("expected tourId tour-1, got %s", body.Data.TourID)
	}
	if body.Data.Total != 1500000 {
		t.Errorf("expected total 1500000, got %v", body.Data.Total)
	}
	if len(body.Data.Breakdown) != 1 || body.Data.Breakdown[0].LineTotal != 1500000 {
		t.Errorf("unexpected breakdown: %+v", body.Data.Breakdown)
	}
}

func TestBookingHandler_Quote_Errors(t *testing.T) {
	mockSvc := NewMockBookingService()
	mockSvc.AddTour(bookableTour())
	handler := NewBookingHandler(mockSvc)
	router := setupBookingRouter(handler)

	tests := []struct {
		name       string
		tourID     string
		body       interface{}
		wantStatus int
	}{
		{
			name:   "unknown tour",
			tourID: "nope",
			body: []domain.SelectionLine{
				{TicketTypeID: "tt-standard", CategoryID: "cat-adult", Quantity: 1},
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "unknown ticket type",
			tourID: "tour-1",
			body: []domain.SelectionLine{
				{TicketTypeID: "tt-vip", CategoryID: "cat-adult", Quantity: 1},
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "unknown price category",
			tourID: "tour-1",
			body: []domain.SelectionLine{
				{TicketTypeID: "tt-standard", CategoryID: "cat-senior", Quantity: 1},
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "zero quantity",
			tourID: "tour-1",
			body: []domain.SelectionLine{
				{TicketTypeID: "tt-standard", CategoryID: "cat-adult", Quantity: 0},
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "capacity exceeded",
			tourID: "tour-1",
			body: []domain.SelectionLine{
				{TicketTypeID: "tt-standard", CategoryID: "cat-adult", Quantity: 7},
				{TicketTypeID: "tt-standard", CategoryID: "cat-child", Quantity: 4},
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "empty selection",
			tourID:     "tour-1",
			body:       []domain.SelectionLine{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "non-array body",
			tourID:     "tour-1",
			body:       map[string]string{"ticketTypeId": "tt-standard"},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postQuote(t, router, tt.tourID, tt.body)
			if resp.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d: %s", tt.wantStatus, resp.Code, resp.Body.String())
			}
		})
	}
}
