package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vonhatphuongahihi/venture-travel-backend/internal/domain"
	"github.com/vonhatphuongahihi/venture-travel-backend/internal/dto"
	"github.com/vonhatphuongahihi/venture-travel-backend/internal/pricing"
	"github.com/vonhatphuongahihi/venture-travel-backend/internal/service"
)

// MockTourService is a mock implementation of TourService
type MockTourService struct {
	tours      []domain.AggregatedTour
	categories []*domain.PriceCategory
}

func NewMockTourService() *MockTourService {
	return &MockTourService{}
}

func (m *MockTourService) ListTours(ctx context.Context, query *dto.TourListQuery) (*pricing.Page, error) {
	sorted := pricing.Sort(m.tours, query.SortBy)
	return pricing.Paginate(sorted, query.Page, query.Limit)
}

func (m *MockTourService) GetTour(ctx context.Context, id string) (*domain.AggregatedTour, error) {
	for i := range m.tours {
		if m.tours[i].Tour.ID == id {
			return &m.tours[i], nil
		}
	}
	return nil, service.ErrTourNotFound
}

func (m *MockTourService) ListCategories(ctx context.Context) ([]*domain.PriceCategory, error) {
	return m.categories, nil
}

// AddTour adds an aggregated tour to the mock service
func (m *MockTourService) AddTour(tour domain.AggregatedTour) {
	m.tours = append(m.tours, tour)
}

func setupTourRouter(h *TourHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	tours := router.Group("/tours")
	{
		tours.GET("", h.List)
		tours.GET("/:id", h.GetByID)
	}
	router.GET("/categories", h.ListCategories)

	return router
}

func aggregated(id string, minPrice, avgRating float64) domain.AggregatedTour {
	return domain.AggregatedTour{
		Tour: &domain.Tour{
			ID:        id,
			Name:      "Tour " + id,
			IsActive:  true,
			CreatedAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		MinPrice:  minPrice,
		AvgRating: avgRating,
	}
}

func TestTourHandler_List(t *testing.T) {
	mockSvc := NewMockTourService()
	handler := NewTourHandler(mockSvc, 10)
	router := setupTourRouter(handler)

	mockSvc.AddTour(aggregated("tour-1", 500000, 4.5))
	mockSvc.AddTour(aggregated("tour-2", 300000, 3.0))

	req, _ := http.NewRequest(http.MethodGet, "/tours?sortBy=price-asc", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.Code)
	}

	var body struct {
		Success bool `json:"success"`
		Data    []struct {
			TourID   string  `json:"tourId"`
			MinPrice float64 `json:"minPrice"`
		} `json:"data"`
		Meta struct {
			Page       int `json:"page"`
			Limit      int `json:"limit"`
			Total      int `json:"total"`
			TotalPages int `json:"totalPages"`
		} `json:"meta"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !body.Success {
		t.Error("expected success=true")
	}
	if len(body.Data) != 2 {
		t.Fatalf("expected 2 tours, got %d", len(body.Data))
	}
	if body.Data[0].TourID != "tour-2" {
		t.Errorf("expected tour-2 first under price-asc, got %s", body.Data[0].TourID)
	}
	if body.Meta.Total != 2 || body.Meta.TotalPages != 1 {
		t.Errorf("unexpected meta: %+v", body.Meta)
	}
}

func TestTourHandler_List_Paging(t *testing.T) {
	mockSvc := NewMockTourService()
	handler := NewTourHandler(mockSvc, 10)
	router := setupTourRouter(handler)

	for _, id := range []string{"a", "b", "c", "d", "e"} {
		mockSvc.AddTour(aggregated(id, 100, 0))
	}

	tests := []struct {
		name       string
		url        string
		wantStatus int
		wantCount  int
	}{
		{
			name:       "second page",
			url:        "/tours?page=2&limit=2",
			wantStatus: http.StatusOK,
			wantCount:  2,
		},
		{
			name:       "beyond range returns empty page",
			url:        "/tours?page=9&limit=2",
			wantStatus: http.StatusOK,
			wantCount:  0,
		},
		{
			name:       "zero page rejected",
			url:        "/tours?page=0",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "negative limit rejected",
			url:        "/tours?limit=-1",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "non-numeric page rejected",
			url:        "/tours?page=abc",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, tt.url, nil)
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			if resp.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, resp.Code)
			}
			if tt.wantStatus != http.StatusOK {
				return
			}

			var body struct {
				Data []json.RawMessage `json:"data"`
			}
			if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if len(body.Data) != tt.wantCount {
				t.Errorf("expected %d tours, got %d", tt.wantCount, len(body.Data))
			}
		})
	}
}

func TestTourHandler_GetByID(t *testing.T) {
	mockSvc := NewMockTourService()
	handler := NewTourHandler(mockSvc, 10)
	router := setupTourRouter(handler)

	mockSvc.AddTour(aggregated("tour-1", 300000, 4.0))

	tests := []struct {
		name       string
		id         string
		wantStatus int
	}{
		{
			name:       "existing tour",
			id:         "tour-1",
			wantStatus: http.StatusOK,
		},
		{
			name:       "non-existent tour",
			id:         "nope",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, "/tours/"+tt.id, nil)
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			if resp.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, resp.Code)
			}
		})
	}
}

func TestTourHandler_ListCategories(t *testing.T) {
	mockSvc := NewMockTourService()
	mockSvc.categories = []*domain.PriceCategory{
		{ID: "cat-adult", Name: "Adult"},
		{ID: "cat-child", Name: "Child"},
	}
	handler := NewTourHandler(mockSvc, 10)
	router := setupTourRouter(handler)

	req, _ := http.NewRequest(http.MethodGet, "/categories", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.Code)
	}

	var body struct {
		Data []struct {
			CategoryID string `json:"categoryId"`
			Name       string `json:"name"`
		} `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(body.Data) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(body.Data))
	}
	if body.Data[0].CategoryID != "cat-adult" {
		t.Errorf("expected cat-adult first, got %s", body.Data[0].CategoryID)
	}
}
