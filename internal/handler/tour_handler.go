package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/vonhatphuongahihi/venture-travel-backend/internal/domain"
	"github.com/vonhatphuongahihi/venture-travel-backend/internal/dto"
	"github.com/vonhatphuongahihi/venture-travel-backend/internal/service"
	"github.com/vonhatphuongahihi/venture-travel-backend/pkg/response"
	"github.com/vonhatphuongahihi/venture-travel-backend/pkg/telemetry"
)

// TourHandler handles catalog HTTP requests
type TourHandler struct {
	tourService  service.TourService
	defaultLimit int
}

// NewTourHandler creates a new TourHandler
func NewTourHandler(tourService service.TourService, defaultLimit int) *TourHandler {
	if defaultLimit < 1 {
		defaultLimit = dto.DefaultPageLimit
	}
	return &TourHandler{
		tourService:  tourService,
		defaultLimit: defaultLimit,
	}
}

// List handles GET /tours - aggregated catalog with sorting and pagination
func (h *TourHandler) List(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.tour.list")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	query, ok := dto.ParseTourListQuery(
		c.Query("page"),
		c.Query("limit"),
		c.Query("sortBy"),
		h.defaultLimit,
	)
	if !ok {
		span.SetStatus(codes.Error, "invalid query parameters")
		response.BadRequest(c, "page and limit must be integers")
		return
	}
	span.SetAttributes(
		attribute.Int("page", query.Page),
		attribute.Int("limit", query.Limit),
		attribute.String("sort_by", string(query.SortBy)),
	)

	page, err := h.tourService.ListTours(ctx, query)
	if err != nil {
		span.RecordError(err)
		if domain.IsValidationError(err) {
			span.SetStatus(codes.Error, "invalid paging parameters")
			response.BadRequest(c, err.Error())
			return
		}
		span.SetStatus(codes.Error, "failed to list tours")
		response.InternalError(c, err)
		return
	}

	tours := make([]*dto.TourSummaryResponse, 0, len(page.Data))
	for i := range page.Data {
		tours = append(tours, dto.ToTourSummaryResponse(&page.Data[i]))
	}

	response.Paginated(c, tours, page.Page, page.Limit, page.Total, page.TotalPages)
}

// GetByID handles GET /tours/:id - aggregated tour detail
func (h *TourHandler) GetByID(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.tour.get_by_id")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	id := c.Param("id")
	span.SetAttributes(attribute.String("tour_id", id))

	aggregated, err := h.tourService.GetTour(ctx, id)
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, service.ErrTourNotFound) {
			span.SetStatus(codes.Error, "tour not found")
			response.NotFound(c, "Tour not found")
			return
		}
		span.SetStatus(codes.Error, "failed to get tour")
		response.InternalError(c, err)
		return
	}

	response.Success(c, dto.ToTourDetailResponse(aggregated))
}

// ListCategories handles GET /categories - shared price categories
func (h *TourHandler) ListCategories(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.tour.list_categories")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	categories, err := h.tourService.ListCategories(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to list categories")
		response.InternalError(c, err)
		return
	}

	out := make([]*dto.PriceCategoryResponse, 0, len(categories))
	for _, category := range categories {
		out = append(out, dto.ToPriceCategoryResponse(category))
	}

	response.Success(c, out)
}
