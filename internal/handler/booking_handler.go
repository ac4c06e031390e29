package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/vonhatphuongahihi/venture-travel-backend/internal/domain"
	"github.com/vonhatphuongahihi/venture-travel-backend/internal/dto"
	"github.com/vonhatphuongahihi/venture-travel-backend/internal/service"
	"github.com/vonhatphuongahihi/venture-travel-backend/pkg/response"
	"github.com/vonhatphuongahihi/venture-travel-backend/pkg/telemetry"
)

// BookingHandler handles booking quote HTTP requests
type BookingHandler struct {
	bookingService service.BookingService
}

// NewBookingHandler creates a new BookingHandler
func NewBookingHandler(bookingService service.BookingService) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
	}
}

// Quote handles POST /tours/:id/quotes
// Validates the selection against the tour's current pricing tree and
// returns an itemized quote. No reservation is made.
func (h *BookingHandler) Quote(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.booking.quote")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	tourID := c.Param("id")
	span.SetAttributes(attribute.String("tour_id", tourID))

	var req dto.QuoteBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid request body")
		response.BadRequest(c, "Request body must be an array of selection lines")
		return
	}
	if ok, msg := req.Validate(); !ok {
		span.SetStatus(codes.Error, "invalid selection")
		response.BadRequest(c, msg)
		return
	}
	span.SetAttributes(attribute.Int("selection_lines", len(req)))

	quote, err := h.bookingService.QuoteBooking(ctx, tourID, req.ToSelection())
	if err != nil {
		span.RecordError(err)
		switch {
		case errors.Is(err, service.ErrTourNotFound):
			span.SetStatus(codes.Error, "tour not found")
			response.NotFound(c, "Tour not found")
		case domain.IsNotFoundError(err):
			span.SetStatus(codes.Error, "unknown selection reference")
			response.NotFound(c, err.Error())
		case domain.IsValidationError(err):
			span.SetStatus(codes.Error, "invalid selection")
			response.BadRequest(c, err.Error())
		case domain.IsConflictError(err):
			span.SetStatus(codes.Error, "capacity exceeded")
			response.Conflict(c, err.Error())
		default:
			span.SetStatus(codes.Error, "failed to quote booking")
			response.InternalError(c, err)
		}
		return
	}

	quoteID := uuid.New().String()
	span.SetAttributes(attribute.String("quote_id", quoteID))

	response.Success(c, dto.ToQuoteResponse(quoteID, tourID, quote))
}
