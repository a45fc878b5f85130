package http

import (
	"errors"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/voelivre/voelivre-api/internal/adapter/http/response"
	"github.com/voelivre/voelivre-api/internal/booking"
	"github.com/voelivre/voelivre-api/internal/directory"
	"github.com/voelivre/voelivre-api/internal/domain"
	"github.com/voelivre/voelivre-api/internal/search"
)

// Handler handles HTTP requests for the storefront API. It sequences the
// search flow (request → validation → search → results or error) and the
// checkout flow on top of the resolver, orchestrator and booking service.
type Handler struct {
	resolver     *directory.Resolver
	orchestrator *search.Orchestrator
	bookings     *booking.Service
}

// NewHandler creates a Handler over the given services.
func NewHandler(resolver *directory.Resolver, orchestrator *search.Orchestrator, bookings *booking.Service) *Handler {
	return &Handler{
		resolver:     resolver,
		orchestrator: orchestrator,
		bookings:     bookings,
	}
}

// SuggestAirports handles GET /api/v1/airports
//
// @Summary Suggest airports for a typeahead query
// @Description Resolves a free-text term to at most 12 candidate airports. Always succeeds; an unknown term yields an empty list.
// @Tags airports
// @Produce json
// @Param q query string false "Free-text search term"
// @Success 200 {object} SuggestResponseDTO
// @Router /airports [get]
func (h *Handler) SuggestAirports(c echo.Context) error {
	airports := h.resolver.Resolve(c.Request().Context(), c.QueryParam("q"))
	return response.OK(c, NewSuggestResponseDTO(airports))
}

// SearchFlights handles POST /api/v1/flights/search
//
// @Summary Search for flights
// @Description Searches the live flight API when eligible, degrading to the demo inventory. An empty result list means no fares were found and is not an error.
// @Tags flights
// @Accept json
// @Produce json
// @Param request body SearchFlightsRequest true "Search parameters"
// @Success 200 {object} SearchResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error or unsearchable request"
// @Failure 500 {object} response.ErrorDetail "Unexpected error"
// @Router /flights/search [post]
func (h *Handler) SearchFlights(c echo.Context) error {
	var req SearchFlightsRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	params := ToDomainParams(&req)

	start := time.Now()
	flights, err := h.orchestrator.Search(c.Request().Context(), params)
	if err != nil {
		if errors.Is(err, domain.ErrUnsearchableParams) {
			return response.SearchFailed(c)
		}
		return response.InternalServerError(c)
	}

	return response.OK(c, NewSearchResponseDTO(flights, time.Since(start).Milliseconds()))
}

// CreateBooking handles POST /api/v1/bookings
//
// @Summary Check out a selected flight
// @Description Records a booking for the selected flight. Payment is simulated; a valid request always confirms.
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body booking.CheckoutRequest true "Checkout request"
// @Success 201 {object} booking.Booking
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /bookings [post]
func (h *Handler) CreateBooking(c echo.Context) error {
	var req booking.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	b, err := h.bookings.Checkout(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, booking.ErrInvalidBooking) {
			return response.BadRequest(c, err.Error())
		}
		return response.InternalServerError(c)
	}

	return response.Created(c, b)
}

// ListBookings handles GET /api/v1/bookings
//
// @Summary List a traveller's trips
// @Tags bookings
// @Produce json
// @Param email query string true "Traveller email"
// @Success 200 {object} TripsResponseDTO
// @Failure 400 {object} response.ErrorDetail "Missing email"
// @Router /bookings [get]
func (h *Handler) ListBookings(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return response.BadRequest(c, "email query parameter is required")
	}

	trips := h.bookings.TripsFor(c.Request().Context(), email)
	return response.OK(c, NewTripsResponseDTO(trips))
}

// Health handles GET /health
// Simple health check endpoint.
func (h *Handler) Health(c echo.Context) error {
	return response.Health(c)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *Handler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}
	return response.BadRequest(c, err.Error())
}
