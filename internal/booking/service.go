// Package booking implements the storefront checkout and trips listing.
// Payment is simulated: a valid checkout always succeeds and produces a
// confirmed booking. Bookings live in memory for the process lifetime.
package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/voelivre/voelivre-api/internal/domain"
	"github.com/voelivre/voelivre-api/internal/infrastructure/logger"
	"github.com/voelivre/voelivre-api/internal/infrastructure/timeutil"
)

// StatusConfirmed is the only status a simulated checkout produces.
const StatusConfirmed = "confirmed"

// ErrInvalidBooking indicates the checkout request failed validation.
var ErrInvalidBooking = errors.New("invalid booking request")

// CheckoutRequest is the input for a checkout.
type CheckoutRequest struct {
	// Flight is the selected flight, exactly as returned by a search
	Flight domain.Flight `json:"flight"`

	// PassengerName is the lead passenger's full name
	PassengerName string `json:"passengerName"`

	// Email identifies the traveller's trips
	Email string `json:"email"`

	// Passengers is the number of seats being booked
	Passengers int `json:"passengers"`
}

// Booking is a confirmed trip.
type Booking struct {
	// Reference is the booking locator shown to the user (e.g., "VL-3F2A9C")
	Reference string `json:"reference"`

	Flight        domain.Flight `json:"flight"`
	PassengerName string        `json:"passengerName"`
	Email         string        `json:"email"`
	Passengers    int           `json:"passengers"`

	// TotalPrice is the fare times the passenger count
	TotalPrice float64 `json:"totalPrice"`

	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// Service owns the in-memory booking store.
type Service struct {
	clock timeutil.Clock
	log   *logger.Logger

	mu      sync.Mutex
	byEmail map[string][]Booking
}

// NewService creates a booking service.
func NewService(clock timeutil.Clock, log *logger.Logger) *Service {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		clock:   clock,
		log:     log,
		byEmail: make(map[string][]Booking),
	}
}

// Checkout validates the request and records a confirmed booking.
func (s *Service) Checkout(_ context.Context, req CheckoutRequest) (Booking, error) {
	if err := validateCheckout(req); err != nil {
		return Booking{}, err
	}

	b := Booking{
		Reference:     newReference(),
		Flight:        req.Flight,
		PassengerName: strings.TrimSpace(req.PassengerName),
		Email:         normalizeEmail(req.Email),
		Passengers:    req.Passengers,
		TotalPrice:    req.Flight.Price * float64(req.Passengers),
		Status:        StatusConfirmed,
		CreatedAt:     s.clock.Now(),
	}

	s.mu.Lock()
	s.byEmail[b.Email] = append(s.byEmail[b.Email], b)
	s.mu.Unlock()

	s.log.Info().
		Str("reference", b.Reference).
		Str("flight", b.Flight.ID).
		Int("passengers", b.Passengers).
		Msg("booking confirmed")

	return b, nil
}

// TripsFor returns the bookings recorded for an email, newest first.
func (s *Service) TripsFor(_ context.Context, email string) []Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := s.byEmail[normalizeEmail(email)]
	trips := make([]Booking, len(stored))
	for i, b := range stored {
		trips[len(stored)-1-i] = b
	}
	return trips
}

// validateCheckout checks the checkout request is complete.
func validateCheckout(req CheckoutRequest) error {
	if req.Flight.ID == "" {
		return fmt.Errorf("%w: a selected flight is required", ErrInvalidBooking)
	}
	if strings.TrimSpace(req.PassengerName) == "" {
		return fmt.Errorf("%w: passengerName is required", ErrInvalidBooking)
	}
	email := normalizeEmail(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: a valid email is required", ErrInvalidBooking)
	}
	if req.Passengers < 1 {
		return fmt.Errorf("%w: passengers must be at least 1", ErrInvalidBooking)
	}
	return nil
}

// newReference derives a short booking locator from a UUID.
func newReference() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "VL-" + id[:6]
}

// normalizeEmail lowercases and trims an email for use as a store key.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
