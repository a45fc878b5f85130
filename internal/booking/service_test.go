package booking

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voelivre/voelivre-api/internal/domain"
	"github.com/voelivre/voelivre-api/internal/infrastructure/logger"
	"github.com/voelivre/voelivre-api/internal/infrastructure/timeutil"
)

func validRequest() CheckoutRequest {
	return CheckoutRequest{
		Flight: domain.Flight{
			ID:          "1-2024-10-15",
			Airline:     "LATAM Airlines",
			Origin:      "GRU",
			Destination: "LIS",
			Price:       2450.40,
		},
		PassengerName: "Maria Silva",
		Email:         "maria@example.com",
		Passengers:    2,
	}
}

func TestCheckout(t *testing.T) {
	t.Run("valid request confirms a booking", func(t *testing.T) {
		now := time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC)
		clock := timeutil.NewMockClock(now)
		s := NewService(clock, logger.Nop())

		b, err := s.Checkout(context.Background(), validRequest())

		require.NoError(t, err)
		assert.Equal(t, StatusConfirmed, b.Status)
		assert.Equal(t, "1-2024-10-15", b.Flight.ID)
		assert.Equal(t, "Maria Silva", b.PassengerName)
		assert.Equal(t, "maria@example.com", b.Email)
		assert.Equal(t, 2, b.Passengers)
		assert.InDelta(t, 4900.80, b.TotalPrice, 0.001, "fare times passenger count")
		assert.Equal(t, now, b.CreatedAt)

		assert.True(t, strings.HasPrefix(b.Reference, "VL-"))
		assert.Len(t, b.Reference, 9)
	})

	t.Run("references are unique per booking", func(t *testing.T) {
		s := NewService(nil, logger.Nop())

		first, err := s.Checkout(context.Background(), validRequest())
		require.NoError(t, err)
		second, err := s.Checkout(context.Background(), validRequest())
		require.NoError(t, err)

		assert.NotEqual(t, first.Reference, second.Reference)
	})

	t.Run("email is normalized and name trimmed", func(t *testing.T) {
		s := NewService(nil, logger.Nop())

		req := validRequest()
		req.Email = "  Maria@Example.COM "
		req.PassengerName = "  Maria Silva  "

		b, err := s.Checkout(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, "maria@example.com", b.Email)
		assert.Equal(t, "Maria Silva", b.PassengerName)
	})

	tests := []struct {
		name   string
		mutate func(*CheckoutRequest)
	}{
		{"missing flight", func(r *CheckoutRequest) { r.Flight = domain.Flight{} }},
		{"blank passenger name", func(r *CheckoutRequest) { r.PassengerName = "   " }},
		{"empty email", func(r *CheckoutRequest) { r.Email = "" }},
		{"email without at sign", func(r *CheckoutRequest) { r.Email = "maria.example.com" }},
		{"zero passengers", func(r *CheckoutRequest) { r.Passengers = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewService(nil, logger.Nop())

			req := validRequest()
			tt.mutate(&req)

			_, err := s.Checkout(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidBooking)
		})
	}
}

func TestTripsFor(t *testing.T) {
	t.Run("returns bookings newest first", func(t *testing.T) {
		clock := timeutil.NewMockClock(time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC))
		s := NewService(clock, logger.Nop())

		first := validRequest()
		first.Flight.ID = "first"
		_, err := s.Checkout(context.Background(), first)
		require.NoError(t, err)

		clock.Advance(time.Hour)

		second := validRequest()
		second.Flight.ID = "second"
		_, err = s.Checkout(context.Background(), second)
		require.NoError(t, err)

		trips := s.TripsFor(context.Background(), "maria@example.com")

		require.Len(t, trips, 2)
		assert.Equal(t, "second", trips[0].Flight.ID)
		assert.Equal(t, "first", trips[1].Flight.ID)
	})

	t.Run("lookup is case-insensitive on email", func(t *testing.T) {
		s := NewService(nil, logger.Nop())

		_, err := s.Checkout(context.Background(), validRequest())
		require.NoError(t, err)

		trips := s.TripsFor(context.Background(), " MARIA@example.com ")

		assert.Len(t, trips, 1)
	})

	t.Run("unknown email yields empty slice", func(t *testing.T) {
		s := NewService(nil, logger.Nop())

		trips := s.TripsFor(context.Background(), "nobody@example.com")

		assert.NotNil(t, trips)
		assert.Empty(t, trips)
	})
}
