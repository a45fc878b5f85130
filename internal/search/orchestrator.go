// Package search turns a structured multi-segment search request into a
// single flight search, preferring the live upstream API when eligible and
// degrading to a fixed mock inventory otherwise.
package search

import (
	"context"
	"strings"
	"time"

	"github.com/voelivre/voelivre-api/internal/domain"
	"github.com/voelivre/voelivre-api/internal/infrastructure/logger"
	"github.com/voelivre/voelivre-api/internal/infrastructure/timeutil"
)

// DefaultMockDelay is the fixed artificial latency applied on the mock path,
// keeping the loading state visible for the same beat as a live search.
const DefaultMockDelay = 320 * time.Millisecond

// Orchestrator coordinates flight searches. It owns no state between calls;
// each Search is independent.
type Orchestrator struct {
	api       domain.FlightAPI
	inventory []domain.Flight
	sleeper   timeutil.Sleeper
	log       *logger.Logger
	mockDelay time.Duration
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithFlightAPI enables live searches through the given upstream client.
func WithFlightAPI(api domain.FlightAPI) Option {
	return func(o *Orchestrator) { o.api = api }
}

// WithInventory overrides the fallback inventory.
func WithInventory(flights []domain.Flight) Option {
	return func(o *Orchestrator) { o.inventory = flights }
}

// WithMockDelay overrides the artificial mock-path latency.
func WithMockDelay(d time.Duration) Option {
	return func(o *Orchestrator) { o.mockDelay = d }
}

// WithSleeper overrides the sleeper used for the artificial latency.
func WithSleeper(s timeutil.Sleeper) Option {
	return func(o *Orchestrator) { o.sleeper = s }
}

// NewOrchestrator creates an Orchestrator. Without WithFlightAPI every search
// is served from the mock inventory.
func NewOrchestrator(log *logger.Logger, opts ...Option) *Orchestrator {
	if log == nil {
		log = logger.Nop()
	}
	o := &Orchestrator{
		inventory: Inventory,
		sleeper:   timeutil.NewRealSleeper(),
		log:       log,
		mockDelay: DefaultMockDelay,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Search executes one flight search. The live API is attempted only when both
// entity ids are known (they come from a prior airport suggestion, never from
// text) and the upstream client is configured; any upstream fault or empty
// result degrades to the mock inventory. An empty result slice means "no
// fares", not failure. The only returned error is ErrUnsearchableParams, when
// no segment can be derived at all.
func (o *Orchestrator) Search(ctx context.Context, params domain.SearchParams) ([]domain.Flight, error) {
	segments, err := params.EffectiveSegments()
	if err != nil {
		return nil, err
	}

	first := segments[0]
	originCode := domain.OriginCodeOf(first)
	destinationCode := domain.DestinationCodeOf(first)
	originID := coalesce(first.OriginID, params.OriginID)
	destinationID := coalesce(first.DestinationID, params.DestinationID)

	if o.api != nil && originID != "" && destinationID != "" {
		if flights := o.searchLive(ctx, params, segments, originCode, destinationCode, originID, destinationID); len(flights) > 0 {
			return flights, nil
		}
	}

	return o.searchInventory(ctx, originCode, destinationCode, first.DepartureDate), nil
}

// searchLive issues the upstream search and normalizes its payload.
// Returns nil on any failure so the caller falls through to the mock path.
func (o *Orchestrator) searchLive(
	ctx context.Context,
	params domain.SearchParams,
	segments []domain.TripSegment,
	originCode, destinationCode, originID, destinationID string,
) []domain.Flight {
	query := domain.FlightQuery{
		Origin:        originCode,
		Destination:   destinationCode,
		OriginID:      originID,
		DestinationID: destinationID,
		DepartureDate: segments[0].DepartureDate,
		Adults:        params.Passengers,
		Currency:      coalesce(params.Currency, "USD"),
	}
	if params.TripType == domain.TripRoundtrip && len(segments) > 1 {
		query.ReturnDate = segments[1].DepartureDate
	}

	raw, err := o.api.SearchFlights(ctx, query)
	if err != nil {
		o.log.Warn().Err(err).
			Str("origin", originCode).
			Str("destination", destinationCode).
			Msg("live search failed, falling back to inventory")
		return nil
	}

	flights := Normalize(raw, params)
	if len(flights) == 0 {
		o.log.Debug().
			Str("origin", originCode).
			Str("destination", destinationCode).
			Msg("live search returned no usable itineraries")
	}
	return flights
}

// searchInventory filters the mock inventory by exact code match and rewrites
// ids with the departure date suffix.
func (o *Orchestrator) searchInventory(ctx context.Context, originCode, destinationCode, departureDate string) []domain.Flight {
	o.sleeper.Sleep(ctx, o.mockDelay)

	results := make([]domain.Flight, 0, 4)
	for _, f := range o.inventory {
		if !strings.EqualFold(f.Origin, originCode) || !strings.EqualFold(f.Destination, destinationCode) {
			continue
		}
		f.ID = f.ID + "-" + departureDate
		results = append(results, f)
	}
	return results
}

// coalesce returns the first non-empty string.
func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
