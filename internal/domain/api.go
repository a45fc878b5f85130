package domain

import (
	"context"
	"encoding/json"
)

//go:generate mockgen -source=api.go -destination=mock_api.go -package=domain

// AirportAPI is the upstream collaborator for airport suggestions.
// Implementations return suggestions already mapped to Airport records.
type AirportAPI interface {
	// SuggestAirports resolves a free-text term to candidate airports.
	SuggestAirports(ctx context.Context, term string) ([]Airport, error)
}

// FlightAPI is the upstream collaborator for live flight searches.
type FlightAPI interface {
	// SearchFlights issues one search and returns the raw upstream payload.
	// The payload shape is not guaranteed; the normalizer deals with it.
	SearchFlights(ctx context.Context, query FlightQuery) (json.RawMessage, error)
}

// FlightQuery is the request contract for a live flight search.
type FlightQuery struct {
	// Origin and Destination are uppercased IATA codes
	Origin      string
	Destination string

	// OriginID and DestinationID are opaque upstream entity ids,
	// obtained only through a prior airport suggestion
	OriginID      string
	DestinationID string

	// DepartureDate is the outbound date in YYYY-MM-DD format
	DepartureDate string

	// ReturnDate is set only for roundtrip searches
	ReturnDate string

	// Adults is the passenger count
	Adults int

	// Currency is the ISO 4217 fare currency
	Currency string
}
