package http

import (
	"github.com/voelivre/voelivre-api/internal/booking"
	"github.com/voelivre/voelivre-api/internal/domain"
)

// SearchResponseDTO is the response body for a flight search. An empty
// flights list is a normal "no fares found" outcome, not an error.
type SearchResponseDTO struct {
	Flights  []domain.Flight `json:"flights"`
	Metadata MetadataDTO     `json:"metadata"`
}

// MetadataDTO contains metadata about the search execution.
type MetadataDTO struct {
	TotalResults int   `json:"totalResults"`
	SearchTimeMs int64 `json:"searchTimeMs"`
}

// NewSearchResponseDTO builds a search response, normalizing nil to an
// empty list.
func NewSearchResponseDTO(flights []domain.Flight, searchTimeMs int64) *SearchResponseDTO {
	if flights == nil {
		flights = []domain.Flight{}
	}
	return &SearchResponseDTO{
		Flights: flights,
		Metadata: MetadataDTO{
			TotalResults: len(flights),
			SearchTimeMs: searchTimeMs,
		},
	}
}

// SuggestResponseDTO is the response body for airport suggestions.
type SuggestResponseDTO struct {
	Airports []domain.Airport `json:"airports"`
}

// NewSuggestResponseDTO builds a suggestion response.
func NewSuggestResponseDTO(airports []domain.Airport) *SuggestResponseDTO {
	if airports == nil {
		airports = []domain.Airport{}
	}
	return &SuggestResponseDTO{Airports: airports}
}

// TripsResponseDTO is the response body for a trips listing.
type TripsResponseDTO struct {
	Bookings []booking.Booking `json:"bookings"`
}

// NewTripsResponseDTO builds a trips response.
func NewTripsResponseDTO(bookings []booking.Booking) *TripsResponseDTO {
	if bookings == nil {
		bookings = []booking.Booking{}
	}
	return &TripsResponseDTO{Bookings: bookings}
}
