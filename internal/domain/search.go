package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Trip types accepted in a search request.
const (
	TripRoundtrip = "roundtrip"
	TripOneWay    = "oneway"
	TripMultiCity = "multicity"
)

// TripSegment is one directed leg of a journey.
type TripSegment struct {
	// Origin is the free-text origin entered by the user
	Origin string `json:"origin"`

	// Destination is the free-text destination entered by the user
	Destination string `json:"destination"`

	// OriginCode is the resolved IATA code of the origin, when selected
	// from a suggestion
	OriginCode string `json:"originCode,omitempty"`

	// DestinationCode is the resolved IATA code of the destination
	DestinationCode string `json:"destinationCode,omitempty"`

	// OriginID is the opaque upstream entity id of the origin
	OriginID string `json:"originId,omitempty"`

	// DestinationID is the opaque upstream entity id of the destination
	DestinationID string `json:"destinationId,omitempty"`

	// DepartureDate is the desired departure date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`
}

// SearchParams is the overall search request. The top-level origin/destination
// fields predate multi-segment search and are kept for compatibility; Segments
// is the canonical representation.
type SearchParams struct {
	Origin          string `json:"origin"`
	Destination     string `json:"destination"`
	OriginCode      string `json:"originCode,omitempty"`
	DestinationCode string `json:"destinationCode,omitempty"`
	OriginID        string `json:"originId,omitempty"`
	DestinationID   string `json:"destinationId,omitempty"`
	DepartureDate   string `json:"departureDate"`
	ReturnDate      string `json:"returnDate,omitempty"`

	// Passengers is the number of travellers (at least 1)
	Passengers int `json:"passengers"`

	// Class is the requested cabin class display name (e.g., "Economy")
	Class string `json:"class,omitempty"`

	// TripType is one of roundtrip, oneway, multicity
	TripType string `json:"tripType,omitempty"`

	// Currency is the ISO 4217 currency for fares (default "USD")
	Currency string `json:"currency,omitempty"`

	// Segments is the ordered, non-empty list of legs
	Segments []TripSegment `json:"segments,omitempty"`
}

var (
	airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)
	dateRegex        = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// EffectiveSegments returns the canonical segment list, synthesizing a single
// segment from the legacy top-level fields when Segments is empty.
// Returns ErrUnsearchableParams when neither yields an origin/destination pair.
func (p *SearchParams) EffectiveSegments() ([]TripSegment, error) {
	if len(p.Segments) > 0 {
		return p.Segments, nil
	}

	if p.Origin == "" && p.OriginCode == "" {
		return nil, fmt.Errorf("%w: no origin", ErrUnsearchableParams)
	}
	if p.Destination == "" && p.DestinationCode == "" {
		return nil, fmt.Errorf("%w: no destination", ErrUnsearchableParams)
	}

	return []TripSegment{{
		Origin:          p.Origin,
		Destination:     p.Destination,
		OriginCode:      p.OriginCode,
		DestinationCode: p.DestinationCode,
		OriginID:        p.OriginID,
		DestinationID:   p.DestinationID,
		DepartureDate:   p.DepartureDate,
	}}, nil
}

// OriginCodeOf returns the uppercased origin code of a segment, falling back
// to the raw origin text when no resolved code exists.
func OriginCodeOf(s TripSegment) string {
	if s.OriginCode != "" {
		return strings.ToUpper(s.OriginCode)
	}
	return strings.ToUpper(s.Origin)
}

// DestinationCodeOf returns the uppercased destination code of a segment,
// falling back to the raw destination text.
func DestinationCodeOf(s TripSegment) string {
	if s.DestinationCode != "" {
		return strings.ToUpper(s.DestinationCode)
	}
	return strings.ToUpper(s.Destination)
}

// SetDefaults applies default values to empty optional fields.
func (p *SearchParams) SetDefaults() {
	if p.Passengers == 0 {
		p.Passengers = 1
	}
	if p.Class == "" {
		p.Class = "Economy"
	}
	if p.TripType == "" {
		p.TripType = TripRoundtrip
	}
	if p.Currency == "" {
		p.Currency = "USD"
	}
}

// Validate checks the request is submittable. Errors are reported against the
// offending segment and wrap ErrInvalidParams. Validation runs before any
// search is attempted; a failing request is never partially submitted.
func (p *SearchParams) Validate() error {
	segments, err := p.EffectiveSegments()
	if err != nil {
		return fmt.Errorf("%w: at least one segment is required", ErrInvalidParams)
	}

	if p.Passengers < 1 {
		return fmt.Errorf("%w: passengers must be at least 1", ErrInvalidParams)
	}

	if p.TripType == TripMultiCity && len(segments) < 2 {
		return fmt.Errorf("%w: multicity requires at least 2 segments", ErrInvalidParams)
	}

	for i, s := range segments {
		if err := validateSegment(i, s); err != nil {
			return err
		}
	}

	// Roundtrip return leg must not depart before the outbound leg.
	if p.TripType == TripRoundtrip && len(segments) > 1 {
		out, err1 := time.Parse("2006-01-02", segments[0].DepartureDate)
		back, err2 := time.Parse("2006-01-02", segments[1].DepartureDate)
		if err1 == nil && err2 == nil && back.Before(out) {
			return fmt.Errorf("%w: segments[1]: return date precedes departure date", ErrInvalidParams)
		}
	}

	return nil
}

// validateSegment checks a single segment is complete and coherent.
func validateSegment(i int, s TripSegment) error {
	origin := OriginCodeOf(s)
	destination := DestinationCodeOf(s)

	if origin == "" {
		return fmt.Errorf("%w: segments[%d]: origin is required", ErrInvalidParams, i)
	}
	if !airportCodeRegex.MatchString(origin) {
		return fmt.Errorf("%w: segments[%d]: origin must be a 3-letter IATA code, got %q", ErrInvalidParams, i, origin)
	}
	if destination == "" {
		return fmt.Errorf("%w: segments[%d]: destination is required", ErrInvalidParams, i)
	}
	if !airportCodeRegex.MatchString(destination) {
		return fmt.Errorf("%w: segments[%d]: destination must be a 3-letter IATA code, got %q", ErrInvalidParams, i, destination)
	}
	if origin == destination {
		return fmt.Errorf("%w: segments[%d]: origin and destination must be different", ErrInvalidParams, i)
	}
	if s.DepartureDate == "" {
		return fmt.Errorf("%w: segments[%d]: departureDate is required", ErrInvalidParams, i)
	}
	if !dateRegex.MatchString(s.DepartureDate) {
		return fmt.Errorf("%w: segments[%d]: departureDate must be in YYYY-MM-DD format, got %q", ErrInvalidParams, i, s.DepartureDate)
	}
	if _, err := time.Parse("2006-01-02", s.DepartureDate); err != nil {
		return fmt.Errorf("%w: segments[%d]: departureDate is not a valid date: %s", ErrInvalidParams, i, s.DepartureDate)
	}

	return nil
}
