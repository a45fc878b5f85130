// Package http provides the HTTP handler layer for the storefront API.
// It handles request parsing, validation, response formatting, and error
// mapping.
package http

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/voelivre/voelivre-api/internal/domain"
)

// TripSegmentDTO represents one leg in a search request.
type TripSegmentDTO struct {
	Origin          string `json:"origin"`
	Destination     string `json:"destination"`
	OriginCode      string `json:"originCode,omitempty"`
	DestinationCode string `json:"destinationCode,omitempty"`
	OriginID        string `json:"originId,omitempty"`
	DestinationID   string `json:"destinationId,omitempty"`
	DepartureDate   string `json:"departureDate"`
}

// SearchFlightsRequest represents the request body for flight search.
// The top-level origin/destination fields are the legacy single-leg form;
// segments is canonical when present.
type SearchFlightsRequest struct {
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

	// Class is the cabin class display name (e.g., "Economy")
	Class string `json:"class,omitempty"`

	// TripType is one of roundtrip, oneway, multicity
	TripType string `json:"tripType,omitempty"`

	// Currency is the ISO 4217 fare currency
	Currency string `json:"currency,omitempty"`

	// Segments is the ordered list of legs for multi-segment trips
	Segments []TripSegmentDTO `json:"segments,omitempty"`
}

// Validation regex patterns.
var (
	airportCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)
	datePattern        = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Valid trip types.
var validTripTypes = map[string]bool{
	domain.TripRoundtrip: true,
	domain.TripOneWay:    true,
	domain.TripMultiCity: true,
	"":                   true, // Empty is valid (defaults to roundtrip)
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate validates the search request, reporting every offending segment.
// A request with validation errors is never submitted, not even partially.
func (r *SearchFlightsRequest) Validate() error {
	errs := &ValidationErrors{}

	segments := r.effectiveSegments()
	if len(segments) == 0 {
		errs.Add("segments", "at least one segment with origin and destination is required")
		return errs
	}

	if r.Passengers < 1 {
		errs.Add("passengers", "passengers must be at least 1")
	}

	if !validTripTypes[strings.ToLower(r.TripType)] {
		errs.Add("tripType", "tripType must be one of: roundtrip, oneway, multicity")
	}

	if strings.EqualFold(r.TripType, domain.TripMultiCity) && len(segments) < 2 {
		errs.Add("segments", "multicity trips require at least 2 segments")
	}

	for i, s := range segments {
		validateSegmentDTO(errs, i, s)
	}

	// Roundtrip return leg must not depart before the outbound leg.
	if strings.EqualFold(r.TripType, domain.TripRoundtrip) && len(segments) > 1 {
		out, err1 := time.Parse("2006-01-02", segments[0].DepartureDate)
		back, err2 := time.Parse("2006-01-02", segments[1].DepartureDate)
		if err1 == nil && err2 == nil && back.Before(out) {
			errs.Add("segments[1].departureDate", "return date must not precede the departure date")
		}
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// validateSegmentDTO validates one segment, keying errors by its index.
func validateSegmentDTO(errs *ValidationErrors, i int, s TripSegmentDTO) {
	field := func(name string) string {
		return fmt.Sprintf("segments[%d].%s", i, name)
	}

	origin := effectiveCode(s.OriginCode, s.Origin)
	destination := effectiveCode(s.DestinationCode, s.Destination)

	switch {
	case origin == "":
		errs.Add(field("origin"), "origin is required")
	case !airportCodePattern.MatchString(origin):
		errs.Add(field("origin"), "origin must resolve to a 3-letter IATA airport code")
	}

	switch {
	case destination == "":
		errs.Add(field("destination"), "destination is required")
	case !airportCodePattern.MatchString(destination):
		errs.Add(field("destination"), "destination must resolve to a 3-letter IATA airport code")
	}

	if origin != "" && origin == destination {
		errs.Add(field("destination"), "origin and destination must be different")
	}

	switch {
	case s.DepartureDate == "":
		errs.Add(field("departureDate"), "departureDate is required")
	case !datePattern.MatchString(s.DepartureDate):
		errs.Add(field("departureDate"), "departureDate must be in YYYY-MM-DD format")
	default:
		if _, err := time.Parse("2006-01-02", s.DepartureDate); err != nil {
			errs.Add(field("departureDate"), "departureDate is not a valid date")
		}
	}
}

// effectiveSegments returns the canonical segment list, synthesizing the
// legacy single-leg form when segments is empty.
func (r *SearchFlightsRequest) effectiveSegments() []TripSegmentDTO {
	if len(r.Segments) > 0 {
		return r.Segments
	}
	if r.Origin == "" && r.OriginCode == "" && r.Destination == "" && r.DestinationCode == "" {
		return nil
	}
	return []TripSegmentDTO{{
		Origin:          r.Origin,
		Destination:     r.Destination,
		OriginCode:      r.OriginCode,
		DestinationCode: r.DestinationCode,
		OriginID:        r.OriginID,
		DestinationID:   r.DestinationID,
		DepartureDate:   r.DepartureDate,
	}}
}

// effectiveCode returns the uppercased resolved code, falling back to the
// raw text.
func effectiveCode(code, text string) string {
	if code != "" {
		return strings.ToUpper(code)
	}
	return strings.ToUpper(strings.TrimSpace(text))
}

// ToDomainParams converts the request to domain search parameters with
// defaults applied.
func ToDomainParams(r *SearchFlightsRequest) domain.SearchParams {
	params := domain.SearchParams{
		Origin:          r.Origin,
		Destination:     r.Destination,
		OriginCode:      r.OriginCode,
		DestinationCode: r.DestinationCode,
		OriginID:        r.OriginID,
		DestinationID:   r.DestinationID,
		DepartureDate:   r.DepartureDate,
		ReturnDate:      r.ReturnDate,
		Passengers:      r.Passengers,
		Class:           r.Class,
		TripType:        strings.ToLower(r.TripType),
		Currency:        r.Currency,
	}
	for _, s := range r.Segments {
		params.Segments = append(params.Segments, domain.TripSegment{
			Origin:          s.Origin,
			Destination:     s.Destination,
			OriginCode:      s.OriginCode,
			DestinationCode: s.DestinationCode,
			OriginID:        s.OriginID,
			DestinationID:   s.DestinationID,
			DepartureDate:   s.DepartureDate,
		})
	}
	params.SetDefaults()
	return params
}
