package search

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/voelivre/voelivre-api/internal/domain"
)

// Normalization defaults. The upstream never guarantees these fields, and a
// missing seat count must not render as "0 seats left".
const (
	maxItineraries    = 30
	defaultSeatsLeft  = 9
	defaultAirline    = "Companhia Aérea"
	placeholderLogo   = "https://placehold.co/80x80?text=Air"
	defaultDuration   = "—"
	defaultCabinClass = "Economy"
)

// itineraryListPaths are the known nesting locations of the itinerary list,
// tried in order. API versions differ on where the list lives.
var itineraryListPaths = []string{
	"data.itineraries",
	"itineraries",
	"data",
}

// Normalize maps an arbitrary upstream search payload into uniform Flight
// records. It is pure: no network access, params is never mutated. An
// unrecognizable payload yields an empty slice, not an error.
func Normalize(raw json.RawMessage, params domain.SearchParams) []domain.Flight {
	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil
	}

	itineraries := locateItineraries(payload)
	if len(itineraries) == 0 {
		return nil
	}
	if len(itineraries) > maxItineraries {
		itineraries = itineraries[:maxItineraries]
	}

	flights := make([]domain.Flight, 0, len(itineraries))
	for idx, entry := range itineraries {
		it, isMap := entry.(map[string]any)
		if !isMap {
			continue
		}
		flights = append(flights, normalizeItinerary(it, idx, params))
	}
	return flights
}

// locateItineraries finds the itinerary list by trying the known nesting
// paths in order. Returns nil when none yields an array.
func locateItineraries(payload any) []any {
	for _, path := range itineraryListPaths {
		if v, ok := valueAt(payload, path); ok {
			if list, isList := v.([]any); isList {
				return list
			}
		}
	}
	return nil
}

// normalizeItinerary maps one itinerary into a Flight. Every field follows
// the same pattern: an ordered list of extraction paths, then a value derived
// from the request params, then a generic placeholder.
func normalizeItinerary(it map[string]any, idx int, params domain.SearchParams) domain.Flight {
	firstLeg := legOf(it, false)
	lastLeg := legOf(it, true)

	price, _ := firstNumber(it,
		"pricing_options.0.totalPrice",
		"pricing_options.0.price",
		"pricing_options.0.amount",
		"price.totalPrice",
		"price.price",
		"price.amount",
	)

	airline := stringOr(defaultAirline, firstLeg, "carriers.marketing.0.name", "carrierName")
	carrierCode, _ := firstString(firstLeg, "carriers.marketing.0.alternate_id", "carrierCode")

	logo := placeholderLogo
	if carrierCode != "" {
		logo = fmt.Sprintf("https://logo.clearbit.com/%s.com", strings.ToLower(carrierCode))
	}

	id, ok := firstString(it, "id")
	if !ok {
		id = fmt.Sprintf("it-%d", idx)
	}

	departureTime := stringOr(params.DepartureDate, firstLeg, "departure", "departure_time")
	arrivalTime, ok := firstString(lastLeg, "arrival", "arrival_time")
	if !ok {
		arrivalTime, ok = firstString(firstLeg, "arrival")
	}
	if !ok {
		arrivalTime = coalesce(params.ReturnDate, params.DepartureDate)
	}

	origin := stringOr(coalesce(params.OriginCode, params.Origin), firstLeg, "origin.id", "origin.iata")
	destination := stringOr(coalesce(params.DestinationCode, params.Destination), lastLeg, "destination.id", "destination.iata")

	stops := 0
	if n, ok := firstNumber(firstLeg, "stopCount"); ok {
		stops = int(n)
	} else if v, ok := valueAt(firstLeg, "stops"); ok {
		if list, isList := v.([]any); isList {
			stops = len(list)
		}
	}
	if stops < 0 {
		stops = 0
	}

	duration, ok := firstString(firstLeg, "duration")
	if !ok {
		if mins, hasMins := firstNumber(firstLeg, "durationInMinutes"); hasMins {
			duration = strconv.Itoa(int(mins)) + "m"
		} else {
			duration = defaultDuration
		}
	}

	seats := defaultSeatsLeft
	if n, ok := firstNumber(it, "seats", "available_seats"); ok && n > 0 {
		seats = int(n)
	}

	cabin, ok := firstString(it, "cabinClass")
	if !ok {
		cabin = stringOr(coalesce(params.Class, defaultCabinClass), firstLeg, "cabinClass")
	}

	return domain.Flight{
		ID:            id,
		Airline:       airline,
		Logo:          logo,
		DepartureTime: departureTime,
		ArrivalTime:   arrivalTime,
		Origin:        origin,
		Destination:   destination,
		Price:         price,
		Stops:         stops,
		Duration:      duration,
		SeatsLeft:     seats,
		Cabin:         cabin,
	}
}

// legOf extracts the first or last leg of an itinerary. The leg list may be
// an array under "legs", a single object under "legs", or an array under
// "segments". Returns an empty map when no leg is present.
func legOf(it map[string]any, last bool) map[string]any {
	for _, key := range []string{"legs", "segments"} {
		switch v := it[key].(type) {
		case []any:
			if len(v) == 0 {
				continue
			}
			i := 0
			if last {
				i = len(v) - 1
			}
			if leg, isMap := v[i].(map[string]any); isMap {
				return leg
			}
		case map[string]any:
			return v
		}
	}
	return map[string]any{}
}

// valueAt walks a dot-separated path through nested maps and arrays.
// Numeric tokens index into arrays.
func valueAt(node any, path string) (any, bool) {
	current := node
	for _, token := range strings.Split(path, ".") {
		switch v := current.(type) {
		case map[string]any:
			next, ok := v[token]
			if !ok {
				return nil, false
			}
			current = next
		case []any:
			i, err := strconv.Atoi(token)
			if err != nil || i < 0 || i >= len(v) {
				return nil, false
			}
			current = v[i]
		default:
			return nil, false
		}
	}
	return current, current != nil
}

// firstString returns the first path that resolves to a non-empty string.
func firstString(node any, paths ...string) (string, bool) {
	for _, path := range paths {
		if v, ok := valueAt(node, path); ok {
			if s, isStr := v.(string); isStr && s != "" {
				return s, true
			}
		}
	}
	return "", false
}

// stringOr returns the first resolved string or the given fallback.
func stringOr(fallback string, node any, paths ...string) string {
	if s, ok := firstString(node, paths...); ok {
		return s
	}
	return fallback
}

// firstNumber returns the first path that resolves to a number. JSON numbers
// decode as float64; numeric strings are tolerated since upstreams mistype.
func firstNumber(node any, paths ...string) (float64, bool) {
	for _, path := range paths {
		v, ok := valueAt(node, path)
		if !ok {
			continue
		}
		switch n := v.(type) {
		case float64:
			return n, true
		case string:
			if parsed, err := strconv.ParseFloat(n, 64); err == nil {
				return parsed, true
			}
		}
	}
	return 0, false
}
