package domain

// Flight is the uniform flight record served to the storefront, produced
// either by normalizing an upstream search response or drawn from the mock
// inventory. Never mutated after creation; a re-query for a different date of
// the same route reuses the base identity suffixed with that date.
type Flight struct {
	// ID uniquely identifies this result within a search
	ID string `json:"id"`

	// Airline is the marketing carrier's display name
	Airline string `json:"airline"`

	// Logo is a URL to the carrier's logo image
	Logo string `json:"logo"`

	// DepartureTime is a display string; either a local time ("08:30")
	// or an upstream-provided datetime, depending on the source
	DepartureTime string `json:"departureTime"`

	// ArrivalTime is the arrival display string
	ArrivalTime string `json:"arrivalTime"`

	// Origin is the 3-letter IATA code of the departure airport
	Origin string `json:"origin"`

	// Destination is the 3-letter IATA code of the arrival airport
	Destination string `json:"destination"`

	// Price is the total fare amount; always numeric, 0 when unknown
	Price float64 `json:"price"`

	// Stops is the number of stops (0 = direct); never negative
	Stops int `json:"stops"`

	// Duration is a human-readable duration string (e.g., "11h 15m")
	Duration string `json:"duration"`

	// SeatsLeft is the advertised remaining seat count; never 0 from
	// missing data (a positive placeholder is used instead)
	SeatsLeft int `json:"seatsLeft"`

	// Cabin is the cabin class display name (e.g., "Economy")
	Cabin string `json:"cabin"`
}
