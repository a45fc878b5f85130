// Package domain contains the core entities and rules of the storefront
// search system. These types are transport-agnostic and form the foundation
// the resolver, orchestrator and normalizer are built on.
package domain

// Airport represents a single airport in the directory.
// Immutable once loaded; Code is the natural key.
type Airport struct {
	// Code is the 3-letter IATA airport code (e.g., "GRU")
	Code string `json:"code"`

	// City is the city the airport serves (e.g., "São Paulo")
	City string `json:"city"`

	// Name is the airport name (e.g., "Guarulhos Intl")
	Name string `json:"name"`

	// Country is the country name as displayed to the user
	Country string `json:"country"`

	// Region is a coarse geographic region (e.g., "South America")
	Region string `json:"region"`

	// EntityID is the opaque upstream identifier required for live searches.
	// It is only ever obtained from an upstream suggestion, never derived.
	EntityID string `json:"entityId,omitempty"`

	// SkyID is the upstream's own airport identifier, when known
	SkyID string `json:"skyId,omitempty"`
}
