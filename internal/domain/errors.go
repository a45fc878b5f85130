package domain

import "errors"

// Sentinel errors used across the search system. Callers match them with
// errors.Is; lower layers wrap them with context via fmt.Errorf("%w: ...").
var (
	// ErrInvalidParams indicates the search parameters failed validation.
	// Detected before any search is attempted; blocks submission entirely.
	ErrInvalidParams = errors.New("invalid search parameters")

	// ErrUnsearchableParams indicates no usable segment could be derived
	// from the parameters, so not even the mock path can be evaluated.
	// This is the only error the orchestrator surfaces to callers.
	ErrUnsearchableParams = errors.New("search parameters yield no searchable segment")

	// ErrUpstreamUnavailable indicates the live flight API could not be
	// reached or returned a non-2xx status. Absorbed by fallback paths,
	// never surfaced to the storefront by itself.
	ErrUpstreamUnavailable = errors.New("upstream flight API unavailable")

	// ErrMissingAPIKey indicates the upstream API key is not configured.
	ErrMissingAPIKey = errors.New("missing upstream API key")
)
