package directory

import (
	"context"
	"strings"
	"time"

	"github.com/voelivre/voelivre-api/internal/domain"
	"github.com/voelivre/voelivre-api/internal/infrastructure/logger"
	"github.com/voelivre/voelivre-api/internal/infrastructure/timeutil"
)

// DefaultSuggestLimit caps the number of suggestions returned by a lookup.
const DefaultSuggestLimit = 12

// DefaultTypeaheadDelay is the fixed artificial latency applied before each
// lookup so typeahead rendering stays smooth.
const DefaultTypeaheadDelay = 120 * time.Millisecond

// Resolver resolves free-text queries to candidate airports. Source
// precedence: live suggestion API (when enabled), remote bulk dataset,
// built-in list. Every fallback is silent; Resolve never fails.
//
// Debouncing and stale-response suppression are the caller's concern: a
// caller issuing overlapping lookups should track its current generation and
// discard results that arrive for a superseded one.
type Resolver struct {
	api     domain.AirportAPI
	dataset *Dataset
	sleeper timeutil.Sleeper
	log     *logger.Logger
	delay   time.Duration
	limit   int
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithSuggestionAPI enables the live suggestion API as the preferred source.
func WithSuggestionAPI(api domain.AirportAPI) ResolverOption {
	return func(r *Resolver) { r.api = api }
}

// WithTypeaheadDelay overrides the artificial lookup latency.
func WithTypeaheadDelay(d time.Duration) ResolverOption {
	return func(r *Resolver) { r.delay = d }
}

// WithSuggestLimit overrides the maximum number of suggestions.
func WithSuggestLimit(n int) ResolverOption {
	return func(r *Resolver) { r.limit = n }
}

// WithSleeper overrides the sleeper used for the artificial latency.
func WithSleeper(s timeutil.Sleeper) ResolverOption {
	return func(r *Resolver) { r.sleeper = s }
}

// NewResolver creates a Resolver backed by the given dataset.
func NewResolver(dataset *Dataset, log *logger.Logger, opts ...ResolverOption) *Resolver {
	if log == nil {
		log = logger.Nop()
	}
	r := &Resolver{
		dataset: dataset,
		sleeper: timeutil.NewRealSleeper(),
		log:     log,
		delay:   DefaultTypeaheadDelay,
		limit:   DefaultSuggestLimit,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns up to the configured limit of airports matching the query,
// in source order. A whitespace-only query returns an empty slice immediately
// with no I/O. Resolve never returns an error: every upstream fault degrades
// to the next source.
func (r *Resolver) Resolve(ctx context.Context, query string) []domain.Airport {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return []domain.Airport{}
	}

	r.sleeper.Sleep(ctx, r.delay)

	if r.api != nil {
		suggestions, err := r.api.SuggestAirports(ctx, term)
		if err == nil && len(suggestions) > 0 {
			// Already mapped and capped upstream.
			return suggestions
		}
		if err != nil {
			r.log.Warn().Err(err).Str("term", term).Msg("suggestion API failed, falling back to dataset")
		}
	}

	source, ok := r.dataset.Airports(ctx)
	if !ok || len(source) == 0 {
		source = LocalAirports
	}

	matches := make([]domain.Airport, 0, r.limit)
	for _, a := range source {
		if !matchesTerm(a, term) {
			continue
		}
		matches = append(matches, a)
		if len(matches) == r.limit {
			break
		}
	}
	return matches
}

// matchesTerm reports whether the airport matches the lowercased term by
// case-insensitive substring on city, code, name or country.
func matchesTerm(a domain.Airport, term string) bool {
	return strings.Contains(strings.ToLower(a.City), term) ||
		strings.Contains(strings.ToLower(a.Code), term) ||
		strings.Contains(strings.ToLower(a.Name), term) ||
		strings.Contains(strings.ToLower(a.Country), term)
}
