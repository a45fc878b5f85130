// Package upstream implements the client for the flights-sky API. It owns
// request shaping, API-key headers, rate limiting and retries; response
// interpretation stays with the directory and search packages.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/voelivre/voelivre-api/internal/domain"
	"github.com/voelivre/voelivre-api/internal/infrastructure/logger"
	"github.com/voelivre/voelivre-api/internal/infrastructure/retry"
)

// DefaultBaseURL is the flights-sky API endpoint.
const DefaultBaseURL = "https://flights-sky.p.rapidapi.com"

// apiHost is the RapidAPI host header value.
const apiHost = "flights-sky.p.rapidapi.com"

// suggestLimit caps mapped airport suggestions, mirroring the resolver cap.
const suggestLimit = 12

// Config holds the upstream client settings.
type Config struct {
	// BaseURL is the API base URL; DefaultBaseURL when empty.
	BaseURL string

	// APIKey is the RapidAPI key. Required.
	APIKey string

	// Timeout bounds each HTTP request.
	Timeout time.Duration

	// RateLimit is the sustained request rate per second.
	RateLimit float64

	// RateBurst is the burst size for the rate limiter.
	RateBurst int
}

// Client talks to the flights-sky API. It implements domain.AirportAPI and
// domain.FlightAPI.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	log        *logger.Logger
	retryCfg   retry.Config
}

// NewClient creates an upstream client. Returns ErrMissingAPIKey when no key
// is configured; the live API is unusable without one.
func NewClient(cfg Config, log *logger.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, domain.ErrMissingAPIKey
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 8 * time.Second
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 5
	}
	if cfg.RateBurst < 1 {
		cfg.RateBurst = 10
	}
	if log == nil {
		log = logger.Nop()
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
		log:        log,
		retryCfg:   retry.UpstreamConfig,
	}, nil
}

// SuggestAirports resolves a free-text term to airports via the upstream
// airport search, mapped to the directory shape. Only 3-letter codes survive
// the mapping and at most suggestLimit entries are returned.
func (c *Client) SuggestAirports(ctx context.Context, term string) ([]domain.Airport, error) {
	params := url.Values{}
	params.Set("query", term)

	body, err := c.get(ctx, "/flights/airports", params)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Data []map[string]any `json:"data"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: decode airport suggestions: %v", domain.ErrUpstreamUnavailable, err)
	}

	airports := make([]domain.Airport, 0, suggestLimit)
	for _, entry := range payload.Data {
		a, ok := mapAirport(entry)
		if !ok {
			continue
		}
		airports = append(airports, a)
		if len(airports) == suggestLimit {
			break
		}
	}
	return airports, nil
}

// SearchFlights issues one flight search and returns the raw payload for the
// normalizer. Roundtrip and one-way searches use different endpoints.
func (c *Client) SearchFlights(ctx context.Context, query domain.FlightQuery) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("fromEntityId", query.OriginID)
	params.Set("toEntityId", query.DestinationID)
	params.Set("departDate", query.DepartureDate)
	params.Set("adults", strconv.Itoa(query.Adults))
	params.Set("currency", query.Currency)

	endpoint := "/flights/search-one-way"
	if query.ReturnDate != "" {
		endpoint = "/flights/search-roundtrip"
		params.Set("returnDate", query.ReturnDate)
	}

	return c.get(ctx, endpoint, params)
}

// get performs a rate-limited, retried GET and returns the response body.
// Non-2xx statuses map to ErrUpstreamUnavailable; 4xx are permanent since
// retrying a rejected request cannot succeed.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values) (json.RawMessage, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	target := c.baseURL + endpoint + "?" + params.Encode()

	return retry.DoWithResult(ctx, func() (json.RawMessage, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
		if err != nil {
			return nil, retry.NewPermanent(err)
		}
		req.Header.Set("x-rapidapi-key", c.apiKey)
		req.Header.Set("x-rapidapi-host", apiHost)
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: read response: %v", domain.ErrUpstreamUnavailable, err)
		}

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			c.log.Warn().Int("status", resp.StatusCode).Str("endpoint", endpoint).Msg("upstream returned non-2xx")
			statusErr := fmt.Errorf("%w: HTTP %d", domain.ErrUpstreamUnavailable, resp.StatusCode)
			if resp.StatusCode >= 400 && resp.StatusCode < 500 {
				return nil, retry.NewPermanent(statusErr)
			}
			return nil, statusErr
		}

		return body, nil
	}, c.retryCfg)
}

// Compile-time interface checks.
var (
	_ domain.AirportAPI = (*Client)(nil)
	_ domain.FlightAPI  = (*Client)(nil)
)
