package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voelivre/voelivre-api/internal/domain"
	"github.com/voelivre/voelivre-api/internal/infrastructure/logger"
	"github.com/voelivre/voelivre-api/internal/infrastructure/retry"
)

// newTestClient creates a client pointed at the given server with retries
// collapsed to a single attempt unless the test overrides them.
func newTestClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()
	c, err := NewClient(Config{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Timeout: 2 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return c
}

func TestNewClient(t *testing.T) {
	t.Run("requires an API key", func(t *testing.T) {
		_, err := NewClient(Config{}, logger.Nop())
		assert.ErrorIs(t, err, domain.ErrMissingAPIKey)
	})

	t.Run("applies defaults for the rest", func(t *testing.T) {
		c, err := NewClient(Config{APIKey: "k"}, nil)
		require.NoError(t, err)
		assert.Equal(t, DefaultBaseURL, c.baseURL)
	})
}

func TestClientHeaders(t *testing.T) {
	var gotKey, gotHost string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-rapidapi-key")
		gotHost = r.Header.Get("x-rapidapi-host")
		w.Write([]byte(`{"data": []}`))
	}))
	defer server.Close()

	c := newTestClient(t, server)

	_, err := c.SuggestAirports(context.Background(), "lisboa")

	require.NoError(t, err)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, apiHost, gotHost)
}

func TestSuggestAirports(t *testing.T) {
	t.Run("maps and filters suggestions", func(t *testing.T) {
		var gotQuery string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/flights/airports", r.URL.Path)
			gotQuery = r.URL.Query().Get("query")
			w.Write([]byte(`{"data": [
				{"skyId": "LIS", "id": "ent-lis", "presentation": {"title": "Lisbon Humberto Delgado", "suggestionTitle": "Lisbon (LIS)", "subtitle": "Portugal"}},
				{"skyId": "PORTUGAL", "id": "ent-pt", "presentation": {"title": "Portugal"}},
				{"iata_code": "opo", "name": "Francisco Sá Carneiro", "country": "Portugal"}
			]}`))
		}))
		defer server.Close()

		c := newTestClient(t, server)

		airports, err := c.SuggestAirports(context.Background(), "lisboa")

		require.NoError(t, err)
		assert.Equal(t, "lisboa", gotQuery)
		require.Len(t, airports, 2, "entries without a 3-letter code are dropped")

		assert.Equal(t, "LIS", airports[0].Code)
		assert.Equal(t, "Lisbon Humberto Delgado", airports[0].Name)
		assert.Equal(t, "Portugal", airports[0].Country)
		assert.Equal(t, "ent-lis", airports[0].EntityID)
		assert.Equal(t, "LIS", airports[0].SkyID)

		assert.Equal(t, "OPO", airports[1].Code, "lowercase iata_code is uppercased")
	})

	t.Run("caps results at the suggestion limit", func(t *testing.T) {
		entries := make([]map[string]any, 0, suggestLimit+5)
		for i := 0; i < suggestLimit+5; i++ {
			entries = append(entries, map[string]any{
				"iata_code": string([]byte{'A', 'A', byte('A' + i)}),
				"name":      "Test",
			})
		}
		payload, err := json.Marshal(map[string]any{"data": entries})
		require.NoError(t, err)

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write(payload)
		}))
		defer server.Close()

		c := newTestClient(t, server)

		airports, err := c.SuggestAirports(context.Background(), "test")

		require.NoError(t, err)
		assert.Len(t, airports, suggestLimit)
	})

	t.Run("undecodable body maps to upstream unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`not json`))
		}))
		defer server.Close()

		c := newTestClient(t, server)

		_, err := c.SuggestAirports(context.Background(), "x")

		assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
	})
}

func TestSearchFlights(t *testing.T) {
	baseQuery := domain.FlightQuery{
		Origin:        "GRU",
		Destination:   "LIS",
		OriginID:      "ent-gru",
		DestinationID: "ent-lis",
		DepartureDate: "2024-10-15",
		Adults:        2,
		Currency:      "USD",
	}

	t.Run("one-way search uses the one-way endpoint", func(t *testing.T) {
		var gotPath string
		var gotParams map[string]string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotParams = map[string]string{}
			for k := range r.URL.Query() {
				gotParams[k] = r.URL.Query().Get(k)
			}
			w.Write([]byte(`{"data": {"itineraries": []}}`))
		}))
		defer server.Close()

		c := newTestClient(t, server)

		raw, err := c.SearchFlights(context.Background(), baseQuery)

		require.NoError(t, err)
		assert.JSONEq(t, `{"data": {"itineraries": []}}`, string(raw))
		assert.Equal(t, "/flights/search-one-way", gotPath)
		assert.Equal(t, "ent-gru", gotParams["fromEntityId"])
		assert.Equal(t, "ent-lis", gotParams["toEntityId"])
		assert.Equal(t, "2024-10-15", gotParams["departDate"])
		assert.Equal(t, "2", gotParams["adults"])
		assert.Equal(t, "USD", gotParams["currency"])
		assert.NotContains(t, gotParams, "returnDate")
	})

	t.Run("roundtrip search uses the roundtrip endpoint", func(t *testing.T) {
		var gotPath, gotReturn string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotReturn = r.URL.Query().Get("returnDate")
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		c := newTestClient(t, server)

		query := baseQuery
		query.ReturnDate = "2024-10-25"

		_, err := c.SearchFlights(context.Background(), query)

		require.NoError(t, err)
		assert.Equal(t, "/flights/search-roundtrip", gotPath)
		assert.Equal(t, "2024-10-25", gotReturn)
	})
}

func TestClientRetryBehavior(t *testing.T) {
	fastRetry := retry.Config{MaxAttempts: 2, InitialDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond, Multiplier: 2.0}

	t.Run("5xx is retried", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			if calls.Add(1) == 1 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			w.Write([]byte(`{"data": []}`))
		}))
		defer server.Close()

		c := newTestClient(t, server)
		c.retryCfg = fastRetry

		_, err := c.SuggestAirports(context.Background(), "x")

		require.NoError(t, err)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("4xx is permanent and not retried", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		c := newTestClient(t, server)
		c.retryCfg = fastRetry

		_, err := c.SuggestAirports(context.Background(), "x")

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("exhausted retries surface upstream unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		c := newTestClient(t, server)
		c.retryCfg = fastRetry

		_, err := c.SearchFlights(context.Background(), domain.FlightQuery{Adults: 1, Currency: "USD"})

		assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
	})
}

func TestMapAirport(t *testing.T) {
	tests := []struct {
		name  string
		entry map[string]any
		want  domain.Airport
		ok    bool
	}{
		{
			name: "presentation shape",
			entry: map[string]any{
				"skyId": "GRU",
				"id":    "ent-gru",
				"presentation": map[string]any{
					"title":           "São Paulo Guarulhos",
					"suggestionTitle": "São Paulo (GRU)",
					"subtitle":        "Brasil",
				},
			},
			want: domain.Airport{
				Code:     "GRU",
				City:     "São Paulo (GRU)",
				Name:     "São Paulo Guarulhos",
				Country:  "Brasil",
				EntityID: "ent-gru",
				SkyID:    "GRU",
			},
			ok: true,
		},
		{
			name: "flat shape",
			entry: map[string]any{
				"iata_code": "lis",
				"name":      "Humberto Delgado",
				"country":   "Portugal",
				"entity_id": "95565071",
				"iata":      "LIS",
			},
			want: domain.Airport{
				Code:     "LIS",
				City:     "95565071",
				Name:     "Humberto Delgado",
				Country:  "Portugal",
				EntityID: "95565071",
				SkyID:    "LIS",
			},
			ok: true,
		},
		{
			name:  "city-level entity without an airport code",
			entry: map[string]any{"skyId": "NYCA", "id": "ent-nyc"},
			ok:    false,
		},
		{
			name:  "empty entry",
			entry: map[string]any{},
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := mapAirport(tt.entry)

			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
