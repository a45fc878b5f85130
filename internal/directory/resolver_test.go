package directory

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/voelivre/voelivre-api/internal/domain"
	"github.com/voelivre/voelivre-api/internal/infrastructure/logger"
	"github.com/voelivre/voelivre-api/internal/infrastructure/timeutil"
)

// failedDataset returns a dataset whose remote source has already permanently
// failed, so resolution falls through to the built-in list.
func failedDataset(t *testing.T) *Dataset {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(server.Close)

	d := NewDataset(server.URL, server.Client(), logger.Nop())
	_, ok := d.Airports(context.Background())
	require.False(t, ok)
	return d
}

// readyDataset returns a dataset loaded from the given JSON body.
func readyDataset(t *testing.T, body string) *Dataset {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	d := NewDataset(server.URL, server.Client(), logger.Nop())
	_, ok := d.Airports(context.Background())
	require.True(t, ok)
	return d
}

func TestResolverResolve(t *testing.T) {
	t.Run("whitespace-only query returns empty with no delay or I/O", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		sleeper := timeutil.NewMockSleeper()
		d := NewDataset(server.URL, server.Client(), logger.Nop())
		r := NewResolver(d, logger.Nop(), WithSleeper(sleeper))

		for _, query := range []string{"", "   ", "\t\n"} {
			result := r.Resolve(context.Background(), query)
			assert.NotNil(t, result)
			assert.Empty(t, result)
		}

		assert.Empty(t, sleeper.Slept, "no artificial latency for empty queries")
		assert.Equal(t, int32(0), calls.Load(), "dataset must not be touched")
	})

	t.Run("applies the configured typeahead delay before lookup", func(t *testing.T) {
		sleeper := timeutil.NewMockSleeper()
		r := NewResolver(failedDataset(t), logger.Nop(),
			WithSleeper(sleeper),
			WithTypeaheadDelay(120*time.Millisecond),
		)

		r.Resolve(context.Background(), "lisboa")

		require.Len(t, sleeper.Slept, 1)
		assert.Equal(t, 120*time.Millisecond, sleeper.Slept[0])
	})

	t.Run("falls back to built-in list when dataset failed", func(t *testing.T) {
		r := NewResolver(failedDataset(t), logger.Nop(), WithSleeper(timeutil.NewMockSleeper()))

		result := r.Resolve(context.Background(), "portugal")

		require.Len(t, result, 2)
		assert.Equal(t, "LIS", result[0].Code)
		assert.Equal(t, "OPO", result[1].Code)
	})

	t.Run("matching is case-insensitive across city, code, name and country", func(t *testing.T) {
		r := NewResolver(failedDataset(t), logger.Nop(), WithSleeper(timeutil.NewMockSleeper()))

		tests := []struct {
			query string
			want  string
		}{
			{"LISBOA", "LIS"},
			{"gru", "GRU"},
			{"heathrow", "LHR"},
			{"reino unido", "LHR"},
		}
		for _, tt := range tests {
			result := r.Resolve(context.Background(), tt.query)
			require.NotEmpty(t, result, "query %q", tt.query)
			assert.Equal(t, tt.want, result[0].Code, "query %q", tt.query)
		}
	})

	t.Run("unknown term yields empty, not an error state", func(t *testing.T) {
		r := NewResolver(failedDataset(t), logger.Nop(), WithSleeper(timeutil.NewMockSleeper()))

		result := r.Resolve(context.Background(), "atlantis")

		assert.NotNil(t, result)
		assert.Empty(t, result)
	})

	t.Run("caps results at the configured limit in source order", func(t *testing.T) {
		body := "{"
		for i := 0; i < 20; i++ {
			if i > 0 {
				body += ","
			}
			body += fmt.Sprintf(`"ICAO%02d": {"iata": "%c%c%c", "city": "Testville %d", "name": "Test Field"}`,
				i, 'A'+i%26, 'A'+(i/26)%26, 'Z', i)
		}
		body += "}"

		r := NewResolver(readyDataset(t, body), logger.Nop(), WithSleeper(timeutil.NewMockSleeper()))

		result := r.Resolve(context.Background(), "testville")

		require.Len(t, result, DefaultSuggestLimit)
		assert.Equal(t, "Testville 0", result[0].City, "first matches in document order survive the cap")
	})

	t.Run("custom limit is honored", func(t *testing.T) {
		r := NewResolver(failedDataset(t), logger.Nop(),
			WithSleeper(timeutil.NewMockSleeper()),
			WithSuggestLimit(2),
		)

		result := r.Resolve(context.Background(), "brasil")

		assert.Len(t, result, 2)
	})

	t.Run("prefers the live suggestion API when it succeeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := domain.NewMockAirportAPI(ctrl)
		api.EXPECT().
			SuggestAirports(gomock.Any(), "lisboa").
			Return([]domain.Airport{{Code: "LIS", City: "Lisbon", EntityID: "ent-lis"}}, nil)

		r := NewResolver(failedDataset(t), logger.Nop(),
			WithSleeper(timeutil.NewMockSleeper()),
			WithSuggestionAPI(api),
		)

		result := r.Resolve(context.Background(), "  Lisboa ")

		require.Len(t, result, 1)
		assert.Equal(t, "ent-lis", result[0].EntityID)
	})

	t.Run("API failure silently falls back to the directory", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := domain.NewMockAirportAPI(ctrl)
		api.EXPECT().
			SuggestAirports(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("upstream down"))

		r := NewResolver(failedDataset(t), logger.Nop(),
			WithSleeper(timeutil.NewMockSleeper()),
			WithSuggestionAPI(api),
		)

		result := r.Resolve(context.Background(), "lisboa")

		require.Len(t, result, 1)
		assert.Equal(t, "LIS", result[0].Code)
	})

	t.Run("empty API result also falls back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := domain.NewMockAirportAPI(ctrl)
		api.EXPECT().
			SuggestAirports(gomock.Any(), gomock.Any()).
			Return([]domain.Airport{}, nil)

		r := NewResolver(failedDataset(t), logger.Nop(),
			WithSleeper(timeutil.NewMockSleeper()),
			WithSuggestionAPI(api),
		)

		result := r.Resolve(context.Background(), "madrid")

		require.Len(t, result, 1)
		assert.Equal(t, "MAD", result[0].Code)
	})
}
