// Package directory resolves free-text queries to candidate airports, trying
// the live suggestion API, a bulk remote dataset and a built-in list in that
// order of preference.
package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/voelivre/voelivre-api/internal/domain"
	"github.com/voelivre/voelivre-api/internal/infrastructure/logger"
)

// State describes the dataset lifecycle. The remote dataset is fetched at
// most once per process: a failure is permanent until restart.
type State int

// Dataset lifecycle states.
const (
	StateUninitialized State = iota
	StateLoading
	StateReady
	StateFailed
)

// Dataset holds the process-wide airport directory loaded from a public bulk
// dataset. It is write-once: populated on first use, then read-only.
// Concurrent first callers are collapsed into a single fetch.
type Dataset struct {
	url    string
	client *http.Client
	log    *logger.Logger

	mu       sync.Mutex
	cond     *sync.Cond
	state    State
	airports []domain.Airport
}

// NewDataset creates a Dataset backed by the given bulk dataset URL.
// A nil client falls back to http.DefaultClient.
func NewDataset(url string, client *http.Client, log *logger.Logger) *Dataset {
	if client == nil {
		client = http.DefaultClient
	}
	if log == nil {
		log = logger.Nop()
	}
	d := &Dataset{
		url:    url,
		client: client,
		log:    log,
	}
	d.cond = sync.NewCond(&d.mu)
	return d
}

// State returns the current lifecycle state.
func (d *Dataset) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Airports returns the loaded directory, fetching it on first use.
// ok is false when the remote source has permanently failed for this process;
// callers then fall back to the built-in list.
func (d *Dataset) Airports(ctx context.Context) (airports []domain.Airport, ok bool) {
	d.mu.Lock()
	for d.state == StateLoading {
		d.cond.Wait()
	}
	switch d.state {
	case StateReady:
		defer d.mu.Unlock()
		return d.airports, true
	case StateFailed:
		defer d.mu.Unlock()
		return nil, false
	}
	d.state = StateLoading
	d.mu.Unlock()

	loaded, err := d.fetch(ctx)

	d.mu.Lock()
	defer func() {
		d.cond.Broadcast()
		d.mu.Unlock()
	}()

	if err != nil {
		// Permanent for the process lifetime; no retry.
		d.state = StateFailed
		d.log.Warn().Err(err).Str("url", d.url).Msg("airport dataset load failed, using built-in list")
		return nil, false
	}

	d.state = StateReady
	d.airports = loaded
	d.log.Info().Int("airports", len(loaded)).Msg("airport dataset loaded")
	return d.airports, true
}

// datasetEntry mirrors one value of the bulk dataset, which is a JSON object
// keyed by an airport identifier. Field names vary between dataset versions.
type datasetEntry struct {
	IATA         string `json:"iata"`
	City         string `json:"city"`
	Municipality string `json:"municipality"`
	Name         string `json:"name"`
	Country      string `json:"country"`
	ISO          string `json:"iso"`
	Region       string `json:"region"`
	State        string `json:"state"`
}

// fetch downloads and parses the bulk dataset. Only entries with a 3-letter
// IATA code are imported, deduplicated by code with the first occurrence in
// document order winning. The document is streamed token by token so that
// order is preserved and the multi-megabyte payload is never fully buffered.
func (d *Dataset) fetch(ctx context.Context) ([]domain.Airport, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build dataset request: %w", err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch dataset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch dataset: HTTP %d", resp.StatusCode)
	}

	dec := json.NewDecoder(resp.Body)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	if delim, isDelim := tok.(json.Delim); !isDelim || delim != '{' {
		return nil, fmt.Errorf("decode dataset: expected object, got %v", tok)
	}

	var airports []domain.Airport
	seen := make(map[string]struct{})

	for dec.More() {
		// Object key (ICAO identifier); not used beyond positioning.
		if _, err := dec.Token(); err != nil {
			return nil, fmt.Errorf("decode dataset key: %w", err)
		}

		var entry datasetEntry
		if err := dec.Decode(&entry); err != nil {
			return nil, fmt.Errorf("decode dataset entry: %w", err)
		}

		code := strings.ToUpper(strings.TrimSpace(entry.IATA))
		if len(code) != 3 {
			continue
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}

		airports = append(airports, domain.Airport{
			Code:    code,
			City:    firstNonEmpty(entry.City, entry.Municipality, "N/A"),
			Name:    firstNonEmpty(entry.Name, "Aeroporto"),
			Country: firstNonEmpty(entry.Country, entry.ISO, "N/A"),
			Region:  firstNonEmpty(entry.Region, entry.State, "N/A"),
		})
	}

	return airports, nil
}

// firstNonEmpty returns the first non-empty string of the given candidates.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
