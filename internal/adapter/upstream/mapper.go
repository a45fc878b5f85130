package upstream

import (
	"strings"

	"github.com/voelivre/voelivre-api/internal/domain"
)

// mapAirport converts one upstream airport suggestion into the directory
// shape. The upstream moves fields around between versions, so every field
// has an ordered list of candidate locations. Entries without a 3-letter
// code are dropped.
func mapAirport(entry map[string]any) (domain.Airport, bool) {
	code := strings.ToUpper(pick(entry,
		"iata_code", "iata", "skyId",
		"presentation.airportCode", "presentation.code", "presentation.iataCode",
	))
	if len(code) != 3 {
		return domain.Airport{}, false
	}

	return domain.Airport{
		Code:     code,
		City:     pick(entry, "presentation.suggestionTitle", "presentation.city", "entity_id", "presentation.airport", "country"),
		Name:     pick(entry, "presentation.title", "presentation.airport", "presentation.suggestionTitle", "name"),
		Country:  pick(entry, "presentation.subtitle", "country"),
		Region:   pick(entry, "context.region", "context.country", "presentation.context"),
		EntityID: pick(entry, "id", "entity_id"),
		SkyID:    pick(entry, "skyId", "sky_id", "iata"),
	}, true
}

// pick returns the first dot-path that resolves to a non-empty string.
func pick(entry map[string]any, paths ...string) string {
	for _, path := range paths {
		var current any = entry
		found := true
		for _, token := range strings.Split(path, ".") {
			m, isMap := current.(map[string]any)
			if !isMap {
				found = false
				break
			}
			current, found = m[token]
			if !found {
				break
			}
		}
		if !found {
			continue
		}
		if s, isStr := current.(string); isStr && s != "" {
			return s
		}
	}
	return ""
}
