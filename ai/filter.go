package ai

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/macaris64/lumgoo-backend/utils"
)

// availableFilters is the closed set of recommendation facets.
var availableFilters = map[string]struct{}{
	"name":        {},
	"genre":       {},
	"actorName":   {},
	"releaseDate": {},
	"director":    {},
	"country":     {},
}

// ValidateMovieFilter rejects unknown facet keys and non-list values before
// any external call is made.
func ValidateMovieFilter(filter map[string]any) error {
	if filter == nil {
		return utils.BadRequest(`Object must have a "filter" key with an object value`)
	}
	for key, value := range filter {
		if _, ok := availableFilters[key]; !ok {
			return utils.BadRequest(fmt.Sprintf("Invalid key found: %s", key))
		}
		if _, ok := value.([]any); !ok {
			if _, ok := value.([]string); !ok {
				return utils.BadRequest(fmt.Sprintf("Value for key %s should be an array", key))
			}
		}
	}
	return nil
}

var doubleQuoted = regexp.MustCompile(`"([^"]*)"`)

// TransformMovieFilter serializes the filter into the normalized
// single-quoted form the recommendation prompt expects.
func TransformMovieFilter(filter map[string]any) (string, error) {
	raw, err := json.Marshal(filter)
	if err != nil {
		return "", err
	}
	return doubleQuoted.ReplaceAllString(string(raw), `'$1'`), nil
}

var singleQuoted = regexp.MustCompile(`'([^']+)'`)

// normalizeQuotes rewrites the single-quoted pseudo-JSON the chat model
// produces into parseable JSON.
func normalizeQuotes(s string) string {
	return singleQuoted.ReplaceAllString(s, `"$1"`)
}
