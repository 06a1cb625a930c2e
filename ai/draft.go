package ai

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/macaris64/lumgoo-backend/models"
)

// flexNumber tolerates the chat model emitting numbers either bare or
// quoted ("2014" vs 2014).
type flexNumber float64

func (f *flexNumber) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = flexNumber(v)
	return nil
}

// MovieDraft is one entry of the movies-data response.
type MovieDraft struct {
	Name             string            `json:"name"`
	Genre            []string          `json:"genre"`
	ImdbID           string            `json:"imdbId"`
	Year             flexNumber        `json:"year"`
	ImdbRating       flexNumber        `json:"imdbRating"`
	Director         []string          `json:"director"`
	Plot             string            `json:"plot"`
	Runtime          flexNumber        `json:"runtime"`
	Country          []string          `json:"country"`
	MusicBy          []string          `json:"musicBy"`
	Actors           map[string]string `json:"actors"`
	PlatformAndLinks map[string]any    `json:"platformAndLinks"`
}

func parseDrafts(raw string) ([]MovieDraft, error) {
	var drafts []MovieDraft
	if err := json.Unmarshal([]byte(normalizeQuotes(raw)), &drafts); err != nil {
		return nil, err
	}
	return drafts, nil
}

func parseTitles(raw string) ([]string, error) {
	var titles []string
	if err := json.Unmarshal([]byte(normalizeQuotes(raw)), &titles); err != nil {
		return nil, err
	}
	return titles, nil
}

// toMovie maps a draft onto the catalog schema. Genre and actor references
// are resolved separately.
func (d MovieDraft) toMovie() *models.Movie {
	movie := &models.Movie{
		Title:      d.Name,
		ImdbID:     d.ImdbID,
		ImdbRating: float64(d.ImdbRating),
		Director:   d.Director,
		Plot:       d.Plot,
		Country:    d.Country,
		MusicBy:    d.MusicBy,
	}
	if d.Runtime > 0 {
		movie.Runtime = strconv.Itoa(int(d.Runtime))
	}
	if d.Year > 0 {
		release := time.Date(int(d.Year), time.January, 1, 0, 0, 0, 0, time.UTC)
		movie.Release = &release
	}
	if len(d.PlatformAndLinks) > 0 {
		movie.StreamingAvailability = d.PlatformAndLinks
	}
	return movie
}
