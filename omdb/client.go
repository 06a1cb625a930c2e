// Package omdb provides the ratings-API client. Lookups are by IMDB id and
// return a tagged RatingResult instead of the legacy magic numbers.
package omdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/macaris64/lumgoo-backend/models"
)

// Movie is the upstream payload for a single title.
type Movie struct {
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	ImdbRating string `json:"imdbRating"`
	ImdbID     string `json:"imdbID"`
	Poster     string `json:"Poster"`
	BoxOffice  string `json:"BoxOffice"`
	Response   string `json:"Response"`
	ErrorMsg   string `json:"Error"`
}

// API is the ratings lookup the enrichment pipelines use.
type API interface {
	FetchMovieByImdbID(ctx context.Context, imdbID string) (*Movie, models.RatingResult, error)
}

type Client struct {
	apiKey     string
	baseURL    string
	limiter    *rate.Limiter
	httpClient *http.Client
}

var _ API = (*Client)(nil)

type Option func(*Client)

func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

func WithRequestDelay(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.limiter = rate.NewLimiter(rate.Every(d), 1)
		}
	}
}

func New(apiKey, baseURL string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("omdb api key required")
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("omdb base url required")
	}
	client := &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		limiter:    rate.NewLimiter(rate.Every(2*time.Second), 1),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// FetchMovieByImdbID looks the title up and classifies the outcome: a
// numeric rating, a rating the upstream does not carry, or a title the
// upstream does not know.
func (c *Client) FetchMovieByImdbID(ctx context.Context, imdbID string) (*Movie, models.RatingResult, error) {
	if strings.TrimSpace(imdbID) == "" {
		return nil, models.RatingResult{Status: models.RatingNoExternalID}, nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, models.RatingResult{}, err
	}

	params := url.Values{}
	params.Set("i", imdbID)
	params.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/?"+params.Encode(), nil)
	if err != nil {
		return nil, models.RatingResult{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, models.RatingResult{}, fmt.Errorf("omdb request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, models.RatingResult{}, fmt.Errorf("omdb request failed: status %d", resp.StatusCode)
	}

	var movie Movie
	if err := json.NewDecoder(resp.Body).Decode(&movie); err != nil {
		return nil, models.RatingResult{}, fmt.Errorf("omdb response decode: %w", err)
	}

	if movie.Response == "False" {
		return nil, models.RatingResult{Status: models.RatingNotFound}, nil
	}

	rating, err := strconv.ParseFloat(movie.ImdbRating, 64)
	if err != nil {
		// "N/A" or empty: the upstream knows the title but has no rating.
		return &movie, models.RatingResult{Status: models.RatingUnavailable}, nil
	}
	return &movie, models.RatingResult{Status: models.Rated, Value: rating}, nil
}
