// Package tmdb provides the minimal metadata-API client used by the
// enrichment pipelines: paginated listings, movie details, credits, and
// person lookups. Every request is preceded by a fixed delay, the only rate
// limiting the upstream gets.
package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// MovieSummary is a single entry of a paginated listing.
type MovieSummary struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	ReleaseDate string  `json:"release_date"`
	PosterPath  string  `json:"poster_path"`
	GenreIDs    []int64 `json:"genre_ids"`
	VoteAverage float64 `json:"vote_average"`
}

// Page models the paginated listing response.
type Page struct {
	Page         int            `json:"page"`
	Results      []MovieSummary `json:"results"`
	TotalPages   int            `json:"total_pages"`
	TotalResults int            `json:"total_results"`
}

type GenreRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CountryRef struct {
	Name string `json:"name"`
}

// MovieDetails is the full movie payload.
type MovieDetails struct {
	ID                  int64        `json:"id"`
	ImdbID              string       `json:"imdb_id"`
	Title               string       `json:"title"`
	Overview            string       `json:"overview"`
	ReleaseDate         string       `json:"release_date"`
	PosterPath          string       `json:"poster_path"`
	Runtime             int          `json:"runtime"`
	Budget              float64      `json:"budget"`
	Revenue             float64      `json:"revenue"`
	OriginalLanguage    string       `json:"original_language"`
	Homepage            string       `json:"homepage"`
	Genres              []GenreRef   `json:"genres"`
	ProductionCountries []CountryRef `json:"production_countries"`
}

type CastMember struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path"`
}

type Credits struct {
	ID   int64        `json:"id"`
	Cast []CastMember `json:"cast"`
}

type Person struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Birthday    string `json:"birthday"`
	Deathday    string `json:"deathday"`
	Biography   string `json:"biography"`
	Gender      int    `json:"gender"`
	ProfilePath string `json:"profile_path"`
}

// API is the subset of the metadata service the enrichment pipelines use.
type API interface {
	NowPlaying(ctx context.Context, page int) (*Page, error)
	TopRated(ctx context.Context, page int) (*Page, error)
	GetMovieByID(ctx context.Context, id int64) (*MovieDetails, error)
	GetMovieCreditsByID(ctx context.Context, id int64) (*Credits, error)
	GetPersonByID(ctx context.Context, id int64) (*Person, error)
}

// Client talks to the metadata API over HTTP.
type Client struct {
	token      string
	baseURL    string
	language   string
	limiter    *rate.Limiter
	httpClient *http.Client
}

var _ API = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithRequestDelay sets the fixed pause before each request.
func WithRequestDelay(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.limiter = rate.NewLimiter(rate.Every(d), 1)
		}
	}
}

// New creates a metadata-API client.
func New(token, baseURL string, opts ...Option) (*Client, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, errors.New("tmdb access token required")
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("tmdb base url required")
	}
	client := &Client{
		token:      token,
		baseURL:    strings.TrimRight(baseURL, "/"),
		language:   "en-US",
		limiter:    rate.NewLimiter(rate.Every(2*time.Second), 1),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

func (c *Client) fetch(ctx context.Context, endpoint string, params url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("language", c.language)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/"+strings.TrimLeft(endpoint, "/")+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("tmdb request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("tmdb request failed: status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("tmdb response decode: %w", err)
	}
	return nil
}

// NowPlaying returns one page of the now-playing listing.
func (c *Client) NowPlaying(ctx context.Context, page int) (*Page, error) {
	return c.listing(ctx, "movie/now_playing", page)
}

// TopRated returns one page of the top-rated listing.
func (c *Client) TopRated(ctx context.Context, page int) (*Page, error) {
	return c.listing(ctx, "movie/top_rated", page)
}

func (c *Client) listing(ctx context.Context, endpoint string, page int) (*Page, error) {
	if page < 1 {
		page = 1
	}
	params := url.Values{}
	params.Set("page", fmt.Sprintf("%d", page))

	var result Page
	if err := c.fetch(ctx, endpoint, params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) GetMovieByID(ctx context.Context, id int64) (*MovieDetails, error) {
	var details MovieDetails
	if err := c.fetch(ctx, fmt.Sprintf("movie/%d", id), nil, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

func (c *Client) GetMovieCreditsByID(ctx context.Context, id int64) (*Credits, error) {
	var credits Credits
	if err := c.fetch(ctx, fmt.Sprintf("movie/%d/credits", id), nil, &credits); err != nil {
		return nil, err
	}
	return &credits, nil
}

func (c *Client) GetPersonByID(ctx context.Context, id int64) (*Person, error) {
	var person Person
	if err := c.fetch(ctx, fmt.Sprintf("person/%d", id), nil, &person); err != nil {
		return nil, err
	}
	return &person, nil
}
