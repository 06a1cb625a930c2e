package tmdb_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macaris64/lumgoo-backend/tmdb"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *tmdb.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := tmdb.New("token", server.URL, tmdb.WithRequestDelay(time.Millisecond))
	require.NoError(t, err)
	return client
}

func TestNewRequiresToken(t *testing.T) {
	_, err := tmdb.New("", "https://example.com")
	assert.Error(t, err)

	_, err = tmdb.New("token", "")
	assert.Error(t, err)
}

func TestNowPlaying(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/now_playing", r.URL.Path)
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "en-US", r.URL.Query().Get("language"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"page":2,"results":[{"id":603,"title":"The Matrix","genre_ids":[878]}],"total_pages":5,"total_results":100}`))
	})

	page, err := client.NowPlaying(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 5, page.TotalPages)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "The Matrix", page.Results[0].Title)
	assert.Equal(t, []int64{878}, page.Results[0].GenreIDs)
}

func TestGetMovieByID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/603", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":603,"imdb_id":"tt0133093","title":"The Matrix","runtime":136,"genres":[{"id":878,"name":"Science Fiction"}],"production_countries":[{"name":"United States of America"}]}`))
	})

	details, err := client.GetMovieByID(context.Background(), 603)
	require.NoError(t, err)
	assert.Equal(t, "tt0133093", details.ImdbID)
	assert.Equal(t, 136, details.Runtime)
	require.Len(t, details.Genres, 1)
	assert.Equal(t, "Science Fiction", details.Genres[0].Name)
}

func TestGetMovieCreditsByID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/603/credits", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":603,"cast":[{"id":6384,"name":"Keanu Reeves","character":"Neo"}]}`))
	})

	credits, err := client.GetMovieCreditsByID(context.Background(), 603)
	require.NoError(t, err)
	require.Len(t, credits.Cast, 1)
	assert.Equal(t, "Neo", credits.Cast[0].Character)
}

func TestFetchHTTPError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.NowPlaying(context.Background(), 1)
	assert.Error(t, err)
}

func TestFetchRespectsContextCancel(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.NowPlaying(ctx, 1)
	assert.Error(t, err)
}
