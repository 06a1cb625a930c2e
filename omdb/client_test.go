package omdb_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macaris64/lumgoo-backend/models"
	"github.com/macaris64/lumgoo-backend/omdb"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *omdb.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := omdb.New("key", server.URL, omdb.WithRequestDelay(time.Millisecond))
	require.NoError(t, err)
	return client
}

func TestNewRequiresAPIKey(t *testing.T) {
	_, err := omdb.New("", "https://example.com")
	assert.Error(t, err)
}

func TestFetchMovieRated(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "tt0133093", r.URL.Query().Get("i"))
		assert.Equal(t, "key", r.URL.Query().Get("apikey"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Title":"The Matrix","imdbRating":"8.7","imdbID":"tt0133093","Response":"True"}`))
	})

	movie, rating, err := client.FetchMovieByImdbID(context.Background(), "tt0133093")
	require.NoError(t, err)
	require.NotNil(t, movie)
	assert.Equal(t, models.Rated, rating.Status)
	assert.Equal(t, 8.7, rating.Value)
}

func TestFetchMovieRatingUnavailable(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Title":"Obscurity","imdbRating":"N/A","Response":"True"}`))
	})

	_, rating, err := client.FetchMovieByImdbID(context.Background(), "tt9999999")
	require.NoError(t, err)
	assert.Equal(t, models.RatingUnavailable, rating.Status)
}

func TestFetchMovieNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Response":"False","Error":"Movie not found!"}`))
	})

	movie, rating, err := client.FetchMovieByImdbID(context.Background(), "tt0000000")
	require.NoError(t, err)
	assert.Nil(t, movie)
	assert.Equal(t, models.RatingNotFound, rating.Status)
}

func TestFetchMovieNoExternalID(t *testing.T) {
	called := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	movie, rating, err := client.FetchMovieByImdbID(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, movie)
	assert.Equal(t, models.RatingNoExternalID, rating.Status)
	assert.False(t, called, "no lookup should happen without an id")
}

func TestFetchMovieHTTPError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, _, err := client.FetchMovieByImdbID(context.Background(), "tt0133093")
	assert.Error(t, err)
}
