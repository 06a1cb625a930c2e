package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/macaris64/lumgoo-backend/models"
	"github.com/macaris64/lumgoo-backend/utils"
)

type fakeLLM struct {
	response string
	err      error
	calls    int
}

func (f *fakeLLM) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: f.response}},
	}, nil
}

func (f *fakeLLM) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	f.calls++
	return f.response, f.err
}

type fakeCatalog struct {
	movies map[string]*models.Movie
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{movies: map[string]*models.Movie{}}
}

func (f *fakeCatalog) CreateOrUpdateMovie(ctx context.Context, movie *models.Movie) (*models.Movie, error) {
	if movie == nil || movie.Title == "" {
		return nil, utils.BadRequest("Movie object is required")
	}
	if existing, ok := f.movies[movie.Title]; ok {
		movie.ID = existing.ID
	} else {
		movie.ID = bson.NewObjectID()
	}
	f.movies[movie.Title] = movie
	return movie, nil
}

func (f *fakeCatalog) ResolveGenres(ctx context.Context, names []string) ([]bson.ObjectID, error) {
	ids := make([]bson.ObjectID, len(names))
	for i := range names {
		ids[i] = bson.NewObjectID()
	}
	return ids, nil
}

func (f *fakeCatalog) ResolveActors(ctx context.Context, cast map[string]string) []models.ActorLink {
	links := make([]models.ActorLink, 0, len(cast))
	for _, character := range cast {
		links = append(links, models.ActorLink{ActorID: bson.NewObjectID(), CharacterName: character})
	}
	return links
}

func (f *fakeCatalog) SetMovieActors(ctx context.Context, movie *models.Movie, links []models.ActorLink) error {
	if len(links) > len(movie.Actors) {
		movie.Actors = links
	}
	return nil
}

func newTestService(llm llms.Model, catalog Catalog) *Service {
	return NewService(llm, catalog, zerolog.Nop())
}

func TestRecommendParsesAndIngests(t *testing.T) {
	llm := &fakeLLM{response: `['The Matrix', 'Inception']`}
	catalog := newFakeCatalog()
	svc := newTestService(llm, catalog)

	titles, err := svc.Recommend(context.Background(), map[string]any{"genre": []any{"Sci-Fi"}}, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"The Matrix", "Inception"}, titles)

	// Recommendations double as ingestion.
	assert.Contains(t, catalog.movies, "The Matrix")
	assert.Contains(t, catalog.movies, "Inception")
}

func TestRecommendInvalidFilterSkipsUpstream(t *testing.T) {
	llm := &fakeLLM{response: `[]`}
	svc := newTestService(llm, newFakeCatalog())

	_, err := svc.Recommend(context.Background(), map[string]any{"badKey": []any{"x"}}, false)
	require.Error(t, err)
	assert.Equal(t, 400, utils.AsAPIError(err).Status)
	assert.Zero(t, llm.calls, "no external call may precede filter validation")
}

func TestRecommendSlimSkipsValidation(t *testing.T) {
	llm := &fakeLLM{response: `['Alien']`}
	svc := newTestService(llm, newFakeCatalog())

	titles, err := svc.Recommend(context.Background(), map[string]any{"badKey": "whatever"}, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alien"}, titles)
}

func TestRecommendUpstreamFailure(t *testing.T) {
	llm := &fakeLLM{err: errors.New("boom")}
	svc := newTestService(llm, newFakeCatalog())

	_, err := svc.Recommend(context.Background(), map[string]any{"genre": []any{"Sci-Fi"}}, false)
	require.Error(t, err)
	assert.Equal(t, 500, utils.AsAPIError(err).Status)
}

func TestRecommendUnparseableResponse(t *testing.T) {
	llm := &fakeLLM{response: `here are some movies you might like`}
	svc := newTestService(llm, newFakeCatalog())

	_, err := svc.Recommend(context.Background(), map[string]any{"genre": []any{"Sci-Fi"}}, false)
	require.Error(t, err)
	assert.Equal(t, 500, utils.AsAPIError(err).Status)
}

func TestDescribeMoviesEmptyTitles(t *testing.T) {
	svc := newTestService(&fakeLLM{}, newFakeCatalog())

	_, err := svc.DescribeMovies(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, 400, utils.AsAPIError(err).Status)
}

func TestDescribeMoviesIngestsDrafts(t *testing.T) {
	llm := &fakeLLM{response: `[{"name": "Interstellar", "genre": ["Sci-Fi"], "imdbId": "tt0816692", "year": 2014, "imdbRating": 8.6, "director": ["Christopher Nolan"], "runtime": 169, "actors": {"Matthew McConaughey": "Cooper"}}]`}
	catalog := newFakeCatalog()
	svc := newTestService(llm, catalog)

	drafts, err := svc.DescribeMovies(context.Background(), []string{"Interstellar"})
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "Interstellar", drafts[0].Name)

	movie, ok := catalog.movies["Interstellar"]
	require.True(t, ok)
	assert.Equal(t, "tt0816692", movie.ImdbID)
	assert.Equal(t, 8.6, movie.ImdbRating)
	assert.Equal(t, "169", movie.Runtime)
	require.NotNil(t, movie.Release)
	assert.Equal(t, 2014, movie.Release.Year())
	assert.Len(t, movie.Actors, 1)
}

func TestDescribeMoviesQuotedYear(t *testing.T) {
	llm := &fakeLLM{response: `[{"name": "Heat", "year": "1995"}]`}
	catalog := newFakeCatalog()
	svc := newTestService(llm, catalog)

	drafts, err := svc.DescribeMovies(context.Background(), []string{"Heat"})
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	require.NotNil(t, catalog.movies["Heat"].Release)
	assert.Equal(t, 1995, catalog.movies["Heat"].Release.Year())
}
