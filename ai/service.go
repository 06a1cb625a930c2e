// Package ai adapts the chat-completion API into structured catalog
// operations: title recommendations from a facet filter, and full movie
// drafts from a title list. Both double as ingestion paths: every parsed
// result is reconciled into the catalog.
package ai

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/rs/zerolog"
	"github.com/tmc/langchaingo/llms"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/macaris64/lumgoo-backend/models"
	"github.com/macaris64/lumgoo-backend/utils"
)

// Catalog is the slice of the store the adapter needs.
type Catalog interface {
	CreateOrUpdateMovie(ctx context.Context, movie *models.Movie) (*models.Movie, error)
	ResolveGenres(ctx context.Context, names []string) ([]bson.ObjectID, error)
	ResolveActors(ctx context.Context, cast map[string]string) []models.ActorLink
	SetMovieActors(ctx context.Context, movie *models.Movie, links []models.ActorLink) error
}

type Service struct {
	llm     llms.Model
	catalog Catalog
	log     zerolog.Logger
}

func NewService(llm llms.Model, catalog Catalog, log zerolog.Logger) *Service {
	return &Service{
		llm:     llm,
		catalog: catalog,
		log:     log.With().Str("component", "ai").Logger(),
	}
}

func (s *Service) chatCompletion(ctx context.Context, system, user string, maxTokens int) (string, error) {
	resp, err := s.llm.GenerateContent(ctx,
		[]llms.MessageContent{
			llms.TextParts(llms.ChatMessageTypeSystem, system),
			llms.TextParts(llms.ChatMessageTypeHuman, user),
		},
		llms.WithMaxTokens(maxTokens),
	)
	if err != nil {
		return "", utils.UpstreamError("Failed to call OpenAI")
	}
	if resp == nil || len(resp.Choices) == 0 || resp.Choices[0].Content == "" {
		return "", utils.ParseError("Invalid response from OpenAI")
	}
	return strings.TrimSpace(resp.Choices[0].Content), nil
}

// Recommend returns movie titles matching the facet filter. Each title is
// also reconciled as a stub movie so recommendations seed the catalog.
func (s *Service) Recommend(ctx context.Context, filter map[string]any, slim bool) ([]string, error) {
	var userMessage string
	if slim {
		raw, err := json.Marshal(filter)
		if err != nil {
			return nil, utils.BadRequest("Invalid filter")
		}
		userMessage = string(raw)
	} else {
		if err := ValidateMovieFilter(filter); err != nil {
			return nil, err
		}
		transformed, err := TransformMovieFilter(filter)
		if err != nil {
			return nil, utils.BadRequest("Invalid filter")
		}
		userMessage = transformed
	}

	raw, err := s.chatCompletion(ctx, movieRecommendationsSystemMessage, userMessage, recommendationTokenBudget)
	if err != nil {
		return nil, err
	}

	titles, err := parseTitles(raw)
	if err != nil {
		return nil, utils.ParseError("Invalid response format from OpenAI")
	}

	for _, title := range titles {
		if _, err := s.catalog.CreateOrUpdateMovie(ctx, &models.Movie{Title: title}); err != nil {
			s.log.Error().Err(err).Str("title", title).Msg("failed to ingest recommended movie")
		}
	}
	return titles, nil
}

// DescribeMovies asks the chat model for full drafts of the given titles,
// then expands and reconciles each one. Per-draft failures are logged and
// skipped.
func (s *Service) DescribeMovies(ctx context.Context, titles []string) ([]MovieDraft, error) {
	if len(titles) == 0 {
		return nil, utils.BadRequest("movieTitles is required")
	}

	raw, err := s.chatCompletion(ctx, moviesDataSystemMessage, strings.Join(titles, ", "), moviesDataTokenBudget)
	if err != nil {
		return nil, err
	}

	drafts, err := parseDrafts(raw)
	if err != nil {
		return nil, utils.ParseError("Invalid response format from OpenAI")
	}

	for _, draft := range drafts {
		if err := s.ingestDraft(ctx, draft); err != nil {
			s.log.Error().Err(err).Str("title", draft.Name).Msg("failed to ingest movie draft")
		}
	}
	return drafts, nil
}

func (s *Service) ingestDraft(ctx context.Context, draft MovieDraft) error {
	movie := draft.toMovie()

	if len(draft.Genre) > 0 {
		genreIDs, err := s.catalog.ResolveGenres(ctx, draft.Genre)
		if err != nil {
			return err
		}
		movie.Genre = genreIDs
	}

	persisted, err := s.catalog.CreateOrUpdateMovie(ctx, movie)
	if err != nil {
		return err
	}

	if len(draft.Actors) > 0 {
		links := s.catalog.ResolveActors(ctx, draft.Actors)
		if err := s.catalog.SetMovieActors(ctx, persisted, links); err != nil {
			return err
		}
	}
	return nil
}
