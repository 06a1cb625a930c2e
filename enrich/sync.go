// Package enrich runs the catalog's ingestion pipelines against the
// external metadata and ratings APIs. Pages are walked sequentially; the
// work for one page fans out over a bounded worker group that is joined
// before the next page starts. Item failures are logged and skipped.
package enrich

import (
	"context"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/sync/errgroup"

	"github.com/macaris64/lumgoo-backend/models"
	"github.com/macaris64/lumgoo-backend/omdb"
	"github.com/macaris64/lumgoo-backend/tmdb"
	"github.com/macaris64/lumgoo-backend/utils"
)

const posterBaseURL = "https://image.tmdb.org/t/p/w500"

// defaultWorkers bounds the per-page fan-out.
const defaultWorkers = 4

// Catalog is the slice of the store the pipelines need.
type Catalog interface {
	CreateOrUpdateMovie(ctx context.Context, movie *models.Movie) (*models.Movie, error)
	GenreByTMDBID(ctx context.Context, tmdbID int64, name string) (*models.Genre, error)
	ResolveActors(ctx context.Context, cast map[string]string) []models.ActorLink
	SetMovieActors(ctx context.Context, movie *models.Movie, links []models.ActorLink) error
	AllMovies(ctx context.Context) ([]models.Movie, error)
}

type Syncer struct {
	tmdb    tmdb.API
	omdb    omdb.API
	catalog Catalog
	log     zerolog.Logger
	workers int
}

func NewSyncer(tmdbAPI tmdb.API, omdbAPI omdb.API, catalog Catalog, log zerolog.Logger) *Syncer {
	return &Syncer{
		tmdb:    tmdbAPI,
		omdb:    omdbAPI,
		catalog: catalog,
		log:     log.With().Str("component", "enrich").Logger(),
		workers: defaultWorkers,
	}
}

// SyncNowPlaying ingests the whole now-playing listing starting at page 1.
// It returns the number of listing entries visited.
func (s *Syncer) SyncNowPlaying(ctx context.Context) (int, error) {
	return s.syncListing(ctx, s.tmdb.NowPlaying, 1)
}

// SyncTopRated ingests the top-rated listing. startPage resumes a partial
// run; the cursor is not persisted, a crash loses it.
func (s *Syncer) SyncTopRated(ctx context.Context, startPage int) (int, error) {
	return s.syncListing(ctx, s.tmdb.TopRated, startPage)
}

func (s *Syncer) syncListing(ctx context.Context, fetch func(context.Context, int) (*tmdb.Page, error), startPage int) (int, error) {
	if startPage < 1 {
		startPage = 1
	}

	page, err := fetch(ctx, startPage)
	if err != nil {
		return 0, utils.UpstreamError("Failed to fetch movie listing")
	}

	processed := 0
	totalPages := page.TotalPages

	for n := startPage; n <= totalPages; n++ {
		if n > startPage {
			page, err = fetch(ctx, n)
			if err != nil {
				s.log.Error().Err(err).Int("page", n).Msg("failed to fetch listing page, skipping")
				continue
			}
		}

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(s.workers)
		for _, result := range page.Results {
			result := result
			g.Go(func() error {
				s.processResult(gctx, result)
				return nil
			})
		}
		// Workers never return errors; Wait is purely the join point
		// before the page advances.
		_ = g.Wait()

		processed += len(page.Results)
		if ctx.Err() != nil {
			return processed, ctx.Err()
		}
	}
	return processed, nil
}

// processResult turns one listing entry into a reconciled catalog movie:
// summary fields first, then detail, ratings, and credits enrichment, each
// best effort.
func (s *Syncer) processResult(ctx context.Context, summary tmdb.MovieSummary) {
	movie := &models.Movie{
		Title: summary.Title,
		Plot:  summary.Overview,
	}
	if summary.PosterPath != "" {
		movie.Images = []string{posterBaseURL + summary.PosterPath}
	}
	if release := parseDate(summary.ReleaseDate); release != nil {
		movie.Release = release
	}

	detail, err := s.tmdb.GetMovieByID(ctx, summary.ID)
	if err != nil {
		s.log.Warn().Err(err).Str("title", summary.Title).Msg("detail fetch failed, ingesting summary only")
	} else {
		s.applyDetail(ctx, movie, detail)
	}

	if movie.ImdbID == "" {
		movie.ImdbRating = models.RatingResult{Status: models.RatingNoExternalID}.Encode()
	} else {
		_, rating, err := s.omdb.FetchMovieByImdbID(ctx, movie.ImdbID)
		if err != nil {
			s.log.Warn().Err(err).Str("title", summary.Title).Msg("ratings lookup failed")
		} else {
			movie.ImdbRating = rating.Encode()
		}
	}

	persisted, err := s.catalog.CreateOrUpdateMovie(ctx, movie)
	if err != nil {
		s.log.Error().Err(err).Str("title", summary.Title).Msg("failed to reconcile movie")
		return
	}

	s.applyCredits(ctx, persisted, summary.ID)
}

func (s *Syncer) applyDetail(ctx context.Context, movie *models.Movie, detail *tmdb.MovieDetails) {
	movie.ImdbID = detail.ImdbID
	movie.Language = detail.OriginalLanguage
	movie.OfficialWebsite = detail.Homepage
	movie.Budget = detail.Budget
	movie.BoxOffice = detail.Revenue
	if detail.Runtime > 0 {
		movie.Runtime = strconv.Itoa(detail.Runtime)
	}
	for _, country := range detail.ProductionCountries {
		movie.Country = append(movie.Country, country.Name)
	}

	genreIDs := make([]bson.ObjectID, 0, len(detail.Genres))
	for _, ref := range detail.Genres {
		genre, err := s.catalog.GenreByTMDBID(ctx, ref.ID, ref.Name)
		if err != nil {
			s.log.Error().Err(err).Str("genre", ref.Name).Msg("failed to resolve genre")
			continue
		}
		genreIDs = append(genreIDs, genre.ID)
	}
	movie.Genre = genreIDs
}

func (s *Syncer) applyCredits(ctx context.Context, movie *models.Movie, tmdbID int64) {
	credits, err := s.tmdb.GetMovieCreditsByID(ctx, tmdbID)
	if err != nil {
		s.log.Warn().Err(err).Str("title", movie.Title).Msg("credits fetch failed")
		return
	}
	if len(credits.Cast) == 0 {
		return
	}

	cast := make(map[string]string, len(credits.Cast))
	for _, member := range credits.Cast {
		cast[member.Name] = member.Character
	}

	links := s.catalog.ResolveActors(ctx, cast)
	if err := s.catalog.SetMovieActors(ctx, movie, links); err != nil {
		s.log.Error().Err(err).Str("title", movie.Title).Msg("failed to update movie cast")
	}
}

// SetImdbValues backfills ratings for every stored movie. Movies without an
// IMDB id get the no-external-id marker rather than being skipped silently.
func (s *Syncer) SetImdbValues(ctx context.Context) (int, error) {
	movies, err := s.catalog.AllMovies(ctx)
	if err != nil {
		return 0, err
	}

	updated := 0
	for i := range movies {
		movie := &movies[i]

		var rating models.RatingResult
		if movie.ImdbID == "" {
			rating = models.RatingResult{Status: models.RatingNoExternalID}
		} else {
			_, rating, err = s.omdb.FetchMovieByImdbID(ctx, movie.ImdbID)
			if err != nil {
				s.log.Warn().Err(err).Str("title", movie.Title).Msg("ratings lookup failed, skipping")
				continue
			}
		}

		candidate := &models.Movie{Title: movie.Title, ImdbRating: rating.Encode()}
		if _, err := s.catalog.CreateOrUpdateMovie(ctx, candidate); err != nil {
			s.log.Error().Err(err).Str("title", movie.Title).Msg("failed to store rating")
			continue
		}
		updated++

		if ctx.Err() != nil {
			return updated, ctx.Err()
		}
	}
	return updated, nil
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}
