package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/macaris64/lumgoo-backend/database"
	"github.com/macaris64/lumgoo-backend/models"
	"github.com/macaris64/lumgoo-backend/utils"
)

// CreateOrUpdateMovie reconciles a candidate against the movies collection
// by title or derived slug. On a match every candidate field except the
// title and slug is overlaid onto the stored record; otherwise a new record
// is inserted.
func (s *Store) CreateOrUpdateMovie(ctx context.Context, movie *models.Movie) (*models.Movie, error) {
	if movie == nil {
		return nil, utils.BadRequest("Movie object is required")
	}
	if movie.Title == "" {
		return nil, utils.ValidationError("Title is required")
	}
	movie.Slug = utils.GetSlug(movie.Title)

	coll := s.db.Collection(database.MoviesCollection)

	var existing models.Movie
	err := coll.FindOne(ctx, bson.M{"$or": []bson.M{
		{"title": movie.Title},
		{"slug": movie.Slug},
	}}).Decode(&existing)

	switch {
	case err == nil:
		update := movieUpdateDoc(movie)
		update["modifiedAt"] = time.Now().UTC()
		// Reconciling a soft-deleted record revives it.
		update["isDeleted"] = false

		var updated models.Movie
		err := coll.FindOneAndUpdate(ctx,
			bson.M{"_id": existing.ID},
			bson.M{"$set": update, "$unset": bson.M{"deletedAt": ""}},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&updated)
		if err != nil {
			return nil, classifyStoreError(err)
		}
		return &updated, nil

	case errors.Is(err, mongo.ErrNoDocuments):
		s.applyMovieDefaults(movie)
		if err := s.validate.Struct(movie); err != nil {
			return nil, utils.ValidationError("Validation Error")
		}
		res, err := coll.InsertOne(ctx, movie)
		if err != nil {
			return nil, classifyStoreError(err)
		}
		if id, ok := res.InsertedID.(bson.ObjectID); ok {
			movie.ID = id
		}
		return movie, nil

	default:
		return nil, utils.InternalError("Internal Server Error")
	}
}

// SetMovieActors replaces the movie's actor links, but only when the new
// resolution produced strictly more links than are stored. A partial cast
// lookup must not shrink an existing cast list.
func (s *Store) SetMovieActors(ctx context.Context, movie *models.Movie, links []models.ActorLink) error {
	if len(links) <= len(movie.Actors) {
		return nil
	}
	coll := s.db.Collection(database.MoviesCollection)
	_, err := coll.UpdateOne(ctx,
		bson.M{"_id": movie.ID},
		bson.M{"$set": bson.M{"actors": links, "modifiedAt": time.Now().UTC()}},
	)
	if err != nil {
		return classifyStoreError(err)
	}
	movie.Actors = links
	return nil
}

// AllMovies returns every non-deleted movie in insertion order; the ratings
// backfill walks this.
func (s *Store) AllMovies(ctx context.Context) ([]models.Movie, error) {
	coll := s.db.Collection(database.MoviesCollection)
	cursor, err := coll.Find(ctx, bson.M{"isDeleted": bson.M{"$ne": true}})
	if err != nil {
		return nil, classifyStoreError(err)
	}
	defer cursor.Close(ctx)

	var movies []models.Movie
	if err := cursor.All(ctx, &movies); err != nil {
		return nil, utils.InternalError("Internal Server Error")
	}
	return movies, nil
}

func (s *Store) applyMovieDefaults(movie *models.Movie) {
	now := time.Now().UTC()
	movie.CreatedAt = now
	movie.ModifiedAt = now
	if movie.Genre == nil {
		movie.Genre = []bson.ObjectID{}
	}
	if movie.Actors == nil {
		movie.Actors = []models.ActorLink{}
	}
	if movie.Director == nil {
		movie.Director = []string{}
	}
	if movie.Images == nil {
		movie.Images = []string{}
	}
	if movie.Country == nil {
		movie.Country = []string{}
	}
}

// movieUpdateDoc collects the candidate's populated fields, leaving the
// natural key, slug, and id alone. Zero values mean "not supplied" and are
// skipped, matching partial-overlay reconciliation.
func movieUpdateDoc(m *models.Movie) bson.M {
	update := bson.M{}
	if m.ImdbID != "" {
		update["imdbId"] = m.ImdbID
	}
	if len(m.Genre) > 0 {
		update["genre"] = m.Genre
	}
	if len(m.Actors) > 0 {
		update["actors"] = m.Actors
	}
	if m.ImdbRating != 0 {
		update["imdbRating"] = m.ImdbRating
	}
	if len(m.Director) > 0 {
		update["director"] = m.Director
	}
	if m.Plot != "" {
		update["plot"] = m.Plot
	}
	if len(m.Images) > 0 {
		update["images"] = m.Images
	}
	if m.Release != nil {
		update["releaseDate"] = m.Release
	}
	if m.Runtime != "" {
		update["runtime"] = m.Runtime
	}
	if len(m.Country) > 0 {
		update["country"] = m.Country
	}
	if m.Language != "" {
		update["language"] = m.Language
	}
	if m.Budget != 0 {
		update["budget"] = m.Budget
	}
	if m.BoxOffice != 0 {
		update["boxOffice"] = m.BoxOffice
	}
	if m.MpaaRating != "" {
		update["mpaaRating"] = m.MpaaRating
	}
	if len(m.MusicBy) > 0 {
		update["musicBy"] = m.MusicBy
	}
	if len(m.ScreenplayBy) > 0 {
		update["screenplayBy"] = m.ScreenplayBy
	}
	if len(m.CinematographyBy) > 0 {
		update["cinematographyBy"] = m.CinematographyBy
	}
	if len(m.EditedBy) > 0 {
		update["editedBy"] = m.EditedBy
	}
	if len(m.VisualEffectsBy) > 0 {
		update["visualEffectsBy"] = m.VisualEffectsBy
	}
	if len(m.ProductionCompanies) > 0 {
		update["productionCompanies"] = m.ProductionCompanies
	}
	if len(m.DistributionCompanies) > 0 {
		update["distributionCompanies"] = m.DistributionCompanies
	}
	if m.OfficialWebsite != "" {
		update["officialWebsite"] = m.OfficialWebsite
	}
	if m.TrailerURL != "" {
		update["trailerUrl"] = m.TrailerURL
	}
	if len(m.StreamingAvailability) > 0 {
		update["streamingAvailability"] = m.StreamingAvailability
	}
	return update
}
