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

// CreateOrUpdateGenre reconciles a candidate against the genres collection
// by name or derived slug.
func (s *Store) CreateOrUpdateGenre(ctx context.Context, genre *models.Genre) (*models.Genre, error) {
	if genre == nil {
		return nil, utils.BadRequest("Genre object is required")
	}
	if genre.Name == "" {
		return nil, utils.ValidationError("Name is required")
	}
	genre.Slug = utils.GetSlug(genre.Name)

	coll := s.db.Collection(database.GenresCollection)

	var existing models.Genre
	err := coll.FindOne(ctx, bson.M{"$or": []bson.M{
		{"name": genre.Name},
		{"slug": genre.Slug},
	}}).Decode(&existing)

	switch {
	case err == nil:
		update := bson.M{"modifiedAt": time.Now().UTC(), "isDeleted": false}
		if genre.TheMovieDbID != 0 {
			update["theMovieDbId"] = genre.TheMovieDbID
		}

		var updated models.Genre
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
		now := time.Now().UTC()
		genre.CreatedAt = now
		genre.ModifiedAt = now
		if err := s.validate.Struct(genre); err != nil {
			return nil, utils.ValidationError("Validation Error")
		}
		res, err := coll.InsertOne(ctx, genre)
		if err != nil {
			return nil, classifyStoreError(err)
		}
		if id, ok := res.InsertedID.(bson.ObjectID); ok {
			genre.ID = id
		}
		return genre, nil

	default:
		return nil, utils.InternalError("Internal Server Error")
	}
}

// GenreByName looks a genre up by exact name, creating it when absent.
func (s *Store) GenreByName(ctx context.Context, name string) (*models.Genre, error) {
	if name == "" {
		return nil, utils.BadRequest("Genre name is required")
	}
	coll := s.db.Collection(database.GenresCollection)

	var genre models.Genre
	err := coll.FindOne(ctx, bson.M{"name": name}).Decode(&genre)
	if err == nil {
		return &genre, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.InternalError("Internal Server Error")
	}
	return s.CreateOrUpdateGenre(ctx, &models.Genre{Name: name})
}

// GenreByTMDBID translates an external metadata-API genre id into a catalog
// genre, creating one on first sight.
func (s *Store) GenreByTMDBID(ctx context.Context, tmdbID int64, name string) (*models.Genre, error) {
	coll := s.db.Collection(database.GenresCollection)

	var genre models.Genre
	err := coll.FindOne(ctx, bson.M{"theMovieDbId": tmdbID}).Decode(&genre)
	if err == nil {
		return &genre, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.InternalError("Internal Server Error")
	}
	return s.CreateOrUpdateGenre(ctx, &models.Genre{Name: name, TheMovieDbID: tmdbID})
}

// ResolveGenres maps genre names to catalog ids, creating unseen genres.
func (s *Store) ResolveGenres(ctx context.Context, names []string) ([]bson.ObjectID, error) {
	ids := make([]bson.ObjectID, 0, len(names))
	for _, name := range names {
		genre, err := s.GenreByName(ctx, name)
		if err != nil {
			return nil, err
		}
		ids = append(ids, genre.ID)
	}
	return ids, nil
}
