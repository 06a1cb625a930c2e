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

// CreateOrUpdateActor reconciles a candidate against the actors collection
// by name or derived slug.
func (s *Store) CreateOrUpdateActor(ctx context.Context, actor *models.Actor) (*models.Actor, error) {
	if actor == nil {
		return nil, utils.BadRequest("Actor object is required")
	}
	if actor.Name == "" {
		return nil, utils.ValidationError("Name is required")
	}
	actor.Slug = utils.GetSlug(actor.Name)

	coll := s.db.Collection(database.ActorsCollection)

	var existing models.Actor
	err := coll.FindOne(ctx, bson.M{"$or": []bson.M{
		{"name": actor.Name},
		{"slug": actor.Slug},
	}}).Decode(&existing)

	switch {
	case err == nil:
		update := actorUpdateDoc(actor)
		update["modifiedAt"] = time.Now().UTC()
		update["isDeleted"] = false

		var updated models.Actor
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
		actor.CreatedAt = now
		actor.ModifiedAt = now
		if actor.Movies == nil {
			actor.Movies = []bson.ObjectID{}
		}
		if actor.Images == nil {
			actor.Images = []string{}
		}
		if err := s.validate.Struct(actor); err != nil {
			return nil, utils.ValidationError("Validation Error")
		}
		res, err := coll.InsertOne(ctx, actor)
		if err != nil {
			return nil, classifyStoreError(err)
		}
		if id, ok := res.InsertedID.(bson.ObjectID); ok {
			actor.ID = id
		}
		return actor, nil

	default:
		return nil, utils.InternalError("Internal Server Error")
	}
}

// ResolveActors reconciles each cast entry by name and returns the movie
// links. Individual failures are logged and skipped; a flaky person lookup
// must not sink the whole movie.
func (s *Store) ResolveActors(ctx context.Context, cast map[string]string) []models.ActorLink {
	links := make([]models.ActorLink, 0, len(cast))
	for name, character := range cast {
		actor, err := s.CreateOrUpdateActor(ctx, &models.Actor{Name: name})
		if err != nil {
			s.log.Error().Err(err).Str("actor", name).Msg("failed to resolve actor")
			continue
		}
		links = append(links, models.ActorLink{
			ActorID:       actor.ID,
			CharacterName: character,
		})
	}
	return links
}

func actorUpdateDoc(a *models.Actor) bson.M {
	update := bson.M{}
	if len(a.Movies) > 0 {
		update["movies"] = a.Movies
	}
	if len(a.Images) > 0 {
		update["images"] = a.Images
	}
	if a.Birthday != nil {
		update["birthday"] = a.Birthday
	}
	if a.Deathday != nil {
		update["deathday"] = a.Deathday
	}
	if a.Gender != "" {
		update["gender"] = a.Gender
	}
	if a.Country != "" {
		update["country"] = a.Country
	}
	if a.Height != 0 {
		update["height"] = a.Height
	}
	if a.Bio != "" {
		update["bio"] = a.Bio
	}
	if a.Rating != 0 {
		update["rating"] = a.Rating
	}
	if len(a.Awards) > 0 {
		update["awards"] = a.Awards
	}
	if len(a.PersonalQuotes) > 0 {
		update["personalQuotes"] = a.PersonalQuotes
	}
	if a.SocialMedia != nil {
		update["socialMedia"] = a.SocialMedia
	}
	return update
}
