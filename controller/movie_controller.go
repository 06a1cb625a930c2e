package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/macaris64/lumgoo-backend/database"
	"github.com/macaris64/lumgoo-backend/models"
	"github.com/macaris64/lumgoo-backend/utils"
)

func (ctl *Controller) CreateMovie(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	var movie models.Movie
	if err := c.ShouldBindJSON(&movie); err != nil {
		abortWithError(c, utils.ValidationError("Validation Error"))
		return
	}
	movie.Slug = utils.GetSlug(movie.Title)

	coll := ctl.DB.Collection(database.MoviesCollection)
	count, err := coll.CountDocuments(ctx, bson.M{"$or": []bson.M{
		{"title": movie.Title},
		{"slug": movie.Slug},
	}})
	if err != nil {
		abortWithError(c, utils.InternalError("Internal Server Error"))
		return
	}
	if count > 0 {
		abortWithError(c, utils.Conflict("Movie already exists"))
		return
	}

	now := time.Now().UTC()
	movie.CreatedAt = now
	movie.ModifiedAt = now
	if movie.Genre == nil {
		movie.Genre = []bson.ObjectID{}
	}
	if movie.Actors == nil {
		movie.Actors = []models.ActorLink{}
	}

	res, err := coll.InsertOne(ctx, movie)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			abortWithError(c, utils.Conflict("Movie already exists"))
			return
		}
		abortWithError(c, utils.InternalError("Internal Server Error"))
		return
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		movie.ID = id
	}
	c.JSON(http.StatusCreated, movie)
}

func (ctl *Controller) GetMovies(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	skip, limit := pagination(c)
	coll := ctl.DB.Collection(database.MoviesCollection)

	cursor, err := coll.Find(ctx,
		bson.M{"isDeleted": bson.M{"$ne": true}},
		options.Find().SetSkip(skip).SetLimit(limit).SetSort(bson.D{{Key: "_id", Value: 1}}),
	)
	if err != nil {
		abortWithError(c, utils.InternalError("Internal Server Error"))
		return
	}
	defer cursor.Close(ctx)

	movies := []models.Movie{}
	if err := cursor.All(ctx, &movies); err != nil {
		abortWithError(c, utils.InternalError("Internal Server Error"))
		return
	}
	c.JSON(http.StatusOK, movies)
}

func (ctl *Controller) GetMovieByID(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	id, err := objectIDParam(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	var movie models.Movie
	err = ctl.DB.Collection(database.MoviesCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&movie)
	if errors.Is(err, mongo.ErrNoDocuments) {
		abortWithError(c, utils.NotFound("Movie not found"))
		return
	}
	if err != nil {
		abortWithError(c, utils.InternalError("Internal Server Error"))
		return
	}
	c.JSON(http.StatusOK, movie)
}

func (ctl *Controller) UpdateMovie(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	id, err := objectIDParam(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		abortWithError(c, utils.ValidationError("Validation Error"))
		return
	}
	// The id and slug are never client-settable.
	delete(fields, "_id")
	delete(fields, "slug")
	delete(fields, "createdAt")
	fields["modifiedAt"] = time.Now().UTC()

	var movie models.Movie
	err = ctl.DB.Collection(database.MoviesCollection).FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&movie)
	if errors.Is(err, mongo.ErrNoDocuments) {
		abortWithError(c, utils.NotFound("Movie not found"))
		return
	}
	if err != nil {
		abortWithError(c, utils.InternalError("Internal Server Error"))
		return
	}
	c.JSON(http.StatusOK, movie)
}

func (ctl *Controller) DeleteMovie(c *gin.Context) {
	ctl.softDelete(c, database.MoviesCollection, "Movie not found")
}

// SearchMovies filters by title keyword, genre reference, and actor
// reference. No matches is a 404, not an empty list.
func (ctl *Controller) SearchMovies(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	filter := bson.M{"isDeleted": bson.M{"$ne": true}}
	if keyword := c.Query("keyword"); keyword != "" {
		filter["title"] = bson.M{"$regex": keyword, "$options": "i"}
	}
	if genreID := c.Query("genreId"); genreID != "" {
		id, err := bson.ObjectIDFromHex(genreID)
		if err != nil {
			abortWithError(c, utils.ValidationError("Invalid ID"))
			return
		}
		filter["genre"] = id
	}
	if actorID := c.Query("actorId"); actorID != "" {
		id, err := bson.ObjectIDFromHex(actorID)
		if err != nil {
			abortWithError(c, utils.ValidationError("Invalid ID"))
			return
		}
		filter["actors.actorId"] = id
	}

	skip, limit := pagination(c)
	cursor, err := ctl.DB.Collection(database.MoviesCollection).Find(ctx, filter,
		options.Find().SetSkip(skip).SetLimit(limit).SetSort(bson.D{{Key: "_id", Value: 1}}),
	)
	if err != nil {
		abortWithError(c, utils.InternalError("Internal Server Error"))
		return
	}
	defer cursor.Close(ctx)

	movies := []models.Movie{}
	if err := cursor.All(ctx, &movies); err != nil {
		abortWithError(c, utils.InternalError("Internal Server Error"))
		return
	}
	if len(movies) == 0 {
		abortWithError(c, utils.NotFound("No movies found"))
		return
	}
	c.JSON(http.StatusOK, movies)
}

// objectIDParam validates the :id path parameter: absent is a 400,
// malformed is a 422.
func objectIDParam(c *gin.Context) (bson.ObjectID, error) {
	raw := c.Param("id")
	if raw == "" {
		return bson.ObjectID{}, utils.BadRequest("ID is required")
	}
	if !utils.IsValidID(raw) {
		return bson.ObjectID{}, utils.ValidationError("Invalid ID")
	}
	id, _ := bson.ObjectIDFromHex(raw)
	return id, nil
}

// softDelete marks the record deleted and answers 204. Deleting an
// already-deleted record succeeds again and refreshes deletedAt.
func (ctl *Controller) softDelete(c *gin.Context, collection, notFoundMsg string) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	id, err := objectIDParam(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	res, err := ctl.DB.Collection(collection).UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"isDeleted": true, "deletedAt": time.Now().UTC()}},
	)
	if err != nil {
		abortWithError(c, utils.InternalError("Internal Server Error"))
		return
	}
	if res.MatchedCount == 0 {
		abortWithError(c, utils.NotFound(notFoundMsg))
		return
	}
	c.Status(http.StatusNoContent)
}
