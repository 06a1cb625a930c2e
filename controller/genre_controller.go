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

func (ctl *Controller) CreateGenre(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	var genre models.Genre
	if err := c.ShouldBindJSON(&genre); err != nil {
		abortWithError(c, utils.ValidationError("Validation Error"))
		return
	}
	genre.Slug = utils.GetSlug(genre.Name)

	coll := ctl.DB.Collection(database.GenresCollection)
	count, err := coll.CountDocuments(ctx, bson.M{"$or": []bson.M{
		{"name": genre.Name},
		{"slug": genre.Slug},
	}})
	if err != nil {
		abortWithError(c, utils.InternalError("Internal Server Error"))
		return
	}
	if count > 0 {
		abortWithError(c, utils.Conflict("Genre already exists"))
		return
	}

	now := time.Now().UTC()
	genre.CreatedAt = now
	genre.ModifiedAt = now

	res, err := coll.InsertOne(ctx, genre)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			abortWithError(c, utils.Conflict("Genre already exists"))
			return
		}
		abortWithError(c, utils.InternalError("Internal Server Error"))
		return
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		genre.ID = id
	}
	c.JSON(http.StatusCreated, genre)
}

func (ctl *Controller) GetGenres(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	skip, limit := pagination(c)
	cursor, err := ctl.DB.Collection(database.GenresCollection).Find(ctx,
		bson.M{"isDeleted": bson.M{"$ne": true}},
		options.Find().SetSkip(skip).SetLimit(limit).SetSort(bson.D{{Key: "_id", Value: 1}}),
	)
	if err != nil {
		abortWithError(c, utils.InternalError("Internal Server Error"))
		return
	}
	defer cursor.Close(ctx)

	genres := []models.Genre{}
	if err := cursor.All(ctx, &genres); err != nil {
		abortWithError(c, utils.InternalError("Internal Server Error"))
		return
	}
	c.JSON(http.StatusOK, genres)
}

func (ctl *Controller) GetGenreByID(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	id, err := objectIDParam(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	var genre models.Genre
	err = ctl.DB.Collection(database.GenresCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&genre)
	if errors.Is(err, mongo.ErrNoDocuments) {
		abortWithError(c, utils.NotFound("Genre not found"))
		return
	}
	if err != nil {
		abortWithError(c, utils.InternalError("Internal Server Error"))
		return
	}
	c.JSON(http.StatusOK, genre)
}

func (ctl *Controller) UpdateGenre(c *gin.Context) {
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
	delete(fields, "_id")
	delete(fields, "slug")
	delete(fields, "createdAt")
	fields["modifiedAt"] = time.Now().UTC()

	var genre models.Genre
	err = ctl.DB.Collection(database.GenresCollection).FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&genre)
	if errors.Is(err, mongo.ErrNoDocuments) {
		abortWithError(c, utils.NotFound("Genre not found"))
		return
	}
	if err != nil {
		abortWithError(c, utils.InternalError("Internal Server Error"))
		return
	}
	c.JSON(http.StatusOK, genre)
}

func (ctl *Controller) DeleteGenre(c *gin.Context) {
	ctl.softDelete(c, database.GenresCollection, "Genre not found")
}
