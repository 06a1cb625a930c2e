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

func (ctl *Controller) CreateActor(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	var actor models.Actor
	if err := c.ShouldBindJSON(&actor); err != nil {
		abortWithError(c, utils.ValidationError("Validation Error"))
		return
	}
	actor.Slug = utils.GetSlug(actor.Name)

	coll := ctl.DB.Collection(database.ActorsCollection)
	count, err := coll.CountDocuments(ctx, bson.M{"$or": []bson.M{
		{"name": actor.Name},
		{"slug": actor.Slug},
	}})
	if err != nil {
		abortWithError(c, utils.InternalError("Internal Server Error"))
		return
	}
	if count > 0 {
		abortWithError(c, utils.Conflict("Actor already exists"))
		return
	}

	now := time.Now().UTC()
	actor.CreatedAt = now
	actor.ModifiedAt = now
	if actor.Movies == nil {
		actor.Movies = []bson.ObjectID{}
	}
	if actor.Images == nil {
		actor.Images = []string{}
	}

	res, err := coll.InsertOne(ctx, actor)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			abortWithError(c, utils.Conflict("Actor already exists"))
			return
		}
		abortWithError(c, utils.InternalError("Internal Server Error"))
		return
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		actor.ID = id
	}
	c.JSON(http.StatusCreated, actor)
}

func (ctl *Controller) GetActors(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	skip, limit := pagination(c)
	cursor, err := ctl.DB.Collection(database.ActorsCollection).Find(ctx,
		bson.M{"isDeleted": bson.M{"$ne": true}},
		options.Find().SetSkip(skip).SetLimit(limit).SetSort(bson.D{{Key: "_id", Value: 1}}),
	)
	if err != nil {
		abortWithError(c, utils.InternalError("Internal Server Error"))
		return
	}
	defer cursor.Close(ctx)

	actors := []models.Actor{}
	if err := cursor.All(ctx, &actors); err != nil {
		abortWithError(c, utils.InternalError("Internal Server Error"))
		return
	}
	c.JSON(http.StatusOK, actors)
}

func (ctl *Controller) GetActorByID(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	id, err := objectIDParam(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	var actor models.Actor
	err = ctl.DB.Collection(database.ActorsCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&actor)
	if errors.Is(err, mongo.ErrNoDocuments) {
		abortWithError(c, utils.NotFound("Actor not found"))
		return
	}
	if err != nil {
		abortWithError(c, utils.InternalError("Internal Server Error"))
		return
	}
	c.JSON(http.StatusOK, actor)
}

func (ctl *Controller) UpdateActor(c *gin.Context) {
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

	var actor models.Actor
	err = ctl.DB.Collection(database.ActorsCollection).FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&actor)
	if errors.Is(err, mongo.ErrNoDocuments) {
		abortWithError(c, utils.NotFound("Actor not found"))
		return
	}
	if err != nil {
		abortWithError(c, utils.InternalError("Internal Server Error"))
		return
	}
	c.JSON(http.StatusOK, actor)
}

func (ctl *Controller) DeleteActor(c *gin.Context) {
	ctl.softDelete(c, database.ActorsCollection, "Actor not found")
}
