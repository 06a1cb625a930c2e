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

func (ctl *Controller) CreateUser(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	var reg models.Registration
	if err := c.ShouldBindJSON(&reg); err != nil {
		abortWithError(c, utils.ValidationError("Validation Error"))
		return
	}

	user, err := ctl.insertUser(ctx, &reg)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (ctl *Controller) GetUsers(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	skip, limit := pagination(c)
	cursor, err := ctl.DB.Collection(database.UsersCollection).Find(ctx,
		bson.M{"isDeleted": bson.M{"$ne": true}},
		options.Find().SetSkip(skip).SetLimit(limit).SetSort(bson.D{{Key: "_id", Value: 1}}),
	)
	if err != nil {
		abortWithError(c, utils.InternalError("Internal Server Error"))
		return
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		abortWithError(c, utils.InternalError("Internal Server Error"))
		return
	}
	c.JSON(http.StatusOK, users)
}

func (ctl *Controller) GetUserByID(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	id, err := objectIDParam(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	var user models.User
	err = ctl.DB.Collection(database.UsersCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		abortWithError(c, utils.NotFound("User not found"))
		return
	}
	if err != nil {
		abortWithError(c, utils.InternalError("Internal Server Error"))
		return
	}
	c.JSON(http.StatusOK, user)
}

func (ctl *Controller) UpdateUser(c *gin.Context) {
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
	// Password changes go through registration-grade hashing, never a
	// plain field update.
	delete(fields, "_id")
	delete(fields, "password")
	delete(fields, "createdAt")
	fields["modifiedAt"] = time.Now().UTC()

	var user models.User
	err = ctl.DB.Collection(database.UsersCollection).FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		abortWithError(c, utils.NotFound("User not found"))
		return
	}
	if err != nil {
		abortWithError(c, utils.InternalError("Internal Server Error"))
		return
	}
	c.JSON(http.StatusOK, user)
}

func (ctl *Controller) DeleteUser(c *gin.Context) {
	ctl.softDelete(c, database.UsersCollection, "User not found")
}

// insertUser checks the natural keys, hashes the password, and persists.
// Shared by registration and the admin user-create endpoint.
func (ctl *Controller) insertUser(ctx context.Context, reg *models.Registration) (*models.User, error) {
	coll := ctl.DB.Collection(database.UsersCollection)

	count, err := coll.CountDocuments(ctx, bson.M{"$or": []bson.M{
		{"email": reg.Email},
		{"username": reg.Username},
	}})
	if err != nil {
		return nil, utils.InternalError("Internal Server Error")
	}
	if count > 0 {
		return nil, utils.Conflict("Email or username already in use")
	}

	hashed, err := utils.HashPassword(reg.Password)
	if err != nil {
		return nil, utils.InternalError("Unable to hash password")
	}

	now := time.Now().UTC()
	user := &models.User{
		Username:   reg.Username,
		Email:      reg.Email,
		Password:   hashed,
		Fullname:   reg.Fullname,
		Slug:       utils.GetSlug(reg.Username),
		CreatedAt:  now,
		ModifiedAt: now,
	}

	res, err := coll.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, utils.Conflict("Email or username already in use")
		}
		return nil, utils.InternalError("Internal Server Error")
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		user.ID = id
	}
	return user, nil
}
