package controller

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/macaris64/lumgoo-backend/database"
	"github.com/macaris64/lumgoo-backend/models"
	"github.com/macaris64/lumgoo-backend/utils"
)

func (ctl *Controller) Register(c *gin.Context) {
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

	token, err := ctl.Tokens.GenerateToken(user.ID.Hex())
	if err != nil {
		abortWithError(c, utils.InternalError("Token not created properly"))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
}

func (ctl *Controller) Login(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	var login models.Login
	if err := c.ShouldBindJSON(&login); err != nil {
		abortWithError(c, utils.ValidationError("Validation Error"))
		return
	}

	var user models.User
	err := ctl.DB.Collection(database.UsersCollection).FindOne(ctx, bson.M{"email": login.Email}).Decode(&user)
	if err != nil {
		abortWithError(c, utils.Unauthorized("Invalid credentials"))
		return
	}
	if err := utils.VerifyPassword(login.Password, user.Password); err != nil {
		abortWithError(c, utils.Unauthorized("Invalid credentials"))
		return
	}

	token, err := ctl.Tokens.GenerateToken(user.ID.Hex())
	if err != nil {
		abortWithError(c, utils.InternalError("Token not created properly"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

// VerifyToken answers whether a client-held token is still good.
func (ctl *Controller) VerifyToken(c *gin.Context) {
	var body struct {
		Token string `json:"token"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Token == "" {
		abortWithError(c, utils.ValidationError("Token is required"))
		return
	}

	if _, err := ctl.Tokens.VerifyToken(body.Token); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true})
}

// Me returns the authenticated user's profile. The JWT middleware has
// already bound the subject id into the context.
func (ctl *Controller) Me(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		abortWithError(c, utils.Unauthorized("Invalid Token"))
		return
	}
	id, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		abortWithError(c, utils.Unauthorized("Invalid Token"))
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
