package utils

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// ContextUserKey is where the JWT middleware stores the authenticated
// user's id.
const ContextUserKey = "user_id"

func GetUserIDFromContext(c *gin.Context) (string, error) {
	userID, exists := c.Get(ContextUserKey)
	if !exists {
		return "", errors.New("user id does not exist in the context")
	}
	id, ok := userID.(string)
	if !ok {
		return "", errors.New("unable to retrieve user id")
	}
	return id, nil
}
