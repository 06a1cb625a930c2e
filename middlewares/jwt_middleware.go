package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/macaris64/lumgoo-backend/utils"
)

// JWT requires a Bearer token in the Authorization header and binds the
// authenticated user's id into the context.
func JWT(tokens *utils.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := utils.BearerToken(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
			return
		}

		userID, err := tokens.VerifyToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
			return
		}

		c.Set(utils.ContextUserKey, userID)
		c.Next()
	}
}
