package middlewares

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIKey gates every route on the x-api-key header. The 501 on failure is
// what existing clients of this service already handle, so it stays.
func APIKey(expected string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("x-api-key")
		if key == "" || subtle.ConstantTimeCompare([]byte(key), []byte(expected)) != 1 {
			c.AbortWithStatusJSON(http.StatusNotImplemented, gin.H{"message": "Unauthorized: Invalid API key"})
			return
		}
		c.Next()
	}
}
