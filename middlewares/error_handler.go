package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/macaris64/lumgoo-backend/utils"
)

// ErrorHandler is the single translator from the error taxonomy to HTTP
// responses. Handlers attach errors with c.Error; nothing reaches the
// client unclassified and nothing is silently dropped.
func ErrorHandler(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		apiErr := utils.AsAPIError(err)

		log.Error().
			Err(err).
			Int("status", apiErr.Status).
			Str("path", c.Request.URL.Path).
			Msg("request failed")

		if len(apiErr.Errors) > 0 {
			c.JSON(apiErr.Status, gin.H{"errors": apiErr.Errors})
			return
		}
		c.JSON(apiErr.Status, gin.H{"message": apiErr.Message})
	}
}
