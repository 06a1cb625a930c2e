package controller

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/macaris64/lumgoo-backend/ai"
	"github.com/macaris64/lumgoo-backend/database"
	"github.com/macaris64/lumgoo-backend/enrich"
	"github.com/macaris64/lumgoo-backend/utils"
)

const requestTimeout = 20 * time.Second

const (
	defaultPage  = 1
	defaultLimit = 20
)

// Controller bundles the collaborators the handlers need. Everything is
// injected at startup; handlers never read the environment.
type Controller struct {
	DB     *database.DB
	Tokens *utils.TokenService
	AI     *ai.Service
	Syncer *enrich.Syncer
	Log    zerolog.Logger
}

// abortWithError records the failure for the ErrorHandler middleware, which
// owns the response shape.
func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// pagination reads page/limit from the query string. Absent, non-numeric,
// or sub-1 values fall back to the defaults rather than producing a
// negative skip.
func pagination(c *gin.Context) (skip, limit int64) {
	page, err := strconv.ParseInt(c.Query("page"), 10, 64)
	if err != nil || page < 1 {
		page = defaultPage
	}
	limit, err = strconv.ParseInt(c.Query("limit"), 10, 64)
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	return (page - 1) * limit, limit
}
