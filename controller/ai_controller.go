package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/macaris64/lumgoo-backend/utils"
)

// MovieRecommendations asks the chat model for titles matching a facet
// filter. The recommendation path doubles as ingestion: every returned
// title is reconciled into the catalog as a stub movie.
func (ctl *Controller) MovieRecommendations(c *gin.Context) {
	var body struct {
		Filter map[string]any `json:"filter"`
		Slim   bool           `json:"slim"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		abortWithError(c, utils.BadRequest("Invalid request body"))
		return
	}
	if body.Filter == nil {
		abortWithError(c, utils.BadRequest(`Object must have a "filter" key with an object value`))
		return
	}

	titles, err := ctl.AI.Recommend(c.Request.Context(), body.Filter, body.Slim)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if len(titles) == 0 {
		abortWithError(c, utils.NotFound("No movies found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"movies": titles})
}

// MoviesData asks the chat model for full drafts of the given titles and
// ingests each one.
func (ctl *Controller) MoviesData(c *gin.Context) {
	var body struct {
		MovieTitles []string `json:"movieTitles"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		abortWithError(c, utils.BadRequest("Invalid request body"))
		return
	}
	if len(body.MovieTitles) == 0 {
		abortWithError(c, utils.BadRequest("movieTitles is required"))
		return
	}

	drafts, err := ctl.AI.DescribeMovies(c.Request.Context(), body.MovieTitles)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"movies": drafts})
}
