package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/macaris64/lumgoo-backend/utils"
)

// The sync endpoints run the pipeline within the request. With the fixed
// per-call delay a full run takes a while; callers are expected to be
// operators, not browsers.

func (ctl *Controller) SyncNowPlaying(c *gin.Context) {
	processed, err := ctl.Syncer.SyncNowPlaying(c.Request.Context())
	if err != nil {
		abortWithError(c, utils.AsAPIError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"processed": processed})
}

func (ctl *Controller) SyncTopRated(c *gin.Context) {
	var body struct {
		StartPage int `json:"startPage"`
	}
	// Body is optional; an empty or malformed one means "start at page 1".
	_ = c.ShouldBindJSON(&body)

	processed, err := ctl.Syncer.SyncTopRated(c.Request.Context(), body.StartPage)
	if err != nil {
		abortWithError(c, utils.AsAPIError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"processed": processed})
}

func (ctl *Controller) SetImdbValues(c *gin.Context) {
	updated, err := ctl.Syncer.SetImdbValues(c.Request.Context())
	if err != nil {
		abortWithError(c, utils.AsAPIError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": updated})
}
