package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/macaris64/lumgoo-backend/controller"
	mw "github.com/macaris64/lumgoo-backend/middlewares"
	"github.com/macaris64/lumgoo-backend/utils"
)

// Register wires every route. All /api routes sit behind the api-key gate;
// /me additionally requires a bearer token.
func Register(router *gin.Engine, ctl *controller.Controller, tokens *utils.TokenService, apiKey string) {
	start := time.Now()

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello from the backend!")
	})
	router.GET("/healthcheck", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":   "OK",
			"uptime":    time.Since(start).Seconds(),
			"timestamp": time.Now().UnixMilli(),
		})
	})

	api := router.Group("/api")
	api.Use(mw.APIKey(apiKey))

	api.POST("/register", mw.ValidateRegistration, ctl.Register)
	api.POST("/login", mw.ValidateLogin, ctl.Login)
	api.POST("/verifyToken", mw.ValidateVerification, ctl.VerifyToken)
	api.GET("/me", mw.JWT(tokens), ctl.Me)

	api.POST("/movies", mw.ValidateCreateMovie, ctl.CreateMovie)
	api.GET("/movies", ctl.GetMovies)
	api.GET("/movies/:id", ctl.GetMovieByID)
	api.PUT("/movies/:id", ctl.UpdateMovie)
	api.DELETE("/movies/:id", ctl.DeleteMovie)
	api.GET("/movie-search", ctl.SearchMovies)

	api.POST("/actors", mw.ValidateCreateActor, ctl.CreateActor)
	api.GET("/actors", ctl.GetActors)
	api.GET("/actors/:id", ctl.GetActorByID)
	api.PUT("/actors/:id", ctl.UpdateActor)
	api.DELETE("/actors/:id", ctl.DeleteActor)

	api.POST("/genres", mw.ValidateCreateGenre, ctl.CreateGenre)
	api.GET("/genres", ctl.GetGenres)
	api.GET("/genres/:id", ctl.GetGenreByID)
	api.PUT("/genres/:id", ctl.UpdateGenre)
	api.DELETE("/genres/:id", ctl.DeleteGenre)

	api.POST("/users", mw.ValidateRegistration, ctl.CreateUser)
	api.GET("/users", ctl.GetUsers)
	api.GET("/users/:id", ctl.GetUserByID)
	api.PUT("/users/:id", ctl.UpdateUser)
	api.DELETE("/users/:id", ctl.DeleteUser)

	api.POST("/ai/movie-recommendations", ctl.MovieRecommendations)
	api.POST("/ai/movies-data", ctl.MoviesData)

	api.POST("/sync/now-playing", ctl.SyncNowPlaying)
	api.POST("/sync/top-rated", ctl.SyncTopRated)
	api.POST("/sync/imdb", ctl.SetImdbValues)
}
