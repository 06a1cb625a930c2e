package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/macaris64/lumgoo-backend/ai"
	"github.com/macaris64/lumgoo-backend/config"
	"github.com/macaris64/lumgoo-backend/controller"
	"github.com/macaris64/lumgoo-backend/database"
	"github.com/macaris64/lumgoo-backend/enrich"
	mw "github.com/macaris64/lumgoo-backend/middlewares"
	"github.com/macaris64/lumgoo-backend/omdb"
	"github.com/macaris64/lumgoo-backend/routes"
	"github.com/macaris64/lumgoo-backend/store"
	"github.com/macaris64/lumgoo-backend/tmdb"
	"github.com/macaris64/lumgoo-backend/utils"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, relying on the environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.Connect(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer db.Disconnect(context.Background())
	if err := db.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create indexes")
	}
	log.Info().Msg("connected to MongoDB")

	catalog := store.New(db, log)
	tokens := utils.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	llm, err := openai.New(openai.WithToken(cfg.OpenAIAPIKey), openai.WithModel(cfg.OpenAIModel))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create OpenAI client")
	}
	aiService := ai.NewService(llm, catalog, log)

	tmdbClient, err := tmdb.New(cfg.TMDBAccessToken, cfg.TMDBHost, tmdb.WithRequestDelay(cfg.RequestDelay))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create TMDB client")
	}
	omdbClient, err := omdb.New(cfg.OMDBAPIKey, cfg.OMDBHost, omdb.WithRequestDelay(cfg.RequestDelay))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create OMDB client")
	}
	syncer := enrich.NewSyncer(tmdbClient, omdbClient, catalog, log)

	ctl := &controller.Controller{
		DB:     db,
		Tokens: tokens,
		AI:     aiService,
		Syncer: syncer,
		Log:    log,
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(mw.ErrorHandler(log))

	routes.Register(router, ctl, tokens, cfg.APIKey)

	log.Info().Str("port", cfg.Port).Msg("server listening")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
