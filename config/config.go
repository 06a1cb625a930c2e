package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// Config carries every externally supplied setting. It is built once in main
// and handed to each collaborator; nothing else reads the environment.
type Config struct {
	Port         string        `koanf:"port"`
	MongoURI     string        `koanf:"mongo_db_uri"`
	DatabaseName string        `koanf:"database_name"`
	APIKey       string        `koanf:"api_key"`
	JWTSecret    string        `koanf:"jwt_secret"`
	TokenTTL     time.Duration `koanf:"token_ttl"`

	OpenAIAPIKey string `koanf:"openai_api_key"`
	OpenAIModel  string `koanf:"openai_model"`

	TMDBHost        string `koanf:"the_movie_db_host"`
	TMDBAccessToken string `koanf:"the_movie_db_access_token"`

	OMDBHost   string `koanf:"omdb_api_host"`
	OMDBAPIKey string `koanf:"omdb_api_key"`

	// RequestDelay is the fixed pause applied before every external API
	// call. It is the only rate limiting the upstream providers get.
	RequestDelay time.Duration `koanf:"request_delay"`
}

func defaults() *Config {
	return &Config{
		Port:         "3001",
		DatabaseName: "lumgoo",
		TokenTTL:     time.Hour,
		OpenAIModel:  "gpt-3.5-turbo",
		TMDBHost:     "https://api.themoviedb.org/3",
		OMDBHost:     "https://www.omdbapi.com",
		RequestDelay: 2 * time.Second,
	}
}

// Load builds the Config from defaults overridden by environment variables.
// Callers load a .env file beforehand if they want one.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaults(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("config defaults: %w", err)
	}

	if err := k.Load(env.Provider("", ".", strings.ToLower), nil); err != nil {
		return nil, fmt.Errorf("config env: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal: %w", err)
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_DB_URI is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY is required")
	}

	return cfg, nil
}
