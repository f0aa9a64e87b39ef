package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is constructed once at startup and handed to the services that
// need parts of it. Services never read the environment themselves.
type Config struct {
	Port int

	// Google OAuth
	ClientSecretsFile string
	RedirectURL       string
	TokensDir         string

	// Upstream API keys
	TMDBAPIKey string // empty means the movie endpoint serves its fallback list
	SportsKey  string // "1" is the shared public key of thesportsdb
}

func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:              envInt("PORT", 8000),
		ClientSecretsFile: env("GOOGLE_CLIENT_SECRETS", "client_secret.json"),
		RedirectURL:       env("GOOGLE_REDIRECT", "http://localhost:8000/oauth2callback"),
		TokensDir:         env("TOKENS_DIR", "tokens"),
		TMDBAPIKey:        env("TMDB_API_KEY", ""),
		SportsKey:         env("SPORTSDB_KEY", "1"),
	}
}

func env(key, def string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return def
}

func envInt(key string, def int) int {
	if value := os.Getenv(key); value != "" {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}

	return def
}
