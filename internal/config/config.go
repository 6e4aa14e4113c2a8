// Package config loads runtime settings from the environment, with an
// optional .env file for local runs.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTP struct {
		Addr          string
		AuthUser      string
		AuthPass      string
		SessionSecret string
	}
	PlacesFile string
	UploadDir  string
	OutputDir  string
	// Seed makes random generation reproducible when set; 0 means seed
	// from the clock.
	Seed int64
}

func Load() Config {
	// Missing .env is the normal case outside local development.
	_ = godotenv.Load()

	var cfg Config
	cfg.HTTP.Addr = envOrDefault("PLACEDIST_HTTP_ADDR", ":9595")
	cfg.HTTP.AuthUser = envOrDefault("PLACEDIST_AUTH_USER", "admin")
	cfg.HTTP.AuthPass = os.Getenv("PLACEDIST_AUTH_PASS")
	cfg.HTTP.SessionSecret = envOrDefault("PLACEDIST_SESSION_SECRET", "place-distance-dev-secret")
	cfg.PlacesFile = envOrDefault("PLACEDIST_PLACES_FILE", "places.csv")
	cfg.UploadDir = envOrDefault("PLACEDIST_UPLOAD_DIR", "uploads")
	cfg.OutputDir = envOrDefault("PLACEDIST_OUTPUT_DIR", "output")
	cfg.Seed = envOrDefaultInt64("PLACEDIST_SEED", 0)
	return cfg
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}
