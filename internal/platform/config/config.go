package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders; nothing in
// this package is a process-wide singleton.
type Config struct {
	ServiceName string
	HTTPPort    string
	PostgresDSN string

	TokenSecret    string
	TokenAlgorithm string
	AccessTokenTTL time.Duration
}

func Load() (Config, error) {
	// Local overrides live in .env; a missing file is not an error.
	_ = godotenv.Load()

	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "dailytrack"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	secret := strings.TrimSpace(os.Getenv("SECRET_KEY"))
	if secret == "" {
		return Config{}, errors.New("SECRET_KEY is required")
	}

	algorithm := strings.TrimSpace(os.Getenv("TOKEN_ALGORITHM"))
	if algorithm == "" {
		algorithm = "HS256"
	}

	ttlMinutes := 60
	if raw := strings.TrimSpace(os.Getenv("ACCESS_TOKEN_EXPIRE_MINUTES")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return Config{}, errors.New("ACCESS_TOKEN_EXPIRE_MINUTES must be a positive integer")
		}
		ttlMinutes = parsed
	}

	return Config{
		ServiceName: service,
		HTTPPort:    port,
		PostgresDSN: os.Getenv("DATABASE_DSN"),

		TokenSecret:    secret,
		TokenAlgorithm: algorithm,
		AccessTokenTTL: time.Duration(ttlMinutes) * time.Minute,
	}, nil
}
