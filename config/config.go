package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	DatabaseURL    string
	DBDriver       string
	MaxOpenConns   int
	GinMode        string
	LogLevel       string
	SwaggerEnabled bool
}

// Load reads an optional .env file from the working directory and then the
// process environment. Variables already set in the environment win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:     getenv("PORT", "5001"),
		DBDriver: getenv("DB_DRIVER", "postgres"),
		GinMode:  os.Getenv("GIN_MODE"),
		LogLevel: getenv("LOG_LEVEL", "info"),
	}

	cfg.DatabaseURL = os.Getenv("POSTGRES_URL")
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return nil, errors.New("POSTGRES_URL or DATABASE_URL is required")
	}

	switch cfg.DBDriver {
	case "postgres", "pgx":
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return nil, fmt.Errorf("invalid PORT %q: %w", cfg.Port, err)
	}

	maxOpen, err := strconv.Atoi(getenv("DB_MAX_OPEN_CONNS", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_OPEN_CONNS: %w", err)
	}
	cfg.MaxOpenConns = maxOpen

	swagger, err := strconv.ParseBool(getenv("SWAGGER_ENABLED", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid SWAGGER_ENABLED: %w", err)
	}
	cfg.SwaggerEnabled = swagger

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
