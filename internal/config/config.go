package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// DefaultAPIBaseURL is used when STUDYHALL_API_URL is not set.
const DefaultAPIBaseURL = "https://app.studyhall.courses"

// Config holds the client settings resolved from the environment.
type Config struct {
	// APIBaseURL is the platform backend root.
	APIBaseURL string `validate:"required,url"`

	// Token is the API bearer token. Empty means not signed in; the token
	// file written by `studyhall login` is consulted separately.
	Token string

	// Timeout bounds individual API requests.
	Timeout time.Duration `validate:"min=0"`
}

// Load resolves configuration in priority order: process env, then a .env
// file in the working directory, then defaults. A missing .env file is not
// an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		APIBaseURL: os.Getenv("STUDYHALL_API_URL"),
		Token:      os.Getenv("STUDYHALL_TOKEN"),
		Timeout:    15 * time.Second,
	}
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = DefaultAPIBaseURL
	}
	if v := os.Getenv("STUDYHALL_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("parse STUDYHALL_TIMEOUT: %w", err)
		}
		cfg.Timeout = d
	}

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}
