// Package config loads and validates the process environment.
package config

import (
	"fmt"
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds everything the updater needs from the environment.
// Token and Username are required; a missing value is a configuration
// error surfaced at startup.
type Config struct {
	Token      string `envconfig:"GITHUB_TOKEN" validate:"required"`
	Username   string `envconfig:"GITHUB_USERNAME" validate:"required"`
	ReadmePath string `envconfig:"README_PATH" default:"README.md" validate:"required"`
}

// Loader reads and validates a Config from the environment.
type Loader struct {
	Validate *validator.Validate
}

// NewLoader creates a Loader with a fresh validator instance.
func NewLoader() *Loader {
	return &Loader{Validate: validator.New()}
}

// Load reads a .env file when one is present, then the process environment,
// into a validated Config.
func (l *Loader) Load() (Config, error) {
	var cfg Config

	if fileExists(".env") {
		if err := godotenv.Load(); err != nil {
			log.Printf("dotenv: %v", err)
		}
	}
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, fmt.Errorf("env load: %w", err)
	}
	if err := l.Validate.Struct(cfg); err != nil {
		return cfg, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
