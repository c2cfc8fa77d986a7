// Package config loads runtime configuration from the environment.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds every runtime setting. The GitHub token is optional: without
// it requests proceed unauthenticated against the lower rate limit.
type Config struct {
	Port         string
	GitHubToken  string
	GitHubAPIURL string
}

// Load reads a .env file when present, then the process environment.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Port:         os.Getenv("PORT"),
		GitHubToken:  os.Getenv("GITHUB_TOKEN"),
		GitHubAPIURL: os.Getenv("GITHUB_API_URL"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	return cfg
}
