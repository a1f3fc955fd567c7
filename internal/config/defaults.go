package config

import (
	"path/filepath"
	"time"
)

// DefaultConfigFile is the config file looked up in the working directory.
const DefaultConfigFile = ".restohub.yml"

// validImageSizes is the set of sizes served by the image endpoint.
var validImageSizes = map[string]bool{
	"small":  true,
	"medium": true,
	"large":  true,
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		APIBaseURL:            "https://restaurant-api.dicoding.dev",
		ImageBaseURL:          "https://restaurant-api.dicoding.dev/images",
		ImageSize:             "medium",
		DataDir:               ".restohub",
		Port:                  8080,
		RequestTimeoutSeconds: 15,
		ListCache:             "restaurant-list",
		DetailCache:           "restaurant-detail",
	}
}

// DBPath is the SQLite file holding the response cache and favorites.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, "restohub.db")
}

// RequestTimeout is the per-request timeout for the restaurant API.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}
