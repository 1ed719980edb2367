// Package config provides configuration utilities for the application.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// CensusSettings holds connection settings for the Census API client.
type CensusSettings struct {
	Host    string
	APIKey  string
	Timeout time.Duration
}

// LoadCensusSettings loads Census API settings from Viper and environment
// variables. It follows this precedence:
// 1. Viper configuration (from config file or PUMSFLOW_ env vars)
// 2. The CENSUS_API_KEY environment variable
// An empty host falls back to the client's default endpoint; a zero
// timeout keeps the client default.
func LoadCensusSettings() CensusSettings {
	settings := CensusSettings{
		Host:    viper.GetString("census.host"),
		APIKey:  viper.GetString("census.api_key"),
		Timeout: viper.GetDuration("census.timeout"),
	}

	if settings.APIKey == "" {
		settings.APIKey = os.Getenv("CENSUS_API_KEY")
	}

	return settings
}

// LoadWorkers returns the configured number of concurrent year fetches.
// Anything below 1 collapses to sequential fetching.
func LoadWorkers() int {
	workers := viper.GetInt("engine.workers")
	if workers < 1 {
		workers = 1
	}
	return workers
}

// ExpandPath expands ~ and environment variables in a file path.
// It handles both ~ for home directory and $VAR style environment variables.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	// First expand tilde if present
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	// Then expand environment variables
	return os.ExpandEnv(path)
}
