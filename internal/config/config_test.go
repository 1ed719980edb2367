package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestLoadCensusSettings(t *testing.T) {
	resetViper(t)
	t.Setenv("CENSUS_API_KEY", "")

	t.Run("from viper", func(t *testing.T) {
		viper.Set("census.host", "https://example.test")
		viper.Set("census.api_key", "viper-key")

		settings := LoadCensusSettings()
		assert.Equal(t, "https://example.test", settings.Host)
		assert.Equal(t, "viper-key", settings.APIKey)
	})

	t.Run("env fallback for key", func(t *testing.T) {
		viper.Reset()
		t.Setenv("CENSUS_API_KEY", "env-key")

		settings := LoadCensusSettings()
		assert.Empty(t, settings.Host)
		assert.Equal(t, "env-key", settings.APIKey)
	})

	t.Run("viper wins over env", func(t *testing.T) {
		viper.Reset()
		viper.Set("census.api_key", "viper-key")
		t.Setenv("CENSUS_API_KEY", "env-key")

		settings := LoadCensusSettings()
		assert.Equal(t, "viper-key", settings.APIKey)
	})

	t.Run("timeout", func(t *testing.T) {
		viper.Reset()
		viper.Set("census.timeout", "10s")

		settings := LoadCensusSettings()
		assert.Equal(t, 10*time.Second, settings.Timeout)
	})
}

func TestLoadWorkers(t *testing.T) {
	resetViper(t)

	tests := []struct {
		name string
		set  any
		want int
	}{
		{name: "unset defaults to sequential", set: nil, want: 1},
		{name: "configured value", set: 4, want: 4},
		{name: "zero collapses to one", set: 0, want: 1},
		{name: "negative collapses to one", set: -3, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			if tt.set != nil {
				viper.Set("engine.workers", tt.set)
			}
			assert.Equal(t, tt.want, LoadWorkers())
		})
	}
}

func TestLoadSheetsConfig(t *testing.T) {
	resetViper(t)
	for _, v := range []string{
		"GOOGLE_SHEETS_CLIENT_ID",
		"GOOGLE_SHEETS_CLIENT_SECRET",
		"GOOGLE_SHEETS_REFRESH_TOKEN",
		"GOOGLE_SHEETS_SERVICE_ACCOUNT_PATH",
		"GOOGLE_SHEETS_SPREADSHEET_ID",
		"GOOGLE_SHEETS_SPREADSHEET_NAME",
	} {
		t.Setenv(v, "")
	}

	t.Run("viper config", func(t *testing.T) {
		viper.Reset()
		viper.Set("sheets.client_id", "id")
		viper.Set("sheets.client_secret", "secret")
		viper.Set("sheets.refresh_token", "token")
		viper.Set("sheets.spreadsheet_name", "Commute Study")

		cfg, err := LoadSheetsConfig()
		assert.NoError(t, err)
		assert.Equal(t, "id", cfg.ClientID)
		assert.Equal(t, "Commute Study", cfg.SpreadsheetName)
	})

	t.Run("env fallback", func(t *testing.T) {
		viper.Reset()
		t.Setenv("GOOGLE_SHEETS_SERVICE_ACCOUNT_PATH", "/key.json")

		cfg, err := LoadSheetsConfig()
		assert.NoError(t, err)
		assert.Equal(t, "/key.json", cfg.ServiceAccountPath)
		assert.Equal(t, "PUMS Extract", cfg.SpreadsheetName)
	})

	t.Run("missing auth fails validation", func(t *testing.T) {
		viper.Reset()

		_, err := LoadSheetsConfig()
		assert.Error(t, err)
	})
}

func TestExpandPath(t *testing.T) {
	t.Setenv("PUMS_TEST_DIR", "/data")

	assert.Equal(t, "", ExpandPath(""))
	assert.Equal(t, "/data/out", ExpandPath("$PUMS_TEST_DIR/out"))

	home, err := os.UserHomeDir()
	if err == nil {
		assert.Equal(t, filepath.Join(home, "pums.db"), ExpandPath("~/pums.db"))
		assert.Equal(t, home, ExpandPath("~"))
	}
}
