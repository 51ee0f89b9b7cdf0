package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	defaultListenAddr   = ":8080"
	defaultSettingsFile = "settings.json"
	defaultCORSOrigin   = "http://localhost:5173"
)

// Config holds process-level runtime configuration taken from the
// environment. User-facing preferences live in the settings document, not
// here.
type Config struct {
	// address the HTTP API listens on
	ListenAddr string

	// path to the persisted settings document
	SettingsPath string

	// origin allowed to call the API (the desktop UI dev server)
	CORSOrigin string
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func LoadConfig() (Config, error) {
	settingsPath := getEnvOrDefault("OBSLOG_SETTINGS_PATH", defaultSettingsFile)
	absSettings, err := filepath.Abs(settingsPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to get absolute path for settings file '%s': %w", settingsPath, err)
	}

	cfg := Config{
		ListenAddr:   getEnvOrDefault("OBSLOG_LISTEN_ADDR", defaultListenAddr),
		SettingsPath: absSettings,
		CORSOrigin:   getEnvOrDefault("OBSLOG_CORS_ORIGIN", defaultCORSOrigin),
	}
	return cfg, nil
}
