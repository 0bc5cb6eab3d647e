package config

import (
	"fmt"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
)

// Environment variables read by LoadAppConfig
const (
	EnvLogLevel     = "OVERLAY_LOG_LEVEL"
	EnvLogFormat    = "OVERLAY_LOG_FORMAT"
	EnvStore        = "OVERLAY_STORE"
	EnvStorePath    = "OVERLAY_STORE_PATH"
	EnvFontManifest = "OVERLAY_FONT_MANIFEST"
	EnvLanguage     = "OVERLAY_LANGUAGE"
)

// Preference keys for app-level options
const (
	KeyLanguage = "app_language"
)

// Default values
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
	DefaultLanguage  = "system"
	StoreFile        = "file"
	StorePreferences = "preferences"
	StoreDirName     = "text-overlay"
	StoreFileName    = "settings.json"
)

// AppConfig holds process-level options taken from the environment
type AppConfig struct {
	LogLevel     string
	LogFormat    string
	Store        string
	StorePath    string
	FontManifest string
	Language     string
}

// LoadAppConfig reads AppConfig from the environment
func LoadAppConfig() (*AppConfig, error) {
	cfg := &AppConfig{
		LogLevel:     getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:    getEnv(EnvLogFormat, DefaultLogFormat),
		Store:        getEnv(EnvStore, StoreFile),
		StorePath:    getEnv(EnvStorePath, ""),
		FontManifest: getEnv(EnvFontManifest, ""),
		Language:     getEnv(EnvLanguage, ""),
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("%s must be one of debug, info, warn, error; got %q", EnvLogLevel, cfg.LogLevel)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("%s must be text or json; got %q", EnvLogFormat, cfg.LogFormat)
	}
	if cfg.Store != StoreFile && cfg.Store != StorePreferences {
		return nil, fmt.Errorf("%s must be %s or %s; got %q", EnvStore, StoreFile, StorePreferences, cfg.Store)
	}

	if cfg.Store == StoreFile && cfg.StorePath == "" {
		path, err := DefaultStorePath()
		if err != nil {
			return nil, err
		}
		cfg.StorePath = path
	}

	return cfg, nil
}

// DefaultStorePath returns <user config dir>/text-overlay/settings.json
func DefaultStorePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, StoreDirName, StoreFileName), nil
}

// NewBackend picks the store backend: the JSON file at StorePath, or the Fyne
// preferences of app.
func (c *AppConfig) NewBackend(app fyne.App) Backend {
	if c.Store == StoreFile {
		return NewFileBackend(c.StorePath)
	}
	return NewPreferencesBackend(app)
}

// GetLanguage returns the UI language: the environment override, then the
// saved preference, then "system".
func (c *AppConfig) GetLanguage(app fyne.App) string {
	if c.Language != "" {
		return c.Language
	}
	lang := app.Preferences().String(KeyLanguage)
	if lang == "" {
		return DefaultLanguage
	}
	return lang
}

// SetLanguage saves the UI language preference
func SetLanguage(app fyne.App, lang string) {
	app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
