package config

import (
	"fmt"
	"log/slog"

	"github.com/ytget/text-overlay/internal/logging"
	"github.com/ytget/text-overlay/internal/model"
)

// Store key holding the settings record
const KeySettings = "settings"

// Backend persists one raw JSON record under a key
type Backend interface {
	Read(key string) ([]byte, error)
	Write(key string, data []byte) error
}

// Store reads and writes the overlay settings. It is acquired once per window
// at startup and passed to everything that needs persistence.
type Store struct {
	backend Backend
	log     *slog.Logger
}

// NewStore creates a settings store over backend
func NewStore(backend Backend) *Store {
	return &Store{
		backend: backend,
		log:     logging.WithComponent("store"),
	}
}

// Load returns the persisted settings merged over the defaults. A missing or
// unreadable record yields the defaults; a rejected key keeps only its own
// default.
func (s *Store) Load() model.Settings {
	data, err := s.backend.Read(KeySettings)
	if err != nil {
		s.log.Warn("could not read settings, using defaults", "error", err)
		return model.DefaultSettings()
	}

	settings, err := model.DecodeSettings(data)
	if err != nil {
		s.log.Warn("stored settings partly rejected, using defaults for those keys", "error", err)
	}
	return settings
}

// Save writes the full record and returns once it is durable
func (s *Store) Save(settings model.Settings) error {
	data, err := settings.Encode()
	if err != nil {
		return err
	}
	if err := s.backend.Write(KeySettings, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
