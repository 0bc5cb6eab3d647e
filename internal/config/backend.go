package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"fyne.io/fyne/v2"

	"github.com/ytget/text-overlay/internal/platform"
)

// PreferencesBackend stores records in the Fyne application preferences
type PreferencesBackend struct {
	prefs fyne.Preferences
}

// NewPreferencesBackend creates a backend over the app's preferences
func NewPreferencesBackend(app fyne.App) *PreferencesBackend {
	return &PreferencesBackend{prefs: app.Preferences()}
}

// Read returns the stored record, or nil if none was saved
func (b *PreferencesBackend) Read(key string) ([]byte, error) {
	value := b.prefs.String(key)
	if value == "" {
		return nil, nil
	}
	return []byte(value), nil
}

// Write stores the record. Fyne writes preferences to disk asynchronously,
// so unlike FileBackend the record may not be durable when Write returns.
func (b *PreferencesBackend) Write(key string, data []byte) error {
	b.prefs.SetString(key, string(data))
	return nil
}

// FileBackend stores records in one JSON object file, e.g.
// {"settings": {...}}. Writes replace the file atomically and are synced.
type FileBackend struct {
	path string
	mu   sync.Mutex
}

// NewFileBackend creates a backend writing to path
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

// Path returns the store file location
func (b *FileBackend) Path() string {
	return b.path
}

// Read returns the record stored under key, or nil if the file or key is absent
func (b *FileBackend) Read(key string) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	records, err := b.readAll()
	if err != nil {
		return nil, err
	}
	return records[key], nil
}

// Write replaces the record under key, keeping other keys in the file
func (b *FileBackend) Write(key string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	records, err := b.readAll()
	if err != nil {
		// Corrupt store files are replaced.
		records = map[string]json.RawMessage{}
	}
	records[key] = json.RawMessage(data)

	out, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(b.path)); err != nil {
		return err
	}
	return platform.WriteFileAtomic(b.path, out)
}

func (b *FileBackend) readAll() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(b.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read store: %w", err)
	}

	records := map[string]json.RawMessage{}
	if len(data) == 0 {
		return records, nil
	}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode store %s: %w", b.path, err)
	}
	return records, nil
}
