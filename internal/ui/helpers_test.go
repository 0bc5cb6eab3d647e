package ui

import (
	"sync"

	"github.com/ytget/text-overlay/internal/bus"
	"github.com/ytget/text-overlay/internal/config"
	"github.com/ytget/text-overlay/internal/model"
)

// memoryBackend is an in-memory config.Backend that counts writes.
type memoryBackend struct {
	mu     sync.Mutex
	data   map[string][]byte
	writes int
}

func newMemoryBackend() *memoryBackend {
	return &memoryBackend{data: make(map[string][]byte)}
}

func (b *memoryBackend) Read(key string) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.data[key], nil
}

func (b *memoryBackend) Write(key string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data[key] = append([]byte(nil), data...)
	b.writes++
	return nil
}

func (b *memoryBackend) Writes() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.writes
}

func (b *memoryBackend) stored() model.Settings {
	s, _ := model.DecodeSettings(b.data[config.KeySettings])
	return s
}

// recorder collects SettingsChanged events from a bus.
type recorder struct {
	events []bus.SettingsChanged
}

func record(b *bus.Bus) *recorder {
	r := &recorder{}
	b.Subscribe(func(e bus.Event) {
		if sc, ok := e.(bus.SettingsChanged); ok {
			r.events = append(r.events, sc)
		}
	})
	return r
}

func (r *recorder) last() bus.SettingsChanged {
	return r.events[len(r.events)-1]
}
