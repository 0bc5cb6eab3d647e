package bus

import (
	"sync"

	"github.com/google/uuid"

	"github.com/ytget/text-overlay/internal/model"
)

// Event is implemented by every notification carried on the bus.
type Event interface{ isEvent() }

type baseEvent struct{}

func (baseEvent) isEvent() {}

// SettingsChanged broadcasts the full settings after every edit.
// Origin identifies the publisher so a window can recognize its own event.
type SettingsChanged struct {
	baseEvent
	Origin   uuid.UUID
	Settings model.Settings
}

// ShowSettings asks for the settings window to be shown.
type ShowSettings struct {
	baseEvent
}

// Handler receives events from the bus.
type Handler func(Event)

// Bus is a typed in-process publish/subscribe channel.
type Bus struct {
	mu       sync.RWMutex
	handlers map[uuid.UUID]Handler
	order    []uuid.UUID
}

// New creates an empty bus.
func New() *Bus {
	return &Bus{handlers: make(map[uuid.UUID]Handler)}
}

// NewOrigin returns a fresh publisher identity.
func NewOrigin() uuid.UUID {
	return uuid.New()
}

// Subscribe registers h and returns a function that removes it.
func (b *Bus) Subscribe(h Handler) (unsubscribe func()) {
	id := uuid.New()

	b.mu.Lock()
	b.handlers[id] = h
	b.order = append(b.order, id)
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if _, ok := b.handlers[id]; !ok {
			return
		}
		delete(b.handlers, id)
		for i, existing := range b.order {
			if existing == id {
				b.order = append(b.order[:i], b.order[i+1:]...)
				break
			}
		}
	}
}

// Publish delivers e to every subscriber in subscription order. Handlers may
// publish or subscribe re-entrantly; they see a snapshot taken before delivery.
func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	snapshot := make([]Handler, 0, len(b.order))
	for _, id := range b.order {
		snapshot = append(snapshot, b.handlers[id])
	}
	b.mu.RUnlock()

	for _, h := range snapshot {
		h(e)
	}
}

// PublishSettings is a shorthand for publishing SettingsChanged.
func (b *Bus) PublishSettings(origin uuid.UUID, s model.Settings) {
	b.Publish(SettingsChanged{Origin: origin, Settings: s})
}

// Len returns the number of active subscriptions.
func (b *Bus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers)
}
