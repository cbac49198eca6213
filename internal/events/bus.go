package events

import (
	"sync"

	"github.com/kwhalen/nfl-edge/internal/telemetry"
)

// Handler processes an event. A returned error is logged; it never stops
// dispatch to the remaining handlers.
type Handler func(Event) error

// Bus is a synchronous in-process event bus. Subscribers run in
// registration order on the publisher's goroutine, so the poll cycle
// blocks on its own fanout; handlers that do real work (the WS hub's
// per-client sends) must hand off to their own goroutines.
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
}

func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]Handler),
	}
}

// Subscribe registers a handler for a given event type.
func (b *Bus) Subscribe(eventType EventType, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], h)
}

// Publish dispatches an event to all registered handlers for its type.
func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	handlers := b.handlers[e.Type]
	b.mu.RUnlock()

	for _, h := range handlers {
		if err := h(e); err != nil {
			telemetry.Warnf("events: %s handler for %q failed: %v", e.Type, e.GameKey, err)
		}
	}
}
