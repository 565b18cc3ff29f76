// Package events provides a tiny in-process pub/sub used to decouple the
// core mutations from monitoring.
package events

import (
	"sync"
	"time"
)

// Topics published by the core.
const (
	TopicScheduleReplaced   = "schedule.replaced"
	TopicReservationCreated = "reservation.created"
	TopicRowsSkipped        = "schedule.rows_skipped"
)

// Event represents a lightweight domain event.
type Event struct {
	Type      string
	Count     int    // flights loaded, rows skipped, ...
	Subject   string // flight id, skip reason, ...
	CreatedAt time.Time
}

// Handler reacts to an event.
type Handler func(event Event)

// Bus is an in-process pub/sub for events.
type Bus struct {
	subscribers map[string][]Handler
	mu          sync.RWMutex
}

// NewBus constructs an empty bus.
func NewBus() *Bus {
	return &Bus{subscribers: make(map[string][]Handler)}
}

// Subscribe registers a handler for a given event type.
func (b *Bus) Subscribe(eventType string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers[eventType] = append(b.subscribers[eventType], handler)
}

// Publish notifies subscribers of the event type.
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.subscribers[event.Type]...)
	b.mu.RUnlock()

	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	for _, handler := range handlers {
		// Handlers run synchronously; caller decides concurrency model.
		handler(event)
	}
}
