package events

import (
	"fmt"
	"sync"
)

// Bus is a simple event bus for UI services. Handlers run synchronously on
// the publishing goroutine, in subscription order, so observers see widget
// events in the order the widget produced them.
type Bus struct {
	mu        sync.RWMutex
	listeners map[string][]func(interface{})
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[string][]func(interface{})),
	}
}

// Subscribe registers a listener for an event type
func (b *Bus) Subscribe(eventType string, handler func(interface{})) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners[eventType] = append(b.listeners[eventType], handler)
}

// SubscribeAll registers a listener that receives every event
func (b *Bus) SubscribeAll(handler func(interface{})) {
	b.Subscribe(wildcard, handler)
}

// Publish sends an event to all listeners
func (b *Bus) Publish(event interface{}) {
	b.mu.RLock()
	handlers := append([]func(interface{}){}, b.listeners[TypeOf(event)]...)
	handlers = append(handlers, b.listeners[wildcard]...)
	b.mu.RUnlock()

	for _, handler := range handlers {
		handler(event)
	}
}

const wildcard = "*"

// TypeOf returns the event type key used by Subscribe, e.g. "navigation.FocusMovedEvent"
func TypeOf(event interface{}) string {
	return fmt.Sprintf("%T", event)
}
