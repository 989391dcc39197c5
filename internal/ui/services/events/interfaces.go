package events

// EventBus is a simple interface for publishing events
type EventBus interface {
	Publish(event interface{})
	Subscribe(eventType string, handler func(interface{}))
}

// NullBus is a no-op implementation of EventBus
type NullBus struct{}

func (n *NullBus) Publish(event interface{})                           {}
func (n *NullBus) Subscribe(eventType string, handler func(interface{})) {}

// OrNull returns bus, or a NullBus when bus is nil
func OrNull(bus EventBus) EventBus {
	if bus == nil {
		return &NullBus{}
	}
	return bus
}
