package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventValueChanged     EventType = "ValueChanged"
	EventSelectionCleared EventType = "SelectionCleared"
	EventError            EventType = "Error"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
	EventConfigChanged    EventType = "ConfigChanged"
	EventAppReady         EventType = "AppReady"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ValueChangedEvent is emitted when a field's owner receives a new value
type ValueChangedEvent struct {
	Field   string
	Value   any
	Display string
}

func (e ValueChangedEvent) Type() EventType { return EventValueChanged }

// SelectionClearedEvent is emitted when a field's selection becomes empty
type SelectionClearedEvent struct {
	Field string
}

func (e SelectionClearedEvent) Type() EventType { return EventSelectionCleared }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path   string
	Fields int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ConfigChangedEvent is emitted when field values need to be saved
type ConfigChangedEvent struct {
	Values map[string]any // field name -> current value
}

func (e ConfigChangedEvent) Type() EventType { return EventConfigChanged }

// AppReadyEvent is emitted when the app is fully initialized and ready
type AppReadyEvent struct {
	HasExistingConfig bool
	Fields            int
}

func (e AppReadyEvent) Type() EventType { return EventAppReady }
