package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventQueryChanged         EventType = "QueryChanged"
	EventSearchCompleted      EventType = "SearchCompleted"
	EventSearchFailed         EventType = "SearchFailed"
	EventStaleResultDiscarded EventType = "StaleResultDiscarded"
	EventLookupRequested      EventType = "LookupRequested"
	EventLookupCompleted      EventType = "LookupCompleted"
	EventLookupFailed         EventType = "LookupFailed"
	EventInteractionChanged   EventType = "InteractionChanged"
	EventConfigLoaded         EventType = "ConfigLoaded"
	EventConfigSaved          EventType = "ConfigSaved"
	EventDictionaryReloaded   EventType = "DictionaryReloaded"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// QueryChangedEvent mirrors the controller's query to the outside world.
// It is published on every keystroke and never read back by the controller.
type QueryChangedEvent struct {
	Query  string
	Cursor int
}

func (e QueryChangedEvent) Type() EventType { return EventQueryChanged }

// SearchCompletedEvent is emitted when a current (non-stale) search response is applied
type SearchCompletedEvent struct {
	Query string
	Count int
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// SearchFailedEvent is emitted when the search collaborator returned an error.
// The controller has already degraded to an empty result set.
type SearchFailedEvent struct {
	Query string
	Err   error
}

func (e SearchFailedEvent) Type() EventType { return EventSearchFailed }

// StaleResultDiscardedEvent is emitted when a search response arrives for a superseded request
type StaleResultDiscardedEvent struct {
	Query     string
	RequestID int
}

func (e StaleResultDiscardedEvent) Type() EventType { return EventStaleResultDiscarded }

// LookupRequestedEvent is emitted when a definition lookup is dispatched
type LookupRequestedEvent struct {
	Word   string
	Source LookupSource
}

func (e LookupRequestedEvent) Type() EventType { return EventLookupRequested }

// LookupCompletedEvent is emitted when a definition arrived
type LookupCompletedEvent struct {
	Entry Entry
}

func (e LookupCompletedEvent) Type() EventType { return EventLookupCompleted }

// LookupFailedEvent is consumed by the error display
type LookupFailedEvent struct {
	Word string
	Err  error
}

func (e LookupFailedEvent) Type() EventType { return EventLookupFailed }

// InteractionChangedEvent is emitted on every interaction state transition
type InteractionChangedEvent struct {
	From  string
	To    string
	Cause string
}

func (e InteractionChangedEvent) Type() EventType { return EventInteractionChanged }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// DictionaryReloadedEvent is emitted after the dictionary file changed on disk
type DictionaryReloadedEvent struct {
	Path  string
	Words int
}

func (e DictionaryReloadedEvent) Type() EventType { return EventDictionaryReloaded }
