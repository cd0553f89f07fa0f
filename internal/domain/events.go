package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventError            EventType = "Error"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
	EventConfigChanged    EventType = "ConfigChanged"
	EventContentReloaded  EventType = "ContentReloaded"
	EventSectionRevealed  EventType = "SectionRevealed"
	EventFilterChanged    EventType = "FilterChanged"
	EventProjectOpened    EventType = "ProjectOpened"
	EventContactSubmitted EventType = "ContactSubmitted"
	EventContactDelivered EventType = "ContactDelivered"
	EventContactFailed    EventType = "ContactFailed"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path  string
	Theme string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ConfigChangedEvent is emitted when a user-facing setting changes and should be persisted
type ConfigChangedEvent struct {
	Theme string
}

func (e ConfigChangedEvent) Type() EventType { return EventConfigChanged }

// ContentReloadedEvent carries a freshly loaded portfolio
type ContentReloadedEvent struct {
	Path      string
	Portfolio *Portfolio
}

func (e ContentReloadedEvent) Type() EventType { return EventContentReloaded }

// SectionRevealedEvent is emitted the first time a section becomes visible
type SectionRevealedEvent struct {
	Section string
}

func (e SectionRevealedEvent) Type() EventType { return EventSectionRevealed }

// FilterChangedEvent is emitted when the project filter changes
type FilterChangedEvent struct {
	Category Category
	Visible  int
}

func (e FilterChangedEvent) Type() EventType { return EventFilterChanged }

// ProjectOpenedEvent is emitted when a project modal opens
type ProjectOpenedEvent struct {
	ProjectID string
}

func (e ProjectOpenedEvent) Type() EventType { return EventProjectOpened }

// ContactSubmittedEvent is emitted when a valid contact form starts delivery
type ContactSubmittedEvent struct {
	SubmissionID string
}

func (e ContactSubmittedEvent) Type() EventType { return EventContactSubmitted }

// ContactDeliveredEvent is emitted when the delivery backend accepted a submission
type ContactDeliveredEvent struct {
	SubmissionID string
}

func (e ContactDeliveredEvent) Type() EventType { return EventContactDelivered }

// ContactFailedEvent is emitted when delivery failed
type ContactFailedEvent struct {
	SubmissionID string
	Err          error
}

func (e ContactFailedEvent) Type() EventType { return EventContactFailed }
