package ui

import (
	"time"

	"folio/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// tickMsg is sent on a timer for animations
type tickMsg time.Time

// typeTickMsg advances the headline typewriter
type typeTickMsg struct {
	gen uint64
}

// statusResetMsg returns the contact form to idle after a result banner
type statusResetMsg struct {
	gen uint64
}

// modalClearMsg drops the closed project once its exit animation is over
type modalClearMsg struct {
	gen uint64
}

// submitResultMsg carries the outcome of a contact delivery
type submitResultMsg struct {
	id  string
	err error
}

// resumePagerMsg contains the result of the resume pager
type resumePagerMsg struct {
	err error
}
