package handlers

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/domain"
	"folio/internal/eventbus"
	"folio/internal/ui/state"
)

// EventHandler handles domain events and updates state
type EventHandler struct {
	state    *state.AppState
	onReload func(*domain.Portfolio)
}

// NewEventHandler creates a new event handler. onReload runs after the
// portfolio in state has been replaced.
func NewEventHandler(appState *state.AppState, onReload func(*domain.Portfolio)) *EventHandler {
	return &EventHandler{
		state:    appState,
		onReload: onReload,
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.ContentReloadedEvent:
		if e.Portfolio == nil {
			return nil
		}
		h.state.SetPortfolio(e.Portfolio)
		if h.onReload != nil {
			h.onReload(e.Portfolio)
		}
		h.state.SetStatus(fmt.Sprintf("Reloaded %s", e.Path), false)

	case eventbus.ErrorEvent:
		msg := e.Message
		if e.Err != nil {
			msg = fmt.Sprintf("%s: %v", e.Message, e.Err)
		}
		h.state.SetStatus(msg, true)

	case eventbus.ConfigSavedEvent:
		h.state.SetStatus(fmt.Sprintf("Settings saved to %s", e.Path), false)

	default:
		log.Printf("ui: unhandled event %s", event.Type())
	}
	return nil
}
