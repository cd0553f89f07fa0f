package ui

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/contact"
	"folio/internal/eventbus"
	inputtypes "folio/internal/ui/input/types"
)

// index of the message field; the others are single-line inputs
const messageField = 3

var placeholders = [...]string{
	"Your name",
	"your.email@example.com",
	"What's this about?",
	"Tell me about your project...",
}

func (m *Model) initForm() {
	m.inputs = make([]textinput.Model, messageField)
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.Prompt = ""
		ti.CharLimit = 200
		m.inputs[i] = ti
	}
	ta := textarea.New()
	ta.Placeholder = placeholders[messageField]
	ta.ShowLineNumbers = false
	ta.CharLimit = 5000
	ta.SetHeight(5)
	m.message = ta
}

func (m *Model) formActive() bool {
	return m.inputHandler.GetMode() == inputtypes.ModeForm
}

// focusField moves form focus by step, wrapping. Step 0 refocuses the
// current field.
func (m *Model) focusField(step int) tea.Cmd {
	n := len(contact.FieldOrder)
	m.state.FormFocus = ((m.state.FormFocus+step)%n + n) % n
	m.blurFields()
	m.throttle.Mark()
	if m.state.FormFocus == messageField {
		return m.message.Focus()
	}
	return m.inputs[m.state.FormFocus].Focus()
}

func (m *Model) blurFields() {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.message.Blur()
}

// syncFormFocus drops field focus once the form mode is left
func (m *Model) syncFormFocus() {
	if !m.formActive() {
		m.blurFields()
	}
}

// editField feeds a key to the focused field and copies its value into
// the form
func (m *Model) editField(key tea.KeyMsg) tea.Cmd {
	if m.state.FormFocus != messageField && key.Type == tea.KeyEnter {
		return m.focusField(1)
	}
	if m.form.Status() == contact.StatusSubmitting {
		return nil
	}
	return m.updateField(key)
}

// updateField routes msg to the focused field while the form is active
func (m *Model) updateField(msg tea.Msg) tea.Cmd {
	if !m.formActive() {
		return nil
	}
	var cmd tea.Cmd
	field := contact.FieldOrder[m.state.FormFocus]
	if m.state.FormFocus == messageField {
		m.message, cmd = m.message.Update(msg)
		m.setField(field, m.message.Value())
	} else {
		i := m.state.FormFocus
		m.inputs[i], cmd = m.inputs[i].Update(msg)
		m.setField(field, m.inputs[i].Value())
	}
	return cmd
}

func (m *Model) setField(field contact.Field, value string) {
	before := m.form.Errors().Get(field)
	m.form.Set(field, value)
	if before != m.form.Errors().Get(field) {
		// the error line went away
		m.throttle.Mark()
	}
}

// submit validates the form and starts delivery
func (m *Model) submit() tea.Cmd {
	fields, ok := m.form.Submit()
	m.throttle.Mark()
	if !ok {
		return nil
	}

	sub := contact.NewSubmission(fields, time.Now())
	ctx, cancel := context.WithCancel(m.ctx)
	m.submitCancel = cancel
	m.submitID = sub.ID
	m.publish(eventbus.ContactSubmittedEvent{SubmissionID: sub.ID})
	log.Printf("contact: submitting %s", sub.ID)

	submitter := m.submitter
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		return submitResultMsg{id: sub.ID, err: submitter.Submit(ctx, sub)}
	})
}

// submitDone records a delivery result and schedules the banner reset
func (m *Model) submitDone(msg submitResultMsg) tea.Cmd {
	if msg.id != m.submitID {
		return nil
	}
	if m.submitCancel != nil {
		m.submitCancel()
		m.submitCancel = nil
	}
	m.submitID = ""
	m.throttle.Mark()

	if errors.Is(msg.err, context.Canceled) && m.ctx.Err() != nil {
		return nil
	}

	gen, delay := m.form.Complete(msg.err)
	if msg.err != nil {
		log.Printf("contact: delivery of %s failed: %v", msg.id, msg.err)
		m.publish(eventbus.ContactFailedEvent{SubmissionID: msg.id, Err: msg.err})
	} else {
		m.publish(eventbus.ContactDeliveredEvent{SubmissionID: msg.id})
		for i := range m.inputs {
			m.inputs[i].Reset()
		}
		m.message.Reset()
	}
	return tea.Tick(delay, func(time.Time) tea.Msg { return statusResetMsg{gen: gen} })
}
