package ui

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/config"
	"folio/internal/contact"
	"folio/internal/content"
	"folio/internal/domain"
	"folio/internal/eventbus"
	inputtypes "folio/internal/ui/input/types"
	"folio/internal/ui/logic"
)

type recordingSubmitter struct {
	mu   sync.Mutex
	subs []contact.Submission
}

func (r *recordingSubmitter) Submit(ctx context.Context, s contact.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs = append(r.subs, s)
	return nil
}

func newTestModel(t *testing.T) *Model {
	t.Helper()
	m := NewModel(context.Background(), Options{
		Config:    config.DefaultConfig(),
		Portfolio: content.Default(),
		Submitter: &recordingSubmitter{},
	})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 24})
	m.Update(tickMsg(time.Now()))
	return m
}

func press(m *Model, keys ...string) {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "ctrl+s":
			msg = tea.KeyMsg{Type: tea.KeyCtrlS}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m.Update(msg)
	}
}

func TestViewBeforeSize(t *testing.T) {
	m := NewModel(context.Background(), Options{Portfolio: content.Default()})
	assert.Equal(t, "Loading...", m.View())
}

func TestHeroRevealsOnFirstFrame(t *testing.T) {
	m := newTestModel(t)
	require.NotNil(t, m.anims["hero"])
	assert.True(t, m.anims["hero"].Visible())
	assert.True(t, m.observer.Visible("hero"))
	assert.Contains(t, m.View(), m.state.Portfolio.Profile.Name)
}

func TestCycleFilterRebuildsCards(t *testing.T) {
	m := newTestModel(t)
	all := len(m.visibleProjects())

	press(m, "f")
	assert.Equal(t, domain.CategoryWeb, m.filter.Category())
	assert.Less(t, len(m.visibleProjects()), all)

	cards := 0
	for _, el := range m.elements {
		if el.card {
			cards++
			assert.Contains(t, el.id, "projects/web/")
		}
	}
	assert.Equal(t, len(m.visibleProjects()), cards)

	press(m, "F")
	assert.Equal(t, domain.CategoryAll, m.filter.Category())
}

func TestOpenAndCloseProjectModal(t *testing.T) {
	m := newTestModel(t)

	press(m, "enter")
	assert.False(t, m.filter.ModalOpen(), "enter without a focused card does nothing")

	press(m, "tab", "enter")
	require.True(t, m.filter.ModalOpen())
	assert.Equal(t, inputtypes.ModeModal, m.inputHandler.GetMode())
	opened := m.filter.Selected().ID

	press(m, "esc")
	assert.False(t, m.filter.ModalOpen())
	assert.Nil(t, m.filter.Selected())
	require.NotNil(t, m.filter.Closing())
	assert.Equal(t, opened, m.filter.Closing().ID)
	assert.Equal(t, inputtypes.ModeNormal, m.inputHandler.GetMode())

	// a stale clear does not drop the closing project
	m.Update(modalClearMsg{gen: 999})
	assert.NotNil(t, m.filter.Closing())
}

func TestModalCarouselWraps(t *testing.T) {
	m := newTestModel(t)
	press(m, "tab", "enter")
	require.True(t, m.filter.ModalOpen())

	c := m.filter.Carousel()
	n := c.Len()
	for i := 0; i < n; i++ {
		press(m, "right")
	}
	assert.Equal(t, 0, c.Index())
}

func TestJumpToSection(t *testing.T) {
	m := newTestModel(t)
	press(m, "4")
	m.Update(tickMsg(time.Now().Add(time.Second)))
	assert.Equal(t, logic.SectionProjects, m.navigator.Active())
	assert.True(t, m.navigator.Scrolled())
}

func TestContactFormValidationAndSubmit(t *testing.T) {
	m := newTestModel(t)
	sub := m.submitter.(*recordingSubmitter)

	press(m, "c")
	require.Equal(t, inputtypes.ModeForm, m.inputHandler.GetMode())

	press(m, "ctrl+s")
	assert.Equal(t, contact.StatusIdle, m.form.Status())
	assert.Equal(t, "Name is required", m.form.Errors().Get(contact.FieldName))

	press(m, "Ada")
	assert.Empty(t, m.form.Errors().Get(contact.FieldName), "editing clears the field error")

	press(m, "tab", "ada@example.com", "tab", "Hello there", "tab", "I would like to talk about a project.")
	press(m, "ctrl+s")
	require.Equal(t, contact.StatusSubmitting, m.form.Status())
	id := m.submitID
	require.NotEmpty(t, id)

	// a second submit while one is in flight is ignored
	press(m, "ctrl+s")
	assert.Equal(t, id, m.submitID)

	m.Update(submitResultMsg{id: id})
	assert.Equal(t, contact.StatusSuccess, m.form.Status())
	assert.Empty(t, m.form.Fields().Name)
	assert.Empty(t, m.inputs[0].Value())
	assert.Empty(t, sub.subs, "the command was not run by the test")
}

func TestFailedDeliveryKeepsFields(t *testing.T) {
	m := newTestModel(t)
	press(m, "c", "Ada", "tab", "ada@example.com", "tab", "Hello there", "tab", "I would like to talk about a project.")
	press(m, "ctrl+s")
	require.Equal(t, contact.StatusSubmitting, m.form.Status())

	m.Update(submitResultMsg{id: m.submitID, err: errors.New("relay down")})
	assert.Equal(t, contact.StatusError, m.form.Status())
	assert.Equal(t, "Ada", m.form.Fields().Name)
	assert.Contains(t, ansi.Strip(m.renderForm(80)), "relay down")
}

func TestQuitWhileSubmittingAsks(t *testing.T) {
	m := newTestModel(t)
	press(m, "c", "Ada", "tab", "ada@example.com", "tab", "Hello there", "tab", "I would like to talk about a project.")
	press(m, "ctrl+s", "esc")
	require.Equal(t, contact.StatusSubmitting, m.form.Status())

	press(m, "q")
	assert.Equal(t, inputtypes.ModeQuitConfirm, m.inputHandler.GetMode())
	press(m, "n")
	assert.Equal(t, inputtypes.ModeNormal, m.inputHandler.GetMode())
}

func TestReloadClosesModalOfRemovedProject(t *testing.T) {
	m := newTestModel(t)
	press(m, "tab", "enter")
	require.True(t, m.filter.ModalOpen())

	p := content.Default()
	p.Projects = p.Projects[1:]
	m.Update(EventMsg{Event: eventbus.ContentReloadedEvent{Path: "portfolio.toml", Portfolio: p}})

	assert.False(t, m.filter.ModalOpen())
	assert.Equal(t, inputtypes.ModeNormal, m.inputHandler.GetMode())
	assert.Len(t, m.state.Portfolio.Projects, len(p.Projects))
	assert.Contains(t, m.state.StatusMessage, "portfolio.toml")
}

func TestReloadReleasesRemovedRegions(t *testing.T) {
	m := newTestModel(t)
	before := m.observer.Len()

	p := content.Default()
	p.Achievements = nil
	m.Update(EventMsg{Event: eventbus.ContentReloadedEvent{Portfolio: p}})

	assert.Less(t, m.observer.Len(), before)
	for id := range m.anims {
		assert.NotContains(t, id, "achievements/")
	}
}

func TestTypewriterIgnoresStaleTicks(t *testing.T) {
	m := newTestModel(t)
	m.Init()
	text := m.typewriter.Text()

	m.Update(typeTickMsg{gen: 0})
	assert.Equal(t, text, m.typewriter.Text())
}

func TestQuitTearsDown(t *testing.T) {
	m := newTestModel(t)
	press(m, "tab", "enter")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Nil(t, m.filter.Selected())
	assert.Equal(t, 0, m.observer.Len())
}
