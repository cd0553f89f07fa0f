package ui

import (
	"context"
	"log"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"folio/internal/config"
	"folio/internal/contact"
	"folio/internal/content"
	"folio/internal/domain"
	"folio/internal/eventbus"
	"folio/internal/motion"
	"folio/internal/ui/handlers"
	"folio/internal/ui/input"
	inputtypes "folio/internal/ui/input/types"
	"folio/internal/ui/logic"
	"folio/internal/ui/state"
	"folio/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	ctx       context.Context
	bus       eventbus.EventBus
	config    *config.Config
	state     *state.AppState
	submitter contact.Submitter
	program   *tea.Program

	width  int
	height int
	now    time.Time
	help   help.Model
	styles *views.Styles
	popup  *views.PopupRenderer

	inputHandler *input.Handler
	eventHandler *handlers.EventHandler

	// page
	navigator *logic.Navigator
	filter    *logic.FilterState
	observer  *motion.Observer
	throttle  *motion.Throttle
	elements  []*element
	anims     map[string]*motion.Animator
	releases  map[string]func()
	revealed  map[string]bool

	typewriter *motion.Typewriter
	typeTimer  motion.Handle

	// contact form
	form         *contact.Form
	inputs       []textinput.Model
	message      textarea.Model
	spinner      spinner.Model
	submitCancel context.CancelFunc
	submitID     string

	// project modal
	modalView viewport.Model
	modalAnim *motion.Animator

	darkDefault bool
}

// Options wires the model to its collaborators
type Options struct {
	Bus       eventbus.EventBus
	Config    *config.Config
	Portfolio *domain.Portfolio
	Submitter contact.Submitter
	// ContentPath is the portfolio file, empty for the built-in one
	ContentPath string
}

// NewModel creates a new UI model. ctx bounds every background command.
func NewModel(ctx context.Context, opts Options) *Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	appState := state.NewAppState(opts.Portfolio)
	appState.ContentPath = opts.ContentPath
	if cfg.UISettings.SkillView == state.SkillViewCompact {
		appState.SkillView = state.SkillViewCompact
	}

	styles := views.NewStyles()
	m := &Model{
		ctx:          ctx,
		bus:          opts.Bus,
		config:       cfg,
		state:        appState,
		submitter:    opts.Submitter,
		help:         help.New(),
		styles:       styles,
		popup:        views.NewPopupRenderer(styles),
		inputHandler: input.New(),
		navigator:    logic.NewNavigator(),
		filter:       logic.NewFilterState(),
		observer:     motion.NewObserver(),
		throttle:     motion.NewThrottle(cfg.Animation.FrameInterval.Std()),
		anims:        make(map[string]*motion.Animator),
		releases:     make(map[string]func()),
		revealed:     make(map[string]bool),
		form:         contact.NewForm(cfg.Animation.StatusResetDelay.Std()),
		spinner:      spinner.New(spinner.WithSpinner(spinner.Dot)),
		modalView:    viewport.New(60, 10),
		darkDefault:  lipgloss.HasDarkBackground(),
	}
	if m.submitter == nil {
		m.submitter = contact.Simulated{Delay: cfg.Contact.SimulatedDelay.Std()}
	}
	m.eventHandler = handlers.NewEventHandler(appState, m.contentReloaded)
	m.newTypewriter()
	m.initForm()
	m.applyTheme()
	m.rebuild()
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.frameTick(), m.armTypewriter(m.typewriter.FirstDelay()))
}

func (m *Model) frameTick() tea.Cmd {
	return tea.Tick(m.config.Animation.FrameInterval.Std(), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) newTypewriter() {
	a := m.config.Animation
	roles := m.state.Portfolio.Profile.Roles
	if len(roles) == 0 {
		roles = []string{m.state.Portfolio.Profile.Title}
	}
	m.typewriter = motion.NewTypewriter(roles, motion.Speeds{
		Type:   a.TypeSpeed.Std(),
		Delete: a.DeleteSpeed.Std(),
		Pause:  a.PauseTime.Std(),
	})
}

// armTypewriter replaces the pending typewriter tick
func (m *Model) armTypewriter(delay time.Duration) tea.Cmd {
	gen := m.typeTimer.Arm()
	return tea.Tick(delay, func(time.Time) tea.Msg { return typeTickMsg{gen: gen} })
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case tea.KeyMsg:
		actions := m.inputHandler.HandleKey(msg, m.inputContext())
		var cmds []tea.Cmd
		for _, action := range actions {
			if cmd := m.processAction(action, msg); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		m.syncFormFocus()
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		if m.inputHandler.GetMode() == inputtypes.ModeModal {
			return m, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.scroll(m.navigator.ScrollBy(-3))
		case tea.MouseButtonWheelDown:
			m.scroll(m.navigator.ScrollBy(3))
		}
		return m, nil

	case tickMsg:
		m.now = time.Time(msg)
		m.refresh()
		return m, m.frameTick()

	case typeTickMsg:
		if !m.typeTimer.Fire(msg.gen) {
			return m, nil
		}
		return m, m.armTypewriter(m.typewriter.Step())

	case statusResetMsg:
		m.form.ResetStatus(msg.gen)
		m.throttle.Mark()
		return m, nil

	case modalClearMsg:
		m.filter.ClearClosing(msg.gen)
		return m, nil

	case submitResultMsg:
		return m, m.submitDone(msg)

	case spinner.TickMsg:
		if m.form.Status() != contact.StatusSubmitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case resumePagerMsg:
		if msg.err != nil {
			log.Printf("Resume pager failed: %v", msg.err)
			m.state.SetStatus("Could not open resume: "+msg.err.Error(), true)
		}
		return m, nil

	case EventMsg:
		cmd := m.eventHandler.HandleEvent(msg.Event)
		return m, cmd
	}

	// cursor blink and similar for the focused field
	return m, m.updateField(msg)
}

func (m *Model) inputContext() inputtypes.Context {
	return modelContext{m}
}

// modelContext exposes the read-only view input modes need
type modelContext struct {
	m *Model
}

func (c modelContext) ModalOpen() bool      { return c.m.filter.ModalOpen() }
func (c modelContext) FocusedProject() int  { return c.m.state.FocusedProject }
func (c modelContext) VisibleProjects() int { return len(c.m.visibleProjects()) }
func (c modelContext) Submitting() bool     { return c.m.form.Status() == contact.StatusSubmitting }
func (c modelContext) ImageCount() int      { return c.m.filter.Carousel().Len() }

func (m *Model) visibleProjects() []domain.Project {
	return m.filter.Visible(m.state.Portfolio.Projects)
}

func (m *Model) processAction(action inputtypes.Action, key tea.KeyMsg) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.ScrollAction:
		m.scroll(m.navigator.ScrollBy(a.Lines))

	case inputtypes.PageAction:
		switch a.Direction {
		case "up":
			m.scroll(m.navigator.PageUp())
		case "down":
			m.scroll(m.navigator.PageDown())
		case "home":
			m.scroll(m.navigator.Home())
		case "end":
			m.scroll(m.navigator.End())
		}

	case inputtypes.JumpAction:
		m.relayout()
		if !m.navigator.ScrollTo(a.Section) {
			log.Printf("jump: section %s not on page", a.Section)
		}
		m.throttle.Mark()

	case inputtypes.CycleFilterAction:
		cats := domain.Categories()
		next := (int(m.filter.Category()) + a.Step + len(cats)) % len(cats)
		return m.setFilter(cats[next])

	case inputtypes.FocusProjectAction:
		visible := m.visibleProjects()
		m.state.MoveProjectFocus(a.Step, len(visible))
		m.relayout()
		if el := m.projectElement(m.state.FocusedProject); el != nil {
			m.navigator.EnsureVisible(el.span)
		}
		m.throttle.Mark()

	case inputtypes.OpenProjectAction:
		return m.openProject()

	case inputtypes.CloseModalAction:
		return m.closeProject()

	case inputtypes.CarouselAction:
		c := m.filter.Carousel()
		switch {
		case a.Step > 0:
			c.Next()
		case a.Step < 0:
			c.Prev()
		default:
			c.GoTo(a.Index)
		}

	case inputtypes.ModalScrollAction:
		if a.Lines < 0 {
			m.modalView.LineUp(-a.Lines)
		} else {
			m.modalView.LineDown(a.Lines)
		}

	case inputtypes.FocusFieldAction:
		return m.focusField(a.Step)

	case inputtypes.EditFieldAction:
		return m.editField(key)

	case inputtypes.SubmitFormAction:
		return m.submit()

	case inputtypes.ToggleHelpAction:
		m.help.ShowAll = !m.help.ShowAll
		m.state.ShowHelp = m.help.ShowAll
		m.resize()

	case inputtypes.CycleThemeAction:
		m.config.UISettings.Theme = m.config.UISettings.Theme.Next()
		m.applyTheme()
		m.state.SetStatus("Theme: "+string(m.config.UISettings.Theme), false)
		m.publish(eventbus.ConfigChangedEvent{Theme: string(m.config.UISettings.Theme)})

	case inputtypes.ToggleSkillViewAction:
		m.state.ToggleSkillView()
		m.config.UISettings.SkillView = m.state.SkillView
		m.throttle.Mark()

	case inputtypes.OpenResumeAction:
		return m.openResume()

	case inputtypes.QuitAction:
		m.teardown()
		return tea.Quit
	}
	return nil
}

func (m *Model) scroll(moved bool) {
	if moved {
		m.throttle.Mark()
	}
}

func (m *Model) publish(e eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(e)
	}
}

func (m *Model) setFilter(c domain.Category) tea.Cmd {
	if !m.filter.SetFilter(c) {
		return nil
	}
	m.state.FocusedProject = -1
	m.rebuild()
	m.publish(eventbus.FilterChangedEvent{Category: c, Visible: len(m.visibleProjects())})
	return nil
}

func (m *Model) projectElement(index int) *element {
	if index < 0 {
		return nil
	}
	n := 0
	for _, el := range m.elements {
		if !el.card {
			continue
		}
		if n == index {
			return el
		}
		n++
	}
	return nil
}

// applyTheme points the adaptive colors at the configured background
func (m *Model) applyTheme() {
	switch m.config.UISettings.Theme {
	case config.ThemeLight:
		lipgloss.SetHasDarkBackground(false)
	case config.ThemeDark:
		lipgloss.SetHasDarkBackground(true)
	default:
		lipgloss.SetHasDarkBackground(m.darkDefault)
	}
	m.throttle.Mark()
}

func (m *Model) openResume() tea.Cmd {
	baseDir := ""
	if m.state.ContentPath != "" {
		baseDir = filepath.Dir(m.state.ContentPath)
	}
	rc, err := content.OpenResume(m.state.Portfolio.Profile.Resume, baseDir)
	if err != nil {
		m.state.SetStatus(err.Error(), true)
		return nil
	}
	ops := NewPagerOps(m.program)
	return func() tea.Msg {
		defer rc.Close()
		return resumePagerMsg{err: ops.Show(rc)}
	}
}

// contentReloaded remounts the page for a new portfolio
func (m *Model) contentReloaded(p *domain.Portfolio) {
	m.filter.Reconcile(p.Projects)
	if !m.filter.ModalOpen() && m.inputHandler.GetMode() == inputtypes.ModeModal {
		m.inputHandler.SetMode(inputtypes.ModeNormal, m.inputContext())
	}
	if sel := m.filter.Selected(); sel != nil {
		m.modalView.SetContent(m.modalBody(*sel))
	}
	m.state.ClampProjectFocus(len(m.visibleProjects()))
	m.newTypewriter()
	m.rebuild()
}

// rebuild remounts page elements. Elements that survive keep their
// animation state; removed ones stop being observed.
func (m *Model) rebuild() {
	els := m.buildElements()
	seen := make(map[string]bool, len(els))
	for _, el := range els {
		el.region.ID = el.id
		seen[el.id] = true
		if _, ok := m.anims[el.id]; ok {
			continue
		}
		m.anims[el.id] = motion.NewAnimator(el.desc, el.region.Mode)
		m.releases[el.id] = m.observer.Register(el.region)
	}
	for id, release := range m.releases {
		if seen[id] {
			continue
		}
		release()
		delete(m.releases, id)
		delete(m.anims, id)
	}
	m.elements = els
	m.throttle.Mark()
}

// refresh recomputes layout and visibility at most once per frame
func (m *Model) refresh() {
	if !m.throttle.Due(m.now) {
		return
	}
	layout := m.relayout()
	for _, ch := range m.observer.Update(m.navigator.Viewport(), layout) {
		if a := m.anims[ch.ID]; a != nil {
			a.SetVisible(ch.Visible, m.now)
		}
	}
	for _, el := range m.elements {
		if m.revealed[el.section] || !m.observer.Visible(el.id) {
			continue
		}
		m.revealed[el.section] = true
		m.publish(eventbus.SectionRevealedEvent{Section: el.section})
	}
}

func (m *Model) teardown() {
	if m.submitCancel != nil {
		m.submitCancel()
		m.submitCancel = nil
	}
	m.form.Teardown()
	m.filter.Teardown()
	m.typeTimer.Cancel()
	for id, release := range m.releases {
		release()
		delete(m.releases, id)
	}
}
