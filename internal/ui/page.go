package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"folio/internal/motion"
	"folio/internal/ui/logic"
	"folio/internal/ui/views"
)

const (
	maxContentWidth = 96
	headerHeight    = 2
	elementGap      = 1
	sectionGap      = 2
)

var navLabels = map[string]string{
	logic.SectionHero:         "Home",
	logic.SectionAbout:        "About",
	logic.SectionExperience:   "Experience",
	logic.SectionProjects:     "Projects",
	logic.SectionSkills:       "Skills",
	logic.SectionAchievements: "Achievements",
	logic.SectionContact:      "Contact",
}

func (m *Model) contentWidth() int {
	return max(20, min(m.width-4, maxContentWidth))
}

func (m *Model) footerHeight() int {
	return 1 + lipgloss.Height(m.help.View(m.inputHandler.Keys()))
}

// resize fits every sized widget to the window
func (m *Model) resize() {
	m.navigator.SetHeight(m.height - headerHeight - m.footerHeight())

	w := m.contentWidth()
	for i := range m.inputs {
		m.inputs[i].Width = max(1, w-6)
	}
	m.message.SetWidth(max(1, w-4))

	m.modalView.Width = m.modalWidth() - 6
	m.modalView.Height = max(3, min(12, m.height-18))
	if p := m.filter.Selected(); p != nil {
		m.modalView.SetContent(m.modalBody(*p))
	}
	m.throttle.Mark()
}

// relayout measures every element and hands the section spans to the
// navigator. Returns the layout keyed by element id.
func (m *Model) relayout() map[string]motion.Span {
	width := m.contentWidth()
	layout := make(map[string]motion.Span, len(m.elements))
	var sections []logic.Section
	top := 0
	for _, el := range m.elements {
		if n := len(sections); n == 0 || sections[n-1].ID != el.section {
			if n > 0 {
				top += sectionGap
				sections[n-1].Span.Height = top - sections[n-1].Span.Top
			}
			sections = append(sections, logic.Section{ID: el.section, Span: motion.Span{Top: top}})
		}
		el.span = motion.Span{Top: top, Height: lipgloss.Height(el.render(width))}
		layout[el.id] = el.span
		top += el.span.Height + elementGap
	}
	if n := len(sections); n > 0 {
		sections[n-1].Span.Height = top - sections[n-1].Span.Top
	}
	m.navigator.SetLayout(sections, top)
	return layout
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	page := strings.Join([]string{m.renderHeader(), m.renderBody(), m.renderFooter()}, "\n")

	if p := m.modalProject(); p != nil && m.modalAnim != nil {
		frame := m.modalAnim.Frame(m.now)
		if m.filter.ModalOpen() || frame.Opacity > 0.05 {
			modal := m.styles.ApplyFrame(m.renderModal(*p), frame, m.width)
			return m.popup.RenderPopupOverlay(page, modal, m.height, m.width, lipgloss.NewStyle())
		}
	}
	return page
}

func (m *Model) renderHeader() string {
	active := m.navigator.Active()
	present := make(map[string]bool)
	for _, s := range m.navigator.Sections() {
		present[s.ID] = true
	}

	name := m.styles.Title.Render(m.state.Portfolio.Profile.Name)
	var nav []string
	for i, id := range logic.SectionOrder {
		if !present[id] {
			continue
		}
		label := fmt.Sprintf("%d %s", i+1, navLabels[id])
		if id == active {
			nav = append(nav, m.styles.NavActive.Render(label))
		} else {
			nav = append(nav, m.styles.Nav.Render(label))
		}
	}
	line := ansi.Truncate(name+"  "+strings.Join(nav, "  "), m.width, "…")

	progress := ""
	if m.navigator.Scrolled() {
		progress = views.ProgressBar(m.width, m.navigator.Progress())
	}
	return line + "\n" + progress
}

// renderBody draws the elements inside the viewport at their current frames
func (m *Model) renderBody() string {
	vp := m.navigator.Viewport()
	rows := make([]string, vp.Height)
	width := m.contentWidth()
	pad := strings.Repeat(" ", max(0, (m.width-width)/2))

	for _, el := range m.elements {
		if el.span.Bottom() <= vp.Top || el.span.Top >= vp.Bottom() {
			continue
		}
		block := fitHeight(el.render(width), el.span.Height)
		frame := motion.Frame{Opacity: 1}
		if a := m.anims[el.id]; a != nil {
			frame = a.Frame(m.now)
		}
		lines := strings.Split(m.styles.ApplyFrame(block, frame, width), "\n")
		for i, line := range lines {
			row := el.span.Top + i - vp.Top
			if row < 0 || row >= len(rows) {
				continue
			}
			rows[row] = pad + line
		}
	}
	return strings.Join(rows, "\n")
}

// fitHeight pads or cuts block to exactly h lines
func fitHeight(block string, h int) string {
	lines := strings.Split(block, "\n")
	if len(lines) > h {
		lines = lines[:h]
	}
	for len(lines) < h {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderFooter() string {
	status := ""
	if m.state.StatusMessage != "" {
		style := m.styles.StatusOK
		if m.state.StatusIsError {
			style = m.styles.StatusError
		}
		status = style.Render(m.state.StatusMessage)
	}
	mode := m.styles.Dim.Render("[" + m.inputHandler.ModeName() + "]")
	status = ansi.Truncate(mode+" "+status, m.width, "…")
	return status + "\n" + m.help.View(m.inputHandler.Keys())
}
