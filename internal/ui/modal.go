package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"folio/internal/domain"
	"folio/internal/eventbus"
	"folio/internal/motion"
	"folio/internal/ui/logic"
	"folio/internal/ui/views"
)

const modalFade = 200 * time.Millisecond

func (m *Model) openProject() tea.Cmd {
	visible := m.visibleProjects()
	i := m.state.FocusedProject
	if i < 0 || i >= len(visible) {
		return nil
	}
	p := visible[i]
	m.filter.Select(p)
	m.modalAnim = motion.NewAnimator(motion.FadeUp(1, modalFade, 0), motion.TriggerOnce)
	m.modalAnim.SetVisible(true, m.now)
	m.modalView.SetContent(m.modalBody(p))
	m.modalView.GotoTop()
	m.publish(eventbus.ProjectOpenedEvent{ProjectID: p.ID})
	return nil
}

// closeProject closes the modal and schedules dropping the closing project
// once the exit animation is over
func (m *Model) closeProject() tea.Cmd {
	gen, ok := m.filter.Close()
	if !ok {
		return nil
	}
	if m.modalAnim != nil {
		m.modalAnim.SetVisible(false, m.now)
	}
	return tea.Tick(m.config.Animation.ModalCloseDelay.Std(), func(time.Time) tea.Msg {
		return modalClearMsg{gen: gen}
	})
}

// modalProject is the project to draw: the open one, or the one animating out
func (m *Model) modalProject() *domain.Project {
	if p := m.filter.Selected(); p != nil {
		return p
	}
	return m.filter.Closing()
}

func (m *Model) modalWidth() int {
	return max(20, min(m.width-8, 80))
}

// modalBody is the scrollable part of the modal
func (m *Model) modalBody(p domain.Project) string {
	width := m.modalWidth() - 6
	var b strings.Builder
	desc := p.LongDescription
	if desc == "" {
		desc = p.Description
	}
	b.WriteString(m.styles.Text.Width(width).Render(desc))

	if len(p.Technologies) > 0 {
		b.WriteString("\n\n")
		b.WriteString(m.styles.Subheading.Render("Technologies"))
		b.WriteString("\n")
		b.WriteString(m.renderTags(p.Technologies, width))
	}
	if p.GitHub != "" || p.Demo != "" {
		b.WriteString("\n\n")
		b.WriteString(m.styles.Subheading.Render("Links"))
	}
	if p.GitHub != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Dim.Render("code  ") + m.styles.Link.Render(p.GitHub))
	}
	if p.Demo != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Dim.Render("demo  ") + m.styles.Link.Render(p.Demo))
	}
	return b.String()
}

func (m *Model) renderCarousel(p domain.Project, width int) string {
	c := m.filter.Carousel()
	if len(p.Images) == 0 || c.Len() == 0 {
		return m.styles.Dim.Render("No screenshots for this project")
	}
	idx := c.Index()
	label := fmt.Sprintf("[ %s ]", p.Images[idx])
	frame := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Border(lipgloss.NormalBorder()).
		BorderForeground(views.CategoryColor(p.Category)).
		Render(m.styles.Dim.Render(label))

	if !c.Navigable() {
		return frame
	}
	dots := make([]string, c.Len())
	for i := range dots {
		if i == idx {
			dots[i] = m.styles.Accent.Render("●")
		} else {
			dots[i] = m.styles.Dim.Render("○")
		}
	}
	nav := m.styles.Dim.Render("◀ ") + strings.Join(dots, " ") + m.styles.Dim.Render(" ▶") +
		m.styles.Dim.Render(fmt.Sprintf("  %d/%d", idx+1, c.Len()))
	return frame + "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, nav)
}

// renderModal draws the modal box for p
func (m *Model) renderModal(p domain.Project) string {
	width := m.modalWidth() - 6
	title := m.styles.Title.Render(p.Title)
	if p.Featured {
		title += m.styles.Cursor.Render("  ★")
	}
	badges := m.styles.Badge.Foreground(views.CategoryColor(p.Category)).Render(logic.CategoryLabel(p.Category)) +
		m.styles.Badge.Foreground(views.StatusColor(p.Status)).Render(p.Status.String())

	hint := "esc close · ↑/↓ scroll"
	if m.filter.Carousel().Navigable() {
		hint = "←/→ images · " + hint
	}
	body := strings.Join([]string{
		title,
		badges,
		"",
		m.renderCarousel(p, width-2),
		"",
		m.modalView.View(),
		"",
		m.styles.Help.Render(hint),
	}, "\n")
	return m.styles.Modal.Width(m.modalWidth()).Render(body)
}
