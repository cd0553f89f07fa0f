package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"folio/internal/contact"
	"folio/internal/domain"
	"folio/internal/motion"
	"folio/internal/ui/logic"
	"folio/internal/ui/state"
	"folio/internal/ui/views"
)

// element is one animated block of the page
type element struct {
	id      string
	section string
	region  motion.Region
	desc    motion.Descriptor
	render  func(width int) string
	span    motion.Span
	card    bool // a project card, in visible list order
}

const (
	experienceSlide = 8
	experienceDur   = 450 * time.Millisecond
	experienceStep  = 80 * time.Millisecond
	// margins stand in for the page's pixel root margins
	experienceMargin = 7
	projectMargin    = 10
)

var sectionTitles = map[string]string{
	logic.SectionAbout:        "About Me",
	logic.SectionExperience:   "Experience",
	logic.SectionProjects:     "Projects",
	logic.SectionSkills:       "Skills",
	logic.SectionAchievements: "Achievements",
	logic.SectionContact:      "Get In Touch",
}

func once(threshold float64) motion.Region {
	return motion.Region{Threshold: threshold, Mode: motion.TriggerOnce}
}

// buildElements lays out the page for the current portfolio and filter.
// Sections without content are left out.
func (m *Model) buildElements() []*element {
	p := m.state.Portfolio
	reveal := m.config.Animation.RevealDuration.Std()
	step := m.config.Animation.StaggerStep.Std()

	var els []*element
	add := func(e *element) { els = append(els, e) }
	heading := func(section string) {
		title := sectionTitles[section]
		add(&element{
			id:      "heading/" + section,
			section: section,
			region:  once(0.1),
			desc:    motion.FadeUp(2, reveal, 0),
			render: func(width int) string {
				return m.styles.Heading.Render(title)
			},
		})
	}

	add(&element{
		id:      "hero",
		section: logic.SectionHero,
		region:  once(0.1),
		desc:    motion.FadeUp(2, reveal, 0),
		render:  m.renderHero,
	})

	about := p.Profile.About
	if len(about) == 0 && p.Profile.Description != "" {
		about = []string{p.Profile.Description}
	}
	if len(about) > 0 {
		heading(logic.SectionAbout)
		for i, para := range about {
			add(&element{
				id:      fmt.Sprintf("about/%d", i),
				section: logic.SectionAbout,
				region:  once(0.1),
				desc:    motion.FadeUp(1, reveal, motion.Stagger(0, i, step)),
				render: func(width int) string {
					return m.styles.Text.Width(width).Render(para)
				},
			})
		}
	}

	if len(p.Experience) > 0 {
		heading(logic.SectionExperience)
		for i, exp := range p.Experience {
			// entries alternate sides like a timeline
			from := float64(-experienceSlide)
			if i%2 == 1 {
				from = experienceSlide
			}
			add(&element{
				id:      "experience/" + exp.ID,
				section: logic.SectionExperience,
				region:  motion.Region{Threshold: 0, Mode: motion.Continuous, Margin: experienceMargin},
				desc:    motion.SlideIn(from, experienceDur, motion.Stagger(0, i, experienceStep)),
				render: func(width int) string {
					return m.renderExperience(exp, width)
				},
			})
		}
	}

	heading(logic.SectionProjects)
	add(&element{
		id:      "projects/filters",
		section: logic.SectionProjects,
		region:  once(0.1),
		desc:    motion.FadeUp(1, reveal, 0),
		render:  m.renderFilterBar,
	})
	visible := m.filter.Visible(p.Projects)
	if len(visible) == 0 {
		add(&element{
			id:      "projects/empty/" + m.filter.Category().String(),
			section: logic.SectionProjects,
			region:  once(0.1),
			desc:    motion.FadeUp(1, reveal, 0),
			render: func(width int) string {
				return m.styles.Dim.Render("No projects in this category yet.")
			},
		})
	}
	for i, proj := range visible {
		index := i
		// keyed by filter so a new filter re-runs the staggered entrance
		add(&element{
			id:      fmt.Sprintf("projects/%s/%s", m.filter.Category(), proj.ID),
			section: logic.SectionProjects,
			region:  motion.Region{Threshold: 0.2, Mode: motion.TriggerOnce, Margin: projectMargin},
			card:    true,
			desc:    motion.FadeUp(2, reveal, motion.Stagger(0, i, step)),
			render: func(width int) string {
				return m.renderProjectCard(proj, index == m.state.FocusedProject, width)
			},
		})
	}

	if len(p.Skills) > 0 {
		heading(logic.SectionSkills)
		for i, group := range skillGroups(p.Skills) {
			id := "skills/" + group.name
			add(&element{
				id:      id,
				section: logic.SectionSkills,
				region:  once(0.3),
				desc:    motion.FadeUp(1, reveal, motion.Stagger(0, i, step)),
				render: func(width int) string {
					return m.renderSkillGroup(group, m.fill(id), width)
				},
			})
		}
	}

	if len(p.Achievements) > 0 {
		heading(logic.SectionAchievements)
		for i, a := range p.Achievements {
			add(&element{
				id:      "achievements/" + a.ID,
				section: logic.SectionAchievements,
				region:  once(0.1),
				desc:    motion.FadeUp(2, reveal, motion.Stagger(0, i, step)),
				render: func(width int) string {
					return m.renderAchievement(a, width)
				},
			})
		}
	}

	heading(logic.SectionContact)
	add(&element{
		id:      "contact/details",
		section: logic.SectionContact,
		region:  once(0.1),
		desc:    motion.FadeUp(2, reveal, 0),
		render:  m.renderContactDetails,
	})
	add(&element{
		id:      "contact/form",
		section: logic.SectionContact,
		region:  once(0.3),
		desc:    motion.FadeUp(2, reveal, step),
		render:  m.renderForm,
	})

	return els
}

// fill is the eased reveal progress of an element, 0 until it is revealed
func (m *Model) fill(id string) float64 {
	a := m.anims[id]
	if a == nil || !a.Visible() {
		return 0
	}
	return a.Progress(m.now)
}

func (m *Model) renderHero(width int) string {
	prof := m.state.Portfolio.Profile
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(prof.Name))
	b.WriteString("\n")
	b.WriteString(m.styles.Subheading.Render(prof.Title))
	b.WriteString("\n")
	line := m.styles.Accent.Render("> ") + m.styles.Text.Render(m.typewriter.Text()) + m.styles.Cursor.Render("▌")
	b.WriteString(ansi.Truncate(line, width, ""))
	if prof.Tagline != "" {
		b.WriteString("\n\n")
		b.WriteString(m.styles.Dim.Width(width).Render(prof.Tagline))
	}
	var facts []string
	if prof.Location != "" {
		facts = append(facts, prof.Location)
	}
	if prof.Email != "" {
		facts = append(facts, prof.Email)
	}
	if len(facts) > 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.Dim.Render(strings.Join(facts, " · ")))
	}
	return b.String()
}

func (m *Model) renderExperience(exp domain.Experience, width int) string {
	var b strings.Builder
	b.WriteString(m.styles.Subheading.Render(exp.Title))
	b.WriteString(m.styles.Dim.Render(" @ "))
	b.WriteString(m.styles.Accent.Render(exp.Company))
	b.WriteString("\n")
	meta := exp.Duration
	if exp.Location != "" {
		meta += " · " + exp.Location
	}
	b.WriteString(m.styles.Dim.Render(meta))
	inner := max(1, width-2)
	for _, d := range exp.Description {
		b.WriteString("\n")
		b.WriteString(m.styles.Text.Width(inner).Render("• " + d))
	}
	if len(exp.Technologies) > 0 {
		b.WriteString("\n")
		b.WriteString(m.renderTags(exp.Technologies, width))
	}
	if exp.Website != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Link.Render(exp.Website))
	}
	return b.String()
}

func (m *Model) renderFilterBar(width int) string {
	projects := m.state.Portfolio.Projects
	var parts []string
	for _, c := range domain.Categories() {
		n := len(projects)
		if c != domain.CategoryAll {
			n = 0
			for _, p := range projects {
				if p.Category == c {
					n++
				}
			}
		}
		label := fmt.Sprintf("%s %d", logic.CategoryLabel(c), n)
		if c == m.filter.Category() {
			parts = append(parts, m.styles.Badge.
				Foreground(lipgloss.Color("255")).
				Background(views.CategoryColor(c)).
				Render(label))
			continue
		}
		parts = append(parts, m.styles.Badge.Foreground(views.CategoryColor(c)).Render(label))
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(parts, " "))
}

func (m *Model) renderProjectCard(p domain.Project, focused bool, width int) string {
	style := m.styles.Card
	if focused {
		style = m.styles.CardFocused
	}
	inner := max(1, width-4)

	title := m.styles.Subheading.Render(p.Title)
	if p.Featured {
		title += m.styles.Cursor.Render(" ★ featured")
	}
	badges := m.styles.Badge.Foreground(views.CategoryColor(p.Category)).Render(logic.CategoryLabel(p.Category)) +
		m.styles.Badge.Foreground(views.StatusColor(p.Status)).Render(p.Status.String())

	lines := []string{
		title,
		badges,
		m.styles.Text.Width(inner).Render(p.Description),
	}
	if len(p.Technologies) > 0 {
		lines = append(lines, m.renderTags(p.Technologies, inner))
	}

	var foot []string
	if p.GitHub != "" {
		foot = append(foot, m.styles.Link.Render("code"))
	}
	if p.Demo != "" {
		foot = append(foot, m.styles.Link.Render("live demo"))
	}
	switch n := len(p.Images); n {
	case 0:
		foot = append(foot, m.styles.Dim.Render("no screenshots"))
	case 1:
		foot = append(foot, m.styles.Dim.Render("1 screenshot"))
	default:
		foot = append(foot, m.styles.Dim.Render(fmt.Sprintf("%d screenshots", n)))
	}
	if focused {
		foot = append(foot, m.styles.Accent.Render("enter to open"))
	}
	lines = append(lines, strings.Join(foot, m.styles.Dim.Render(" · ")))

	return style.Width(max(1, width-2)).Render(strings.Join(lines, "\n"))
}

func (m *Model) renderTags(tags []string, width int) string {
	rendered := make([]string, len(tags))
	for i, t := range tags {
		rendered[i] = m.styles.Tag.Render(t)
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(rendered, " "))
}

type skillGroup struct {
	name   string
	skills []domain.Skill
}

// skillGroups groups skills by section in order of first appearance
func skillGroups(skills []domain.Skill) []skillGroup {
	var groups []skillGroup
	index := make(map[string]int)
	for _, s := range skills {
		name := s.Section
		if name == "" {
			name = "General"
		}
		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, skillGroup{name: name})
		}
		groups[i].skills = append(groups[i].skills, s)
	}
	return groups
}

const skillNameWidth = 18

func (m *Model) renderSkillGroup(g skillGroup, fill float64, width int) string {
	var b strings.Builder
	b.WriteString(m.styles.Subheading.Render(g.name))

	if m.state.SkillView == state.SkillViewCompact {
		tags := make([]string, len(g.skills))
		for i, s := range g.skills {
			tags[i] = m.styles.Tag.Foreground(views.BandColor(s.Band())).Render(s.Name)
		}
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Width(width).Render(strings.Join(tags, " ")))
		return b.String()
	}

	barWidth := max(4, width-skillNameWidth-6)
	for _, s := range g.skills {
		name := ansi.Truncate(s.Name, skillNameWidth-1, "…")
		level := float64(s.Level) / 100 * fill
		b.WriteString("\n")
		b.WriteString(m.styles.Text.Width(skillNameWidth).Render(name))
		b.WriteString(views.Bar(barWidth, level, views.BandColor(s.Band())))
		b.WriteString(m.styles.Dim.Render(fmt.Sprintf(" %3d%%", int(float64(s.Level)*fill+0.5))))
	}
	return b.String()
}

func (m *Model) renderAchievement(a domain.Achievement, width int) string {
	var b strings.Builder
	b.WriteString(m.styles.Accent.Render(views.KindGlyph(a.Kind) + " "))
	b.WriteString(m.styles.Subheading.Render(a.Title))
	if a.Date != "" {
		b.WriteString(m.styles.Dim.Render("  " + a.Date))
	}
	if a.Description != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Text.Width(max(1, width-2)).PaddingLeft(2).Render(a.Description))
	}
	if a.Link != "" {
		b.WriteString("\n  ")
		b.WriteString(m.styles.Link.Render(a.Link))
	}
	return b.String()
}

func (m *Model) renderContactDetails(width int) string {
	prof := m.state.Portfolio.Profile
	var lines []string
	lines = append(lines, m.styles.Text.Width(width).Render(
		"Have a project in mind or just want to say hi? Press c to write a message."))
	if prof.Email != "" {
		lines = append(lines, m.styles.Dim.Render("email    ")+m.styles.Link.Render(prof.Email))
	}
	if prof.Phone != "" {
		lines = append(lines, m.styles.Dim.Render("phone    ")+m.styles.Text.Render(prof.Phone))
	}
	if prof.Location != "" {
		lines = append(lines, m.styles.Dim.Render("location ")+m.styles.Text.Render(prof.Location))
	}
	for _, s := range prof.SocialLinks {
		lines = append(lines, m.styles.Dim.Render(fmt.Sprintf("%-9s", strings.ToLower(s.Platform)))+m.styles.Link.Render(s.URL))
	}
	return strings.Join(lines, "\n")
}

var fieldLabels = map[contact.Field]string{
	contact.FieldName:    "Name",
	contact.FieldEmail:   "Email",
	contact.FieldSubject: "Subject",
	contact.FieldMessage: "Message",
}

func (m *Model) renderForm(width int) string {
	editing := m.formActive()
	errs := m.form.Errors()

	var b strings.Builder
	for i, f := range contact.FieldOrder {
		style := m.styles.Input
		if editing && i == m.state.FormFocus {
			style = m.styles.InputActive
		}
		b.WriteString(m.styles.Dim.Render(fieldLabels[f]))
		b.WriteString("\n")
		var field string
		if f == contact.FieldMessage {
			field = m.message.View()
		} else {
			field = m.inputs[i].View()
		}
		b.WriteString(style.Width(max(1, width-2)).Render(field))
		b.WriteString("\n")
		if msg := errs.Get(f); msg != "" {
			b.WriteString(m.styles.FieldError.Render(msg))
			b.WriteString("\n")
		}
	}

	switch m.form.Status() {
	case contact.StatusSubmitting:
		b.WriteString(m.styles.ButtonBusy.Render(m.spinner.View() + " Sending..."))
	default:
		b.WriteString(m.styles.Button.Render("Send Message"))
		if !editing {
			b.WriteString(m.styles.Dim.Render("  press c to start typing"))
		} else {
			b.WriteString(m.styles.Dim.Render("  ctrl+s to send · esc to leave"))
		}
	}

	switch m.form.Status() {
	case contact.StatusSuccess:
		b.WriteString("\n")
		b.WriteString(m.styles.StatusStyle(contact.StatusSuccess).Render(
			"Message sent successfully! I'll get back to you soon."))
	case contact.StatusError:
		msg := "Failed to send message. Please try again."
		if err := m.form.Err(); err != nil {
			msg = fmt.Sprintf("Failed to send message: %v", err)
		}
		b.WriteString("\n")
		b.WriteString(m.styles.StatusStyle(contact.StatusError).Width(width).Render(msg))
	}
	return b.String()
}
