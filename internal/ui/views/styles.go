package views

import (
	"github.com/charmbracelet/lipgloss"

	"folio/internal/contact"
	"folio/internal/domain"
)

// Styles contains all the style definitions for the UI. Colors are adaptive
// so switching the background flag re-themes every style.
type Styles struct {
	Title       lipgloss.Style
	Heading     lipgloss.Style
	Subheading  lipgloss.Style
	Text        lipgloss.Style
	Dim         lipgloss.Style
	Accent      lipgloss.Style
	Cursor      lipgloss.Style
	Card        lipgloss.Style
	CardFocused lipgloss.Style
	Badge       lipgloss.Style
	Tag         lipgloss.Style
	Link        lipgloss.Style
	Header      lipgloss.Style
	NavActive   lipgloss.Style
	Nav         lipgloss.Style
	Help        lipgloss.Style
	Modal       lipgloss.Style
	Input       lipgloss.Style
	InputActive lipgloss.Style
	FieldError  lipgloss.Style
	Button      lipgloss.Style
	ButtonBusy  lipgloss.Style
	StatusError lipgloss.Style
	StatusOK    lipgloss.Style
	Backdrop    lipgloss.Style
}

var (
	fg      = lipgloss.AdaptiveColor{Light: "235", Dark: "252"}
	muted   = lipgloss.AdaptiveColor{Light: "244", Dark: "241"}
	accent  = lipgloss.AdaptiveColor{Light: "26", Dark: "39"}
	purple  = lipgloss.AdaptiveColor{Light: "91", Dark: "99"}
	border  = lipgloss.AdaptiveColor{Light: "250", Dark: "238"}
	red     = lipgloss.AdaptiveColor{Light: "160", Dark: "203"}
	green   = lipgloss.AdaptiveColor{Light: "28", Dark: "78"}
	yellow  = lipgloss.AdaptiveColor{Light: "136", Dark: "214"}
	orange  = lipgloss.AdaptiveColor{Light: "166", Dark: "208"}
	blue    = lipgloss.AdaptiveColor{Light: "25", Dark: "33"}
	gray    = lipgloss.AdaptiveColor{Light: "245", Dark: "245"}
	surface = lipgloss.AdaptiveColor{Light: "254", Dark: "236"}
)

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(purple),
		Heading: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			MarginBottom(1),
		Subheading: lipgloss.NewStyle().Bold(true).Foreground(fg),
		Text:       lipgloss.NewStyle().Foreground(fg),
		Dim:        lipgloss.NewStyle().Foreground(muted),
		Accent:     lipgloss.NewStyle().Foreground(accent),
		Cursor:     lipgloss.NewStyle().Foreground(purple).Bold(true),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		CardFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1),
		Badge: lipgloss.NewStyle().Bold(true).Padding(0, 1),
		Tag: lipgloss.NewStyle().
			Foreground(fg).
			Background(surface).
			Padding(0, 1),
		Link:      lipgloss.NewStyle().Foreground(accent).Underline(true),
		Header:    lipgloss.NewStyle().Foreground(fg).Bold(true),
		NavActive: lipgloss.NewStyle().Foreground(accent).Bold(true).Underline(true),
		Nav:       lipgloss.NewStyle().Foreground(muted),
		Help:      lipgloss.NewStyle().Faint(true),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(purple).
			Padding(1, 2),
		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(border).
			Padding(0, 1),
		InputActive: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(accent).
			Padding(0, 1),
		FieldError: lipgloss.NewStyle().Foreground(red),
		Button: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.AdaptiveColor{Light: "26", Dark: "63"}).
			Padding(0, 2),
		ButtonBusy: lipgloss.NewStyle().
			Foreground(muted).
			Background(surface).
			Padding(0, 2),
		StatusError: lipgloss.NewStyle().Foreground(red).Bold(true),
		StatusOK:    lipgloss.NewStyle().Foreground(green).Bold(true),
		Backdrop:    lipgloss.NewStyle().Foreground(gray).Faint(true),
	}
}

var categoryColors = [...]lipgloss.AdaptiveColor{
	domain.CategoryAll:       accent,
	domain.CategoryWeb:       blue,
	domain.CategoryAI:        purple,
	domain.CategoryFullstack: orange,
	domain.CategoryOther:     gray,
}

// CategoryColor returns the badge color of a project category
func CategoryColor(c domain.Category) lipgloss.AdaptiveColor {
	if !c.Valid() || int(c) >= len(categoryColors) {
		return gray
	}
	return categoryColors[c]
}

var statusColors = [...]lipgloss.AdaptiveColor{
	domain.StatusCompleted:  green,
	domain.StatusInProgress: yellow,
	domain.StatusPlanned:    gray,
}

// StatusColor returns the color of a project status
func StatusColor(s domain.ProjectStatus) lipgloss.AdaptiveColor {
	if int(s) < 0 || int(s) >= len(statusColors) {
		return gray
	}
	return statusColors[s]
}

var bandColors = [...]lipgloss.AdaptiveColor{
	domain.BandExpert:     green,
	domain.BandAdvanced:   blue,
	domain.BandProficient: purple,
	domain.BandFamiliar:   yellow,
	domain.BandLearning:   gray,
}

// BandColor returns the bar color of a skill band
func BandColor(b domain.SkillBand) lipgloss.AdaptiveColor {
	if int(b) < 0 || int(b) >= len(bandColors) {
		return gray
	}
	return bandColors[b]
}

var kindGlyphs = [...]string{
	domain.KindCertification: "◆",
	domain.KindAward:         "★",
	domain.KindPublication:   "✎",
	domain.KindCompetition:   "⚑",
	domain.KindOther:         "•",
}

// KindGlyph returns the marker of an achievement kind
func KindGlyph(k domain.AchievementKind) string {
	if int(k) < 0 || int(k) >= len(kindGlyphs) {
		return "•"
	}
	return kindGlyphs[k]
}

// StatusStyle returns the banner style of a form status
func (s *Styles) StatusStyle(st contact.Status) lipgloss.Style {
	if st == contact.StatusError {
		return s.StatusError
	}
	return s.StatusOK
}
