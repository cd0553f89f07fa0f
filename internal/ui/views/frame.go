package views

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"folio/internal/motion"
)

// Opacity thresholds for terminal rendering. A terminal has no alpha, so
// a frame's opacity picks one of four looks.
const (
	hiddenBelow = 0.05
	fadedBelow  = 0.4
	mutedBelow  = 0.9
)

// ApplyFrame renders block as it looks at animation frame f. The block keeps
// its height so page layout never moves while elements animate.
func (s *Styles) ApplyFrame(block string, f motion.Frame, width int) string {
	lines := strings.Split(block, "\n")
	if f.Opacity < hiddenBelow {
		for i := range lines {
			lines[i] = ""
		}
		return strings.Join(lines, "\n")
	}

	if dy := int(math.Round(f.OffsetY)); dy > 0 && dy < len(lines) {
		shifted := make([]string, len(lines))
		copy(shifted[dy:], lines[:len(lines)-dy])
		lines = shifted
	}

	var tone *lipgloss.Style
	switch {
	case f.Opacity < fadedBelow:
		tone = &s.Backdrop
	case f.Opacity < mutedBelow:
		tone = &s.Dim
	}

	dx := int(math.Round(f.OffsetX))
	for i, line := range lines {
		if tone != nil {
			line = tone.Render(ansi.Strip(line))
		}
		switch {
		case dx > 0:
			line = strings.Repeat(" ", dx) + line
		case dx < 0:
			line = ansi.TruncateLeft(line, -dx, "")
		}
		lines[i] = ansi.Truncate(line, width, "")
	}
	return strings.Join(lines, "\n")
}

// Bar renders a horizontal bar of width cells filled to fraction
func Bar(width int, fraction float64, color lipgloss.TerminalColor) string {
	if width <= 0 {
		return ""
	}
	fraction = math.Max(0, math.Min(1, fraction))
	filled := int(math.Round(fraction * float64(width)))
	return lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(border).Render(strings.Repeat("░", width-filled))
}

// ProgressBar is the thin page scroll indicator shown in the header
func ProgressBar(width int, fraction float64) string {
	if width <= 0 {
		return ""
	}
	fraction = math.Max(0, math.Min(1, fraction))
	filled := int(math.Round(fraction * float64(width)))
	return lipgloss.NewStyle().Foreground(accent).Render(strings.Repeat("━", filled)) +
		lipgloss.NewStyle().Foreground(border).Render(strings.Repeat("─", width-filled))
}
