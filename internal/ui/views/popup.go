package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay renders a popup centered on top of a dimmed copy of
// the main content. The page stays visible left and right of the popup.
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)

	modalW := lipgloss.Width(styledPopup)
	modalH := lipgloss.Height(styledPopup)
	x := max(0, (width-modalW)/2)
	y := max(0, (height-modalH)/2)

	base := strings.Split(pr.Desaturate(mainContent), "\n")
	for len(base) < height {
		base = append(base, "")
	}
	popupLines := strings.Split(styledPopup, "\n")
	for i, pl := range popupLines {
		row := y + i
		if row >= len(base) {
			break
		}
		base[row] = overlayLine(base[row], pl, x, width)
	}
	return strings.Join(base[:max(height, 0)], "\n")
}

// Desaturate strips styles and recolors the text as a faded backdrop
func (pr *PopupRenderer) Desaturate(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = pr.styles.Backdrop.Render(ansi.Strip(line))
	}
	return strings.Join(lines, "\n")
}

// overlayLine writes top over base starting at column x
func overlayLine(base, top string, x, width int) string {
	baseW := ansi.StringWidth(base)
	if baseW < x {
		base += strings.Repeat(" ", x-baseW)
	}
	left := ansi.Truncate(base, x, "")
	right := ""
	end := x + ansi.StringWidth(top)
	if end < baseW {
		right = ansi.TruncateLeft(base, end, "")
	}
	return ansi.Truncate(left+top+right, width, "")
}
