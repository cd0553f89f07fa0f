package logic

import "folio/internal/motion"

// Page sections
const (
	SectionHero         = "hero"
	SectionAbout        = "about"
	SectionExperience   = "experience"
	SectionProjects     = "projects"
	SectionSkills       = "skills"
	SectionAchievements = "achievements"
	SectionContact      = "contact"
)

// SectionOrder lists the sections top to bottom
var SectionOrder = []string{
	SectionHero,
	SectionAbout,
	SectionExperience,
	SectionProjects,
	SectionSkills,
	SectionAchievements,
	SectionContact,
}

const (
	// SpyLead is how far below the top edge a section may start and still
	// count as the active one.
	SpyLead = 3
	// ScrolledAfter is the offset past which the header shows progress.
	ScrolledAfter = 2
)

// Section is a laid-out page section
type Section struct {
	ID   string
	Span motion.Span
}

// Navigator handles the page viewport: scrolling, jumping to sections and
// the scroll spy.
type Navigator struct {
	offset   int
	height   int
	total    int
	sections []Section
}

// NewNavigator creates a navigator
func NewNavigator() *Navigator {
	return &Navigator{}
}

// SetLayout updates the page layout and clamps the offset into it
func (n *Navigator) SetLayout(sections []Section, total int) {
	n.sections = sections
	n.total = total
	n.clamp()
}

// SetHeight updates the viewport height
func (n *Navigator) SetHeight(h int) {
	n.height = max(1, h)
	n.clamp()
}

// Offset returns the first visible page line
func (n *Navigator) Offset() int { return n.offset }

// Height returns the viewport height
func (n *Navigator) Height() int { return n.height }

// Viewport returns the visible span of the page
func (n *Navigator) Viewport() motion.Span {
	return motion.Span{Top: n.offset, Height: n.height}
}

// Sections returns the current layout
func (n *Navigator) Sections() []Section { return n.sections }

// ScrollBy moves the viewport by delta lines and reports whether it moved
func (n *Navigator) ScrollBy(delta int) bool {
	before := n.offset
	n.offset += delta
	n.clamp()
	return n.offset != before
}

// PageDown scrolls one viewport down, keeping one line of context
func (n *Navigator) PageDown() bool { return n.ScrollBy(max(1, n.height-1)) }

// PageUp scrolls one viewport up, keeping one line of context
func (n *Navigator) PageUp() bool { return n.ScrollBy(-max(1, n.height-1)) }

// Home jumps to the top of the page
func (n *Navigator) Home() bool { return n.ScrollBy(-n.offset) }

// End jumps to the bottom of the page
func (n *Navigator) End() bool { return n.ScrollBy(n.maxOffset() - n.offset) }

// ScrollTo brings the top of section id to the top of the viewport
func (n *Navigator) ScrollTo(id string) bool {
	for _, s := range n.sections {
		if s.ID == id {
			return n.ScrollBy(s.Span.Top - n.offset)
		}
	}
	return false
}

// EnsureVisible scrolls the minimum needed to show span
func (n *Navigator) EnsureVisible(span motion.Span) bool {
	switch {
	case span.Top < n.offset:
		return n.ScrollBy(span.Top - n.offset)
	case span.Bottom() > n.offset+n.height:
		// taller than the viewport: show its top
		target := min(span.Top, span.Bottom()-n.height)
		return n.ScrollBy(target - n.offset)
	}
	return false
}

// Active returns the id of the last section starting at or above the spy
// line, or the first section when none does.
func (n *Navigator) Active() string {
	if len(n.sections) == 0 {
		return ""
	}
	active := n.sections[0].ID
	for _, s := range n.sections {
		if s.Span.Top <= n.offset+SpyLead {
			active = s.ID
		}
	}
	return active
}

// Scrolled reports whether the page has been scrolled past the header
func (n *Navigator) Scrolled() bool { return n.offset > ScrolledAfter }

// Progress returns how far the page is scrolled, from 0 to 1
func (n *Navigator) Progress() float64 {
	m := n.maxOffset()
	if m == 0 {
		return 0
	}
	return float64(n.offset) / float64(m)
}

func (n *Navigator) maxOffset() int {
	return max(0, n.total-n.height)
}

func (n *Navigator) clamp() {
	n.offset = max(0, min(n.offset, n.maxOffset()))
}
