package state

import (
	"folio/internal/domain"
)

// Skill views
const (
	SkillViewBars    = "bars"
	SkillViewCompact = "compact"
)

// AppState contains the page state that is not owned by a state machine
type AppState struct {
	Portfolio *domain.Portfolio

	// FocusedProject indexes the visible project list, -1 for none
	FocusedProject int
	FormFocus      int
	SkillView      string

	// UI state
	ShowHelp      bool
	StatusMessage string
	StatusIsError bool
	ContentPath   string
}

// NewAppState creates a new application state
func NewAppState(p *domain.Portfolio) *AppState {
	return &AppState{
		Portfolio:      p,
		FocusedProject: -1,
		SkillView:      SkillViewBars,
	}
}

// SetPortfolio replaces the shown portfolio
func (s *AppState) SetPortfolio(p *domain.Portfolio) {
	s.Portfolio = p
}

// ToggleSkillView switches between the bar and compact skill layouts
func (s *AppState) ToggleSkillView() {
	if s.SkillView == SkillViewCompact {
		s.SkillView = SkillViewBars
	} else {
		s.SkillView = SkillViewCompact
	}
}

// MoveProjectFocus moves the focused card by step within count cards,
// wrapping at both ends
func (s *AppState) MoveProjectFocus(step, count int) {
	if count == 0 {
		s.FocusedProject = -1
		return
	}
	if s.FocusedProject < 0 {
		if step < 0 {
			s.FocusedProject = count - 1
		} else {
			s.FocusedProject = 0
		}
		return
	}
	s.FocusedProject = ((s.FocusedProject+step)%count + count) % count
}

// ClampProjectFocus keeps the focus valid after the visible list changed
func (s *AppState) ClampProjectFocus(count int) {
	if s.FocusedProject >= count {
		s.FocusedProject = count - 1
	}
}

// SetStatus shows a message in the status bar
func (s *AppState) SetStatus(msg string, isError bool) {
	s.StatusMessage = msg
	s.StatusIsError = isError
}
