package types

// Page scrolling
type ScrollAction struct {
	Lines int
}

func (a ScrollAction) Type() string { return "scroll" }

type PageAction struct {
	Direction string // "up", "down", "home", "end"
}

func (a PageAction) Type() string { return "page" }

// JumpAction scrolls a section to the top of the viewport
type JumpAction struct {
	Section string
}

func (a JumpAction) Type() string { return "jump" }

// Project list actions
type CycleFilterAction struct {
	Step int
}

func (a CycleFilterAction) Type() string { return "cycle_filter" }

type FocusProjectAction struct {
	Step int
}

func (a FocusProjectAction) Type() string { return "focus_project" }

type OpenProjectAction struct{}

func (a OpenProjectAction) Type() string { return "open_project" }

// Modal actions
type CloseModalAction struct{}

func (a CloseModalAction) Type() string { return "close_modal" }

type CarouselAction struct {
	Step  int
	Index int // used when Step is 0
}

func (a CarouselAction) Type() string { return "carousel" }

type ModalScrollAction struct {
	Lines int
}

func (a ModalScrollAction) Type() string { return "modal_scroll" }

// Contact form actions
type FocusFieldAction struct {
	Step int
}

func (a FocusFieldAction) Type() string { return "focus_field" }

// EditFieldAction forwards an unhandled key to the focused field
type EditFieldAction struct{}

func (a EditFieldAction) Type() string { return "edit_field" }

type SubmitFormAction struct{}

func (a SubmitFormAction) Type() string { return "submit_form" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Toggles
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type CycleThemeAction struct{}

func (a CycleThemeAction) Type() string { return "cycle_theme" }

type ToggleSkillViewAction struct{}

func (a ToggleSkillViewAction) Type() string { return "toggle_skill_view" }

type OpenResumeAction struct{}

func (a OpenResumeAction) Type() string { return "open_resume" }

type QuitAction struct {
	Force bool // true for Ctrl+C or a confirmed quit
}

func (a QuitAction) Type() string { return "quit" }
