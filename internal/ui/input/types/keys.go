package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every key binding of the page
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Home       key.Binding
	End        key.Binding
	Jump       key.Binding
	NextFilter key.Binding
	PrevFilter key.Binding
	NextCard   key.Binding
	PrevCard   key.Binding
	Open       key.Binding
	Close      key.Binding
	Left       key.Binding
	Right      key.Binding
	Contact    key.Binding
	NextField  key.Binding
	PrevField  key.Binding
	Submit     key.Binding
	Theme      key.Binding
	SkillView  key.Binding
	Resume     key.Binding
	Help       key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		PageUp:     key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
		PageDown:   key.NewBinding(key.WithKeys("pgdown", "ctrl+d", " "), key.WithHelp("pgdn", "page down")),
		Home:       key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		End:        key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		Jump:       key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7"), key.WithHelp("1-7", "jump to section")),
		NextFilter: key.NewBinding(key.WithKeys("f"), key.WithHelp("f/F", "project filter")),
		PrevFilter: key.NewBinding(key.WithKeys("F")),
		NextCard:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next project")),
		PrevCard:   key.NewBinding(key.WithKeys("shift+tab")),
		Open:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open project")),
		Close:      key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", "close")),
		Left:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", "previous/next image")),
		Right:      key.NewBinding(key.WithKeys("right", "l")),
		Contact:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "write a message")),
		NextField:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevField:  key.NewBinding(key.WithKeys("shift+tab")),
		Submit:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "send")),
		Theme:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		SkillView:  key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "skill view")),
		Resume:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "resume")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:  key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Jump, k.NextFilter, k.Open, k.Contact, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End, k.Jump},
		{k.NextFilter, k.NextCard, k.Open, k.Left, k.Close},
		{k.Contact, k.NextField, k.Submit},
		{k.Theme, k.SkillView, k.Resume, k.Help, k.Quit},
	}
}
