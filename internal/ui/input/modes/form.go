package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/ui/input/types"
)

// FormMode routes typing into the contact form fields
type FormMode struct {
	keys types.KeyMap
}

func NewFormMode(keys types.KeyMap) *FormMode {
	return &FormMode{keys: keys}
}

func (m *FormMode) Name() string {
	return "contact"
}

func (m *FormMode) Enter(ctx types.Context) []types.Action {
	return []types.Action{types.FocusFieldAction{Step: 0}}
}

func (m *FormMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *FormMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	k := m.keys
	switch {
	case key.Matches(msg, k.ForceQuit):
		if ctx.Submitting() {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeQuitConfirm}}, true
		}
		return []types.Action{types.QuitAction{Force: true}}, true

	case msg.Type == tea.KeyEsc:
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true

	case key.Matches(msg, k.Submit):
		return []types.Action{types.SubmitFormAction{}}, true

	case msg.Type == tea.KeyTab:
		return []types.Action{types.FocusFieldAction{Step: 1}}, true

	case msg.Type == tea.KeyShiftTab:
		return []types.Action{types.FocusFieldAction{Step: -1}}, true
	}

	// everything else is typing
	return []types.Action{types.EditFieldAction{}}, false
}
