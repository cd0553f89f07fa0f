package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/ui/input/types"
)

// ModalMode drives the project modal: carousel and description scrolling
type ModalMode struct {
	keys types.KeyMap
}

func NewModalMode(keys types.KeyMap) *ModalMode {
	return &ModalMode{keys: keys}
}

func (m *ModalMode) Name() string {
	return "project"
}

func (m *ModalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

// Exit closes the modal however the mode was left
func (m *ModalMode) Exit(ctx types.Context) []types.Action {
	if ctx.ModalOpen() {
		return []types.Action{types.CloseModalAction{}}
	}
	return nil
}

func (m *ModalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	k := m.keys
	switch {
	case key.Matches(msg, k.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, k.Close):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true

	case key.Matches(msg, k.Left):
		return []types.Action{types.CarouselAction{Step: -1}}, true

	case key.Matches(msg, k.Right):
		return []types.Action{types.CarouselAction{Step: 1}}, true

	case key.Matches(msg, k.Up):
		return []types.Action{types.ModalScrollAction{Lines: -1}}, true

	case key.Matches(msg, k.Down):
		return []types.Action{types.ModalScrollAction{Lines: 1}}, true

	case key.Matches(msg, k.Jump):
		// digits pick an image directly
		i := int(msg.String()[0] - '1')
		if i < ctx.ImageCount() {
			return []types.Action{types.CarouselAction{Index: i}}, true
		}
		return nil, true
	}

	// the page behind the modal is inert
	return nil, true
}
