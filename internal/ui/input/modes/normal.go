package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/ui/input/types"
	"folio/internal/ui/logic"
)

type NormalMode struct {
	keys types.KeyMap
}

func NewNormalMode(keys types.KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	k := m.keys
	switch {
	case key.Matches(msg, k.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, k.Quit):
		if ctx.Submitting() {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeQuitConfirm}}, true
		}
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, k.Up):
		return []types.Action{types.ScrollAction{Lines: -1}}, true

	case key.Matches(msg, k.Down):
		return []types.Action{types.ScrollAction{Lines: 1}}, true

	case key.Matches(msg, k.PageUp):
		return []types.Action{types.PageAction{Direction: "up"}}, true

	case key.Matches(msg, k.PageDown):
		return []types.Action{types.PageAction{Direction: "down"}}, true

	case key.Matches(msg, k.Home):
		return []types.Action{types.PageAction{Direction: "home"}}, true

	case key.Matches(msg, k.End):
		return []types.Action{types.PageAction{Direction: "end"}}, true

	case key.Matches(msg, k.Jump):
		i := int(msg.String()[0] - '1')
		if i >= 0 && i < len(logic.SectionOrder) {
			return []types.Action{types.JumpAction{Section: logic.SectionOrder[i]}}, true
		}
		return nil, false

	case key.Matches(msg, k.NextFilter):
		return []types.Action{types.CycleFilterAction{Step: 1}}, true

	case key.Matches(msg, k.PrevFilter):
		return []types.Action{types.CycleFilterAction{Step: -1}}, true

	case key.Matches(msg, k.NextCard):
		if ctx.VisibleProjects() == 0 {
			return nil, true
		}
		return []types.Action{types.FocusProjectAction{Step: 1}}, true

	case key.Matches(msg, k.PrevCard):
		if ctx.VisibleProjects() == 0 {
			return nil, true
		}
		return []types.Action{types.FocusProjectAction{Step: -1}}, true

	case key.Matches(msg, k.Open):
		if ctx.FocusedProject() >= 0 {
			return []types.Action{
				types.OpenProjectAction{},
				types.ChangeModeAction{Mode: types.ModeModal},
			}, true
		}
		return nil, false

	case key.Matches(msg, k.Contact):
		return []types.Action{
			types.JumpAction{Section: logic.SectionContact},
			types.ChangeModeAction{Mode: types.ModeForm},
		}, true

	case key.Matches(msg, k.Theme):
		return []types.Action{types.CycleThemeAction{}}, true

	case key.Matches(msg, k.SkillView):
		return []types.Action{types.ToggleSkillViewAction{}}, true

	case key.Matches(msg, k.Resume):
		return []types.Action{types.OpenResumeAction{}}, true

	case key.Matches(msg, k.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	}

	return nil, false
}
