package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/ui/input/modes"
	"folio/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	keys        types.KeyMap
}

func New() *Handler {
	keys := types.DefaultKeyMap()
	h := &Handler{
		currentMode: types.ModeNormal,
		modes:       make(map[types.Mode]types.ModeHandler),
		keys:        keys,
	}

	h.modes[types.ModeNormal] = modes.NewNormalMode(keys)
	h.modes[types.ModeForm] = modes.NewFormMode(keys)
	h.modes[types.ModeModal] = modes.NewModalMode(keys)
	h.modes[types.ModeQuitConfirm] = modes.NewConfirmMode()

	return h
}

// HandleKey runs msg through the current mode. Mode changes are applied
// here, with the Exit and Enter actions of the modes involved spliced in.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) []types.Action {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil
	}

	actions, _ := handler.HandleKey(msg, ctx)

	var all []types.Action
	for _, action := range actions {
		changeMode, ok := action.(types.ChangeModeAction)
		if !ok {
			all = append(all, action)
			continue
		}
		all = append(all, h.switchMode(changeMode.Mode, ctx)...)
	}
	return all
}

// SetMode switches mode outside of key handling, e.g. when the model closes
// a modal on its own
func (h *Handler) SetMode(mode types.Mode, ctx types.Context) []types.Action {
	return h.switchMode(mode, ctx)
}

func (h *Handler) switchMode(mode types.Mode, ctx types.Context) []types.Action {
	if mode == h.currentMode {
		return nil
	}
	var actions []types.Action
	if cur := h.modes[h.currentMode]; cur != nil {
		actions = append(actions, cur.Exit(ctx)...)
	}
	h.currentMode = mode
	if next := h.modes[h.currentMode]; next != nil {
		actions = append(actions, next.Enter(ctx)...)
	}
	return actions
}

// GetMode returns the current input mode
func (h *Handler) GetMode() types.Mode {
	if h == nil {
		return types.ModeNormal
	}
	return h.currentMode
}

// ModeName returns the display name of the current mode
func (h *Handler) ModeName() string {
	if m := h.modes[h.currentMode]; m != nil {
		return m.Name()
	}
	return ""
}

// Keys returns the key bindings, for help rendering
func (h *Handler) Keys() types.KeyMap {
	return h.keys
}

// RegisterMode replaces the handler of a mode
func (h *Handler) RegisterMode(mode types.Mode, handler types.ModeHandler) {
	h.modes[mode] = handler
}

// Reset returns to normal mode without running exit actions
func (h *Handler) Reset() {
	h.currentMode = types.ModeNormal
}
