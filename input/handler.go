package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pixel/editor"
)

// Handler resolves key events and applies them to the editor state
type Handler struct {
	keys *KeyTable
}

// NewHandler creates a handler; a nil table selects DefaultKeyTable
func NewHandler(keys *KeyTable) *Handler {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &Handler{keys: keys}
}

// HandleKey resolves ev and dispatches it against s
func (h *Handler) HandleKey(s *editor.State, ev *tcell.EventKey) Action {
	return Dispatch(s, h.keys.Resolve(ev))
}

// Legend returns the help line for the handler's bindings
func (h *Handler) Legend() string {
	return h.keys.Legend()
}

// Dispatch applies a to s synchronously.
// It returns the action the caller still has to carry out (ActionExport,
// ActionQuit), or ActionNone once the state has been updated. No I/O happens here
func Dispatch(s *editor.State, a Action) Action {
	switch a {
	case ActionMoveUp:
		s.MoveCursor(0, -1)
	case ActionMoveDown:
		s.MoveCursor(0, 1)
	case ActionMoveLeft:
		s.MoveCursor(-1, 0)
	case ActionMoveRight:
		s.MoveCursor(1, 0)
	case ActionApply:
		s.Apply()
	case ActionToolPen:
		s.SetTool(editor.ToolPen)
	case ActionToolEraser:
		s.SetTool(editor.ToolEraser)
	case ActionToolPicker:
		s.SetTool(editor.ToolPicker)
	case ActionColorNext:
		s.CycleColor(1)
	case ActionColorPrev:
		s.CycleColor(-1)
	case ActionExport, ActionQuit:
		return a
	}
	return ActionNone
}
