package input

import "strings"

// actionRegistry maps canonical action names to actions
// Used by the keymap config loader to resolve TOML action strings
var actionRegistry = map[string]Action{
	// Unbind sentinel
	"none": ActionNone,

	"move_up":    ActionMoveUp,
	"move_down":  ActionMoveDown,
	"move_left":  ActionMoveLeft,
	"move_right": ActionMoveRight,

	"apply":  ActionApply,
	"export": ActionExport,
	"quit":   ActionQuit,

	"tool_pen":    ActionToolPen,
	"tool_eraser": ActionToolEraser,
	"tool_picker": ActionToolPicker,

	"color_next": ActionColorNext,
	"color_prev": ActionColorPrev,
}

// ActionByName resolves a case-insensitive action name
func ActionByName(name string) (Action, bool) {
	a, ok := actionRegistry[strings.ToLower(strings.TrimSpace(name))]
	return a, ok
}

// String returns the canonical action name
func (a Action) String() string {
	for name, v := range actionRegistry {
		if v == a {
			return name
		}
	}
	return "unknown"
}
