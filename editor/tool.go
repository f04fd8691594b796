package editor

import "fmt"

// Tool is the interpretation of the apply action
type Tool uint8

const (
	ToolPen Tool = iota
	ToolEraser
	ToolPicker
)

// Tools lists every tool in selection-key order
var Tools = []Tool{ToolPen, ToolEraser, ToolPicker}

var toolNames = [...]string{
	ToolPen:    "Pen",
	ToolEraser: "Eraser",
	ToolPicker: "Color Picker",
}

// String returns the display name
func (t Tool) String() string {
	if int(t) < len(toolNames) {
		return toolNames[t]
	}
	return fmt.Sprintf("Tool(%d)", uint8(t))
}
