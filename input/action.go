// Package input maps key events to editor actions
package input

// Action is a single editor command produced by one key press
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionApply
	ActionExport
	ActionToolPen
	ActionToolEraser
	ActionToolPicker
	ActionColorNext
	ActionColorPrev
	ActionQuit
)
