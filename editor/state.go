// Package editor owns the application state and the tool state machine
package editor

import (
	"time"

	"github.com/lixenwraith/vi-pixel/canvas"
	"github.com/lixenwraith/vi-pixel/palette"
)

// StatusDuration is how long a status message stays visible
const StatusDuration = 3 * time.Second

// StatusKind selects status message styling
type StatusKind uint8

const (
	StatusInfo StatusKind = iota
	StatusSuccess
	StatusError
)

// Status is a transient message for the status panel
type Status struct {
	Text    string
	Kind    StatusKind
	Expires time.Time
}

// Active reports whether the message should still be shown at now
func (s Status) Active(now time.Time) bool {
	return s.Text != "" && now.Before(s.Expires)
}

// State is the single mutable application state
type State struct {
	Grid   *canvas.Grid
	Cursor canvas.Cursor
	Tool   Tool
	Color  palette.Color
	Status Status
}

// NewState returns the startup state: empty grid, cursor at origin, Pen, White
func NewState() *State {
	return &State{
		Grid:  canvas.NewGrid(),
		Tool:  ToolPen,
		Color: palette.White,
	}
}

// SetTool selects the active tool
func (s *State) SetTool(t Tool) {
	s.Tool = t
}

// MoveCursor steps the cursor, clamped at the grid edges
func (s *State) MoveCursor(dx, dy int) {
	s.Cursor.Move(dx, dy)
}

// Apply runs the active tool at the cursor
func (s *State) Apply() {
	x, y := s.Cursor.X, s.Cursor.Y
	switch s.Tool {
	case ToolPen:
		s.Grid.Paint(x, y, s.Color)
	case ToolEraser:
		s.Grid.Erase(x, y)
	case ToolPicker:
		if c, ok := s.Grid.Get(x, y); ok {
			s.Color = c
		}
	}
}

// CycleColor moves the current color step entries through palette.Swatch
func (s *State) CycleColor(step int) {
	s.Color = palette.Cycle(s.Color, step)
}

// SetStatus shows msg until now + StatusDuration
func (s *State) SetStatus(msg string, kind StatusKind, now time.Time) {
	s.Status = Status{Text: msg, Kind: kind, Expires: now.Add(StatusDuration)}
}
