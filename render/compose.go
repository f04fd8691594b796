package render

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pixel/canvas"
	"github.com/lixenwraith/vi-pixel/editor"
	"github.com/lixenwraith/vi-pixel/palette"
)

// Grid glyphs in priority order: cursor over painted over empty
const (
	GlyphCursor  = '█'
	GlyphPainted = '▓'
	GlyphEmpty   = '░'
)

// DrawingPercent is the share of screen height given to the grid
const DrawingPercent = 80

var (
	styleCursor = tcell.StyleDefault.Foreground(palette.DarkGray.Terminal())
	styleEmpty  = tcell.StyleDefault.Foreground(palette.DarkGray.Terminal()).Dim(true)
)

// Layout splits height into drawing and status rows
func Layout(height int) (drawRows, statusRows int) {
	if height <= 0 {
		return 0, 0
	}
	drawRows = height * DrawingPercent / 100
	if drawRows < 1 {
		drawRows = 1
	}
	return drawRows, height - drawRows
}

// Compose renders s into a new width x height buffer with DefaultLegend.
// It never mutates s
func Compose(s *editor.State, width, height int, now time.Time) *Buffer {
	return ComposeLegend(s, width, height, now, DefaultLegend)
}

// ComposeLegend is Compose with the help line for a custom key table
func ComposeLegend(s *editor.State, width, height int, now time.Time, legend string) *Buffer {
	b := NewBuffer(width, height)
	drawRows, statusRows := Layout(height)

	drawGrid(b, s, width, drawRows)
	drawStatus(b, s, legend, drawRows, statusRows, now)

	return b
}

// viewport returns the first visible grid index on one axis so that the cursor
// stays visible when fewer than canvas.Size cells fit
func viewport(cursor, visible int) int {
	if visible >= canvas.Size {
		return 0
	}
	off := cursor - visible/2
	if off < 0 {
		off = 0
	}
	if last := canvas.Size - visible; off > last {
		off = last
	}
	return off
}

func drawGrid(b *Buffer, s *editor.State, width, rows int) {
	visCols := min(width, canvas.Size)
	visRows := min(rows, canvas.Size)
	offX := viewport(s.Cursor.X, visCols)
	offY := viewport(s.Cursor.Y, visRows)

	for sy := 0; sy < visRows; sy++ {
		gy := offY + sy
		for sx := 0; sx < visCols; sx++ {
			gx := offX + sx
			switch c, painted := s.Grid.Get(gx, gy); {
			case gx == s.Cursor.X && gy == s.Cursor.Y:
				b.Set(sx, sy, GlyphCursor, styleCursor)
			case painted:
				b.Set(sx, sy, GlyphPainted, tcell.StyleDefault.Foreground(c.Terminal()))
			default:
				b.Set(sx, sy, GlyphEmpty, styleEmpty)
			}
		}
	}
}
