// Package render composes editor frames and presents them on a tcell screen
package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Cell is one screen position of a composed frame
type Cell struct {
	Rune  rune
	Style tcell.Style
}

var blankCell = Cell{Rune: ' ', Style: tcell.StyleDefault}

// Buffer is a row-major cell array sized to the screen
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a blank buffer with the specified dimensions
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	b := &Buffer{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
	}
	b.Clear()
	return b
}

// Bounds returns buffer dimensions
func (b *Buffer) Bounds() (width, height int) {
	return b.width, b.height
}

// Clear resets all cells to blank using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = blankCell
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes a cell; out-of-bounds writes are dropped
func (b *Buffer) Set(x, y int, r rune, style tcell.Style) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Style: style}
}

// Get returns the cell at (x, y), blank when out of bounds
func (b *Buffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return blankCell
	}
	return b.cells[y*b.width+x]
}

// DrawText writes text from (x, y) without passing column limit.
// Returns the column after the last written rune
func (b *Buffer) DrawText(x, y, limit int, text string, style tcell.Style) int {
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > limit {
			break
		}
		b.Set(x, y, r, style)
		for i := 1; i < w; i++ {
			b.Set(x+i, y, 0, style)
		}
		x += w
	}
	return x
}

// Row returns the runes of row y as a string with continuation cells skipped
func (b *Buffer) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	out := make([]rune, 0, b.width)
	for _, c := range b.cells[y*b.width : (y+1)*b.width] {
		if c.Rune != 0 {
			out = append(out, c.Rune)
		}
	}
	return string(out)
}
