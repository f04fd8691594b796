// Package canvas holds the fixed-size pixel grid and the cursor that addresses it
package canvas

import "github.com/lixenwraith/vi-pixel/palette"

// Size is the grid width and height in cells
const Size = 64

// Cell is one grid position. The zero value is unpainted
type Cell struct {
	Color   palette.Color
	Painted bool
}

// PaintedCell returns a painted cell of color c
func PaintedCell(c palette.Color) Cell {
	return Cell{Color: c, Painted: true}
}

// Grid is a Size x Size row-major array of cells, indexed [y][x]
type Grid struct {
	cells [Size][Size]Cell
}

// NewGrid returns an all-unpainted grid
func NewGrid() *Grid {
	return &Grid{}
}

// InBounds reports whether (x, y) addresses a cell
func InBounds(x, y int) bool {
	return x >= 0 && x < Size && y >= 0 && y < Size
}

// Get returns the color at (x, y); ok is false when the cell is unpainted
func (g *Grid) Get(x, y int) (palette.Color, bool) {
	if !InBounds(x, y) {
		return palette.Color{}, false
	}
	c := g.cells[y][x]
	return c.Color, c.Painted
}

// Cell returns the raw cell at (x, y)
func (g *Grid) Cell(x, y int) Cell {
	if !InBounds(x, y) {
		return Cell{}
	}
	return g.cells[y][x]
}

// Set replaces the cell at (x, y). Out-of-range writes are ignored
func (g *Grid) Set(x, y int, c Cell) {
	if !InBounds(x, y) {
		return
	}
	if !c.Painted {
		c = Cell{}
	}
	g.cells[y][x] = c
}

// Paint sets (x, y) to color c
func (g *Grid) Paint(x, y int, c palette.Color) {
	g.Set(x, y, PaintedCell(c))
}

// Erase sets (x, y) to unpainted
func (g *Grid) Erase(x, y int) {
	g.Set(x, y, Cell{})
}
