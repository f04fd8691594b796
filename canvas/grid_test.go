package canvas

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/vi-pixel/palette"
)

func TestNewGridIsUnpainted(t *testing.T) {
	g := NewGrid()
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if _, ok := g.Get(x, y); ok {
				t.Fatalf("cell (%d,%d) painted on a fresh grid", x, y)
			}
		}
	}
}

func TestPaintAndErase(t *testing.T) {
	g := NewGrid()

	g.Paint(3, 7, palette.Red)
	c, ok := g.Get(3, 7)
	assert.True(t, ok)
	assert.Equal(t, palette.Red, c)

	// Row-major: (7,3) is a different cell
	_, ok = g.Get(7, 3)
	assert.False(t, ok)

	g.Paint(3, 7, palette.FromRGB(1, 2, 3))
	c, _ = g.Get(3, 7)
	assert.Equal(t, palette.FromRGB(1, 2, 3), c, "paint overwrites")

	g.Erase(3, 7)
	_, ok = g.Get(3, 7)
	assert.False(t, ok)
	assert.Equal(t, Cell{}, g.Cell(3, 7), "erased cell carries no stale color")
}

func TestSetUnpaintedDropsColor(t *testing.T) {
	g := NewGrid()
	g.Set(0, 0, Cell{Color: palette.Blue})
	assert.Equal(t, Cell{}, g.Cell(0, 0))
}

func TestOutOfRangeIsIgnored(t *testing.T) {
	g := NewGrid()
	g.Paint(-1, 0, palette.White)
	g.Paint(Size, 0, palette.White)
	g.Paint(0, Size, palette.White)

	_, ok := g.Get(-1, 0)
	assert.False(t, ok)
	_, ok = g.Get(Size, Size)
	assert.False(t, ok)
	assert.Equal(t, *NewGrid(), *g)
}

func TestCursorMove(t *testing.T) {
	tests := []struct {
		name   string
		start  Cursor
		dx, dy int
		want   Cursor
	}{
		{"Up at top row", Cursor{5, 0}, 0, -1, Cursor{5, 0}},
		{"Left at first column", Cursor{0, 5}, -1, 0, Cursor{0, 5}},
		{"Right at last column", Cursor{Size - 1, 5}, 1, 0, Cursor{Size - 1, 5}},
		{"Down at last row", Cursor{5, Size - 1}, 0, 1, Cursor{5, Size - 1}},
		{"Interior right", Cursor{10, 10}, 1, 0, Cursor{11, 10}},
		{"Interior up", Cursor{10, 10}, 0, -1, Cursor{10, 9}},
		{"Axes are independent", Cursor{0, 10}, -1, 1, Cursor{0, 11}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.start
			c.Move(tt.dx, tt.dy)
			assert.Equal(t, tt.want, c)
		})
	}
}

func TestCursorInteriorMovesExactlyOne(t *testing.T) {
	moves := [][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	for y := 1; y < Size-1; y++ {
		for x := 1; x < Size-1; x++ {
			for _, m := range moves {
				c := Cursor{x, y}
				c.Move(m[0], m[1])
				if c.X != x+m[0] || c.Y != y+m[1] {
					t.Fatalf("move %v from (%d,%d) gave (%d,%d)", m, x, y, c.X, c.Y)
				}
			}
		}
	}
}

func TestCursorBoundaryScenario(t *testing.T) {
	c := Cursor{}
	c.Move(0, -1)
	c.Move(-1, 0)
	assert.Equal(t, Cursor{0, 0}, c)
}
