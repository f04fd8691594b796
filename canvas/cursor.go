package canvas

// Cursor is a grid position kept within [0, Size-1] on both axes
type Cursor struct {
	X, Y int
}

// Move steps the cursor by (dx, dy). Each axis is applied independently and
// a step that would leave the grid leaves that axis unchanged
func (c *Cursor) Move(dx, dy int) {
	if nx := c.X + dx; nx >= 0 && nx < Size {
		c.X = nx
	}
	if ny := c.Y + dy; ny >= 0 && ny < Size {
		c.Y = ny
	}
}
