package render

import "github.com/gdamore/tcell/v2"

// Present copies b onto screen and shows it
func Present(screen tcell.Screen, b *Buffer) {
	screen.Clear()
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x, c := range row {
			if c.Rune == 0 {
				continue
			}
			screen.SetContent(x, y, c.Rune, nil, c.Style)
		}
	}
	screen.Show()
}
