package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vi-pixel/editor"
	"github.com/lixenwraith/vi-pixel/input"
	"github.com/lixenwraith/vi-pixel/palette"
)

// Box drawing characters
const (
	boxTopLeft     = '┌'
	boxTopRight    = '┐'
	boxBottomLeft  = '└'
	boxBottomRight = '┘'
	boxHorizontal  = '─'
	boxVertical    = '│'

	toolMarker = '▶'
	colorChip  = '■'
)

// DefaultLegend is the help line for the default key bindings
var DefaultLegend = input.DefaultKeyTable().Legend()

var (
	styleBorder    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTitle     = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleText      = tcell.StyleDefault
	styleDim       = tcell.StyleDefault.Dim(true)
	styleActive    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleStatus    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	styleStatusOK  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen)
	styleStatusErr = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorMaroon).Bold(true)
)

// panel is the writable text region of the status area
type panel struct {
	b           *Buffer
	x, y        int
	width, rows int
}

func (p panel) line(i int) (x, y, limit int, ok bool) {
	if i >= p.rows || p.width <= 0 {
		return 0, 0, 0, false
	}
	return p.x, p.y + i, p.x + p.width, true
}

// drawStatus fills rows [top, top+rows) with the tool and color panel.
// A status message too wide for the info line gets the first spare row,
// or takes over the legend row while it is shown
func drawStatus(b *Buffer, s *editor.State, legend string, top, rows int, now time.Time) {
	width, _ := b.Bounds()
	if rows <= 0 || width <= 0 {
		return
	}

	p := panel{b: b, x: 0, y: top, width: width, rows: rows}
	if rows >= 3 && width >= 4 {
		drawBox(b, 0, top, width, rows, "Tools")
		p = panel{b: b, x: 2, y: top + 1, width: width - 4, rows: rows - 2}
	}

	const (
		rowTools = iota
		rowInfo
		rowLegend
		rowSwatch
		rowCount
	)

	msgRow := -1
	if s.Status.Active(now) {
		msgRow = rowInfo
		if !drawInfo(p, rowInfo, s, true) {
			msgRow = rowLegend
			if p.rows > rowCount {
				msgRow = rowCount
			}
		}
	} else {
		drawInfo(p, rowInfo, s, false)
	}

	drawToolList(p, rowTools, s.Tool)
	if msgRow == rowLegend {
		drawMessage(p, rowLegend, s.Status)
	} else {
		drawLegend(p, rowLegend, legend)
	}
	drawSwatch(p, rowSwatch, s.Color)
	if msgRow == rowCount {
		drawMessage(p, rowCount, s.Status)
	}
}

func drawBox(b *Buffer, x, y, w, h int, title string) {
	b.Set(x, y, boxTopLeft, styleBorder)
	b.Set(x+w-1, y, boxTopRight, styleBorder)
	b.Set(x, y+h-1, boxBottomLeft, styleBorder)
	b.Set(x+w-1, y+h-1, boxBottomRight, styleBorder)

	for i := 1; i < w-1; i++ {
		b.Set(x+i, y, boxHorizontal, styleBorder)
		b.Set(x+i, y+h-1, boxHorizontal, styleBorder)
	}
	for i := 1; i < h-1; i++ {
		b.Set(x, y+i, boxVertical, styleBorder)
		b.Set(x+w-1, y+i, boxVertical, styleBorder)
	}

	if title != "" {
		b.DrawText(x+2, y, x+w-1, " "+title+" ", styleTitle)
	}
}

func drawToolList(p panel, i int, active editor.Tool) {
	x, y, limit, ok := p.line(i)
	if !ok {
		return
	}
	for n, t := range editor.Tools {
		style := styleText
		marker := " "
		if t == active {
			style = styleActive
			marker = string(toolMarker)
		}
		x = p.b.DrawText(x, y, limit, fmt.Sprintf("%s[%d] %s", marker, n+1, t), style)
		x = p.b.DrawText(x, y, limit, "   ", styleText)
	}
}

// drawInfo writes the tool and color line. With withStatus set it appends
// the status message right-aligned and reports whether it fit whole
func drawInfo(p panel, i int, s *editor.State, withStatus bool) bool {
	x, y, limit, ok := p.line(i)
	if !ok {
		return false
	}
	x = p.b.DrawText(x, y, limit, "Tool: ", styleDim)
	x = p.b.DrawText(x, y, limit, s.Tool.String(), styleActive)
	x = p.b.DrawText(x, y, limit, "  Color: ", styleDim)
	x = p.b.DrawText(x, y, limit, s.Color.String()+" ", styleText)
	x = p.b.DrawText(x, y, limit, string(colorChip), tcell.StyleDefault.Foreground(s.Color.Terminal()))

	if !withStatus {
		return true
	}
	msg := " " + s.Status.Text + " "
	if limit-(x+2) < runewidth.StringWidth(msg) {
		return false
	}
	p.b.DrawText(limit-runewidth.StringWidth(msg), y, limit, msg, statusStyle(s.Status.Kind))
	return true
}

// drawMessage gives the status message a row of its own
func drawMessage(p panel, i int, st editor.Status) {
	x, y, limit, ok := p.line(i)
	if !ok {
		return
	}
	msg := runewidth.Truncate(" "+st.Text+" ", limit-x, "…")
	p.b.DrawText(x, y, limit, msg, statusStyle(st.Kind))
}

func statusStyle(kind editor.StatusKind) tcell.Style {
	switch kind {
	case editor.StatusSuccess:
		return styleStatusOK
	case editor.StatusError:
		return styleStatusErr
	}
	return styleStatus
}

func drawLegend(p panel, i int, legend string) {
	x, y, limit, ok := p.line(i)
	if !ok {
		return
	}
	p.b.DrawText(x, y, limit, runewidth.Truncate(legend, limit-x, "…"), styleDim)
}

func drawSwatch(p panel, i int, current palette.Color) {
	x, y, limit, ok := p.line(i)
	if !ok {
		return
	}
	x = p.b.DrawText(x, y, limit, "Swatch: ", styleDim)
	for _, c := range palette.Swatch {
		style := tcell.StyleDefault.Foreground(c.Terminal())
		if c == current {
			style = style.Underline(true)
		}
		x = p.b.DrawText(x, y, limit, string(colorChip)+" ", style)
	}
}
