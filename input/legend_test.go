package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

func TestDefaultLegend(t *testing.T) {
	legend := DefaultKeyTable().Legend()

	assert.Equal(t, "hjkl/←↓↑→ move  Spc/Enter apply  123 tools  [] color  ^S save  q/Esc quit", legend)
	// fits the inner status panel of an 80-column terminal
	assert.LessOrEqual(t, runewidth.StringWidth(legend), 76)
}

func TestLegendFollowsOverrides(t *testing.T) {
	override := &KeyTable{
		SpecialKeys: map[tcell.Key]Action{
			tcell.KeyCtrlS: ActionNone,
			tcell.KeyCtrlW: ActionExport,
		},
		Runes: map[rune]Action{
			'q': ActionNone,
			'x': ActionQuit,
			'h': ActionNone,
		},
	}
	legend := MergeKeyTable(DefaultKeyTable(), override).Legend()

	assert.Contains(t, legend, "^W save")
	assert.NotContains(t, legend, "^S")
	assert.Contains(t, legend, "x/Esc quit")
	// a partially bound group keeps only its complete form
	assert.Contains(t, legend, "←↓↑→ move")
	assert.NotContains(t, legend, "jkl")
}

func TestLegendSkipsUnboundActions(t *testing.T) {
	kt := &KeyTable{Runes: map[rune]Action{'q': ActionQuit}}
	assert.Equal(t, "q quit", kt.Legend())
}
