package input

import (
	"maps"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps keys to actions
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Esc)
	SpecialKeys map[tcell.Key]Action

	// Unmodified rune bindings
	Runes map[rune]Action
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Action{
			tcell.KeyUp:     ActionMoveUp,
			tcell.KeyDown:   ActionMoveDown,
			tcell.KeyLeft:   ActionMoveLeft,
			tcell.KeyRight:  ActionMoveRight,
			tcell.KeyEnter:  ActionApply,
			tcell.KeyCtrlS:  ActionExport,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
		},

		Runes: map[rune]Action{
			' ': ActionApply,

			'h': ActionMoveLeft,
			'j': ActionMoveDown,
			'k': ActionMoveUp,
			'l': ActionMoveRight,

			'1': ActionToolPen,
			'2': ActionToolEraser,
			'3': ActionToolPicker,

			']': ActionColorNext,
			'[': ActionColorPrev,

			'q': ActionQuit,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		SpecialKeys: maps.Clone(kt.SpecialKeys),
		Runes:       maps.Clone(kt.Runes),
	}
}

// Resolve returns the action bound to ev, or ActionNone.
// A rune carrying the Ctrl modifier resolves as the matching control key,
// so Ctrl+S and a bare 's' never collide
func (kt *KeyTable) Resolve(ev *tcell.EventKey) Action {
	key := ev.Key()
	if key == tcell.KeyRune {
		mods := ev.Modifiers()
		switch {
		case mods&tcell.ModCtrl != 0:
			ck, ok := ctrlKey(ev.Rune())
			if !ok {
				return ActionNone
			}
			key = ck
		case mods&(tcell.ModAlt|tcell.ModMeta) != 0:
			return ActionNone
		default:
			return kt.Runes[ev.Rune()]
		}
	}
	return kt.SpecialKeys[key]
}

// ctrlKey maps a letter to its tcell control key code
func ctrlKey(r rune) (tcell.Key, bool) {
	r = unicode.ToLower(r)
	if r < 'a' || r > 'z' {
		return 0, false
	}
	return tcell.KeyCtrlA + tcell.Key(r-'a'), true
}
