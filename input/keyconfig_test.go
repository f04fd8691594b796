package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadKeyConfig(t *testing.T) {
	data := []byte(`
[keys]
Ctrl-E = "export"
"ctrl+s" = "none"
esc = "none"

[runes]
x = "tool_eraser"
space = "none"
q = "QUIT"
`)

	kt, err := LoadKeyConfig(data)
	require.NoError(t, err)

	assert.Equal(t, ActionExport, kt.SpecialKeys[tcell.KeyCtrlE])
	assert.Equal(t, ActionNone, kt.SpecialKeys[tcell.KeyCtrlS])
	assert.Contains(t, kt.SpecialKeys, tcell.KeyEscape)
	assert.Equal(t, ActionToolEraser, kt.Runes['x'])
	assert.Equal(t, ActionQuit, kt.Runes['q'])
	assert.Contains(t, kt.Runes, ' ')
}

func TestLoadKeyConfigSparse(t *testing.T) {
	kt, err := LoadKeyConfig([]byte("[runes]\nx = \"apply\"\n"))
	require.NoError(t, err)
	assert.Nil(t, kt.SpecialKeys, "absent section stays nil")
	assert.Len(t, kt.Runes, 1)
}

func TestLoadKeyConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"Malformed TOML", "[keys\n"},
		{"Unknown action", "[runes]\nx = \"teleport\"\n"},
		{"Unknown key name", "[keys]\nHyper-X = \"quit\"\n"},
		{"Multi-character rune", "[runes]\nxy = \"quit\"\n"},
		{"Non-string action", "[runes]\nx = 3\n"},
		{"Unknown section", "[mouse]\nleft = \"apply\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadKeyConfig([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestMergeKeyTable(t *testing.T) {
	base := DefaultKeyTable()
	override, err := LoadKeyConfig([]byte(`
[keys]
Ctrl-E = "export"
Ctrl-S = "none"

[runes]
q = "none"
e = "tool_eraser"
`))
	require.NoError(t, err)

	merged := MergeKeyTable(base, override)

	assert.Equal(t, ActionExport, merged.Resolve(tcell.NewEventKey(tcell.KeyCtrlE, 0, tcell.ModCtrl)))
	assert.Equal(t, ActionNone, merged.Resolve(tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl)))
	assert.Equal(t, ActionNone, merged.Resolve(runeKey('q', tcell.ModNone)))
	assert.Equal(t, ActionToolEraser, merged.Resolve(runeKey('e', tcell.ModNone)))
	assert.Equal(t, ActionMoveUp, merged.Resolve(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)), "untouched bindings survive")

	// Base is untouched
	assert.Equal(t, ActionQuit, base.Runes['q'])
	assert.Equal(t, ActionExport, base.SpecialKeys[tcell.KeyCtrlS])
}

func TestKeyByName(t *testing.T) {
	k, ok := KeyByName("Up")
	assert.True(t, ok)
	assert.Equal(t, tcell.KeyUp, k)

	k, ok = KeyByName("ctrl+s")
	assert.True(t, ok)
	assert.Equal(t, tcell.KeyCtrlS, k)

	k, ok = KeyByName("escape")
	assert.True(t, ok)
	assert.Equal(t, tcell.KeyEscape, k)

	_, ok = KeyByName("nope")
	assert.False(t, ok)
}

func TestResolveRune(t *testing.T) {
	tests := []struct {
		in      string
		want    rune
		wantErr bool
	}{
		{"x", 'x', false},
		{"é", 'é', false},
		{"Space", ' ', false},
		{"backslash", '\\', false},
		{"xy", 0, true},
		{"", 0, true},
		{"\t", 0, true},
	}
	for _, tt := range tests {
		r, err := resolveRune(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		assert.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, r, "input %q", tt.in)
	}
}
