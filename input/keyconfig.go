package input

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
)

// runeAliases names the characters that are awkward to write as a [runes] key
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// Key name aliases on top of tcell.KeyNames
var keyAliases = map[string]tcell.Key{
	"escape": tcell.KeyEscape,
	"return": tcell.KeyEnter,
}

// keysByName is the lowercase reverse of tcell.KeyNames
var keysByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames)+len(keyAliases))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	for name, k := range keyAliases {
		m[name] = k
	}
	return m
}()

// keymapFile is the TOML layout:
//
//	[keys]
//	"Ctrl-S" = "export"
//	[runes]
//	space = "apply"
//	x = "tool_eraser"
type keymapFile struct {
	Keys  map[string]string `toml:"keys"`
	Runes map[string]string `toml:"runes"`
}

// LoadKeyConfig parses TOML keymap data into a sparse override KeyTable
// Only sections present in the data are populated
// Returns error on unknown action names, invalid key names, or parse failure
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var f keymapFile
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("keymap: unknown entry %q", undecoded[0].String())
	}

	kt := &KeyTable{}

	if f.Keys != nil {
		kt.SpecialKeys = make(map[tcell.Key]Action, len(f.Keys))
		for name, actionName := range f.Keys {
			k, ok := KeyByName(name)
			if !ok {
				return nil, fmt.Errorf("[keys] unknown key name: %q", name)
			}
			a, err := resolveAction(actionName)
			if err != nil {
				return nil, fmt.Errorf("[keys] key %q: %w", name, err)
			}
			kt.SpecialKeys[k] = a
		}
	}

	if f.Runes != nil {
		kt.Runes = make(map[rune]Action, len(f.Runes))
		for keyStr, actionName := range f.Runes {
			r, err := resolveRune(keyStr)
			if err != nil {
				return nil, fmt.Errorf("[runes] key %q: %w", keyStr, err)
			}
			a, err := resolveAction(actionName)
			if err != nil {
				return nil, fmt.Errorf("[runes] key %q: %w", keyStr, err)
			}
			kt.Runes[r] = a
		}
	}

	return kt, nil
}

// KeyByName resolves a tcell key name such as "Up", "Ctrl-S" or "ctrl+s"
func KeyByName(name string) (tcell.Key, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, "+", "-")
	k, ok := keysByName[n]
	return k, ok
}

// resolveRune reads a [runes] entry: one printable character, or an alias
// such as "space"
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("rune key %q: want one character or an alias", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if !unicode.IsPrint(r) {
		return 0, fmt.Errorf("rune key %q: not printable", s)
	}
	return r, nil
}

func resolveAction(name string) (Action, error) {
	a, ok := ActionByName(name)
	if !ok {
		return ActionNone, fmt.Errorf("unknown action: %q", name)
	}
	return a, nil
}

// MergeKeyTable layers override onto a copy of base; base is left untouched.
// A binding to ActionNone removes that key from the copy
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if result.SpecialKeys == nil {
		result.SpecialKeys = make(map[tcell.Key]Action)
	}
	if result.Runes == nil {
		result.Runes = make(map[rune]Action)
	}

	mergeMap(result.SpecialKeys, override.SpecialKeys)
	mergeMap(result.Runes, override.Runes)

	return result
}

func mergeMap[K comparable](base, override map[K]Action) {
	for k, v := range override {
		if v == ActionNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}
