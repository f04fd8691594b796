package input

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// legendGroup is one legend entry; multi-action groups show the keys of
// every action concatenated, e.g. "hjkl" for the four moves
type legendGroup struct {
	label   string
	actions []Action
}

var legendGroups = []legendGroup{
	{"move", []Action{ActionMoveLeft, ActionMoveDown, ActionMoveUp, ActionMoveRight}},
	{"apply", []Action{ActionApply}},
	{"tools", []Action{ActionToolPen, ActionToolEraser, ActionToolPicker}},
	{"color", []Action{ActionColorPrev, ActionColorNext}},
	{"save", []Action{ActionExport}},
	{"quit", []Action{ActionQuit}},
}

// LegendSeparator joins legend entries
const LegendSeparator = "  "

var arrowGlyphs = map[tcell.Key]string{
	tcell.KeyUp:    "↑",
	tcell.KeyDown:  "↓",
	tcell.KeyLeft:  "←",
	tcell.KeyRight: "→",
}

// Legend describes the bindings in kt as one help line, for example
// "hjkl/←↓↑→ move  Spc/Enter apply". Each entry shows at most one rune
// form and one special key form; unbound actions are left out
func (kt *KeyTable) Legend() string {
	var parts []string
	for _, g := range legendGroups {
		var forms []string
		if f := kt.groupForm(g.actions, kt.runeLabels); f != "" {
			forms = append(forms, f)
		}
		if f := kt.groupForm(g.actions, kt.specialLabels); f != "" {
			forms = append(forms, f)
		}
		if len(forms) == 0 {
			continue
		}
		parts = append(parts, strings.Join(forms, "/")+" "+g.label)
	}
	return strings.Join(parts, LegendSeparator)
}

// groupForm concatenates the first label of each action; empty when any
// action in the group has no label of that kind
func (kt *KeyTable) groupForm(actions []Action, labels func(Action) []string) string {
	var sb strings.Builder
	for _, a := range actions {
		l := labels(a)
		if len(l) == 0 {
			return ""
		}
		sb.WriteString(l[0])
	}
	return sb.String()
}

func (kt *KeyTable) runeLabels(a Action) []string {
	var out []string
	for r, bound := range kt.Runes {
		if bound == a {
			out = append(out, runeLabel(r))
		}
	}
	slices.Sort(out)
	return out
}

func (kt *KeyTable) specialLabels(a Action) []string {
	var out []string
	for k, bound := range kt.SpecialKeys {
		if bound == a {
			out = append(out, keyLabel(k))
		}
	}
	slices.Sort(out)
	return out
}

func runeLabel(r rune) string {
	if r == ' ' {
		return "Spc"
	}
	return string(r)
}

func keyLabel(k tcell.Key) string {
	if g, ok := arrowGlyphs[k]; ok {
		return g
	}
	name, ok := tcell.KeyNames[k]
	if !ok {
		return fmt.Sprintf("Key[%d]", k)
	}
	if rest, ok := strings.CutPrefix(name, "Ctrl-"); ok {
		return "^" + rest
	}
	return name
}
