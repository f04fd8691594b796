// Package palette defines the editor color model: a closed set of named colors
// plus explicit RGB triples, and their conversion to pixel and terminal values.
package palette

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// ErrUnknownColor is returned by Parse for names outside the named set
var ErrUnknownColor = errors.New("unknown color")

// RGB is a 24-bit pixel value
type RGB struct {
	R, G, B uint8
}

// Kind tags the Color variant
type Kind uint8

const (
	KindNamed Kind = iota
	KindRGB
)

// Name enumerates the named colors
type Name uint8

const (
	NameBlack Name = iota
	NameWhite
	NameRed
	NameGreen
	NameBlue
	NameYellow
	NameMagenta
	NameCyan
	NameGray
	NameDarkGray
)

var nameStrings = [...]string{
	NameBlack:    "Black",
	NameWhite:    "White",
	NameRed:      "Red",
	NameGreen:    "Green",
	NameBlue:     "Blue",
	NameYellow:   "Yellow",
	NameMagenta:  "Magenta",
	NameCyan:     "Cyan",
	NameGray:     "Gray",
	NameDarkGray: "DarkGray",
}

// ansiIndex is the terminal palette slot each named color is displayed with
var ansiIndex = [...]int{
	NameBlack:    0,
	NameRed:      1,
	NameGreen:    2,
	NameYellow:   3,
	NameBlue:     4,
	NameMagenta:  5,
	NameCyan:     6,
	NameGray:     7,
	NameDarkGray: 8,
	NameWhite:    15,
}

func (n Name) String() string {
	if int(n) < len(nameStrings) {
		return nameStrings[n]
	}
	return fmt.Sprintf("Name(%d)", uint8(n))
}

// Color is an immutable tagged color value. The zero value is Black
type Color struct {
	kind Kind
	name Name
	rgb  RGB
}

// Named colors
var (
	Black    = Named(NameBlack)
	White    = Named(NameWhite)
	Red      = Named(NameRed)
	Green    = Named(NameGreen)
	Blue     = Named(NameBlue)
	Yellow   = Named(NameYellow)
	Magenta  = Named(NameMagenta)
	Cyan     = Named(NameCyan)
	Gray     = Named(NameGray)
	DarkGray = Named(NameDarkGray)
)

// Fallback is the pixel value for named colors without an explicit triple
var Fallback = RGB{128, 128, 128}

// Named returns the named color n
func Named(n Name) Color {
	return Color{kind: KindNamed, name: n}
}

// FromRGB returns an explicit RGB color
func FromRGB(r, g, b uint8) Color {
	return Color{kind: KindRGB, rgb: RGB{r, g, b}}
}

// Kind reports the variant
func (c Color) Kind() Kind {
	return c.kind
}

// Name reports the named color; ok is false for the RGB variant
func (c Color) Name() (Name, bool) {
	return c.name, c.kind == KindNamed
}

// ToRGB converts the color to its pixel value.
// Only Black, White, Red, Green and Blue carry exact triples; every other named
// color maps to Fallback
func (c Color) ToRGB() RGB {
	if c.kind == KindRGB {
		return c.rgb
	}
	switch c.name {
	case NameBlack:
		return RGB{0, 0, 0}
	case NameWhite:
		return RGB{255, 255, 255}
	case NameRed:
		return RGB{255, 0, 0}
	case NameGreen:
		return RGB{0, 255, 0}
	case NameBlue:
		return RGB{0, 0, 255}
	default:
		return Fallback
	}
}

// Terminal returns the display color. Named colors use the terminal palette,
// so what is shown may differ from ToRGB
func (c Color) Terminal() tcell.Color {
	if c.kind == KindRGB {
		return tcell.NewRGBColor(int32(c.rgb.R), int32(c.rgb.G), int32(c.rgb.B))
	}
	if int(c.name) < len(ansiIndex) {
		return tcell.PaletteColor(ansiIndex[c.name])
	}
	return tcell.ColorDefault
}

// String returns the debug representation shown in the status panel
func (c Color) String() string {
	if c.kind == KindRGB {
		return fmt.Sprintf("Rgb(%d, %d, %d)", c.rgb.R, c.rgb.G, c.rgb.B)
	}
	return c.name.String()
}

// Parse resolves a color from a case-insensitive name or a #rrggbb hex string
func Parse(s string) (Color, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(key, "#") {
		hc, err := colorful.Hex(key)
		if err != nil {
			return Color{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		r, g, b := hc.RGB255()
		return FromRGB(r, g, b), nil
	}

	key = strings.NewReplacer("_", "", "-", "", " ", "").Replace(key)
	if key == "grey" {
		key = "gray"
	} else if key == "darkgrey" {
		key = "darkgray"
	}
	for i, name := range nameStrings {
		if strings.ToLower(name) == key {
			return Named(Name(i)), nil
		}
	}
	return Color{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}
