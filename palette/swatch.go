package palette

// Swatch is the fixed selection order used when cycling the current color
var Swatch = []Color{Black, Red, Green, Yellow, Blue, Magenta, Cyan, White}

// SwatchIndex returns the position of c in Swatch, or -1
func SwatchIndex(c Color) int {
	for i, s := range Swatch {
		if s == c {
			return i
		}
	}
	return -1
}

// Cycle returns the Swatch entry step positions away from c, wrapping at both ends.
// A color outside Swatch cycles from the start
func Cycle(c Color, step int) Color {
	n := len(Swatch)
	i := SwatchIndex(c)
	if i < 0 {
		if step > 0 {
			i = -1
		} else {
			i = 0
		}
	}
	i = ((i+step)%n + n) % n
	return Swatch[i]
}
