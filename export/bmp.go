// Package export writes the grid to a bitmap image file
package export

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"

	"github.com/lixenwraith/vi-pixel/canvas"
	"github.com/lixenwraith/vi-pixel/palette"
)

// DefaultPath is the export target in the current working directory
const DefaultPath = "output.bmp"

// Exporter writes grids to Path
type Exporter struct {
	Path string
}

// New returns an exporter targeting DefaultPath
func New() *Exporter {
	return &Exporter{Path: DefaultPath}
}

// Target returns the file path Export writes to
func (e *Exporter) Target() string {
	return e.Path
}

// Image renders one opaque pixel per cell; unpainted cells are black
func Image(g *canvas.Grid) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, canvas.Size, canvas.Size))
	black := palette.Black.ToRGB()
	for y := 0; y < canvas.Size; y++ {
		for x := 0; x < canvas.Size; x++ {
			px := black
			if c, ok := g.Get(x, y); ok {
				px = c.ToRGB()
			}
			img.SetRGBA(x, y, color.RGBA{R: px.R, G: px.G, B: px.B, A: 0xff})
		}
	}
	return img
}

// Export encodes g as a 24-bit BMP and replaces the file at e.Path.
// The image is written to a sibling temp file first so a failed write never
// truncates an earlier export
func (e *Exporter) Export(g *canvas.Grid) error {
	dir := filepath.Dir(e.Path)
	tmp, err := os.CreateTemp(dir, ".export-*.bmp")
	if err != nil {
		return fmt.Errorf("export %s: %w", e.Path, err)
	}
	tmpName := tmp.Name()

	if err := bmp.Encode(tmp, Image(g)); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("export %s: encode: %w", e.Path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("export %s: %w", e.Path, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("export %s: %w", e.Path, err)
	}
	if err := os.Rename(tmpName, e.Path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("export %s: %w", e.Path, err)
	}
	return nil
}
