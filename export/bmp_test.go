package export

import (
	"encoding/binary"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"github.com/lixenwraith/vi-pixel/canvas"
	"github.com/lixenwraith/vi-pixel/editor"
	"github.com/lixenwraith/vi-pixel/palette"
)

func decode(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := bmp.Decode(f)
	require.NoError(t, err)
	return img
}

func rgbAt(img image.Image, x, y int) palette.RGB {
	r, g, b, _ := img.At(x, y).RGBA()
	return palette.RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

func TestExportRoundTrip(t *testing.T) {
	g := canvas.NewGrid()
	g.Paint(0, 0, palette.White)
	g.Paint(63, 0, palette.Red)
	g.Paint(0, 63, palette.Green)
	g.Paint(63, 63, palette.Blue)
	g.Paint(10, 20, palette.FromRGB(12, 34, 56))
	g.Paint(20, 10, palette.Magenta)

	path := filepath.Join(t.TempDir(), DefaultPath)
	e := &Exporter{Path: path}
	require.NoError(t, e.Export(g))

	img := decode(t, path)
	assert.Equal(t, image.Rect(0, 0, canvas.Size, canvas.Size), img.Bounds())

	for y := 0; y < canvas.Size; y++ {
		for x := 0; x < canvas.Size; x++ {
			want := palette.RGB{}
			if c, ok := g.Get(x, y); ok {
				want = c.ToRGB()
			}
			if got := rgbAt(img, x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
	assert.Equal(t, palette.Fallback, rgbAt(img, 20, 10))
}

func TestExportIs24Bit(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath)
	require.NoError(t, (&Exporter{Path: path}).Export(canvas.NewGrid()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(data), 30)

	assert.Equal(t, "BM", string(data[0:2]))
	assert.Equal(t, uint32(canvas.Size), binary.LittleEndian.Uint32(data[18:22]))
	assert.Equal(t, uint32(canvas.Size), binary.LittleEndian.Uint32(data[22:26]))
	assert.Equal(t, uint16(24), binary.LittleEndian.Uint16(data[28:30]))
}

func TestExportOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath)
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	g := canvas.NewGrid()
	g.Paint(1, 1, palette.White)
	require.NoError(t, (&Exporter{Path: path}).Export(g))

	img := decode(t, path)
	assert.Equal(t, palette.RGB{R: 255, G: 255, B: 255}, rgbAt(img, 1, 1))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestExportFailureIsReturned(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", DefaultPath)
	err := (&Exporter{Path: path}).Export(canvas.NewGrid())
	assert.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// Paint (3,0) white, erase it again, export: the pixel must be black
func TestPaintEraseExportScenario(t *testing.T) {
	s := editor.NewState()
	for i := 0; i < 3; i++ {
		s.MoveCursor(1, 0)
	}
	require.Equal(t, canvas.Cursor{X: 3, Y: 0}, s.Cursor)

	s.Apply()
	c, ok := s.Grid.Get(3, 0)
	require.True(t, ok)
	require.Equal(t, palette.White, c)

	s.SetTool(editor.ToolEraser)
	s.Apply()
	_, ok = s.Grid.Get(3, 0)
	require.False(t, ok)

	path := filepath.Join(t.TempDir(), DefaultPath)
	require.NoError(t, (&Exporter{Path: path}).Export(s.Grid))

	assert.Equal(t, palette.RGB{}, rgbAt(decode(t, path), 3, 0))
}

func TestNewTargetsWorkingDirectory(t *testing.T) {
	assert.Equal(t, "output.bmp", New().Path)
}
