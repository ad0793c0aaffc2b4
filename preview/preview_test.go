package preview_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/katalvlaran/wfc/preview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newScreen returns an initialised simulation screen of the given size.
func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)

	return screen
}

// TestDraw_HalfBlocks checks glyphs and colours of a 2×3 image: two full
// cell rows, the second with no lower pixel.
func TestDraw_HalfBlocks(t *testing.T) {
	red := color.RGBA{R: 0xff, A: 0xff}
	blue := color.RGBA{B: 0xff, A: 0xff}
	img := image.NewRGBA(image.Rect(0, 0, 2, 3))
	for x := 0; x < 2; x++ {
		img.SetRGBA(x, 0, red)
		img.SetRGBA(x, 1, blue)
		img.SetRGBA(x, 2, red)
	}

	screen := newScreen(t, 10, 10)
	preview.Draw(screen, img)

	for x := 0; x < 2; x++ {
		r, _, style, _ := screen.GetContent(x, 0)
		assert.Equal(t, preview.HalfBlock, r)
		fg, bg, _ := style.Decompose()
		assert.Equal(t, tcell.NewRGBColor(0xff, 0, 0), fg)
		assert.Equal(t, tcell.NewRGBColor(0, 0, 0xff), bg)

		r, _, style, _ = screen.GetContent(x, 1)
		assert.Equal(t, preview.HalfBlock, r)
		fg, _, _ = style.Decompose()
		assert.Equal(t, tcell.NewRGBColor(0xff, 0, 0), fg)
	}

	r, _, _, _ := screen.GetContent(2, 0)
	assert.NotEqual(t, preview.HalfBlock, r)
	r, _, _, _ = screen.GetContent(0, 2)
	assert.NotEqual(t, preview.HalfBlock, r)
}

// TestDraw_Clipped checks that an image larger than the screen is clipped.
func TestDraw_Clipped(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	screen := newScreen(t, 5, 3)

	assert.NotPanics(t, func() { preview.Draw(screen, img) })
	r, _, _, _ := screen.GetContent(4, 2)
	assert.Equal(t, preview.HalfBlock, r)
}

// TestRun_KeyExits checks that Run returns on the first key press.
func TestRun_KeyExits(t *testing.T) {
	screen := newScreen(t, 4, 4)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	preview.Run(screen, image.NewRGBA(image.Rect(0, 0, 2, 2)))

	r, _, _, _ := screen.GetContent(1, 0)
	assert.Equal(t, preview.HalfBlock, r)
}
