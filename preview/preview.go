// Package preview shows a generated image in the terminal.
//
// Two image rows share one terminal row: each cell prints '▀' with the
// upper pixel as foreground and the lower pixel as background. Images larger
// than the terminal are clipped at the right and bottom.
package preview

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// HalfBlock is the glyph used for every drawn cell.
const HalfBlock = '▀'

// Draw paints img onto screen starting at the top-left corner.
// It does not call Show.
func Draw(screen tcell.Screen, img image.Image) {
	b := img.Bounds()
	sw, sh := screen.Size()
	cols := min(b.Dx(), sw)
	rows := min((b.Dy()+1)/2, sh)

	var tx, ty int
	for ty = 0; ty < rows; ty++ {
		for tx = 0; tx < cols; tx++ {
			x, y := b.Min.X+tx, b.Min.Y+2*ty
			style := tcell.StyleDefault.Foreground(rgb(img.At(x, y)))
			if y+1 < b.Max.Y {
				style = style.Background(rgb(img.At(x, y+1)))
			}
			screen.SetContent(tx, ty, HalfBlock, nil, style)
		}
	}
}

// Show opens the terminal, draws img and waits for a key press, redrawing
// on resize.
func Show(img image.Image) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err = screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	Run(screen, img)

	return nil
}

// Run draws img on an initialised screen and blocks until a key is pressed
// or the screen is finalised.
func Run(screen tcell.Screen, img image.Image) {
	redraw := func() {
		screen.Clear()
		Draw(screen, img)
		screen.Show()
	}
	redraw()

	for {
		switch screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			return
		case *tcell.EventResize:
			screen.Sync()
			redraw()
		}
	}
}

// rgb converts any colour to a 24-bit terminal colour.
func rgb(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()

	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
