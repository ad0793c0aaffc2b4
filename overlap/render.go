package overlap

import (
	"image"
	"image/color"

	"github.com/katalvlaran/wfc/wfc"
	"github.com/lucasb-eyer/go-colorful"
)

// Render draws m as a Width×Height image.
//
// When m holds a solution, pixel (x, y) takes its colour from the pattern
// observed at the window covering it: the window anchored at (x, y), or for
// the last N-1 rows and columns of a bounded output, the far pixels of the
// last anchored window.
//
// Otherwise every pixel is the average of the colours that the live patterns
// of all windows covering it would put there; pixels no live pattern covers
// are black. This shows the state reached by a failed or unfinished attempt.
//
// m must have been built from set (see Set.NewModel).
func Render(set *Set, m *wfc.Model) *image.RGBA {
	g := m.Grid()
	w, h := g.Width, g.Height
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	observed, err := m.Observed()
	var x, y int
	for y = 0; y < h; y++ {
		for x = 0; x < w; x++ {
			if err == nil {
				if c, ok := set.solvedAt(m, observed, x, y); ok {
					img.SetRGBA(x, y, c)
					continue
				}
			}
			img.SetRGBA(x, y, set.averageAt(m, x, y))
		}
	}

	return img
}

// solvedAt returns the colour of (x, y) in a solved output. ok is false when
// the covering anchor holds no pattern, e.g. an output narrower than N.
func (set *Set) solvedAt(m *wfc.Model, observed []int, x, y int) (color.RGBA, bool) {
	g := m.Grid()
	n := set.N
	dx, dy := 0, 0
	if x >= g.Width-n+1 {
		dx = n - 1
	}
	if y >= g.Height-n+1 {
		dy = n - 1
	}
	if !g.InBounds(x-dx, y-dy) {
		return color.RGBA{}, false
	}
	p := observed[g.Index(x-dx, y-dy)]
	if p == wfc.Undetermined {
		return color.RGBA{}, false
	}

	return set.Palette[set.Patterns[p][dx+dy*n]], true
}

// averageAt blends the colours every live pattern of every window covering
// (x, y) contributes to it.
func (set *Set) averageAt(m *wfc.Model, x, y int) color.RGBA {
	g := m.Grid()
	n := set.N
	var (
		sum          colorful.Color
		contributors int
		dx, dy, t    int
	)
	for dy = 0; dy < n; dy++ {
		for dx = 0; dx < n; dx++ {
			sx, sy := x-dx, y-dy
			if sx < 0 {
				sx += g.Width
			}
			if sy < 0 {
				sy += g.Height
			}
			if sx < 0 || sy < 0 {
				continue
			}
			if !g.Periodic && (sx+n > g.Width || sy+n > g.Height) {
				continue
			}
			s := g.Index(sx, sy)
			for t = 0; t < m.PatternCount(); t++ {
				if !m.Live(s, t) {
					continue
				}
				c, _ := colorful.MakeColor(set.Palette[set.Patterns[t][dx+dy*n]])
				sum.R += c.R
				sum.G += c.G
				sum.B += c.B
				contributors++
			}
		}
	}
	if contributors == 0 {
		return color.RGBA{A: 0xff}
	}

	k := float64(contributors)
	r, gr, b := colorful.Color{R: sum.R / k, G: sum.G / k, B: sum.B / k}.Clamped().RGB255()

	return color.RGBA{R: r, G: gr, B: b, A: 0xff}
}
