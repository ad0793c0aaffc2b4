package overlap

import (
	"fmt"
	"image"
	"image/color"
)

// FromImage palette-indexes img. Colours get indices in the order they are
// first met scanning rows top to bottom, left to right.
//
// Errors: ErrEmptySample, ErrTooManyColors.
//
// Complexity: O(W·H).
func FromImage(img image.Image) (*Sample, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, ErrEmptySample
	}

	s := &Sample{
		Width:  w,
		Height: h,
		Pixels: make([]byte, w*h),
	}
	index := make(map[color.RGBA]byte, 16)
	var x, y int
	for y = 0; y < h; y++ {
		for x = 0; x < w; x++ {
			c := color.RGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.RGBA)
			k, ok := index[c]
			if !ok {
				if len(s.Palette) == MaxColors {
					return nil, fmt.Errorf("%w: at (%d,%d)", ErrTooManyColors, x, y)
				}
				k = byte(len(s.Palette))
				index[c] = k
				s.Palette = append(s.Palette, c)
			}
			s.Pixels[x+y*w] = k
		}
	}

	return s, nil
}

// At returns the palette index at (x, y), wrapping both coordinates.
func (s *Sample) At(x, y int) byte {
	x %= s.Width
	if x < 0 {
		x += s.Width
	}
	y %= s.Height
	if y < 0 {
		y += s.Height
	}

	return s.Pixels[x+y*s.Width]
}
