package inkpad

import (
	"image"
	"image/draw"
	"math"
)

// Surface represents a rectangular pixel buffer with an associated device
// scale factor. Dimensions are given in logical pixels; the backing store is
// allocated at logical size times scale, once, at construction. Drawing
// operations take logical coordinates and pre-scale them, so captured
// geometry stays in logical pixel space regardless of display density.
//
// A Surface is owned by the component that created it and is not safe for
// concurrent use.
type Surface struct {
	width  int
	height int
	scale  float64
	img    *image.RGBA
}

// NewSurface creates a surface of width x height logical pixels at the given
// device scale factor. A scale <= 0 is treated as 1.
func NewSurface(width, height int, scale float64) *Surface {
	if scale <= 0 {
		scale = 1
	}
	pw := int(math.Round(float64(width) * scale))
	ph := int(math.Round(float64(height) * scale))
	if pw < 1 {
		pw = 1
	}
	if ph < 1 {
		ph = 1
	}
	return &Surface{
		width:  width,
		height: height,
		scale:  scale,
		img:    image.NewRGBA(image.Rect(0, 0, pw, ph)),
	}
}

// FromImage creates a scale-1 surface holding a copy of img.
func FromImage(src image.Image) *Surface {
	bounds := src.Bounds()
	s := NewSurface(bounds.Dx(), bounds.Dy(), 1)
	draw.Draw(s.img, s.img.Bounds(), src, bounds.Min, draw.Src)
	return s
}

// Width returns the logical width of the surface.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the logical height of the surface.
func (s *Surface) Height() int {
	return s.height
}

// Scale returns the device scale factor.
func (s *Surface) Scale() float64 {
	return s.scale
}

// Image returns the backing image at physical resolution.
// Mutations through the returned image are visible to the surface.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// Clear fills the entire surface with a color.
func (s *Surface) Clear(c RGBA) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c.Color()), image.Point{}, draw.Src)
}

// SetPixel sets the color of a single physical pixel.
func (s *Surface) SetPixel(x, y int, c RGBA) {
	if !(image.Point{X: x, Y: y}).In(s.img.Bounds()) {
		return
	}
	s.img.Set(x, y, c.Color())
}

// GetPixel returns the color of a single physical pixel.
// Out-of-bounds coordinates return Transparent.
func (s *Surface) GetPixel(x, y int) RGBA {
	if !(image.Point{X: x, Y: y}).In(s.img.Bounds()) {
		return Transparent
	}
	return FromColor(s.img.RGBAAt(x, y))
}
