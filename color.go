package inkpad

import (
	"image/color"
	"math"
)

// RGBA represents an ink color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Common ink colors.
var (
	Black       = RGBA{R: 0, G: 0, B: 0, A: 1}
	White       = RGBA{R: 1, G: 1, B: 1, A: 1}
	Transparent = RGBA{R: 0, G: 0, B: 0, A: 0}
)

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// Color converts RGBA to the standard color.Color interface.
// The result is alpha-premultiplied, as required by draw targets.
func (c RGBA) Color() color.Color {
	return color.RGBA{
		R: uint8(clamp255(c.R * c.A * 255)),
		G: uint8(clamp255(c.G * c.A * 255)),
		B: uint8(clamp255(c.B * c.A * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Transparent
	}
	// Un-premultiply so R/G/B stay meaningful for translucent inks.
	return RGBA{
		R: float64(r) / float64(a),
		G: float64(g) / float64(a),
		B: float64(b) / float64(a),
		A: float64(a) / 65535,
	}
}

// clamp255 clamps a value to [0, 255] and rounds it.
func clamp255(v float64) float64 {
	return math.Round(math.Max(0, math.Min(255, v)))
}
