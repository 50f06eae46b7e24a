package inkpad

import (
	"image"

	"golang.org/x/image/vector"

	"github.com/inkpad/inkpad/internal/stroke"
)

// fillPath rasterizes the path onto the surface in the given ink using the
// nonzero winding rule. Path coordinates are logical; the surface device
// scale is applied here, in one place. A nil surface is a silent no-op: the
// interactive surface may not exist yet during early lifecycle.
func fillPath(s *Surface, p *Path, ink RGBA) {
	if s == nil || p == nil || p.IsEmpty() || ink.A <= 0 {
		return
	}
	b := s.img.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	k := s.scale

	for _, el := range p.elements {
		switch e := el.(type) {
		case MoveTo:
			r.MoveTo(float32(e.Point.X*k), float32(e.Point.Y*k))
		case LineTo:
			r.LineTo(float32(e.Point.X*k), float32(e.Point.Y*k))
		case QuadTo:
			r.QuadTo(
				float32(e.Control.X*k), float32(e.Control.Y*k),
				float32(e.Point.X*k), float32(e.Point.Y*k),
			)
		case CubicTo:
			r.CubeTo(
				float32(e.Control1.X*k), float32(e.Control1.Y*k),
				float32(e.Control2.X*k), float32(e.Control2.Y*k),
				float32(e.Point.X*k), float32(e.Point.Y*k),
			)
		case Close:
			r.ClosePath()
		}
	}
	r.Draw(s.img, b, image.NewUniform(ink.Color()), image.Point{})
}

// strokePath strokes the path onto the surface with round caps and joins.
// The width is in logical pixels. Subpaths whose flattened polyline returns
// to its starting point are stroked as closed contours.
func strokePath(s *Surface, p *Path, width float64, ink RGBA) {
	if s == nil || p == nil || p.IsEmpty() || width <= 0 || ink.A <= 0 {
		return
	}
	b := s.img.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	k := s.scale

	for _, poly := range p.Flatten(flattenTolerance / k) {
		pts := make([]stroke.Point, len(poly))
		for i, pt := range poly {
			pts[i] = stroke.Point{X: pt.X * k, Y: pt.Y * k}
		}
		closed := false
		if len(pts) > 2 && pts[0] == pts[len(pts)-1] {
			pts = pts[:len(pts)-1]
			closed = true
		}
		for _, contour := range stroke.Expand(pts, width*k, closed) {
			appendContour(r, contour)
		}
	}
	r.Draw(s.img, b, image.NewUniform(ink.Color()), image.Point{})
}

// appendContour feeds one closed polygon contour to the rasterizer.
func appendContour(r *vector.Rasterizer, contour []stroke.Point) {
	if len(contour) < 3 {
		return
	}
	r.MoveTo(float32(contour[0].X), float32(contour[0].Y))
	for _, pt := range contour[1:] {
		r.LineTo(float32(pt.X), float32(pt.Y))
	}
	r.ClosePath()
}
