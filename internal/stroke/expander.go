package stroke

import "math"

// Point represents a 2D point (internal copy to avoid an import cycle with
// the root package).
type Point struct {
	X, Y float64
}

// Sub returns the difference of two points as a vector.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Add returns the sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Scale returns the point scaled by s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Length returns the vector length.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Expand converts a polyline into filled contours approximating a stroke of
// the given width with round caps and round joins. If closed is true the
// polyline is treated as a closed contour (the last point connects back to
// the first).
//
// The returned contours must be rasterized together in a single nonzero
// winding pass; see the package documentation.
func Expand(points []Point, width float64, closed bool) [][]Point {
	if len(points) == 0 || width <= 0 {
		return nil
	}
	r := width / 2

	// Drop consecutive duplicates so segment normals are well defined.
	pts := make([]Point, 0, len(points))
	for _, p := range points {
		if len(pts) == 0 || p.Sub(pts[len(pts)-1]).Length() > 1e-9 {
			pts = append(pts, p)
		}
	}
	if len(pts) == 1 {
		// Degenerate stroke: a dot.
		return [][]Point{disk(pts[0], r)}
	}

	n := len(pts)
	segs := n - 1
	if closed {
		segs = n
	}

	contours := make([][]Point, 0, segs+n)
	for i := 0; i < segs; i++ {
		p := pts[i]
		q := pts[(i+1)%n]
		d := q.Sub(p)
		l := d.Length()
		if l <= 1e-9 {
			continue
		}
		// Unit normal, scaled to half width.
		nrm := Point{X: -d.Y / l, Y: d.X / l}.Scale(r)
		contours = append(contours, []Point{
			p.Add(nrm),
			q.Add(nrm),
			q.Sub(nrm),
			p.Sub(nrm),
		})
	}
	for _, p := range pts {
		contours = append(contours, disk(p, r))
	}
	return contours
}

// disk returns a regular polygon approximating a circle of radius r. The
// segment count grows with the radius so the polygonization error stays
// below roughly a tenth of a pixel.
func disk(c Point, r float64) []Point {
	if r <= 0 {
		return nil
	}
	steps := diskSteps(r)
	out := make([]Point, steps)
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		out[i] = Point{X: c.X + r*math.Cos(a), Y: c.Y + r*math.Sin(a)}
	}
	return out
}

func diskSteps(r float64) int {
	const tol = 0.1
	if r <= tol {
		return 8
	}
	steps := int(math.Ceil(math.Pi / math.Acos(1-tol/r)))
	if steps < 8 {
		steps = 8
	}
	if steps > 128 {
		steps = 128
	}
	return steps
}
