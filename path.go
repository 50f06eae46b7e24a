package inkpad

import "math"

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing, starting a new subpath.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a vector path of one or more subpaths.
type Path struct {
	elements []PathElement
	start    Point // starting point of current subpath
	current  Point // current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve with the given control point.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: Pt(x, y)})
	p.current = Pt(x, y)
}

// CubicTo draws a cubic Bezier curve with the given control points.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    Pt(x, y),
	})
	p.current = Pt(x, y)
}

// ClosePath closes the current subpath.
func (p *Path) ClosePath() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Elements returns the path elements in order.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// IsEmpty returns true if the path has no elements.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// Translate returns a copy of the path offset by (dx, dy).
func (p *Path) Translate(dx, dy float64) *Path {
	out := &Path{elements: make([]PathElement, 0, len(p.elements))}
	d := Pt(dx, dy)
	for _, el := range p.elements {
		switch e := el.(type) {
		case MoveTo:
			out.elements = append(out.elements, MoveTo{Point: e.Point.Add(d)})
		case LineTo:
			out.elements = append(out.elements, LineTo{Point: e.Point.Add(d)})
		case QuadTo:
			out.elements = append(out.elements, QuadTo{Control: e.Control.Add(d), Point: e.Point.Add(d)})
		case CubicTo:
			out.elements = append(out.elements, CubicTo{
				Control1: e.Control1.Add(d),
				Control2: e.Control2.Add(d),
				Point:    e.Point.Add(d),
			})
		case Close:
			out.elements = append(out.elements, Close{})
		}
	}
	return out
}

// Append appends all elements of other to p.
func (p *Path) Append(other *Path) {
	p.elements = append(p.elements, other.elements...)
	p.start = other.start
	p.current = other.current
}

// flattenTolerance is the maximum curve-to-chord deviation, in pixels,
// allowed when converting curves to line segments.
const flattenTolerance = 0.25

// Flatten converts the path to polylines, one per subpath. Curves are
// subdivided until they deviate from their chords by at most tol pixels;
// tol <= 0 uses a default.
func (p *Path) Flatten(tol float64) [][]Point {
	if tol <= 0 {
		tol = flattenTolerance
	}
	var out [][]Point
	var cur []Point
	var start Point

	flush := func() {
		if len(cur) > 1 {
			out = append(out, cur)
		}
		cur = nil
	}

	for _, el := range p.elements {
		switch e := el.(type) {
		case MoveTo:
			flush()
			start = e.Point
			cur = append(cur, e.Point)
		case LineTo:
			cur = append(cur, e.Point)
		case QuadTo:
			if len(cur) == 0 {
				cur = append(cur, e.Point)
				break
			}
			p0 := cur[len(cur)-1]
			n := quadSteps(p0, e.Control, e.Point, tol)
			for i := 1; i <= n; i++ {
				cur = append(cur, quadPoint(p0, e.Control, e.Point, float64(i)/float64(n)))
			}
		case CubicTo:
			if len(cur) == 0 {
				cur = append(cur, e.Point)
				break
			}
			p0 := cur[len(cur)-1]
			n := cubicSteps(p0, e.Control1, e.Control2, e.Point, tol)
			for i := 1; i <= n; i++ {
				cur = append(cur, cubicPoint(p0, e.Control1, e.Control2, e.Point, float64(i)/float64(n)))
			}
		case Close:
			if len(cur) > 0 && cur[0] != cur[len(cur)-1] {
				cur = append(cur, start)
			}
			flush()
		}
	}
	flush()
	return out
}

// quadPoint evaluates a quadratic Bezier at t.
func quadPoint(p0, c, p1 Point, t float64) Point {
	a := p0.Lerp(c, t)
	b := c.Lerp(p1, t)
	return a.Lerp(b, t)
}

// cubicPoint evaluates a cubic Bezier at t.
func cubicPoint(p0, c1, c2, p1 Point, t float64) Point {
	a := p0.Lerp(c1, t)
	b := c1.Lerp(c2, t)
	c := c2.Lerp(p1, t)
	ab := a.Lerp(b, t)
	bc := b.Lerp(c, t)
	return ab.Lerp(bc, t)
}

// quadSteps returns the number of line segments needed to flatten a
// quadratic Bezier within tol. The deviation of a quadratic from its chord
// is at most half the control point's distance to the chord midpoint.
func quadSteps(p0, c, p1 Point, tol float64) int {
	dev := c.Distance(p0.Midpoint(p1)) / 2
	return stepsForDeviation(dev, tol)
}

// cubicSteps returns the number of line segments needed to flatten a cubic
// Bezier within tol, using the larger control deviation as the bound.
func cubicSteps(p0, c1, c2, p1 Point, tol float64) int {
	d1 := c1.Distance(p0.Lerp(p1, 1.0/3.0))
	d2 := c2.Distance(p0.Lerp(p1, 2.0/3.0))
	return stepsForDeviation(math.Max(d1, d2)*3/4, tol)
}

func stepsForDeviation(dev, tol float64) int {
	if dev <= tol {
		return 1
	}
	n := int(math.Ceil(math.Sqrt(dev / tol * 4)))
	if n < 1 {
		n = 1
	}
	if n > 64 {
		n = 64
	}
	return n
}
