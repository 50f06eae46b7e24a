package inkpad

// DrawSurfaceWidth and DrawSurfaceHeight are the nominal logical dimensions
// of the interactive drawing surface. Hosts with narrower viewports may
// create a narrower surface.
const (
	DrawSurfaceWidth  = 600
	DrawSurfaceHeight = 350
)

// minSessionPoints is the number of pointer samples that must accumulate
// before any curve segment is committed. Fewer points produce no visible
// mark, which avoids dot artifacts from single clicks.
const minSessionPoints = 3

// Capture converts a live sequence of pointer positions into a smoothed ink
// trace on a long-lived Surface. Points are in logical pixels relative to
// the surface top-left; hosts with multi-touch input must route only the
// primary contact here.
//
// The zero value is usable but draws nothing until a surface exists; all
// methods on an uninitialized Capture are silent no-ops.
type Capture struct {
	surface *Surface
	ink     RGBA
	width   float64

	// session holds the full point sequence of the active stroke. The whole
	// sequence is kept (not a sliding window) because each new sample needs
	// the previous two points for midpoint computation.
	session []Point
	active  bool
}

// NewCapture creates a capture with its own surface of width x height
// logical pixels at the given device scale factor. The surface starts fully
// transparent and is reused across strokes.
func NewCapture(width, height int, scale float64) *Capture {
	return &Capture{
		surface: NewSurface(width, height, scale),
		ink:     Black,
		width:   2.5,
	}
}

// Surface returns the surface the capture draws onto. The capture retains
// ownership; callers may read it (for export) but must not draw on it while
// a stroke is active.
func (c *Capture) Surface() *Surface {
	return c.surface
}

// SetInk sets the ink color for subsequent strokes.
func (c *Capture) SetInk(ink RGBA) {
	c.ink = ink
}

// SetLineWidth sets the pen width in logical pixels for subsequent strokes.
func (c *Capture) SetLineWidth(w float64) {
	if w > 0 {
		c.width = w
	}
}

// Begin starts a new stroke session containing exactly one point.
// No drawing occurs yet. A Begin while a session is already open implicitly
// ends the previous session first.
func (c *Capture) Begin(p Point) {
	if c.active {
		c.End()
	}
	c.session = c.session[:0]
	c.session = append(c.session, p)
	c.active = true
}

// Extend appends a point to the active session. Until the session holds
// minSessionPoints points nothing is drawn; from then on the smoothed path
// for the whole session is re-stroked onto the surface. Re-stroking is
// acceptable because overdrawing a stroke with itself is idempotent.
func (c *Capture) Extend(p Point) {
	if !c.active {
		return
	}
	c.session = append(c.session, p)
	if len(c.session) < minSessionPoints {
		return
	}
	strokePath(c.surface, c.smoothed(), c.width, c.ink)
}

// End closes the active session. The accumulated points are discarded; only
// their rasterized trace survives on the surface.
func (c *Capture) End() {
	c.active = false
	c.session = c.session[:0]
}

// Clear erases the whole surface. This is the only undo operation.
func (c *Capture) Clear() {
	if c.surface == nil {
		return
	}
	c.surface.Clear(Transparent)
}

// smoothed builds the midpoint-chained quadratic path for the session: from
// the first point, each interior point i becomes the control point of a
// quadratic ending at the midpoint of points i and i+1, and one final
// quadratic uses the second-to-last point as control with the last point as
// endpoint. This removes the faceted look of raw polyline sampling while
// staying cheap enough to run per sample.
func (c *Capture) smoothed() *Path {
	pts := c.session
	p := NewPath()
	if len(pts) < minSessionPoints {
		return p
	}
	p.MoveTo(pts[0].X, pts[0].Y)
	for i := 1; i+2 < len(pts); i++ {
		mid := pts[i].Midpoint(pts[i+1])
		p.QuadraticTo(pts[i].X, pts[i].Y, mid.X, mid.Y)
	}
	ctrl := pts[len(pts)-2]
	end := pts[len(pts)-1]
	p.QuadraticTo(ctrl.X, ctrl.Y, end.X, end.Y)
	return p
}
