package inkpad

import "testing"

// inkedPixels counts pixels with nonzero alpha.
func inkedPixels(s *Surface) int {
	pix := s.Image().Pix
	n := 0
	for i := 3; i < len(pix); i += 4 {
		if pix[i] != 0 {
			n++
		}
	}
	return n
}

func TestCaptureMinimumPointsRule(t *testing.T) {
	pad := NewCapture(100, 100, 1)

	pad.Begin(Pt(10, 10))
	if got := inkedPixels(pad.Surface()); got != 0 {
		t.Errorf("after Begin: %d inked pixels, want 0", got)
	}

	pad.Extend(Pt(20, 20))
	if got := inkedPixels(pad.Surface()); got != 0 {
		t.Errorf("after 2nd point: %d inked pixels, want 0 (guards against click dabs)", got)
	}

	pad.Extend(Pt(30, 15))
	if got := inkedPixels(pad.Surface()); got == 0 {
		t.Error("3rd point must trigger the first visible draw")
	}
}

func TestCaptureEndDiscardsSession(t *testing.T) {
	pad := NewCapture(100, 100, 1)
	pad.Begin(Pt(10, 10))
	pad.Extend(Pt(20, 20))
	pad.End()

	// A point arriving after End belongs to no session and must not draw.
	pad.Extend(Pt(30, 30))
	if got := inkedPixels(pad.Surface()); got != 0 {
		t.Errorf("Extend after End drew %d pixels", got)
	}
}

func TestCaptureBeginRestartsSession(t *testing.T) {
	pad := NewCapture(100, 100, 1)
	pad.Begin(Pt(10, 10))
	pad.Extend(Pt(20, 20))

	// Begin while active implicitly ends the previous session, so the next
	// two points are again below the minimum.
	pad.Begin(Pt(50, 50))
	pad.Extend(Pt(60, 60))
	if got := inkedPixels(pad.Surface()); got != 0 {
		t.Errorf("restarted session drew %d pixels with only 2 points", got)
	}
}

func TestCaptureClear(t *testing.T) {
	pad := NewCapture(100, 100, 1)
	pad.Begin(Pt(10, 50))
	pad.Extend(Pt(40, 20))
	pad.Extend(Pt(70, 50))
	pad.Extend(Pt(90, 30))
	pad.End()
	if inkedPixels(pad.Surface()) == 0 {
		t.Fatal("stroke drew nothing")
	}

	pad.Clear()
	if got := inkedPixels(pad.Surface()); got != 0 {
		t.Errorf("after Clear: %d inked pixels, want 0", got)
	}
}

func TestCaptureStrokeFollowsPath(t *testing.T) {
	pad := NewCapture(200, 100, 1)
	pad.SetLineWidth(4)
	pad.Begin(Pt(20, 50))
	for x := 30.0; x <= 180; x += 10 {
		pad.Extend(Pt(x, 50))
	}
	pad.End()

	// Ink on the horizontal line, none far away from it.
	if pad.Surface().GetPixel(100, 50).A == 0 {
		t.Error("no ink at the stroke center")
	}
	if a := pad.Surface().GetPixel(100, 10).A; a != 0 {
		t.Errorf("ink far from the stroke: alpha %v", a)
	}
}

func TestCaptureDeviceScale(t *testing.T) {
	pad := NewCapture(100, 100, 2)
	pad.Begin(Pt(10, 50))
	pad.Extend(Pt(50, 50))
	pad.Extend(Pt(90, 50))
	pad.End()

	s := pad.Surface()
	if w := s.Image().Bounds().Dx(); w != 200 {
		t.Fatalf("physical width = %d, want 200", w)
	}
	// Logical (50, 50) lands at physical (100, 100).
	if s.GetPixel(100, 100).A == 0 {
		t.Error("scaled stroke missing at pre-scaled coordinates")
	}
}

func TestCaptureZeroValueIsNoOp(t *testing.T) {
	var pad Capture
	// Must not panic; the interactive surface may not exist yet.
	pad.Begin(Pt(1, 1))
	pad.Extend(Pt(2, 2))
	pad.Extend(Pt(3, 3))
	pad.End()
	pad.Clear()
	if pad.Surface() != nil {
		t.Error("zero-value capture should have no surface")
	}
}

func TestCaptureSmoothedPathShape(t *testing.T) {
	pad := NewCapture(100, 100, 1)
	pad.Begin(Pt(0, 0))
	pad.session = append(pad.session, Pt(10, 0), Pt(20, 10), Pt(30, 10))

	p := pad.smoothed()
	els := p.Elements()
	// n=4: MoveTo, one interior midpoint quad, one terminal quad.
	if len(els) != 3 {
		t.Fatalf("element count = %d, want 3", len(els))
	}
	q, ok := els[1].(QuadTo)
	if !ok {
		t.Fatalf("els[1] = %T, want QuadTo", els[1])
	}
	if q.Control != Pt(10, 0) {
		t.Errorf("interior control = %v, want (10,0)", q.Control)
	}
	if q.Point != Pt(15, 5) {
		t.Errorf("interior endpoint = %v, want midpoint (15,5)", q.Point)
	}
	last, ok := els[2].(QuadTo)
	if !ok {
		t.Fatalf("els[2] = %T, want QuadTo", els[2])
	}
	if last.Control != Pt(20, 10) || last.Point != Pt(30, 10) {
		t.Errorf("terminal quad = %+v, want control (20,10) end (30,10)", last)
	}
}
