package inkpad

import (
	"image"
	"testing"
)

func TestNewSurface(t *testing.T) {
	s := NewSurface(600, 350, 1)
	if s.Width() != 600 || s.Height() != 350 {
		t.Errorf("logical size = %dx%d, want 600x350", s.Width(), s.Height())
	}
	if b := s.Image().Bounds(); b.Dx() != 600 || b.Dy() != 350 {
		t.Errorf("physical size = %dx%d, want 600x350", b.Dx(), b.Dy())
	}
}

func TestNewSurfaceScaled(t *testing.T) {
	s := NewSurface(1200, 400, 2)
	if b := s.Image().Bounds(); b.Dx() != 2400 || b.Dy() != 800 {
		t.Errorf("physical size = %dx%d, want 2400x800", b.Dx(), b.Dy())
	}
	if s.Scale() != 2 {
		t.Errorf("scale = %v, want 2", s.Scale())
	}
}

func TestNewSurfaceBadScale(t *testing.T) {
	s := NewSurface(10, 10, -1)
	if s.Scale() != 1 {
		t.Errorf("scale = %v, want 1 for non-positive input", s.Scale())
	}
}

func TestSurfaceClearAndPixels(t *testing.T) {
	s := NewSurface(10, 10, 1)
	if got := s.GetPixel(5, 5); got != Transparent {
		t.Errorf("fresh surface pixel = %+v, want transparent", got)
	}

	s.Clear(White)
	if got := s.GetPixel(5, 5); got.R != 1 || got.A != 1 {
		t.Errorf("cleared pixel = %+v, want white", got)
	}

	s.SetPixel(3, 4, Black)
	if got := s.GetPixel(3, 4); got.A != 1 || got.R != 0 {
		t.Errorf("set pixel = %+v, want black", got)
	}

	// Out of bounds: silent no-op / transparent.
	s.SetPixel(-1, 0, Black)
	if got := s.GetPixel(100, 100); got != Transparent {
		t.Errorf("out-of-bounds pixel = %+v, want transparent", got)
	}
}

func TestFromImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	src.Set(1, 1, Black.Color())

	s := FromImage(src)
	if s.Width() != 4 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, want 4x4", s.Width(), s.Height())
	}
	if got := s.GetPixel(1, 1); got.A != 1 {
		t.Errorf("copied pixel = %+v, want opaque", got)
	}

	// The copy must be independent of the source.
	src.Set(2, 2, White.Color())
	if got := s.GetPixel(2, 2); got.A != 0 {
		t.Error("surface shares storage with the source image")
	}
}
