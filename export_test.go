package inkpad

import (
	"bytes"
	"image"
	"image/jpeg"
	"math/rand"
	"testing"
)

// solidSurface returns a w x h surface filled with c.
func solidSurface(w, h int, c RGBA) *Surface {
	s := NewSurface(w, h, 1)
	s.Clear(c)
	return s
}

// noiseSurface returns a surface filled with seeded uncompressible noise.
func noiseSurface(w, h int, seed int64) *Surface {
	s := NewSurface(w, h, 1)
	rng := rand.New(rand.NewSource(seed))
	pix := s.Image().Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i+0] = uint8(rng.Intn(256))
		pix[i+1] = uint8(rng.Intn(256))
		pix[i+2] = uint8(rng.Intn(256))
		pix[i+3] = 255
	}
	return s
}

func TestExportSolidBlackJPEG(t *testing.T) {
	// Scenario A: trivially compressible content must return at the very
	// first search point.
	e := NewExporter()
	art, err := e.Export(ExportRequest{
		Surface:        solidSurface(10, 10, Black),
		Format:         FormatJPEG,
		FillBackground: true,
	})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if art.Scale != 1.0 {
		t.Errorf("Scale = %v, want 1.0", art.Scale)
	}
	if art.Quality != 0.9 {
		t.Errorf("Quality = %v, want 0.9", art.Quality)
	}
	if art.BestEffort {
		t.Error("BestEffort set for a trivially compressible surface")
	}
	if len(art.Data) > SizeCeiling {
		t.Errorf("size %d exceeds ceiling %d", len(art.Data), SizeCeiling)
	}
	if len(art.Data) == 0 {
		t.Error("empty artifact")
	}
	if art.MIME != "image/jpeg" || art.Ext != "jpg" {
		t.Errorf("MIME/Ext = %s/%s, want image/jpeg/jpg", art.MIME, art.Ext)
	}
}

func TestExportSolidPNG(t *testing.T) {
	e := NewExporter()
	art, err := e.Export(ExportRequest{Surface: solidSurface(600, 350, White), Format: FormatPNG})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if art.Scale != 1.0 || art.BestEffort {
		t.Errorf("Scale = %v BestEffort = %v, want 1.0 false", art.Scale, art.BestEffort)
	}
	if art.Quality != 0 {
		t.Errorf("Quality = %v, want 0 for lossless", art.Quality)
	}
	if len(art.Data) > SizeCeiling {
		t.Errorf("size %d exceeds ceiling", len(art.Data))
	}
}

func TestExportNoiseJPEGTerminates(t *testing.T) {
	// Scenario B: a maximally noisy source must still return within the
	// bounded search, either fitting at reduced scale or flagged best-effort.
	e := NewExporter()
	art, err := e.Export(ExportRequest{
		Surface:        noiseSurface(2000, 2000, 1),
		Format:         FormatJPEG,
		FillBackground: true,
	})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !art.BestEffort && len(art.Data) > SizeCeiling {
		t.Errorf("non-fallback artifact %d bytes exceeds ceiling", len(art.Data))
	}
	if art.Scale > 1.0 || art.Scale < 0.05 {
		t.Errorf("Scale = %v outside search range", art.Scale)
	}
}

func TestExportNoisePNGFallsBack(t *testing.T) {
	// PNG cannot compress noise; even the 10% scale level stays above the
	// ceiling, so the documented best-effort fallback must be reached.
	e := NewExporter()
	art, err := e.Export(ExportRequest{Surface: noiseSurface(1600, 1600, 2), Format: FormatPNG})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !art.BestEffort {
		t.Fatalf("expected best-effort fallback, got %d bytes at scale %v", len(art.Data), art.Scale)
	}
	if art.Scale != 0.10 {
		t.Errorf("fallback Scale = %v, want 0.10 (last attempted level)", art.Scale)
	}
	if len(art.Data) <= SizeCeiling {
		t.Errorf("fallback unexpectedly fits the ceiling: %d bytes", len(art.Data))
	}
}

func TestExportDeterministic(t *testing.T) {
	// First-fit search plus deterministic encoders: identical input must
	// produce byte-identical output.
	for _, format := range []Format{FormatPNG, FormatJPEG} {
		src := noiseSurface(300, 150, 7)
		a1, err := NewExporter().Export(ExportRequest{Surface: src, Format: format, FillBackground: true})
		if err != nil {
			t.Fatalf("Export 1 (%v): %v", format, err)
		}
		a2, err := NewExporter().Export(ExportRequest{Surface: src, Format: format, FillBackground: true})
		if err != nil {
			t.Fatalf("Export 2 (%v): %v", format, err)
		}
		if !bytes.Equal(a1.Data, a2.Data) {
			t.Errorf("%v: repeated export not byte-identical", format)
		}
	}
}

func TestExportBackgroundFill(t *testing.T) {
	// A transparent source pixel must come back opaque white from the
	// JPEG round trip when the background fill is requested.
	src := NewSurface(64, 64, 1) // fully transparent
	src.SetPixel(32, 32, Black)  // a single ink dot so the image is not empty

	e := NewExporter()
	art, err := e.Export(ExportRequest{Surface: src, Format: FormatJPEG, FillBackground: true})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	decoded, err := jpeg.Decode(bytes.NewReader(art.Data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	r, g, b, a := decoded.At(2, 2).RGBA()
	const want = 0xf000 // allow JPEG artifacts near full white
	if r < want || g < want || b < want || a != 0xffff {
		t.Errorf("corner pixel = (%d,%d,%d,%d), want opaque near-white", r, g, b, a)
	}
}

func TestExportNoBackgroundKeepsTransparency(t *testing.T) {
	src := NewSurface(32, 32, 1)
	src.SetPixel(16, 16, Black)

	e := NewExporter()
	art, err := e.Export(ExportRequest{Surface: src, Format: FormatPNG})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	decoded, err := decodePNG(art.Data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, _, _, a := decoded.At(2, 2).RGBA(); a != 0 {
		t.Errorf("corner alpha = %d, want 0 (transparency preserved)", a)
	}
}

func TestExportRejectsReentrantCall(t *testing.T) {
	e := NewExporter()
	e.optimizing.Store(true)
	if !e.InFlight() {
		t.Fatal("InFlight = false with flag set")
	}
	_, err := e.Export(ExportRequest{Surface: solidSurface(4, 4, Black), Format: FormatPNG})
	if err != ErrExportInFlight {
		t.Fatalf("err = %v, want ErrExportInFlight", err)
	}
	e.optimizing.Store(false)

	// The flag must be cleared after a successful export.
	if _, err := e.Export(ExportRequest{Surface: solidSurface(4, 4, Black), Format: FormatPNG}); err != nil {
		t.Fatalf("Export: %v", err)
	}
	if e.InFlight() {
		t.Error("optimizing flag not cleared after export")
	}
}

func TestExportEmptySurface(t *testing.T) {
	e := NewExporter()
	if _, err := e.Export(ExportRequest{Surface: nil, Format: FormatPNG}); err != ErrEmptySurface {
		t.Errorf("nil surface err = %v, want ErrEmptySurface", err)
	}
	// The flag must be cleared on the error path too.
	if e.InFlight() {
		t.Error("optimizing flag not cleared after error")
	}
}

func TestLegacyEstimateClose(t *testing.T) {
	// The base64-derived estimate may only differ from the exact length by
	// base64 padding rounding.
	e := NewExporter(WithLegacyEstimate())
	for _, n := range []int{0, 1, 2, 3, 100, 25599, 25600, 25601} {
		est := e.encodedSize(make([]byte, n))
		diff := est - n
		if diff < 0 {
			diff = -diff
		}
		if diff > 2 {
			t.Errorf("legacy estimate for %d bytes = %d, off by %d", n, est, diff)
		}
	}
}

func decodePNG(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	return img, err
}
