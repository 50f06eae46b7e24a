package inkpad

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/jpeg"
	"image/png"
	"math"
	"sync/atomic"

	"golang.org/x/image/draw"
)

// SizeCeiling is the maximum encoded artifact size in bytes, fixed for
// compatibility with legacy document-ingestion systems. It is not
// configurable by the end user.
const SizeCeiling = 25 * 1024

// Format selects the target raster encoding.
type Format int

const (
	// FormatPNG is the lossless format: exact pixel reproduction, larger
	// output, supports transparency.
	FormatPNG Format = iota

	// FormatJPEG is the lossy format: quality-tunable compressed output,
	// smaller, no alpha channel.
	FormatJPEG
)

// MIME returns the mime type for the format.
func (f Format) MIME() string {
	if f == FormatJPEG {
		return "image/jpeg"
	}
	return "image/png"
}

// Ext returns the file extension for the format, without the dot.
func (f Format) Ext() string {
	if f == FormatJPEG {
		return "jpg"
	}
	return "png"
}

// String returns the format name.
func (f Format) String() string {
	if f == FormatJPEG {
		return "jpeg"
	}
	return "png"
}

// ExportRequest describes one export operation.
type ExportRequest struct {
	// Surface is the source bitmap. It is read, never modified.
	Surface *Surface

	// Format is the target encoding.
	Format Format

	// FillBackground paints the working surface opaque white before the
	// source is composited. Required in practice for FormatJPEG: it has no
	// alpha channel, and compositing onto an undefined backdrop would
	// corrupt colors wherever the source is transparent.
	FillBackground bool
}

// Artifact is an encoded signature image.
type Artifact struct {
	// Data is the encoded bytes. len(Data) <= SizeCeiling unless BestEffort
	// is set.
	Data []byte

	// MIME is the declared mime type, Ext the matching file extension.
	MIME string
	Ext  string

	// Scale and Quality record the search point that produced the encoding.
	// Quality is meaningful only for the lossy format.
	Scale   float64
	Quality float64

	// BestEffort marks the documented fallback: every scale/quality
	// combination down to the scale floor failed, and this encoding may
	// exceed SizeCeiling. Callers that require strict compliance must check
	// len(Data).
	BestEffort bool
}

// Search bounds, kept in integer percent and tenths so repeated decrements
// can never drift past the floors.
const (
	scaleStartPct      = 100
	scaleFloorPct      = 5
	scaleStepPct       = 15
	qualityStartTenths = 9
	qualityFloorTenths = 1
)

// Exporter produces the highest-fidelity encoding of a surface that fits
// SizeCeiling. The search is greedy first-fit and deterministic: at each
// scale, quality is scanned from high to low and the first fitting encoding
// wins; only then is the scale reduced. Quality is traded before dimensions
// because it degrades thin dark ink on a light background more gracefully,
// while repeated resampling blurs stroke edges.
//
// Only one export may be in flight per Exporter; a second call while the
// optimizing flag is set returns ErrExportInFlight. The search itself runs
// synchronously with no cancellation: it terminates because the scale is
// strictly decreasing past a fixed floor.
type Exporter struct {
	optimizing     atomic.Bool
	scaler         draw.Scaler
	legacyEstimate bool
}

// NewExporter creates an exporter. By default it measures encoded sizes
// exactly and resamples with Catmull-Rom interpolation; see ExporterOption.
func NewExporter(opts ...ExporterOption) *Exporter {
	e := &Exporter{scaler: draw.CatmullRom}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// InFlight reports whether an export is currently running.
func (e *Exporter) InFlight() bool {
	return e.optimizing.Load()
}

// Export runs the bounded scale/quality search and returns the resulting
// artifact. It never fails for a well-formed surface: if nothing fits, the
// final attempt is returned with BestEffort set. The only errors are
// ErrExportInFlight and ErrEmptySurface.
func (e *Exporter) Export(req ExportRequest) (Artifact, error) {
	if !e.optimizing.CompareAndSwap(false, true) {
		return Artifact{}, ErrExportInFlight
	}
	defer e.optimizing.Store(false)

	if req.Surface == nil {
		return Artifact{}, ErrEmptySurface
	}
	src := req.Surface.Image()
	if src.Bounds().Empty() {
		return Artifact{}, ErrEmptySurface
	}

	log := logger()
	lastPct := scaleStartPct
	for pct := scaleStartPct; pct > scaleFloorPct; pct -= scaleStepPct {
		lastPct = pct
		work := e.resample(src, pct, req.FillBackground)

		switch req.Format {
		case FormatJPEG:
			for q := qualityStartTenths; q >= qualityFloorTenths; q-- {
				data := encodeJPEG(work, q)
				size := e.encodedSize(data)
				log.Debug("export attempt",
					"format", req.Format.String(), "scale", pct, "quality", q, "size", size)
				if size <= SizeCeiling {
					return e.artifact(req.Format, data, pct, q, false), nil
				}
			}
		default:
			data := encodePNG(work)
			size := e.encodedSize(data)
			log.Debug("export attempt",
				"format", req.Format.String(), "scale", pct, "size", size)
			if size <= SizeCeiling {
				return e.artifact(req.Format, data, pct, 0, false), nil
			}
		}
	}

	// Pathological source (high-entropy even at minimum scale): encode one
	// final time at the last attempted scale and the quality floor. This
	// result is best-effort and may exceed the ceiling.
	work := e.resample(src, lastPct, req.FillBackground)
	var data []byte
	if req.Format == FormatJPEG {
		data = encodeJPEG(work, qualityFloorTenths)
	} else {
		data = encodePNG(work)
	}
	log.Warn("export fell back to best effort",
		"format", req.Format.String(), "scale", lastPct, "size", len(data))
	return e.artifact(req.Format, data, lastPct, qualityFloorTenths, true), nil
}

// resample allocates a cleared working image at pct percent of the source
// size, optionally pre-fills it opaque white, and composites the source onto
// it. The source-over composite keeps the white backdrop visible through
// transparent source regions.
func (e *Exporter) resample(src *image.RGBA, pct int, fillBackground bool) *image.RGBA {
	sb := src.Bounds()
	w := sb.Dx() * pct / 100
	h := sb.Dy() * pct / 100
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	work := image.NewRGBA(image.Rect(0, 0, w, h))
	if fillBackground {
		draw.Draw(work, work.Bounds(), image.NewUniform(White.Color()), image.Point{}, draw.Src)
	}
	e.scaler.Scale(work, work.Bounds(), src, sb, draw.Over, nil)
	return work
}

func (e *Exporter) artifact(f Format, data []byte, pct, qualityTenths int, bestEffort bool) Artifact {
	a := Artifact{
		Data:       data,
		MIME:       f.MIME(),
		Ext:        f.Ext(),
		Scale:      float64(pct) / 100,
		BestEffort: bestEffort,
	}
	if f == FormatJPEG {
		a.Quality = float64(qualityTenths) / 10
	}
	return a
}

// encodedSize returns the byte size used for the ceiling comparison. The
// default is the exact encoded length. In legacy mode it reproduces the
// original ingestion tooling's arithmetic, which derived the size from a
// base64 data URL: encoded length inflated to base64, then scaled back by
// 3/4 with rounding. The two differ by at most a couple of bytes of base64
// padding, but sizing decisions must be bit-compatible when the legacy
// system is the consumer.
func (e *Exporter) encodedSize(data []byte) int {
	if !e.legacyEstimate {
		return len(data)
	}
	b64 := base64.StdEncoding.EncodedLen(len(data))
	return int(math.Round(float64(b64) * 3 / 4))
}

// encodeJPEG encodes the image at the given quality in tenths (1..9 mapping
// to encoder quality 10..90).
func encodeJPEG(img image.Image, qualityTenths int) []byte {
	var buf bytes.Buffer
	// Encoding an *image.RGBA to a Buffer cannot fail.
	_ = jpeg.Encode(&buf, img, &jpeg.Options{Quality: qualityTenths * 10})
	return buf.Bytes()
}

// encodePNG encodes the image with default settings.
func encodePNG(img image.Image) []byte {
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}
