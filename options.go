package inkpad

import "golang.org/x/image/draw"

// ExporterOption configures an Exporter during creation.
type ExporterOption func(*Exporter)

// WithScaler sets the resampling kernel used when the search reduces
// dimensions. The default is draw.CatmullRom, which keeps thin stroke edges
// crisp; draw.ApproxBiLinear trades quality for speed on large sources.
func WithScaler(s draw.Scaler) ExporterOption {
	return func(e *Exporter) {
		if s != nil {
			e.scaler = s
		}
	}
}

// WithLegacyEstimate makes the ceiling comparison use the original
// base64-derived size arithmetic instead of the exact encoded length.
// Use this only when sizing decisions must be bit-compatible with the
// legacy ingestion tooling; see Exporter.
func WithLegacyEstimate() ExporterOption {
	return func(e *Exporter) {
		e.legacyEstimate = true
	}
}

// TypedOption configures a TypedRenderer during creation.
type TypedOption func(*TypedRenderer)

// WithSurfaceSize overrides the logical dimensions of the surface a
// TypedRenderer creates per render. Zero or negative values are ignored.
func WithSurfaceSize(width, height int) TypedOption {
	return func(r *TypedRenderer) {
		if width > 0 {
			r.width = width
		}
		if height > 0 {
			r.height = height
		}
	}
}

// WithSurfaceScale overrides the oversampling factor of the render surface.
// The default of 2 keeps glyph edges crisp through later downscaling.
func WithSurfaceScale(scale float64) TypedOption {
	return func(r *TypedRenderer) {
		if scale > 0 {
			r.scale = scale
		}
	}
}

// WithoutDefaultFaces skips registration of the built-in typefaces.
// The caller must register at least one face before rendering.
func WithoutDefaultFaces() TypedOption {
	return func(r *TypedRenderer) {
		r.noDefaults = true
	}
}
