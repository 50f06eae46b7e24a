// Package inkpad implements a digital signature pad: freehand stroke
// capture with midpoint smoothing, typed-name rendering in script typefaces,
// and a size-bounded raster exporter.
//
// # Overview
//
// Two producers feed one exporter. A Capture turns live pointer samples into
// a smoothed ink trace on a long-lived Surface. A TypedRenderer rasterizes a
// name string onto a fresh oversized Surface. The Exporter takes any Surface
// and searches a (scale, quality) space for the best encoding that fits a
// fixed 25KB ceiling, required by legacy document-ingestion systems.
//
// # Quick Start
//
//	pad := inkpad.NewCapture(600, 350, 1)
//	pad.Begin(inkpad.Pt(100, 200))
//	pad.Extend(inkpad.Pt(140, 160))
//	pad.Extend(inkpad.Pt(180, 210))
//	pad.End()
//
//	exp := inkpad.NewExporter()
//	art, err := exp.Export(inkpad.ExportRequest{
//	    Surface: pad.Surface(),
//	    Format:  inkpad.FormatPNG,
//	})
//	if err != nil {
//	    // only re-entrant exports and empty surfaces fail
//	}
//	_ = inkpad.DirSaver{Dir: "."}.Save(inkpad.BaseDrawn, art)
//
// # Architecture
//
// The library is organized into:
//   - Public API: Capture, TypedRenderer, Exporter, Surface, Path, Point
//   - Internal: stroke (round-cap outline expansion)
//   - Collaborators: Saver (file output), Describer (advisory text service)
//
// Rasterization is CPU-only, via golang.org/x/image/vector. Text shaping
// uses go-text/typesetting; glyph outlines come from x/image/font/sfnt.
//
// By default inkpad produces no log output; see [SetLogger].
package inkpad
