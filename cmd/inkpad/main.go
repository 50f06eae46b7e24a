// Command inkpad renders a signature and exports it under the 25KB ceiling.
//
// By default it renders a typed signature; with -squiggle it synthesizes a
// freehand-style stroke through the capture pipeline instead.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/inkpad/inkpad"
)

func main() {
	var (
		name     = flag.String("name", "", "name to render (empty uses the placeholder)")
		face     = flag.String("face", "", "typeface identifier (empty uses the default face)")
		weight   = flag.Float64("weight", 0, "outline weight, 0 to 4")
		jpegOut  = flag.Bool("jpeg", false, "export JPEG instead of PNG")
		outDir   = flag.String("out", ".", "output directory")
		squiggle = flag.Bool("squiggle", false, "draw a synthetic freehand stroke instead of typed text")
		advise   = flag.String("advise", "", "advisory service URL (optional)")
		verbose  = flag.Bool("v", false, "log the export search")
	)
	flag.Parse()

	if *verbose {
		inkpad.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	format := inkpad.FormatPNG
	if *jpegOut {
		format = inkpad.FormatJPEG
	}

	surface, base, err := render(*name, *face, *weight, *squiggle)
	if err != nil {
		log.Fatalf("render: %v", err)
	}

	exp := inkpad.NewExporter()
	art, err := exp.Export(inkpad.ExportRequest{
		Surface:        surface,
		Format:         format,
		FillBackground: format == inkpad.FormatJPEG,
	})
	if err != nil {
		log.Fatalf("export: %v", err)
	}
	if art.BestEffort {
		log.Printf("warning: artifact exceeds the ceiling (%d bytes)", len(art.Data))
	}

	if err := (inkpad.DirSaver{Dir: *outDir}).Save(base, art); err != nil {
		log.Fatalf("save: %v", err)
	}
	log.Printf("wrote %s.%s (%d bytes, scale %.2f)", base, art.Ext, len(art.Data), art.Scale)

	if *advise != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		d := &inkpad.HTTPDescriber{Endpoint: *advise}
		fmt.Println(inkpad.AdviceOrFallback(ctx, d, art))
	}
}

func render(name, face string, weight float64, squiggle bool) (*inkpad.Surface, string, error) {
	if squiggle {
		return drawSquiggle(), inkpad.BaseDrawn, nil
	}
	tr, err := inkpad.NewTypedRenderer()
	if err != nil {
		return nil, "", err
	}
	surface, err := tr.Render(name, face, weight, inkpad.Black)
	if err != nil {
		return nil, "", err
	}
	return surface, inkpad.BaseTyped, nil
}

// drawSquiggle feeds a damped sine wave through the capture pipeline, close
// enough to a real signature to exercise smoothing and export.
func drawSquiggle() *inkpad.Surface {
	pad := inkpad.NewCapture(inkpad.DrawSurfaceWidth, inkpad.DrawSurfaceHeight, 1)
	pad.SetLineWidth(3)

	pad.Begin(inkpad.Pt(60, 180))
	for i := 1; i <= 120; i++ {
		x := 60 + float64(i)*4
		y := 180 + 90*math.Exp(-float64(i)/80)*math.Sin(float64(i)/7)
		pad.Extend(inkpad.Pt(x, y))
	}
	pad.End()
	return pad.Surface()
}
