package inkpad

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-text/typesetting/di"
	tsfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"
)

// Typed-export surface geometry: oversized relative to the export target so
// glyph edges stay crisp through the exporter's later downscaling.
const (
	TypedSurfaceWidth  = 1200
	TypedSurfaceHeight = 400
	TypedSurfaceScale  = 2
)

// PlaceholderName is rendered when the supplied name is empty or whitespace.
const PlaceholderName = "Signature"

// MaxWeight is the upper bound of the continuous outline weight range.
// Weight 0 disables the outline pass entirely.
const MaxWeight = 4.0

// typeface bundles the two parsed views of one font: the go-text face for
// HarfBuzz shaping and the sfnt font for outline extraction. Both views are
// backed by the same TTF bytes, so glyph IDs are interchangeable.
type typeface struct {
	hb *tsfont.Face
	sf *sfnt.Font
}

// TypedRenderer rasterizes a name string in a registered script typeface
// onto a dedicated oversized Surface, optionally with a stroked outline pass
// to simulate ink weight.
//
// A TypedRenderer is not safe for concurrent use: the HarfBuzz shaper and
// the sfnt load buffer carry per-call mutable state.
type TypedRenderer struct {
	width  int
	height int
	scale  float64

	faces      map[string]*typeface
	order      []string // registration order; the first face is the default
	noDefaults bool

	shaper shaping.HarfbuzzShaper
	buf    sfnt.Buffer
}

// NewTypedRenderer creates a renderer with the built-in typefaces
// registered, unless WithoutDefaultFaces is given.
func NewTypedRenderer(opts ...TypedOption) (*TypedRenderer, error) {
	r := &TypedRenderer{
		width:  TypedSurfaceWidth,
		height: TypedSurfaceHeight,
		scale:  TypedSurfaceScale,
		faces:  make(map[string]*typeface),
	}
	for _, opt := range opts {
		opt(r)
	}
	if !r.noDefaults {
		for _, def := range DefaultFaces() {
			if err := r.RegisterFace(def.ID, def.TTF); err != nil {
				return nil, fmt.Errorf("register default face %q: %w", def.ID, err)
			}
		}
	}
	return r, nil
}

// RegisterFace parses TTF/OTF data and registers it under the identifier.
// Re-registering an identifier replaces the previous face.
func (r *TypedRenderer) RegisterFace(id string, ttf []byte) error {
	hb, err := tsfont.ParseTTF(bytes.NewReader(ttf))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadFont, err)
	}
	sf, err := sfnt.Parse(ttf)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadFont, err)
	}
	if _, exists := r.faces[id]; !exists {
		r.order = append(r.order, id)
	}
	r.faces[id] = &typeface{hb: hb, sf: sf}
	return nil
}

// Faces returns the registered typeface identifiers in registration order.
func (r *TypedRenderer) Faces() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Render rasterizes the name onto a fresh surface. An empty or whitespace
// name falls back to PlaceholderName; an empty faceID selects the default
// face. The weight is clamped to [0, MaxWeight]; when positive, glyph
// outlines are stroked first (round caps and joins, line width equal to the
// weight) and the glyph shapes are filled solidly afterwards in the same
// ink. Stroking first keeps the outline from obscuring fill detail.
//
// The text is centered horizontally by shaped advance and vertically around
// the cap-height midline. The returned surface is owned by the caller.
func (r *TypedRenderer) Render(name, faceID string, weight float64, ink RGBA) (*Surface, error) {
	if strings.TrimSpace(name) == "" {
		name = PlaceholderName
	}
	name = norm.NFC.String(name)

	if faceID == "" {
		if len(r.order) == 0 {
			return nil, ErrUnknownFace
		}
		faceID = r.order[0]
	}
	face, ok := r.faces[faceID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFace, faceID)
	}

	if weight < 0 {
		weight = 0
	}
	if weight > MaxWeight {
		weight = MaxWeight
	}

	// Shape at the nominal size, then shrink to fit if the shaped advance
	// overflows the surface.
	size := 0.45 * float64(r.height)
	glyphs, advance := r.shape(name, face, size)
	if maxAdvance := 0.92 * float64(r.width); advance > maxAdvance && advance > 0 {
		size *= maxAdvance / advance
		glyphs, advance = r.shape(name, face, size)
	}

	metrics, err := face.sf.Metrics(&r.buf, toFixed(size), font.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("font metrics: %w", err)
	}
	capHeight := fromFixed(metrics.CapHeight)

	startX := (float64(r.width) - advance) / 2
	baseline := (float64(r.height) + capHeight) / 2

	path, err := r.glyphPath(face, glyphs, size, startX, baseline)
	if err != nil {
		return nil, err
	}

	surf := NewSurface(r.width, r.height, r.scale)
	if weight > 0 {
		strokePath(surf, path, weight, ink)
	}
	fillPath(surf, path, ink)
	return surf, nil
}

// shape runs HarfBuzz shaping for the whole string as a single LTR run and
// returns the positioned glyphs plus the total advance in pixels.
func (r *TypedRenderer) shape(text string, face *typeface, size float64) ([]shaping.Glyph, float64) {
	runes := []rune(text)
	out := r.shaper.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      face.hb,
		Size:      toFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	})

	var advance fixed.Int26_6
	for _, g := range out.Glyphs {
		advance += g.XAdvance
	}
	return out.Glyphs, fromFixed(advance)
}

// glyphPath assembles one path containing every glyph outline, positioned at
// the shaped pen offsets relative to (startX, baseline).
func (r *TypedRenderer) glyphPath(face *typeface, glyphs []shaping.Glyph, size, startX, baseline float64) (*Path, error) {
	path := NewPath()
	pen := startX
	for _, g := range glyphs {
		ox := pen + fromFixed(g.XOffset)
		oy := baseline - fromFixed(g.YOffset)
		if err := r.appendGlyph(path, face.sf, sfnt.GlyphIndex(g.GlyphID), size, ox, oy); err != nil {
			return nil, err
		}
		pen += fromFixed(g.XAdvance)
	}
	return path, nil
}

// appendGlyph loads the glyph's contours at the given size and appends them
// to the path translated to the origin (ox, oy). Segment coordinates from
// sfnt are already scaled to pixels with the Y axis pointing down.
func (r *TypedRenderer) appendGlyph(p *Path, sf *sfnt.Font, gid sfnt.GlyphIndex, size, ox, oy float64) error {
	segments, err := sf.LoadGlyph(&r.buf, gid, toFixed(size), nil)
	if err != nil {
		return fmt.Errorf("load glyph %d: %w", gid, err)
	}
	started := false
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			// sfnt contours carry no explicit close op; each MoveTo starts
			// the next contour, so close the previous one here.
			if started {
				p.ClosePath()
			}
			started = true
			p.MoveTo(ox+fromFixed(seg.Args[0].X), oy+fromFixed(seg.Args[0].Y))
		case sfnt.SegmentOpLineTo:
			p.LineTo(ox+fromFixed(seg.Args[0].X), oy+fromFixed(seg.Args[0].Y))
		case sfnt.SegmentOpQuadTo:
			p.QuadraticTo(
				ox+fromFixed(seg.Args[0].X), oy+fromFixed(seg.Args[0].Y),
				ox+fromFixed(seg.Args[1].X), oy+fromFixed(seg.Args[1].Y),
			)
		case sfnt.SegmentOpCubeTo:
			p.CubicTo(
				ox+fromFixed(seg.Args[0].X), oy+fromFixed(seg.Args[0].Y),
				ox+fromFixed(seg.Args[1].X), oy+fromFixed(seg.Args[1].Y),
				ox+fromFixed(seg.Args[2].X), oy+fromFixed(seg.Args[2].Y),
			)
		}
	}
	if started {
		p.ClosePath()
	}
	return nil
}

// detectScript inspects the runes and returns the script of the first
// non-space character. Signatures are single-script in practice; mixed
// scripts shape with the first script's rules.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// toFixed converts a float64 pixel value to 26.6 fixed point.
func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fromFixed converts a 26.6 fixed point value to float64 pixels.
func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
