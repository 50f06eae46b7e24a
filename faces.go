package inkpad

import (
	"github.com/go-fonts/latin-modern/lmroman10bolditalic"
	"github.com/go-fonts/latin-modern/lmroman10italic"
	"github.com/go-fonts/latin-modern/lmromandunh10regular"
)

// FaceDef pairs a typeface identifier with embedded TTF data.
type FaceDef struct {
	ID  string
	TTF []byte
}

// DefaultFaces returns the built-in typefaces registered by NewTypedRenderer.
// The host application typically replaces these with its own decorative
// script fonts via RegisterFace; the built-ins guarantee the renderer is
// usable out of the box.
func DefaultFaces() []FaceDef {
	return []FaceDef{
		{ID: "italic", TTF: lmroman10italic.TTF},
		{ID: "bold-italic", TTF: lmroman10bolditalic.TTF},
		{ID: "dunhill", TTF: lmromandunh10regular.TTF},
	}
}
