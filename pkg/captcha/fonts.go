// fonts.go — Glyph source management with an embedded default font.
// Uses golang.org/x/image/font/opentype for parsing and face creation.
// The parsed font is immutable and safely shared across concurrent
// generations; faces carry internal buffers, so each render builds its own.
package captcha

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// GlyphSource is a parsed TrueType/OpenType font shared by generation
// calls. It is read-only after creation.
type GlyphSource struct {
	parsed *opentype.Font
}

// LoadFonts parses raw TTF/OTF bytes into a reusable glyph source.
func LoadFonts(ttf []byte) (*GlyphSource, error) {
	parsed, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	gs := &GlyphSource{parsed: parsed}
	// Probe a face up front so render time never sees a bad font.
	probe, err := gs.face(scaleLarge)
	if err != nil {
		return nil, err
	}
	probe.Close()
	return gs, nil
}

// defaultFonts returns the embedded Go Bold glyph source, parsed once.
// The embedded font always parses; a failure here is a build defect.
var defaultFonts = sync.OnceValue(func() *GlyphSource {
	gs, err := LoadFonts(gobold.TTF)
	if err != nil {
		panic(fmt.Sprintf("captcha: embedded font failed to parse: %v", err))
	}
	return gs
})

// face builds a fresh font.Face at the given point size (72 DPI).
// Faces are not safe for concurrent use, hence one per render.
func (gs *GlyphSource) face(size float64) (font.Face, error) {
	f, err := opentype.NewFace(gs.parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}
	return f, nil
}
