// text.go — Character layout and glyph drawing.
// The usable width (canvas minus a fixed side margin) is divided into
// equal slots, one per character. Each glyph gets a stream-drawn color
// and a stream-drawn vertical jitter bounded by the glyph height, so it
// stays fully inside the canvas whatever the font metrics are.
package captcha

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Glyph point sizes bucketed by character count: short strings get big
// glyphs, long strings shrink to stay legible.
const (
	scaleSmall  = 35.0 // >6 characters
	scaleMedium = 42.0 // 5–6 characters
	scaleLarge  = 50.0 // ≤4 characters
)

// sideMargin is the fixed left/right inset of the text area in pixels.
const sideMargin = 5

// scaleFor picks the point size for the given character count.
func scaleFor(count int) float64 {
	switch {
	case count <= 4:
		return scaleLarge
	case count <= 6:
		return scaleMedium
	default:
		return scaleSmall
	}
}

// drawCharacters renders chars onto img. Stream order per character:
// one color draw (colorful modes only), then one jitter draw.
func drawCharacters(img *image.RGBA, rnd *seedStream, chars []rune, mode ColorMode, fonts *GlyphSource) {
	face, err := fonts.face(scaleFor(len(chars)))
	if err != nil {
		// The glyph source was probed at load time; see LoadFonts.
		panic(fmt.Sprintf("captcha: glyph source rejected probed scale: %v", err))
	}
	defer face.Close()

	width := img.Bounds().Dx()
	height := img.Bounds().Dy()
	slot := (width - 2*sideMargin) / len(chars)

	for i, c := range chars {
		col := randColor(rnd, mode)

		// The jitter bound uses the character's rendered ink height,
		// not the face line height — a 50pt face is taller than the
		// default canvas, but its glyphs are not. The top edge moves
		// around the vertical center, overshooting the canvas by at
		// most an eighth of the glyph height on either side, so
		// descenders survive.
		bounds, _ := font.BoundString(face, string(c))
		glyphH := (bounds.Max.Y - bounds.Min.Y).Ceil()
		top := rnd.between(-glyphH/8, height+glyphH/8-glyphH)

		drawer := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(col),
			Face: face,
			Dot: fixed.Point26_6{
				// Baseline placed so the glyph's ink box starts at top.
				X: fixed.I(sideMargin + i*slot),
				Y: fixed.I(top) - bounds.Min.Y,
			},
		}
		drawer.DrawString(string(c))
	}
}
