// color.go — Color modes, backgrounds, and per-draw palettes.
package captcha

import "image/color"

// ColorMode fixes the background and the palette used for glyphs and
// interference shapes. Unknown values are normalized to ColorfulOnDark
// once, when the builder is configured — draw sites never re-check.
type ColorMode uint8

const (
	// MonochromeOnLight draws dark ink on a light background.
	MonochromeOnLight ColorMode = iota
	// ColorfulOnLight draws saturated colors on a light background.
	ColorfulOnLight
	// ColorfulOnDark draws bright colors on a dark background.
	ColorfulOnDark
)

// normalizeMode maps any unrecognized tag to ColorfulOnDark.
func normalizeMode(m ColorMode) ColorMode {
	switch m {
	case MonochromeOnLight, ColorfulOnLight, ColorfulOnDark:
		return m
	default:
		return ColorfulOnDark
	}
}

// Background fills.
var (
	lightBackground = color.RGBA{248, 248, 248, 255}
	darkBackground  = color.RGBA{18, 18, 18, 255}
)

// Palettes for the colorful modes, one per background. Entry order is
// part of the determinism contract.
var (
	lightPalette = [5]color.RGBA{
		{0, 140, 8, 255},
		{5, 50, 250, 255},
		{18, 18, 18, 255},
		{180, 120, 60, 255},
		{224, 44, 24, 255},
	}
	darkPalette = [5]color.RGBA{
		{248, 248, 248, 255},
		{255, 255, 0, 255},
		{255, 0, 255, 255},
		{0, 255, 255, 255},
		{0, 255, 0, 255},
	}
)

// background returns the canvas fill for the mode.
func (m ColorMode) background() color.RGBA {
	if m == ColorfulOnDark {
		return darkBackground
	}
	return lightBackground
}

// randColor picks a palette color for one glyph or shape. The monochrome
// mode always uses the fixed dark ink and consumes no draw; the colorful
// modes consume exactly one.
func randColor(rnd *seedStream, m ColorMode) color.RGBA {
	switch m {
	case MonochromeOnLight:
		return darkBackground
	case ColorfulOnLight:
		return lightPalette[rnd.next(uint32(len(lightPalette)))]
	default:
		return darkPalette[rnd.next(uint32(len(darkPalette)))]
	}
}
