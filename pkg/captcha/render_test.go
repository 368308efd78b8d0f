package captcha

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCanvasBackground(t *testing.T) {
	light := newCanvas(30, 20, ColorfulOnLight)
	require.Equal(t, lightBackground, light.RGBAAt(0, 0))
	require.Equal(t, lightBackground, light.RGBAAt(29, 19))

	mono := newCanvas(30, 20, MonochromeOnLight)
	require.Equal(t, lightBackground, mono.RGBAAt(15, 10))

	dark := newCanvas(30, 20, ColorfulOnDark)
	require.Equal(t, darkBackground, dark.RGBAAt(0, 0))
	require.Equal(t, darkBackground, dark.RGBAAt(29, 19))
}

func TestDrawCharactersMutatesCanvas(t *testing.T) {
	img := newCanvas(140, 40, MonochromeOnLight)
	before := clonePix(img)

	drawCharacters(img, newSeedStream([]byte{0, 32}), []rune("UmfU"), MonochromeOnLight, defaultFonts())

	require.False(t, bytes.Equal(before, img.Pix), "glyphs should land on the canvas")
}

func TestDrawCharactersDeterministic(t *testing.T) {
	fonts := defaultFonts()
	a := newCanvas(140, 40, ColorfulOnLight)
	b := newCanvas(140, 40, ColorfulOnLight)

	drawCharacters(a, newSeedStream([]byte{0, 32}), []rune("UmfU"), ColorfulOnLight, fonts)
	drawCharacters(b, newSeedStream([]byte{0, 32}), []rune("UmfU"), ColorfulOnLight, fonts)

	require.True(t, bytes.Equal(a.Pix, b.Pix))
}

// The text layer alone must vary with the seed: in the monochrome mode
// the only stream draws are the per-character jitters, so two seeds must
// still land glyphs differently at the default canvas size.
func TestDrawCharactersVaryWithSeed(t *testing.T) {
	fonts := defaultFonts()
	a := newCanvas(140, 40, MonochromeOnLight)
	b := newCanvas(140, 40, MonochromeOnLight)

	sa := newSeedStream([]byte{0, 32})
	sb := newSeedStream([]byte{1, 32})
	drawCharacters(a, sa, []rune("UmfU"), MonochromeOnLight, fonts)
	drawCharacters(b, sb, []rune("UmfU"), MonochromeOnLight, fonts)

	require.False(t, bytes.Equal(a.Pix, b.Pix), "jitter should move glyphs between seeds")
}

// Every character must consume a jitter draw at the default canvas size:
// the jitter range is computed from the rendered ink height, which fits
// the 40px canvas even at the large scale. An empty range here would pin
// all glyphs to one spot and starve downstream stages of draws.
func TestDrawCharactersConsumeJitterDraws(t *testing.T) {
	img := newCanvas(140, 40, MonochromeOnLight)
	s := newSeedStream([]byte{0, 32})

	drawCharacters(img, s, []rune("UmfU"), MonochromeOnLight, defaultFonts())

	require.Equal(t, 16, s.cursor, "4 monochrome characters should consume exactly 4 draws")
}

func TestInterferenceDeterministic(t *testing.T) {
	a := newCanvas(140, 40, ColorfulOnLight)
	b := newCanvas(140, 40, ColorfulOnLight)
	sa := newSeedStream([]byte("interference"))
	sb := newSeedStream([]byte("interference"))

	drawInterferenceLine(a, sa, ColorfulOnLight)
	drawInterferenceEllipse(a, sa, ColorfulOnLight)
	drawInterferenceLine(b, sb, ColorfulOnLight)
	drawInterferenceEllipse(b, sb, ColorfulOnLight)

	require.True(t, bytes.Equal(a.Pix, b.Pix))
	require.Equal(t, sa.cursor, sb.cursor)
	require.Equal(t, sa.state, sb.state)
}

func TestInterferenceMutatesCanvas(t *testing.T) {
	img := newCanvas(140, 40, ColorfulOnDark)
	before := clonePix(img)

	drawInterferenceLine(img, newSeedStream([]byte("line")), ColorfulOnDark)
	require.False(t, bytes.Equal(before, img.Pix), "curve should land on the canvas")

	before = clonePix(img)
	drawInterferenceEllipse(img, newSeedStream([]byte("ellipse")), ColorfulOnDark)
	require.False(t, bytes.Equal(before, img.Pix), "ellipse should land on the canvas")
}

func TestLoadFontsRejectsGarbage(t *testing.T) {
	_, err := LoadFonts([]byte("definitely not a font"))
	require.Error(t, err)
}
