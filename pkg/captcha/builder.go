// builder.go — Fluent configuration and the generation pipeline.
// Setters validate and normalize once; Generate never re-checks. The
// stage order (text → canvas → characters → 2 lines → 3 ellipses →
// noise) is part of the determinism contract: every stage consumes draws
// from the one seed stream, so reordering changes the output.
package captcha

// Configuration defaults and clamp thresholds.
const (
	defaultLength     = 4
	defaultWidth      = 140
	minWidth          = 60
	defaultHeight     = 40
	minHeight         = 20
	defaultComplexity = 4
	minComplexity     = 1
	maxComplexity     = 10
)

// Interference budget per generated image.
const (
	interferenceLines    = 2
	interferenceEllipses = 3
)

// Builder accumulates a validated configuration. All setters correct
// invalid input silently and return the builder for chaining. A builder
// is read-only during Generate and may serve many goroutines at once.
type Builder struct {
	fonts      *GlyphSource
	length     int
	width      int
	height     int
	mode       ColorMode
	complexity int
}

// NewBuilder returns a builder with the default configuration: 4
// characters, 140×40 canvas, colorful-on-light, complexity 4, embedded
// bold font.
func NewBuilder() *Builder {
	return &Builder{
		fonts:      defaultFonts(),
		length:     defaultLength,
		width:      defaultWidth,
		height:     defaultHeight,
		mode:       ColorfulOnLight,
		complexity: defaultComplexity,
	}
}

// Length sets the number of sampled characters. Non-positive values
// fall back to the default of 4.
func (b *Builder) Length(n int) *Builder {
	if n <= 0 {
		n = defaultLength
	}
	b.length = n
	return b
}

// Width sets the canvas width in pixels. Values of 60 or less fall back
// to the default of 140.
func (b *Builder) Width(w int) *Builder {
	if w <= minWidth {
		w = defaultWidth
	}
	b.width = w
	return b
}

// Height sets the canvas height in pixels. Values of 20 or less fall
// back to the default of 40.
func (b *Builder) Height(h int) *Builder {
	if h <= minHeight {
		h = defaultHeight
	}
	b.height = h
	return b
}

// Mode sets the color mode. Unrecognized values normalize to
// ColorfulOnDark here, once.
func (b *Builder) Mode(m ColorMode) *Builder {
	b.mode = normalizeMode(m)
	return b
}

// Complexity sets the noise level, clamped into [1, 10].
func (b *Builder) Complexity(c int) *Builder {
	if c < minComplexity {
		c = minComplexity
	} else if c > maxComplexity {
		c = maxComplexity
	}
	b.complexity = c
	return b
}

// Fonts replaces the glyph source. A nil source is ignored.
func (b *Builder) Fonts(gs *GlyphSource) *Builder {
	if gs != nil {
		b.fonts = gs
	}
	return b
}

// Generate renders a captcha whose text is sampled from the seed. The
// seed should be fresh for every challenge; reusing one reproduces the
// exact same captcha.
func (b *Builder) Generate(seed []byte) *Captcha {
	return b.generate(seed, nil)
}

// GenerateWithText renders a captcha displaying the given text verbatim.
// The seed still drives layout, colors, interference, and noise, so the
// image varies with the seed even for a fixed text. An empty text falls
// back to seed-sampled characters.
func (b *Builder) GenerateWithText(seed []byte, text string) *Captcha {
	if text == "" {
		return b.generate(seed, nil)
	}
	return b.generate(seed, []rune(text))
}

func (b *Builder) generate(seed []byte, chars []rune) *Captcha {
	rnd := newSeedStream(seed)

	if chars == nil {
		chars = sampleChars(rnd, b.length)
	}

	img := newCanvas(b.width, b.height, b.mode)

	drawCharacters(img, rnd, chars, b.mode, b.fonts)

	for i := 0; i < interferenceLines; i++ {
		drawInterferenceLine(img, rnd, b.mode)
	}
	for i := 0; i < interferenceEllipses; i++ {
		drawInterferenceEllipse(img, rnd, b.mode)
	}

	drawNoise(img, rnd, b.complexity)

	return &Captcha{chars: chars, image: img}
}
