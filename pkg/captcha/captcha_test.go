package captcha_test

import (
	"bytes"
	"encoding/base64"
	"image/jpeg"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xob0t/GoCaptcha/pkg/captcha"
)

const dataURIPrefix = "data:image/jpeg;base64,"

func TestGenerateIsDeterministic(t *testing.T) {
	b := captcha.NewBuilder()

	first := b.Generate([]byte{0, 32})
	second := b.Generate([]byte{0, 32})

	require.Equal(t, "UmfU", first.Text())
	require.Equal(t, first.Text(), second.Text())
	require.Equal(t, first.ToBase64(30), second.ToBase64(30))
}

func TestGenerateSeedSensitivity(t *testing.T) {
	b := captcha.NewBuilder()

	require.NotEqual(t,
		b.Generate([]byte{0, 32}).Text(),
		b.Generate([]byte{1, 32}).Text(),
	)
}

func TestGenerateWithTextOverride(t *testing.T) {
	b := captcha.NewBuilder()

	c := b.GenerateWithText([]byte{0, 32}, "LDCLabs")
	require.Equal(t, "LDCLabs", c.Text())

	// The image still varies with the seed even for a fixed text.
	other := b.GenerateWithText([]byte{9, 9, 9}, "LDCLabs")
	require.Equal(t, "LDCLabs", other.Text())
	require.NotEqual(t, c.ToBase64(30), other.ToBase64(30))

	// Empty text falls back to sampling.
	require.Equal(t, "UmfU", b.GenerateWithText([]byte{0, 32}, "").Text())
}

func TestBuilderScenario(t *testing.T) {
	c := captcha.NewBuilder().
		Length(4).
		Width(120).
		Height(60).
		Mode(captcha.MonochromeOnLight).
		Complexity(8).
		Generate([]byte{1, 32})

	require.Len(t, c.Text(), 4)
	require.Equal(t, "WXJJ", c.Text())

	uri := c.ToBase64(10)
	require.True(t, strings.HasPrefix(uri, dataURIPrefix))

	// The payload must be valid base64 wrapping a decodable JPEG of the
	// configured dimensions.
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, dataURIPrefix))
	require.NoError(t, err)
	img, err := jpeg.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	require.Equal(t, 120, img.Bounds().Dx())
	require.Equal(t, 60, img.Bounds().Dy())
}

func TestToBase64QualityClamps(t *testing.T) {
	c := captcha.NewBuilder().Generate([]byte{0, 32})

	require.Equal(t, c.ToBase64(30), c.ToBase64(0), "quality below 10 should behave as 30")
	require.Equal(t, c.ToBase64(80), c.ToBase64(200), "quality above 80 should clamp to 80")
	require.True(t, strings.HasPrefix(c.ToBase64(0), dataURIPrefix))
}

func TestColorModesRender(t *testing.T) {
	for _, mode := range []captcha.ColorMode{
		captcha.MonochromeOnLight,
		captcha.ColorfulOnLight,
		captcha.ColorfulOnDark,
	} {
		c := captcha.NewBuilder().Mode(mode).Generate([]byte{0, 32})
		require.Equal(t, "UmfU", c.Text(), "text must not depend on color mode")
		require.True(t, strings.HasPrefix(c.ToBase64(30), dataURIPrefix))
	}
}

// One builder, many goroutines: every call owns its stream and canvas,
// so all results must match the sequential reference.
func TestConcurrentGeneration(t *testing.T) {
	b := captcha.NewBuilder()
	want := b.Generate([]byte{0, 32}).ToBase64(30)

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = b.Generate([]byte{0, 32}).ToBase64(30)
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		require.Equal(t, want, got, "goroutine %d diverged", i)
	}
}

func TestLongTextUsesSmallGlyphs(t *testing.T) {
	// Not a pixel assertion — just exercises the >6 character slot and
	// scale path end to end.
	c := captcha.NewBuilder().Length(8).Generate([]byte("long text seed"))
	require.Len(t, c.Text(), 8)
	require.True(t, strings.HasPrefix(c.ToBase64(30), dataURIPrefix))
}
