// Package captcha generates visually distorted text images for
// bot-resistance challenges.
//
// Generation is fully deterministic: the same seed, configuration, and
// optional explicit text always produce the same character sequence and
// the same pixels, across calls and across processes. Randomness comes
// from a SHA3-256 chain over the seed, not from a clock or the OS — a
// captcha can therefore be regenerated, cached, or golden-tested.
//
//	captcha := captcha.NewBuilder().
//		Length(4).
//		Width(140).
//		Height(60).
//		Mode(captcha.ColorfulOnLight).
//		Complexity(4).
//		Generate([]byte("random seed 0"))
//	fmt.Println(captcha.Text())
//	fmt.Println(captcha.ToBase64(30))
package captcha

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
)

// Encode quality bounds. Out-of-range values are corrected silently:
// above the maximum clamps, below the minimum falls back to the default.
const (
	minQuality     = 10
	maxQuality     = 80
	defaultQuality = 30
)

// Captcha pairs a character sequence with its rendered image. It is
// immutable once returned by a builder and safe to share.
type Captcha struct {
	chars []rune
	image *image.RGBA
}

// Text returns the challenge string the user must type back.
func (c *Captcha) Text() string {
	return string(c.chars)
}

// Image returns the rendered canvas. Callers must treat it as read-only.
func (c *Captcha) Image() *image.RGBA {
	return c.image
}

// ToBase64 encodes the image as a JPEG data URI
// ("data:image/jpeg;base64,..."). Quality above 80 is clamped to 80;
// below 10 it defaults to 30.
func (c *Captcha) ToBase64(quality int) string {
	if quality > maxQuality {
		quality = maxQuality
	} else if quality < minQuality {
		quality = defaultQuality
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, c.image, &jpeg.Options{Quality: quality}); err != nil {
		// A valid canvas encoding into memory cannot fail; if it does,
		// the buffer invariants are broken and there is nothing to retry.
		panic(fmt.Sprintf("captcha: jpeg encode failed on a valid canvas: %v", err))
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}
