// canvas.go — Pixel buffer allocation and background fill.
package captcha

import (
	"image"
	"image/draw"
)

// newCanvas allocates a width×height RGBA buffer filled with the mode's
// background color (O(1) uniform fill via draw.Draw).
func newCanvas(width, height int, mode ColorMode) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{mode.background()}, image.Point{}, draw.Src)
	return img
}
