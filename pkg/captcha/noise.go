// noise.go — Pixel-level noise scaled by the complexity level.
// Both generators run off their own math/rand source seeded by a 32-bit
// draw from the stream, so the whole pass stays reproducible.
package captcha

import (
	"image"
	"math"
	"math/rand"
)

// drawNoise applies gaussian channel noise followed by salt-and-pepper
// speckles. Complexity 1 is a no-op; at higher levels the gaussian mean
// and spread and the speckle rate all grow linearly.
func drawNoise(img *image.RGBA, rnd *seedStream, complexity int) {
	if complexity <= 1 {
		return
	}
	gaussianNoise(img, float64(complexity-1), float64(4*complexity), int64(rnd.next(math.MaxUint32)))
	saltAndPepperNoise(img, 0.002*float64(complexity)-0.002, int64(rnd.next(math.MaxUint32)))
}

// gaussianNoise perturbs every RGB channel by N(mean, stddev), clamped
// to the byte range. Alpha is left alone.
func gaussianNoise(img *image.RGBA, mean, stddev float64, seed int64) {
	r := rand.New(rand.NewSource(seed))
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			i := img.PixOffset(x, y)
			for c := 0; c < 3; c++ {
				img.Pix[i+c] = clampByte(float64(img.Pix[i+c]) + mean + stddev*r.NormFloat64())
			}
		}
	}
}

// saltAndPepperNoise flips pixels to pure black or white at the given
// rate. Each pixel costs one uniform draw; hit pixels cost one more for
// the salt/pepper choice.
func saltAndPepperNoise(img *image.RGBA, rate float64, seed int64) {
	r := rand.New(rand.NewSource(seed))
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if r.Float64() > rate {
				continue
			}
			var v uint8
			if r.Intn(2) == 1 {
				v = 255
			}
			i := img.PixOffset(x, y)
			img.Pix[i], img.Pix[i+1], img.Pix[i+2] = v, v, v
		}
	}
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
