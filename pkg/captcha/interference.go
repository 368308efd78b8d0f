// interference.go — Curve and ellipse interference over the rendered text.
// Shapes are stroked with a fogleman/gg context wrapping the canvas, one
// pixel wide; thickness comes from drawing each shape twice with a small
// offset, which reads as a single bold stroke.
package captcha

import (
	"image"

	"github.com/fogleman/gg"
)

// drawInterferenceLine strokes a cubic Bézier across the full canvas
// width, then a twin offset by 2px in both axes. Stream order: y1, y2,
// ctrl1.x, ctrl1.y, ctrl2.x, ctrl2.y, color.
func drawInterferenceLine(img *image.RGBA, rnd *seedStream, mode ColorMode) {
	width := img.Bounds().Dx()
	height := img.Bounds().Dy()

	x1 := float64(sideMargin)
	y1 := float64(rnd.between(-5, height))
	x2 := float64(width - sideMargin)
	y2 := float64(rnd.between(-5, height+5))

	// Control points live in the left and right halves, inset by a
	// tenth of the width so the curve bows inside the canvas.
	span := width / 10
	cx1 := float64(rnd.between(span, width/2))
	cy1 := float64(rnd.between(0, height))
	cx2 := float64(rnd.between(width/2+span, width-span))
	cy2 := float64(rnd.between(0, height))

	col := randColor(rnd, mode)

	dc := gg.NewContextForRGBA(img)
	dc.SetColor(col)
	dc.SetLineWidth(1)

	dc.MoveTo(x1, y1)
	dc.CubicTo(cx1, cy1, cx2, cy2, x2, y2)
	dc.Stroke()

	dc.MoveTo(x1+2, y1+2)
	dc.CubicTo(cx1+2, cy1+2, cx2+2, cy2+2, x2+2, y2+2)
	dc.Stroke()
}

// drawInterferenceEllipse strokes a hollow ellipse (horizontal radius
// twice the vertical) plus a concentric twin grown by 2px. Stream order:
// radius, center.x, center.y, color.
func drawInterferenceEllipse(img *image.RGBA, rnd *seedStream, mode ColorMode) {
	width := img.Bounds().Dx()
	height := img.Bounds().Dy()

	r := float64(rnd.between(5, height/3))
	cx := float64(rnd.between(5, width-5))
	cy := float64(rnd.between(5, height-5))
	col := randColor(rnd, mode)

	dc := gg.NewContextForRGBA(img)
	dc.SetColor(col)
	dc.SetLineWidth(1)

	dc.DrawEllipse(cx, cy, r*2, r)
	dc.Stroke()
	dc.DrawEllipse(cx, cy, r*2+2, r+2)
	dc.Stroke()
}
