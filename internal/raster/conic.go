package raster

import (
	"image/color"
	"image/draw"

	"github.com/ivlev/slides2video/internal/geom"
)

// circlePoints walks one octant of a midpoint circle and hands every step to
// visit along with the center; visit mirrors the step into the remaining
// seven octants. A negative radius makes no steps at all.
func circlePoints(center geom.Point[int], radius int, visit func(x0, y0, x, y int)) {
	x, y := 0, radius
	p := 1 - radius
	for x <= y {
		visit(center.X, center.Y, x, y)
		x++
		if p < 0 {
			p += 2*x + 1
		} else {
			y--
			p += 2*(x-y) + 1
		}
	}
}

// HollowCircle draws the outline of the circle with the given center and
// radius. Pixels outside the image are dropped.
func HollowCircle(img draw.Image, center geom.Point[int], radius int, c color.RGBA) {
	circlePoints(center, radius, func(x0, y0, x, y int) {
		setIfInBounds(img, x0+x, y0+y, c)
		setIfInBounds(img, x0+y, y0+x, c)
		setIfInBounds(img, x0-y, y0+x, c)
		setIfInBounds(img, x0-x, y0+y, c)
		setIfInBounds(img, x0-x, y0-y, c)
		setIfInBounds(img, x0-y, y0-x, c)
		setIfInBounds(img, x0+y, y0-x, c)
		setIfInBounds(img, x0+x, y0-y, c)
	})
}

// FilledCircle draws the circle and its interior, filling a horizontal span
// across each mirrored octant pair.
func FilledCircle(img draw.Image, center geom.Point[int], radius int, c color.RGBA) {
	circlePoints(center, radius, func(x0, y0, x, y int) {
		Line(img, geom.Pt(float64(x0-x), float64(y0+y)), geom.Pt(float64(x0+x), float64(y0+y)), c)
		Line(img, geom.Pt(float64(x0-y), float64(y0+x)), geom.Pt(float64(x0+y), float64(y0+x)), c)
		Line(img, geom.Pt(float64(x0-x), float64(y0-y)), geom.Pt(float64(x0+x), float64(y0-y)), c)
		Line(img, geom.Pt(float64(x0-y), float64(y0-x)), geom.Pt(float64(x0+y), float64(y0-x)), c)
	})
}

// renderEllipse runs the two-region midpoint ellipse walk, invoking visit
// with the first-quadrant offset of every step; visit mirrors it across both
// axes.
func renderEllipse(center geom.Point[int], widthRadius, heightRadius int, visit func(x0, y0, x, y int)) {
	w2 := float64(widthRadius * widthRadius)
	h2 := float64(heightRadius * heightRadius)
	x, y := 0, heightRadius
	px := 0.0
	py := 2 * w2 * float64(y)

	visit(center.X, center.Y, x, y)

	// Region 1: tangent slope above -1, x advances every step.
	p := h2 - w2*float64(heightRadius) + 0.25*w2
	for px < py {
		x++
		px += 2 * h2
		if p < 0 {
			p += h2 + px
		} else {
			y--
			py -= 2 * w2
			p += h2 + px - py
		}
		visit(center.X, center.Y, x, y)
	}

	// Region 2: tangent slope below -1, y descends every step.
	fx := float64(x) + 0.5
	fy := float64(y - 1)
	p = h2*fx*fx + w2*fy*fy - w2*h2
	for y > 0 {
		y--
		py -= 2 * w2
		if p > 0 {
			p += w2 - py
		} else {
			x++
			px += 2 * h2
			p += w2 - py + px
		}
		visit(center.X, center.Y, x, y)
	}
}

// HollowEllipse draws the outline of the axis-aligned ellipse satisfying
// (x²/widthRadius²) + (y²/heightRadius²) = 1 around center. Equal radii
// delegate to the circle walk, which paints the identical pixel set.
func HollowEllipse(img draw.Image, center geom.Point[int], widthRadius, heightRadius int, c color.RGBA) {
	if widthRadius == heightRadius {
		HollowCircle(img, center, widthRadius, c)
		return
	}
	renderEllipse(center, widthRadius, heightRadius, func(x0, y0, x, y int) {
		setIfInBounds(img, x0+x, y0+y, c)
		setIfInBounds(img, x0-x, y0+y, c)
		setIfInBounds(img, x0+x, y0-y, c)
		setIfInBounds(img, x0-x, y0-y, c)
	})
}

// FilledEllipse draws the ellipse and its interior, filling the horizontal
// span between the mirrored quadrant offsets of every step. Equal radii
// delegate to the circle walk.
func FilledEllipse(img draw.Image, center geom.Point[int], widthRadius, heightRadius int, c color.RGBA) {
	if widthRadius == heightRadius {
		FilledCircle(img, center, widthRadius, c)
		return
	}
	renderEllipse(center, widthRadius, heightRadius, func(x0, y0, x, y int) {
		Line(img, geom.Pt(float64(x0-x), float64(y0+y)), geom.Pt(float64(x0+x), float64(y0+y)), c)
		Line(img, geom.Pt(float64(x0-x), float64(y0-y)), geom.Pt(float64(x0+x), float64(y0-y)), c)
	})
}
