package raster

import (
	"image/color"
	"image/draw"
	"math"

	"github.com/ivlev/slides2video/internal/geom"
)

// CubicBezier draws the cubic Bézier curve with the given endpoints and
// control points, approximating it with straight segments. The segment
// count grows with the length of the control polygon so long curves stay
// smooth while short ones stay cheap.
func CubicBezier(img draw.Image, start, end, controlA, controlB geom.Point[float64], c color.RGBA) {
	eval := func(t float64) geom.Point[float64] {
		t2 := t * t
		t3 := t2 * t
		mt := 1 - t
		mt2 := mt * mt
		mt3 := mt2 * mt
		x := start.X*mt3 + 3*controlA.X*mt2*t + 3*controlB.X*mt*t2 + end.X*t3
		y := start.Y*mt3 + 3*controlA.Y*mt2*t + 3*controlB.Y*mt*t2 + end.Y*t3
		// Snapping samples to whole pixels keeps adjacent segments stitched.
		return geom.Pt(math.Round(x), math.Round(y))
	}

	length := dist(start, controlA) + dist(controlA, controlB) + dist(controlB, end)
	segments := int(math.Round(math.Sqrt(length*length+800) / 8))

	interval := 1 / float64(segments)
	t1 := 0.0
	for i := 0; i < segments; i++ {
		t2 := float64(i+1) * interval
		Line(img, eval(t1), eval(t2), c)
		t1 = t2
	}
}

func dist(a, b geom.Point[float64]) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
