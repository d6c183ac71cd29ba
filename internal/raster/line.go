package raster

import (
	"image/color"
	"image/draw"
	"math"

	"github.com/ivlev/slides2video/internal/geom"
)

// LineIter yields the integer pixel coordinates of a line segment using
// Bresenham's algorithm. Endpoints are rounded to the nearest pixel before
// the walk starts. The walk is octant-normalized: steep segments are
// reflected across the diagonal and iteration always proceeds left to right
// along the dominant axis, so the yielded run is monotonic in that axis.
type LineIter struct {
	dx, dy float64
	x, y   int
	err    float64
	endX   int
	steep  bool
	yStep  int
}

// NewLineIter prepares a walk over the segment from start to end.
func NewLineIter(start, end geom.Point[float64]) *LineIter {
	x0, y0 := math.Round(start.X), math.Round(start.Y)
	x1, y1 := math.Round(end.X), math.Round(end.Y)

	steep := math.Abs(y1-y0) > math.Abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	yStep := -1
	if y0 < y1 {
		yStep = 1
	}
	return &LineIter{
		dx:    dx,
		dy:    math.Abs(y1 - y0),
		x:     int(x0),
		y:     int(y0),
		err:   dx / 2,
		endX:  int(x1),
		steep: steep,
		yStep: yStep,
	}
}

// Next returns the next pixel on the segment. ok reports false once the
// segment is exhausted.
func (it *LineIter) Next() (p geom.Point[int], ok bool) {
	if it.x > it.endX {
		return geom.Point[int]{}, false
	}
	if it.steep {
		p = geom.Pt(it.y, it.x)
	} else {
		p = geom.Pt(it.x, it.y)
	}
	it.x++
	it.err -= it.dy
	if it.err < 0 {
		it.y += it.yStep
		it.err += it.dx
	}
	return p, true
}

// Line draws the segment between start and end, painting every generated
// pixel that lies inside the image.
func Line(img draw.Image, start, end geom.Point[float64], c color.RGBA) {
	it := NewLineIter(start, end)
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		setIfInBounds(img, p.X, p.Y, c)
	}
}

// AntialiasedLine draws the segment between start and end with Wu's
// algorithm, splitting each step's coverage between the two nearest pixels
// and merging them into the image through blend.
func AntialiasedLine(img draw.Image, start, end geom.Point[int], c color.RGBA, blend Blend) {
	x0, y0 := start.X, start.Y
	x1, y1 := end.X, end.Y

	if abs(y1-y0) > abs(x1-x0) {
		if y0 > y1 {
			x0, x1 = x1, x0
			y0, y1 = y1, y0
		}
		// Steep segments run transposed and swap coordinates back on plot.
		plotWuLine(img, geom.Pt(y0, x0), geom.Pt(y1, x1), c, blend, func(x, y int) (int, int) { return y, x })
		return
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}
	plotWuLine(img, geom.Pt(x0, y0), geom.Pt(x1, y1), c, blend, func(x, y int) (int, int) { return x, y })
}

// plotWuLine walks the shallow normalized segment, splitting each column's
// coverage between the two rows nearest the true line.
func plotWuLine(img draw.Image, start, end geom.Point[int], c color.RGBA, blend Blend, transform func(x, y int) (int, int)) {
	plot := func(x, y int, weight float64) {
		tx, ty := transform(x, y)
		if !inBounds(img, tx, ty) {
			return
		}
		img.Set(tx, ty, blend(c, rgbaAt(img, tx, ty), weight))
	}

	gradient := float64(end.Y-start.Y) / float64(end.X-start.X)
	fy := float64(start.Y)
	for x := start.X; x <= end.X; x++ {
		plot(x, int(fy), 1-fract(fy))
		plot(x, int(fy)+1, fract(fy))
		fy += gradient
	}
}

func fract(x float64) float64 { return x - math.Trunc(x) }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// crossStencil marks the five pixels of a plus-shaped point marker.
var crossStencil = [9]uint8{
	0, 1, 0,
	1, 1, 1,
	0, 1, 0,
}

// Cross paints a small plus-shaped marker centered at (x, y), clipping any
// arm that falls outside the image.
func Cross(img draw.Image, c color.RGBA, x, y int) {
	for sy := -1; sy <= 1; sy++ {
		for sx := -1; sx <= 1; sx++ {
			if crossStencil[3*(sy+1)+sx+1] == 1 {
				setIfInBounds(img, x+sx, y+sy, c)
			}
		}
	}
}
