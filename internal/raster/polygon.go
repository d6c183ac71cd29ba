package raster

import (
	"errors"
	"fmt"
	"image/color"
	"image/draw"
	"math"
	"sort"

	"github.com/ivlev/slides2video/internal/geom"
)

// ErrDegeneratePolygon is returned when a point list cannot form a drawable
// outline: fewer than two points, or a closed list whose first and last
// points coincide.
var ErrDegeneratePolygon = errors.New("raster: degenerate polygon")

// Polygon fills the polygon described by poly using a scanline walk and then
// strokes every edge. The list must hold at least two points and must not be
// closed; the closing edge is implied. No pixel is touched on error.
func Polygon(img draw.Image, poly []geom.Point[int], c color.RGBA) error {
	return polygonWith(img, poly, c, Line)
}

// AntialiasedPolygon fills the polygon like Polygon but strokes the edges
// with Wu's antialiased lines merged through blend.
func AntialiasedPolygon(img draw.Image, poly []geom.Point[int], c color.RGBA, blend Blend) error {
	return polygonWith(img, poly, c, func(img draw.Image, start, end geom.Point[float64], c color.RGBA) {
		AntialiasedLine(img, geom.Pt(int(start.X), int(start.Y)), geom.Pt(int(end.X), int(end.Y)), c, blend)
	})
}

// HollowPolygon strokes the outline of poly without filling it, including
// the implied closing edge. The point list obeys the same shape rules as
// Polygon.
func HollowPolygon(img draw.Image, poly []geom.Point[float64], c color.RGBA) error {
	if err := checkPolygon(poly); err != nil {
		return err
	}
	for i := 0; i+1 < len(poly); i++ {
		Line(img, poly[i], poly[i+1], c)
	}
	Line(img, poly[len(poly)-1], poly[0], c)
	return nil
}

func checkPolygon[T geom.Number](poly []geom.Point[T]) error {
	if len(poly) < 2 {
		return fmt.Errorf("%w: %d points", ErrDegeneratePolygon, len(poly))
	}
	if poly[0] == poly[len(poly)-1] {
		return fmt.Errorf("%w: first point %v equals last", ErrDegeneratePolygon, poly[0])
	}
	return nil
}

// polygonWith is the scanline core shared by the plain and antialiased
// fills: it fills spans between sorted edge intersections row by row, then
// strokes every edge with plot.
func polygonWith(img draw.Image, poly []geom.Point[int], c color.RGBA, plot func(draw.Image, geom.Point[float64], geom.Point[float64], color.RGBA)) error {
	if err := checkPolygon(poly); err != nil {
		return err
	}

	b := img.Bounds()

	yMin, yMax := poly[0].Y, poly[0].Y
	for _, p := range poly[1:] {
		yMin = min(yMin, p.Y)
		yMax = max(yMax, p.Y)
	}
	yMin = max(b.Min.Y, min(yMin, b.Max.Y-1))
	yMax = max(b.Min.Y, min(yMax, b.Max.Y-1))

	closed := make([]geom.Point[int], len(poly)+1)
	copy(closed, poly)
	closed[len(poly)] = poly[0]

	var intersections []int
	for y := yMin; y <= yMax; y++ {
		for i := 0; i+1 < len(closed); i++ {
			p0, p1 := closed[i], closed[i+1]
			if (p0.Y > y || p1.Y < y) && (p1.Y > y || p0.Y < y) {
				continue
			}
			switch {
			case p0.Y == p1.Y:
				// Horizontal edges contribute both endpoints.
				intersections = append(intersections, p0.X, p1.X)
			case p0.Y == y || p1.Y == y:
				// A vertex on the scanline counts only when the edge
				// continues strictly below it.
				if p1.Y > y {
					intersections = append(intersections, p0.X)
				}
				if p0.Y > y {
					intersections = append(intersections, p1.X)
				}
			default:
				fraction := float64(y-p0.Y) / float64(p1.Y-p0.Y)
				at := float64(p0.X) + fraction*float64(p1.X-p0.X)
				intersections = append(intersections, int(math.Round(at)))
			}
		}

		sort.Ints(intersections)
		for i := 0; i+1 < len(intersections); i += 2 {
			from := min(intersections[i], b.Max.X)
			to := min(intersections[i+1], b.Max.X-1)
			if from < b.Max.X && to >= b.Min.X {
				from = max(from, b.Min.X)
				to = max(to, b.Min.X)
				for x := from; x <= to; x++ {
					img.Set(x, y, c)
				}
			}
		}
		intersections = intersections[:0]
	}

	for i := 0; i+1 < len(closed); i++ {
		start := geom.Pt(float64(closed[i].X), float64(closed[i].Y))
		end := geom.Pt(float64(closed[i+1].X), float64(closed[i+1].Y))
		plot(img, start, end, c)
	}
	return nil
}
