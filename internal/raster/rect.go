package raster

import (
	"image/color"
	"image/draw"

	"github.com/ivlev/slides2video/internal/geom"
)

// HollowRect outlines r with four line segments, clipping to the image.
func HollowRect(img draw.Image, r geom.Rect, c color.RGBA) {
	if r.Empty() {
		return
	}
	left, right := float64(r.Left()), float64(r.Right())
	top, bottom := float64(r.Top()), float64(r.Bottom())

	Line(img, geom.Pt(left, top), geom.Pt(right, top), c)
	Line(img, geom.Pt(left, bottom), geom.Pt(right, bottom), c)
	Line(img, geom.Pt(left, top), geom.Pt(left, bottom), c)
	Line(img, geom.Pt(right, top), geom.Pt(right, bottom), c)
}

// FilledRect fills the part of r that lies inside the image. A rectangle
// entirely outside the image paints nothing.
func FilledRect(img draw.Image, r geom.Rect, c color.RGBA) {
	b := img.Bounds()
	clipped, ok := geom.RectAt(b.Min.X, b.Min.Y, b.Dx(), b.Dy()).Intersect(r)
	if !ok {
		return
	}
	for y := clipped.Top(); y <= clipped.Bottom(); y++ {
		for x := clipped.Left(); x <= clipped.Right(); x++ {
			img.Set(x, y, c)
		}
	}
}

// FilledRoundedRect fills r with quarter-circle corners of the given radius:
// four filled corner circles plus two overlapping rectangles covering the
// straight bands. The radius is capped so the bands never invert.
func FilledRoundedRect(img draw.Image, r geom.Rect, radius int, c color.RGBA) {
	if r.Empty() {
		return
	}
	radius = clampCornerRadius(r, radius)
	left, right := r.Left(), r.Right()
	top, bottom := r.Top(), r.Bottom()

	FilledCircle(img, geom.Pt(left+radius, top+radius), radius, c)
	FilledCircle(img, geom.Pt(right-radius, top+radius), radius, c)
	FilledCircle(img, geom.Pt(left+radius, bottom-radius), radius, c)
	FilledCircle(img, geom.Pt(right-radius, bottom-radius), radius, c)

	FilledRect(img, geom.RectAt(left, top+radius, r.Width(), r.Height()-2*radius), c)
	FilledRect(img, geom.RectAt(left+radius, top, r.Width()-2*radius, r.Height()), c)
}

// HollowRoundedRect outlines r with quarter arcs at the corners joined by
// four straight edges. The radius is capped like FilledRoundedRect.
func HollowRoundedRect(img draw.Image, r geom.Rect, radius int, c color.RGBA) {
	if r.Empty() {
		return
	}
	radius = clampCornerRadius(r, radius)
	left, right := r.Left(), r.Right()
	top, bottom := r.Top(), r.Bottom()

	Line(img, geom.Pt(float64(left+radius), float64(top)), geom.Pt(float64(right-radius), float64(top)), c)
	Line(img, geom.Pt(float64(left+radius), float64(bottom)), geom.Pt(float64(right-radius), float64(bottom)), c)
	Line(img, geom.Pt(float64(left), float64(top+radius)), geom.Pt(float64(left), float64(bottom-radius)), c)
	Line(img, geom.Pt(float64(right), float64(top+radius)), geom.Pt(float64(right), float64(bottom-radius)), c)

	circlePoints(geom.Pt(0, 0), radius, func(_, _, x, y int) {
		setIfInBounds(img, left+radius-x, top+radius-y, c)
		setIfInBounds(img, left+radius-y, top+radius-x, c)
		setIfInBounds(img, right-radius+x, top+radius-y, c)
		setIfInBounds(img, right-radius+y, top+radius-x, c)
		setIfInBounds(img, left+radius-x, bottom-radius+y, c)
		setIfInBounds(img, left+radius-y, bottom-radius+x, c)
		setIfInBounds(img, right-radius+x, bottom-radius+y, c)
		setIfInBounds(img, right-radius+y, bottom-radius+x, c)
	})
}

// clampCornerRadius caps a corner radius so the corner circles, spanning
// 2r+1 pixels each, stay inside the rectangle sides.
func clampCornerRadius(r geom.Rect, radius int) int {
	if radius < 0 {
		return 0
	}
	if m := (min(r.Width(), r.Height()) - 1) / 2; radius > m {
		return m
	}
	return radius
}
