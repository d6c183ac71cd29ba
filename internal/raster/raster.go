// Package raster implements the 2D drawing engine behind slide rendering:
// lines (plain and antialiased), circles and ellipses, polygons, plain and
// rounded rectangles, and cubic Bézier curves.
//
// Every operation mutates a draw.Image in place and only ever touches pixels
// inside the image bounds. Out-of-range coordinates are silently dropped,
// never errors. Callers that want the copy-then-mutate form clone first:
//
//	out := raster.Clone(src)
//	raster.Line(out, a, b, ink)
//
// Malformed geometry (too few polygon points, a closed point list) is the
// only error surface.
package raster

import (
	"image"
	"image/color"
	"image/draw"
)

func inBounds(img draw.Image, x, y int) bool {
	return image.Pt(x, y).In(img.Bounds())
}

// setIfInBounds paints (x, y) when it lies inside img, otherwise does nothing.
func setIfInBounds(img draw.Image, x, y int, c color.RGBA) {
	if inBounds(img, x, y) {
		img.Set(x, y, c)
	}
}

// rgbaAt reads the pixel at (x, y) converted to 8-bit RGBA.
func rgbaAt(img draw.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

// Clone copies src into a fresh RGBA buffer with the same bounds, giving
// callers the pure copy-then-mutate form of every operation.
func Clone(src image.Image) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(b)
	draw.Draw(dst, b, src, b.Min, draw.Src)
	return dst
}
