// Package source decodes the artwork referenced by image elements and
// scales it to fit the requesting rectangle.
package source

import (
	"errors"
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// ErrSourceUnavailable is returned when a reference cannot be resolved,
// opened, or decoded.
var ErrSourceUnavailable = errors.New("source: unavailable")

// Provider supplies decoded artwork fitted to a bounding box, preserving
// aspect ratio. References are provider-specific strings; implementations
// must be safe for concurrent use.
type Provider interface {
	Thumbnail(ref string, maxWidth, maxHeight int) (image.Image, error)
	Close() error
}

// fitTo scales img to the largest size that fits within maxWidth x
// maxHeight without changing its aspect ratio.
func fitTo(img image.Image, maxWidth, maxHeight int) image.Image {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 || maxWidth <= 0 || maxHeight <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}

	scale := min(float64(maxWidth)/float64(b.Dx()), float64(maxHeight)/float64(b.Dy()))
	w := max(1, int(float64(b.Dx())*scale))
	h := max(1, int(float64(b.Dy())*scale))

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
		return dst
	}
	xdraw.BiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}
