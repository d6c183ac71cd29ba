// Package text fits and draws single-line strings into slide rectangles.
//
// A Font wraps parsed OpenType data. DrawCentered picks the largest face
// size not above the caller's maximum at which the string still fits the
// target rectangle, then paints it centered. Glyph shaping and hinting come
// from golang.org/x/image/font/opentype; this package only adds the fitting
// search and placement.
package text

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/ivlev/slides2video/internal/geom"
)

// ErrInvalidFont is returned when font bytes cannot be parsed.
var ErrInvalidFont = errors.New("text: invalid font")

// Font is a parsed OpenType font ready for fitting and drawing. It is safe
// for concurrent use: faces are created per call and discarded.
type Font struct {
	otf *opentype.Font
}

// New parses OpenType or TrueType font bytes.
func New(data []byte) (*Font, error) {
	otf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFont, err)
	}
	return &Font{otf: otf}, nil
}

// Load reads and parses the font file at path.
func Load(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: read font: %w", err)
	}
	return New(data)
}

// DrawCentered paints s centered inside r at the largest whole-point size
// not exceeding maxScale at which both the advance width and the line
// height fit the rectangle. When even size 1 does not fit, the string is
// drawn at size 1 rather than dropped.
func (f *Font) DrawCentered(img draw.Image, r geom.Rect, s string, maxScale float64, c color.RGBA) error {
	if r.Empty() || s == "" {
		return nil
	}

	size, err := f.fitSize(r, s, maxScale)
	if err != nil {
		return err
	}
	face, err := f.face(size)
	if err != nil {
		return err
	}
	defer face.Close()

	width := font.MeasureString(face, s).Ceil()
	metrics := face.Metrics()
	height := (metrics.Ascent + metrics.Descent).Ceil()

	x := r.Left() + (r.Width()-width)/2
	y := r.Top() + (r.Height()-height)/2 + metrics.Ascent.Ceil()

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
	return nil
}

// fitSize binary-searches the largest whole-point size in [1, maxScale]
// whose measured string fits r.
func (f *Font) fitSize(r geom.Rect, s string, maxScale float64) (int, error) {
	lo, hi := 1, max(1, int(maxScale))
	best := 1
	for lo <= hi {
		mid := (lo + hi) / 2
		ok, err := f.fits(r, s, mid)
		if err != nil {
			return 0, err
		}
		if ok {
			best = mid
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return best, nil
}

func (f *Font) fits(r geom.Rect, s string, size int) (bool, error) {
	face, err := f.face(size)
	if err != nil {
		return false, err
	}
	defer face.Close()

	width := font.MeasureString(face, s).Ceil()
	metrics := face.Metrics()
	height := (metrics.Ascent + metrics.Descent).Ceil()
	return width <= r.Width() && height <= r.Height(), nil
}

func (f *Font) face(size int) (font.Face, error) {
	face, err := opentype.NewFace(f.otf, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("text: face size %d: %w", size, err)
	}
	return face, nil
}
