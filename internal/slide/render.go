package slide

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/ivlev/slides2video/internal/geom"
	"github.com/ivlev/slides2video/internal/palette"
	"github.com/ivlev/slides2video/internal/raster"
	"github.com/ivlev/slides2video/internal/source"
	"github.com/ivlev/slides2video/internal/text"
)

// cornerRadius rounds the corners of color block elements.
const cornerRadius = 10

// Renderer composes slides into frame-sized images. Width and Height set
// the canvas; Font serves text elements, Source serves image elements, and
// a non-nil Separator draws a vertical line along the left edge so adjacent
// slides stay visually divided once laid out side by side.
type Renderer struct {
	Width     int
	Height    int
	Font      *text.Font
	Source    source.Provider
	Separator *palette.Color
}

// Render paints s onto a fresh transparent canvas, element by element in
// stored order.
func (r *Renderer) Render(s *Slide) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	for i, el := range s.Elements() {
		if err := r.renderElement(img, el); err != nil {
			return nil, fmt.Errorf("element %d (%s): %w", i, el.Kind, err)
		}
	}
	if r.Separator != nil {
		raster.Line(img, geom.Pt(0.0, 0.0), geom.Pt(0.0, float64(r.Height)), r.Separator.RGBA())
	}
	return img, nil
}

func (r *Renderer) renderElement(img *image.RGBA, el Element) error {
	rect := el.Position.ToRect(r.Width)
	switch el.Kind {
	case KindImage:
		if r.Source == nil {
			return fmt.Errorf("no artwork provider configured")
		}
		thumb, err := r.Source.Thumbnail(el.Ref, rect.Width(), rect.Height())
		if err != nil {
			return err
		}
		b := thumb.Bounds()
		at := image.Pt(
			rect.Left()+(rect.Width()-b.Dx())/2,
			rect.Top()+(rect.Height()-b.Dy())/2,
		)
		draw.Draw(img, image.Rectangle{Min: at, Max: at.Add(b.Size())}, thumb, b.Min, draw.Src)
	case KindText:
		if r.Font == nil {
			return fmt.Errorf("no font configured")
		}
		return r.Font.DrawCentered(img, rect, el.Text, el.MaxScale, el.Color.RGBA())
	case KindColor:
		raster.FilledRoundedRect(img, rect, cornerRadius, el.Color.RGBA())
	default:
		return fmt.Errorf("unknown element kind %q", el.Kind)
	}
	return nil
}
