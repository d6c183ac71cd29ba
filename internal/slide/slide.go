// Package slide models one promo slide as an ordered list of content
// elements and composes it into a frame-sized raster image.
package slide

import (
	"github.com/ivlev/slides2video/internal/geom"
	"github.com/ivlev/slides2video/internal/palette"
)

// Kind discriminates the element and operation variants.
type Kind string

const (
	KindImage Kind = "image"
	KindText  Kind = "text"
	KindColor Kind = "color"
)

// Valid reports whether k names a known element kind.
func (k Kind) Valid() bool {
	return k == KindImage || k == KindText || k == KindColor
}

// Position places an element band inside a slide: a left offset, a top
// offset and a band height. The band width derives from the slide width
// with the left offset mirrored as a right margin.
type Position struct {
	Left   int `yaml:"left" json:"left"`
	Top    int `yaml:"top" json:"top"`
	Height int `yaml:"height" json:"height"`
}

// At builds a Position.
func At(left, top, height int) Position {
	return Position{Left: left, Top: top, Height: height}
}

// ToRect resolves the band rectangle for a slide of the given width.
func (p Position) ToRect(width int) geom.Rect {
	return geom.RectAt(p.Left, p.Top, width-2*p.Left, p.Height)
}

// Element is one placed piece of slide content. Ref is set for image
// elements, Text and MaxScale for text elements, Color for text ink and
// color blocks.
type Element struct {
	Kind     Kind
	Ref      string
	Text     string
	MaxScale float64
	Color    palette.Color
	Position Position
}

// Slide is an ordered element list; rendering paints elements in stored
// order, so callers wanting z-ordering sort their operations first.
type Slide struct {
	elements []Element
}

// New returns an empty slide.
func New() *Slide {
	return &Slide{elements: make([]Element, 0, 8)}
}

// AddImage appends an image element referencing artwork by ref.
func (s *Slide) AddImage(ref string, pos Position) {
	s.elements = append(s.elements, Element{Kind: KindImage, Ref: ref, Position: pos})
}

// AddText appends a text element drawn at the largest fitting size up to
// maxScale.
func (s *Slide) AddText(content string, maxScale float64, c palette.Color, pos Position) {
	s.elements = append(s.elements, Element{
		Kind:     KindText,
		Text:     content,
		MaxScale: maxScale,
		Color:    c,
		Position: pos,
	})
}

// AddColor appends a rounded color block.
func (s *Slide) AddColor(c palette.Color, pos Position) {
	s.elements = append(s.elements, Element{Kind: KindColor, Color: c, Position: pos})
}

// Len returns the number of elements.
func (s *Slide) Len() int {
	return len(s.elements)
}

// Elements returns the element list in render order.
func (s *Slide) Elements() []Element {
	return s.elements
}
