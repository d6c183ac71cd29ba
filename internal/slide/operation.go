package slide

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ivlev/slides2video/internal/palette"
)

// ErrInsufficientData is returned when the data strings run out before
// every image and text operation has been satisfied.
var ErrInsufficientData = errors.New("slide: insufficient data")

// Operation is a slide template entry: an element variant with its styling
// and placement, but without concrete content. Image and text operations
// take their content from a per-slide data row; color operations are
// self-contained. Z orders operations within a slide.
type Operation struct {
	Kind     Kind          `yaml:"kind" json:"kind"`
	MaxScale float64       `yaml:"max_scale,omitempty" json:"max_scale,omitempty"`
	Color    palette.Color `yaml:"color" json:"color"`
	Position Position      `yaml:"position" json:"position"`
	Z        int           `yaml:"z" json:"z"`
}

// SortByZ orders operations by their z index, keeping declaration order for
// equal indices.
func SortByZ(ops []Operation) {
	sort.SliceStable(ops, func(i, j int) bool { return ops[i].Z < ops[j].Z })
}

// Generate instantiates a slide from a template. Data strings are consumed
// sequentially in operation order: an image operation takes one string as
// its source reference, a text operation takes one string as its content, a
// color operation takes none. Leftover strings are ignored.
func Generate(ops []Operation, data []string) (*Slide, error) {
	s := New()
	next := 0
	take := func() (string, bool) {
		if next >= len(data) {
			return "", false
		}
		d := data[next]
		next++
		return d, true
	}

	for i, op := range ops {
		switch op.Kind {
		case KindImage:
			ref, ok := take()
			if !ok {
				return nil, fmt.Errorf("%w: image operation %d has no source reference", ErrInsufficientData, i)
			}
			s.AddImage(ref, op.Position)
		case KindText:
			content, ok := take()
			if !ok {
				return nil, fmt.Errorf("%w: text operation %d has no content", ErrInsufficientData, i)
			}
			s.AddText(content, op.MaxScale, op.Color, op.Position)
		case KindColor:
			s.AddColor(op.Color, op.Position)
		default:
			return nil, fmt.Errorf("slide: unknown operation kind %q", op.Kind)
		}
	}
	return s, nil
}
