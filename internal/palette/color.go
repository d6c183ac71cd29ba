// Package palette defines the RGB color type used by slide descriptions and
// the raster engine, the named color table, and the preset color sets the
// example generator offers.
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidColor is returned for malformed hex strings and unknown names.
var ErrInvalidColor = errors.New("palette: invalid color")

// Color is an 8-bit RGB triple, always treated as fully opaque.
type Color [3]uint8

// RGB builds a color from its channels.
func RGB(r, g, b uint8) Color { return Color{r, g, b} }

// RGBA converts to the stdlib color type with full alpha.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 0xff}
}

// String renders the color in #RRGGBB form.
func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X", c[0], c[1], c[2])
}

// Parse resolves s into a color. Accepted forms are "#RRGGBB" (exactly six
// hex digits) and the names in the package table, case-insensitively.
// Anything else fails with ErrInvalidColor.
func Parse(s string) (Color, error) {
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		if len(hex) != 6 {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		var c Color
		for i := range c {
			v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
			if err != nil {
				return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
			}
			c[i] = uint8(v)
		}
		return c, nil
	}
	if c, ok := Named(s); ok {
		return c, nil
	}
	return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

// UnmarshalYAML accepts the same forms as Parse, so project files can write
// colors as "#E8F6FD" or "black".
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalYAML renders the color in #RRGGBB form.
func (c Color) MarshalYAML() (any, error) {
	return c.String(), nil
}
