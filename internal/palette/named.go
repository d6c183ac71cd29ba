package palette

import (
	"strings"
	"sync"
)

// Named colors resolvable by Parse.
var (
	Black  = Color{0, 0, 0}
	White  = Color{255, 255, 255}
	Gray   = Color{128, 128, 128}
	Gold   = Color{255, 215, 0}
	Silver = Color{192, 192, 192}
	Red    = Color{255, 0, 0}
	Orange = Color{255, 165, 0}
	Yellow = Color{255, 255, 0}
	Green  = Color{0, 255, 0}
	Cyan   = Color{0, 255, 255}
	Blue   = Color{0, 0, 255}
	Purple = Color{128, 0, 128}
	Violet = Color{238, 130, 238}
	Orchid = Color{218, 112, 214}
	Pink   = Color{255, 192, 203}
	Snow   = Color{255, 250, 250}
	Brown  = Color{165, 42, 42}
)

// names is built once on first lookup and never mutated afterwards.
var names = sync.OnceValue(func() map[string]Color {
	return map[string]Color{
		"black":  Black,
		"white":  White,
		"gray":   Gray,
		"gold":   Gold,
		"silver": Silver,
		"red":    Red,
		"orange": Orange,
		"yellow": Yellow,
		"green":  Green,
		"cyan":   Cyan,
		"blue":   Blue,
		"purple": Purple,
		"violet": Violet,
		"orchid": Orchid,
		"pink":   Pink,
		"snow":   Snow,
		"brown":  Brown,
	}
})

// Named looks up a color by its lowercase-insensitive name.
func Named(name string) (Color, bool) {
	c, ok := names()[strings.ToLower(name)]
	return c, ok
}

// Preset color sets for two-, three- and four-block slide layouts. The
// example project generator pairs them with the layout presets.
var (
	Duo      = [2]Color{{245, 160, 50}, {255, 225, 200}}
	DuoMint  = [2]Color{{200, 250, 250}, {240, 240, 220}}
	DuoIris  = [2]Color{{160, 100, 255}, {235, 235, 235}}
	DuoOcean = [2]Color{{25, 150, 235}, {45, 85, 150}}
	Trio     = [3]Color{{245, 165, 50}, {255, 225, 150}, {200, 250, 250}}
	Quad     = [4]Color{{245, 165, 50}, {255, 225, 150}, {200, 250, 250}, {240, 240, 220}}
)
