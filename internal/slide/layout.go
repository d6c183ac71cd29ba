package slide

// Band layouts for a 1080-pixel-tall slide. LayoutTriple stacks an artwork
// band, a title band and a detail band; LayoutQuad splits the lower half
// into three rows. Paired with the palette presets of matching arity.
var (
	LayoutTriple = [3]Position{
		At(1, 0, 520),
		At(1, 520, 214),
		At(1, 734, 346),
	}

	LayoutQuad = [4]Position{
		At(1, 0, 500),
		At(1, 500, 180),
		At(1, 680, 180),
		At(1, 860, 220),
	}
)
