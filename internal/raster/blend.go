package raster

import "image/color"

// Scalar covers the arithmetic types channel math accumulates in.
type Scalar interface {
	~int | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// ClampUint8 saturates x into the 8-bit channel range. It never wraps:
// negative values become 0 and values above 255 become 255.
func ClampUint8[T Scalar](x T) uint8 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return uint8(x)
}

// Blend combines a stroke color with the pixel already present, weighted by
// the stroke's coverage of that pixel. Weight 1 means the stroke owns the
// pixel, weight 0 leaves it untouched.
type Blend func(line, existing color.RGBA, weight float64) color.RGBA

// WeightedSum adds two colors channelwise with the given weights, saturating
// each channel instead of overflowing.
func WeightedSum(left, right color.RGBA, leftWeight, rightWeight float64) color.RGBA {
	return color.RGBA{
		R: weightedChannel(left.R, right.R, leftWeight, rightWeight),
		G: weightedChannel(left.G, right.G, leftWeight, rightWeight),
		B: weightedChannel(left.B, right.B, leftWeight, rightWeight),
		A: weightedChannel(left.A, right.A, leftWeight, rightWeight),
	}
}

func weightedChannel(l, r uint8, lw, rw float64) uint8 {
	return ClampUint8(float64(l)*lw + float64(r)*rw)
}

// Interpolate blends line over existing in proportion to weight, the usual
// choice for antialiased strokes.
func Interpolate(line, existing color.RGBA, weight float64) color.RGBA {
	return WeightedSum(line, existing, weight, 1-weight)
}
