// Package geom provides the coordinate and rectangle types shared by the
// raster engine and the slide compositor.
package geom

// Number covers the coordinate types drawing algorithms operate on.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Point is a coordinate pair over any numeric type. Discrete algorithms use
// integer points, parametric ones use float points. Equality is componentwise.
type Point[T Number] struct {
	X, Y T
}

// Pt is shorthand for Point[T]{X: x, Y: y}.
func Pt[T Number](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}
