package geom

// Rect is an axis-aligned rectangle anchored at a signed top-left corner.
// Width and height are never negative. A rect may lie partially or fully
// outside the image it is later drawn onto; clipping is the drawing code's
// concern, not the rectangle's.
type Rect struct {
	left, top, width, height int
}

// RectAt builds a rectangle from its top-left corner and size. Negative
// sizes collapse to zero.
func RectAt(left, top, width, height int) Rect {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return Rect{left: left, top: top, width: width, height: height}
}

// Left returns the x coordinate of the left column.
func (r Rect) Left() int { return r.left }

// Top returns the y coordinate of the top row.
func (r Rect) Top() int { return r.top }

// Right returns the x coordinate of the rightmost column, inclusive.
func (r Rect) Right() int { return r.left + r.width - 1 }

// Bottom returns the y coordinate of the bottom row, inclusive.
func (r Rect) Bottom() int { return r.top + r.height - 1 }

// Width returns the number of columns covered.
func (r Rect) Width() int { return r.width }

// Height returns the number of rows covered.
func (r Rect) Height() int { return r.height }

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool { return r.width == 0 || r.height == 0 }

// Contains reports whether (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.left && x <= r.Right() && y >= r.top && y <= r.Bottom()
}

// Intersect returns the region covered by both rectangles. The second
// result is false when they are disjoint.
func (r Rect) Intersect(other Rect) (Rect, bool) {
	if r.Empty() || other.Empty() {
		return Rect{}, false
	}
	left := max(r.left, other.left)
	top := max(r.top, other.top)
	right := min(r.Right(), other.Right())
	bottom := min(r.Bottom(), other.Bottom())
	if right < left || bottom < top {
		return Rect{}, false
	}
	return Rect{left: left, top: top, width: right - left + 1, height: bottom - top + 1}, true
}
