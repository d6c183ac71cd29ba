package raster

import (
	"testing"

	"github.com/ivlev/slides2video/internal/geom"
)

func TestFilledCircleRadiusThree(t *testing.T) {
	img := newCanvas(11, 11, testBack)

	FilledCircle(img, geom.Pt(5, 5), 3, testInk)

	// Midpoint walk output for radius 3, centered at (5, 5).
	spans := map[int][2]int{
		2: {4, 6},
		3: {3, 7},
		4: {2, 8},
		5: {2, 8},
		6: {2, 8},
		7: {3, 7},
		8: {4, 6},
	}
	set := paintedSet(img, testBack)
	total := 0
	for y, span := range spans {
		for x := span[0]; x <= span[1]; x++ {
			if !set[geom.Pt(x, y)] {
				t.Errorf("pixel (%d, %d) not painted", x, y)
			}
			total++
		}
	}
	if len(set) != total {
		t.Errorf("painted %d pixels, want %d", len(set), total)
	}
}

func TestHollowCircleRadiusThree(t *testing.T) {
	img := newCanvas(11, 11, testBack)

	HollowCircle(img, geom.Pt(5, 5), 3, testInk)

	set := paintedSet(img, testBack)
	if len(set) != 16 {
		t.Fatalf("outline painted %d pixels, want 16", len(set))
	}
	for p := range set {
		mirrors := []geom.Point[int]{
			geom.Pt(10-p.X, p.Y),
			geom.Pt(p.X, 10-p.Y),
			geom.Pt(10-p.X, 10-p.Y),
		}
		for _, m := range mirrors {
			if !set[m] {
				t.Errorf("mirror %v of painted %v not painted", m, p)
			}
		}
	}
}

func TestCircleRadiusZero(t *testing.T) {
	img := newCanvas(7, 7, testBack)

	HollowCircle(img, geom.Pt(3, 3), 0, testInk)

	set := paintedSet(img, testBack)
	if len(set) != 1 || !set[geom.Pt(3, 3)] {
		t.Fatalf("painted %v, want exactly the center", set)
	}
}

func TestCircleNegativeRadiusPaintsNothing(t *testing.T) {
	img := newCanvas(7, 7, testBack)

	HollowCircle(img, geom.Pt(3, 3), -2, testInk)
	FilledCircle(img, geom.Pt(3, 3), -2, testInk)

	if n := len(paintedSet(img, testBack)); n != 0 {
		t.Fatalf("painted %d pixels, want none", n)
	}
}

func TestCircleClipsAtCorner(t *testing.T) {
	img := newCanvas(8, 8, testBack)

	FilledCircle(img, geom.Pt(0, 0), 3, testInk)

	// Only the visible quadrant of the radius-3 disk survives.
	set := paintedSet(img, testBack)
	if len(set) != 13 {
		t.Fatalf("painted %d pixels, want 13", len(set))
	}
	for _, p := range []geom.Point[int]{geom.Pt(0, 0), geom.Pt(3, 0), geom.Pt(0, 3), geom.Pt(1, 3)} {
		if !set[p] {
			t.Errorf("pixel %v not painted", p)
		}
	}
}

func TestFilledEllipseEqualRadiiMatchesCircle(t *testing.T) {
	circle := newCanvas(21, 21, testBack)
	ellipse := newCanvas(21, 21, testBack)

	FilledCircle(circle, geom.Pt(10, 10), 7, testInk)
	FilledEllipse(ellipse, geom.Pt(10, 10), 7, 7, testInk)

	samePixels(t, ellipse, circle)
}

func TestHollowEllipseEqualRadiiMatchesCircle(t *testing.T) {
	circle := newCanvas(21, 21, testBack)
	ellipse := newCanvas(21, 21, testBack)

	HollowCircle(circle, geom.Pt(10, 10), 7, testInk)
	HollowEllipse(ellipse, geom.Pt(10, 10), 7, 7, testInk)

	samePixels(t, ellipse, circle)
}

func TestHollowEllipseExtremesAndSymmetry(t *testing.T) {
	cases := []struct {
		wr, hr int
	}{
		{8, 4},
		{3, 6},
	}

	for _, tc := range cases {
		img := newCanvas(25, 25, testBack)
		HollowEllipse(img, geom.Pt(12, 12), tc.wr, tc.hr, testInk)
		set := paintedSet(img, testBack)

		extremes := []geom.Point[int]{
			geom.Pt(12+tc.wr, 12), geom.Pt(12-tc.wr, 12),
			geom.Pt(12, 12+tc.hr), geom.Pt(12, 12-tc.hr),
		}
		for _, p := range extremes {
			if !set[p] {
				t.Errorf("ellipse %dx%d: extreme %v not painted", tc.wr, tc.hr, p)
			}
		}
		for p := range set {
			if abs(p.X-12) > tc.wr || abs(p.Y-12) > tc.hr {
				t.Errorf("ellipse %dx%d: pixel %v outside the bounding box", tc.wr, tc.hr, p)
			}
			if !set[geom.Pt(24-p.X, p.Y)] || !set[geom.Pt(p.X, 24-p.Y)] {
				t.Errorf("ellipse %dx%d: painted %v lacks an axis mirror", tc.wr, tc.hr, p)
			}
		}
	}
}

func TestFilledEllipseCoversOutline(t *testing.T) {
	filled := newCanvas(25, 25, testBack)
	outline := newCanvas(25, 25, testBack)

	FilledEllipse(filled, geom.Pt(12, 12), 8, 4, testInk)
	HollowEllipse(outline, geom.Pt(12, 12), 8, 4, testInk)

	filledSet := paintedSet(filled, testBack)
	for p := range paintedSet(outline, testBack) {
		if !filledSet[p] {
			t.Errorf("outline pixel %v missing from the filled ellipse", p)
		}
	}
	if !filledSet[geom.Pt(12, 12)] {
		t.Error("ellipse center not painted")
	}
}
