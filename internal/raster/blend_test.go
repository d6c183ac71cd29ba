package raster

import (
	"image/color"
	"testing"
)

func TestClampUint8(t *testing.T) {
	if got := ClampUint8(-5); got != 0 {
		t.Errorf("ClampUint8(-5) = %d, want 0", got)
	}
	if got := ClampUint8(300); got != 255 {
		t.Errorf("ClampUint8(300) = %d, want 255", got)
	}
	if got := ClampUint8(128); got != 128 {
		t.Errorf("ClampUint8(128) = %d, want 128", got)
	}
	if got := ClampUint8(254.6); got != 254 {
		t.Errorf("ClampUint8(254.6) = %d, want 254", got)
	}
	if got := ClampUint8(-0.5); got != 0 {
		t.Errorf("ClampUint8(-0.5) = %d, want 0", got)
	}
}

func TestWeightedSumSaturates(t *testing.T) {
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}

	got := WeightedSum(white, white, 1, 1)
	if got != white {
		t.Errorf("WeightedSum(white, white, 1, 1) = %v, want saturated white", got)
	}
}

func TestInterpolateEndpointsAndMidpoint(t *testing.T) {
	ink := color.RGBA{A: 255}
	back := color.RGBA{R: 255, G: 255, B: 255, A: 255}

	if got := Interpolate(ink, back, 1); got != ink {
		t.Errorf("weight 1 = %v, want the stroke color", got)
	}
	if got := Interpolate(ink, back, 0); got != back {
		t.Errorf("weight 0 = %v, want the existing color", got)
	}

	mid := Interpolate(ink, back, 0.5)
	want := color.RGBA{R: 127, G: 127, B: 127, A: 255}
	if mid != want {
		t.Errorf("weight 0.5 = %v, want %v", mid, want)
	}
}
