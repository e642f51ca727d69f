package main

import (
	"image"
	"testing"
)

func TestDrawBoxes(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 32, 32))
	dst := drawBoxes(src, [][4]float32{{4, 4, 12, 12}})

	if dst.Bounds() != src.Bounds() {
		t.Fatalf("bounds changed: %v", dst.Bounds())
	}
	var touched bool
	for y := 0; y < 32 && !touched; y++ {
		for x := 0; x < 32; x++ {
			if r, g, _, _ := dst.At(x, y).RGBA(); r > 0 || g > 0 {
				touched = true
				break
			}
		}
	}
	if !touched {
		t.Fatal("no pixels drawn")
	}
	// Pixels far from the box stay untouched.
	if r, g, b, _ := dst.At(25, 25).RGBA(); r != 0 || g != 0 || b != 0 {
		t.Fatalf("pixel outside box modified: %v", dst.At(25, 25))
	}
}
