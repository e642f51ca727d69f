package main

import "math"

// OptimalAspect returns the aspect ratio minimizing the total
// max-ratio distortion over the observed aspect ratios.
func OptimalAspect(aspects []float64) float64 {
	f := func(a float64) (y float64) {
		for _, xi := range aspects {
			y += 1 - 1/math.Max(xi/a, a/xi)
		}
		return
	}
	amin := aspects[argmin(aspects)]
	amax := aspects[argmax(aspects)]
	return goldenSearch(f, amin, amax, 1e-6)
}

// Golden-section search for the minimum of a unimodal f on [a, b].
func goldenSearch(f func(float64) float64, a, b, tol float64) float64 {
	const invPhi = 0.6180339887498949
	c := b - (b-a)*invPhi
	d := a + (b-a)*invPhi
	for math.Abs(b-a) > tol {
		if f(c) < f(d) {
			b = d
		} else {
			a = c
		}
		c = b - (b-a)*invPhi
		d = a + (b-a)*invPhi
	}
	return (a + b) / 2
}

// Assumes that len(x) >= 1.
func argmin(x []float64) int {
	var arg int
	for i, xi := range x {
		if xi < x[arg] {
			arg = i
		}
	}
	return arg
}

// Assumes that len(x) >= 1.
func argmax(x []float64) int {
	var arg int
	for i, xi := range x {
		if xi > x[arg] {
			arg = i
		}
	}
	return arg
}
