// Package orbit evaluates trajectories of the Mandelbrot iteration z = z² + c.
package orbit

import (
	"iter"
	"math/cmplx"
)

// EscapeRadius is the bound beyond which an orbit is known to diverge.
const EscapeRadius = 2

const escapeRadiusSqr = EscapeRadius * EscapeRadius

// Points yields the orbit z₁, z₂, … of c starting from z₀ = 0.
// It stops before the first point with |z| > EscapeRadius, or after maxIter points.
// A sequence shorter than maxIter means c diverged within the budget.
func Points(c complex128, maxIter int) iter.Seq[complex128] {
	return func(yield func(complex128) bool) {
		var z complex128
		for range maxIter {
			z = z*z + c
			if normSqr(z) > escapeRadiusSqr {
				return
			}
			if !yield(z) {
				return
			}
		}
	}
}

// Collect materializes the orbit of c into buf, reusing its capacity.
func Collect(c complex128, maxIter int, buf []complex128) []complex128 {
	buf = buf[:0]
	var z complex128
	for range maxIter {
		z = z*z + c
		if normSqr(z) > escapeRadiusSqr {
			break
		}
		buf = append(buf, z)
	}
	return buf
}

// InMainCardioid reports whether c lies inside the main cardioid of the Mandelbrot set.
func InMainCardioid(c complex128) bool {
	root := cmplx.Sqrt(1 - 4*c)
	return normSqr(1+root) < 1 || normSqr(1-root) < 1
}

// InPeriod2Bulb reports whether c lies inside the disk of period 2 centered at -1.
func InPeriod2Bulb(c complex128) bool {
	return normSqr(c+1) < 1.0/16
}

// InInterior reports whether c is in a region whose orbits provably never escape.
func InInterior(c complex128) bool {
	return InMainCardioid(c) || InPeriod2Bulb(c)
}

func normSqr(z complex128) float64 {
	return real(z)*real(z) + imag(z)*imag(z)
}
