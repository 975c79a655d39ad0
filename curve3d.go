/*
Package curve3d models a small closed set of parametric 3D curves —
circles, ellipses and helixes — and evaluates their position and tangent
vector at a curve parameter t.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package curve3d

import (
	"math"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'curve3d'
func tracer() tracing.Trace {
	return tracing.Select("curve3d")
}

// === Numeric Data Type =====================================================

// TwoPi is the period of the trigonometric curve parameter.
const TwoPi float64 = 2 * math.Pi

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// isPositive is a predicate for shape parameters: finite and > 0.
func isPositive(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0) && n > 0
}
