// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: numx/numx.go
// Summary: Rounding to a fractional step (0.5, 0.1, 0.25).

// Package numx rounds floating point values to a fractional step.
package numx

import "math"

// RoundNearest rounds v to the closest multiple of step, halves away from
// zero. step must lie in (0, 1]; any other step returns v unchanged.
//
//	RoundNearest(4.8, 0.5)  // 5
//	RoundNearest(4.61, 0.1) // 4.6
func RoundNearest(v, step float64) float64 {
	if !validStep(step) {
		return v
	}
	n := 1 / step
	return math.Round(v*n) / n
}

// FloorNearest drops v to a multiple of step, truncating toward zero.
// step must lie in (0, 1]; any other step returns v unchanged.
//
//	FloorNearest(4.8, 0.5) // 4.5
func FloorNearest(v, step float64) float64 {
	if !validStep(step) {
		return v
	}
	return math.Trunc(v/step) * step
}

func validStep(step float64) bool {
	return step > 0 && step <= 1
}
