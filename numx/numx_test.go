// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package numx

import (
	"math"
	"testing"
)

func TestRoundNearest(t *testing.T) {
	tests := []struct {
		v, step, want float64
	}{
		{4.8, 0.5, 5},
		{4.2, 0.5, 4},
		{4.61, 0.1, 4.6},
		{-4.8, 0.5, -5},
		{3.14, 1.1, 3.14},
		{3.14, 0, 3.14},
		{3.14, -0.5, 3.14},
		{2.5, 1, 3},
	}
	for _, tt := range tests {
		if got := RoundNearest(tt.v, tt.step); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("RoundNearest(%v, %v) = %v, want %v", tt.v, tt.step, got, tt.want)
		}
	}
}

func TestFloorNearest(t *testing.T) {
	tests := []struct {
		v, step, want float64
	}{
		{4.8, 0.5, 4.5},
		{4.61, 0.1, 4.6},
		{4.5, 0.5, 4.5},
		{-4.8, 0.5, -4.5},
		{3.14, 2, 3.14},
	}
	for _, tt := range tests {
		if got := FloorNearest(tt.v, tt.step); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("FloorNearest(%v, %v) = %v, want %v", tt.v, tt.step, got, tt.want)
		}
	}
}
