// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: hexcolor/interop.go
// Summary: Conversions to and from tcell, chroma and go-colorful colors.

package hexcolor

import (
	"math/rand"

	"github.com/alecthomas/chroma/v2"
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Tcell converts to a 24-bit tcell color. Alpha is dropped.
func (c Color) Tcell() tcell.Color {
	n := c.NRGBA()
	return tcell.NewRGBColor(int32(n.R), int32(n.G), int32(n.B))
}

// FromTcell converts a tcell color. ok is false for tcell.ColorDefault and
// other colors without an RGB value.
func FromTcell(tc tcell.Color) (Color, bool) {
	r, g, b := tc.RGB()
	if r < 0 || g < 0 || b < 0 {
		return Color{}, false
	}
	return RGBA8(uint8(r), uint8(g), uint8(b), byteMax), true
}

// Chroma converts to a chroma style colour. Alpha is dropped.
func (c Color) Chroma() chroma.Colour {
	n := c.NRGBA()
	return chroma.NewColour(n.R, n.G, n.B)
}

// FromChroma converts a chroma colour. ok is false for an unset colour.
func FromChroma(cc chroma.Colour) (Color, bool) {
	if !cc.IsSet() {
		return Color{}, false
	}
	return RGBA8(cc.Red(), cc.Green(), cc.Blue(), byteMax), true
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}
}

// Mix blends c toward other by t in [0, 1] through L*a*b* space, which keeps
// perceived lightness even. Alpha is interpolated linearly.
func (c Color) Mix(other Color, t float64) Color {
	t = clamp01(t)
	m := c.colorful().BlendLab(other.colorful(), t).Clamped()
	return Color{
		R: m.R,
		G: m.G,
		B: m.B,
		A: clamp01(c.A + (other.A-c.A)*t),
	}
}

// IsLight reports whether the color's L*a*b* lightness is above the midpoint.
func (c Color) IsLight() bool {
	l, _, _ := c.colorful().Lab()
	return l > 0.5
}

// Palette lists the saturated colors Random chooses from. Black and grays
// are left out.
var Palette = []Color{
	FromHex6(0xFF0000), // red
	FromHex6(0x0000FF), // blue
	FromHex6(0x00FFFF), // cyan
	FromHex6(0xFFFF00), // yellow
	FromHex6(0xFF00FF), // magenta
	FromHex6(0xFF8000), // orange
	FromHex6(0x800080), // purple
	FromHex6(0x996633), // brown
}

// Random returns a color from Palette. A nil r uses the global source.
func Random(r *rand.Rand) Color {
	if r == nil {
		return Palette[rand.Intn(len(Palette))]
	}
	return Palette[r.Intn(len(Palette))]
}
