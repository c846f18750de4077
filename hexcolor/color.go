// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: hexcolor/color.go
// Summary: RGBA color value and packed hex constructors.
// Usage: FromHex3/4/6/8 build colors from packed integers; Parse handles strings.

// Package hexcolor converts between packed or textual hex colors and RGBA channels.
package hexcolor

import (
	"image/color"

	"go.uber.org/zap"

	"github.com/framegrace/texelkit/internal/logging"
)

// Color holds red, green, blue and alpha as fractions in [0, 1].
type Color struct {
	R, G, B, A float64
}

// Channels are the 0–255 integer components of a Color.
type Channels struct {
	Red, Green, Blue, Alpha int
}

const (
	nibbleMax = 15
	byteMax   = 255
)

// Common colors
var (
	Black = Color{R: 0, G: 0, B: 0, A: 1}
	White = Color{R: 1, G: 1, B: 1, A: 1}
	Clear = Color{R: 0, G: 0, B: 0, A: 0}
)

// SetLogger installs l as the diagnostics logger shared by texelkit packages.
// Nil silences them.
func SetLogger(l *zap.Logger) {
	logging.Set(l)
}

// RGBA8 builds a color from 0–255 channels.
func RGBA8(r, g, b, a uint8) Color {
	return Color{
		R: float64(r) / byteMax,
		G: float64(g) / byteMax,
		B: float64(b) / byteMax,
		A: float64(a) / byteMax,
	}
}

// FromHex3 decodes the shorthand #RGB form. Each 4-bit channel is scaled to
// the full range (0xA -> 0xAA); alpha is opaque.
func FromHex3(v uint16) Color {
	return Color{
		R: float64((v&0xF00)>>8) / nibbleMax,
		G: float64((v&0x0F0)>>4) / nibbleMax,
		B: float64(v&0x00F) / nibbleMax,
		A: 1,
	}
}

// FromHex4 decodes the shorthand #RGBA form.
func FromHex4(v uint16) Color {
	return Color{
		R: float64((v&0xF000)>>12) / nibbleMax,
		G: float64((v&0x0F00)>>8) / nibbleMax,
		B: float64((v&0x00F0)>>4) / nibbleMax,
		A: float64(v&0x000F) / nibbleMax,
	}
}

// FromHex6 decodes an opaque #RRGGBB value.
func FromHex6(v uint32) Color {
	return FromHex6Alpha(v, 1)
}

// FromHex6Alpha decodes #RRGGBB with an explicit alpha in [0, 1].
func FromHex6Alpha(v uint32, alpha float64) Color {
	return Color{
		R: float64((v&0xFF0000)>>16) / byteMax,
		G: float64((v&0x00FF00)>>8) / byteMax,
		B: float64(v&0x0000FF) / byteMax,
		A: alpha,
	}
}

// FromHex8 decodes #RRGGBBAA.
func FromHex8(v uint32) Color {
	return Color{
		R: float64((v&0xFF000000)>>24) / byteMax,
		G: float64((v&0x00FF0000)>>16) / byteMax,
		B: float64((v&0x0000FF00)>>8) / byteMax,
		A: float64(v&0x000000FF) / byteMax,
	}
}

// Channels reports the color as 0–255 integers. Values are truncated, not
// rounded. ok is false when a component is outside [0, 1].
func (c Color) Channels() (Channels, bool) {
	if !c.valid() {
		return Channels{}, false
	}
	return Channels{
		Red:   toByte(c.R),
		Green: toByte(c.G),
		Blue:  toByte(c.B),
		Alpha: toByte(c.A),
	}, true
}

// NRGBA converts to the standard library's non-premultiplied color.
// Out-of-range components are clamped.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(toByte(clamp01(c.R))),
		G: uint8(toByte(clamp01(c.G))),
		B: uint8(toByte(clamp01(c.B))),
		A: uint8(toByte(clamp01(c.A))),
	}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// FromColor converts any color.Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA8(n.R, n.G, n.B, n.A)
}

func (c Color) valid() bool {
	return in01(c.R) && in01(c.G) && in01(c.B) && in01(c.A)
}

func in01(v float64) bool {
	return v >= 0 && v <= 1
}

func toByte(v float64) int {
	return int(v * byteMax)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
