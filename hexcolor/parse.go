// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: hexcolor/parse.go
// Summary: Hex string parsing and formatting.
// Usage: Parse("#A2C"), ParseOr(s, hexcolor.Clear), c.Hex(true).

package hexcolor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/framegrace/texelkit/internal/logging"
)

// ErrInvalidFormat is wrapped by every Parse failure.
var ErrInvalidFormat = errors.New("hexcolor: invalid format")

// Parse decodes a hex color string. Surrounding whitespace and one leading
// '#' are ignored. The digit count selects the layout:
//
//	3 -> RGB, 4 -> RGBA, 6 -> RRGGBB, 8 -> RRGGBBAA
//
// Input is case-insensitive.
func Parse(s string) (Color, error) {
	hex := strings.TrimSpace(s)
	hex = strings.TrimPrefix(hex, "#")
	if hex == "" {
		return Color{}, fmt.Errorf("%w: empty color string %q", ErrInvalidFormat, s)
	}

	// Reject non-hex input first so the error names the offending character.
	for i := 0; i < len(hex); i++ {
		if !isHexDigit(hex[i]) {
			logging.L().Debug("Color: Scan failed", zap.String("input", s))
			return Color{}, fmt.Errorf("%w: non-hex character %q in %q", ErrInvalidFormat, hex[i], s)
		}
	}

	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		logging.L().Debug("Color: Invalid length", zap.String("input", s), zap.Int("digits", len(hex)))
		return Color{}, fmt.Errorf("%w: %q has %d hex digits after '#', want 3, 4, 6 or 8",
			ErrInvalidFormat, s, len(hex))
	}

	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	switch len(hex) {
	case 3:
		return FromHex3(uint16(value)), nil
	case 4:
		return FromHex4(uint16(value)), nil
	case 6:
		return FromHex6(uint32(value)), nil
	default:
		return FromHex8(uint32(value)), nil
	}
}

// ParseOr is Parse with a fallback: it returns def when s is not a valid color.
func ParseOr(s string, def Color) Color {
	c, err := Parse(s)
	if err != nil {
		return def
	}
	return c
}

// MustParse is like Parse but panics on error. Intended for literals.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats the color as "#RRGGBB", or "#RRGGBBAA" when includeAlpha is set.
// Digits are uppercase. An empty string is returned if any component lies
// outside [0, 1]; the constructors never produce such a color.
func (c Color) Hex(includeAlpha bool) string {
	ch, ok := c.Channels()
	if !ok {
		return ""
	}
	if includeAlpha {
		return fmt.Sprintf("#%02X%02X%02X%02X", ch.Red, ch.Green, ch.Blue, ch.Alpha)
	}
	return fmt.Sprintf("#%02X%02X%02X", ch.Red, ch.Green, ch.Blue)
}

// String implements fmt.Stringer using the alpha-inclusive form.
func (c Color) String() string {
	if s := c.Hex(true); s != "" {
		return s
	}
	return fmt.Sprintf("Color{%g, %g, %g, %g}", c.R, c.G, c.B, c.A)
}

// MarshalText encodes the color as "#RRGGBBAA".
func (c Color) MarshalText() ([]byte, error) {
	s := c.Hex(true)
	if s == "" {
		return nil, fmt.Errorf("hexcolor: component out of range in %v", [4]float64{c.R, c.G, c.B, c.A})
	}
	return []byte(s), nil
}

// UnmarshalText accepts any form Parse accepts.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func isHexDigit(b byte) bool {
	switch {
	case '0' <= b && b <= '9':
		return true
	case 'a' <= b && b <= 'f':
		return true
	case 'A' <= b && b <= 'F':
		return true
	}
	return false
}
