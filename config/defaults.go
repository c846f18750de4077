// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Default values for texelkit.json.

package config

// Section and key names read by texelkit commands.
const (
	SectionColor  = "color"
	SectionDecode = "decode"
	SectionLog    = "log"

	KeyDefaultColor = "default"
	KeyIncludeAlpha = "include_alpha"
	KeySwatch       = "swatch"
	KeyArray        = "key"
	KeyLevel        = "level"
)

func applySystemDefaults(cfg Config) {
	if cfg == nil {
		return
	}
	cfg.RegisterDefaults(SectionColor, Section{
		KeyDefaultColor: "#00000000",
		KeyIncludeAlpha: false,
		KeySwatch:       true,
	})
	cfg.RegisterDefaults(SectionDecode, Section{
		KeyArray: "items",
	})
	cfg.RegisterDefaults(SectionLog, Section{
		KeyLevel: "warn",
	})
}
