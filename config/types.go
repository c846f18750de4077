// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/types.go
// Summary: Typed access helpers for config store data.
// Usage: Getters share the decode package's coercion rules, so "42", 42 and
// 42.0 all read as the int 42. Malformed values fall back to the default.

package config

import (
	"math"

	"github.com/framegrace/texelkit/decode"
	"github.com/framegrace/texelkit/hexcolor"
)

// Section returns the named section or nil if missing.
func (c Config) Section(sectionName string) Section {
	if c == nil {
		return nil
	}
	if sectionName == "" {
		return Section(c)
	}
	if raw, ok := c[sectionName]; ok {
		switch v := raw.(type) {
		case Section:
			return v
		case map[string]interface{}:
			return Section(v)
		}
	}
	return nil
}

// RegisterDefaults ensures a section has defaults without overwriting existing keys.
func (c Config) RegisterDefaults(sectionName string, defaults Section) {
	if c == nil || defaults == nil {
		return
	}
	section := c.Section(sectionName)
	if section == nil {
		section = make(Section)
		if sectionName == "" {
			for k, v := range defaults {
				if _, ok := c[k]; !ok {
					c[k] = v
				}
			}
			return
		}
		c[sectionName] = section
	}

	for key, value := range defaults {
		if _, ok := section[key]; !ok {
			section[key] = value
		}
	}
}

// Keyed exposes a section to the decode package, with paths rooted at the
// section name.
func (c Config) Keyed(sectionName string) (decode.Keyed, bool) {
	section := c.Section(sectionName)
	if section == nil {
		return decode.Keyed{}, false
	}
	v, err := decode.FromAny(map[string]interface{}(section))
	if err != nil {
		return decode.Keyed{}, false
	}
	k, err := decode.AsKeyed(v, sectionName)
	if err != nil {
		return decode.Keyed{}, false
	}
	return k, true
}

// lookup returns the decoded value stored at sectionName.key.
func (c Config) lookup(sectionName, key string) (decode.Value, string, bool) {
	section := c.Section(sectionName)
	if section == nil {
		return decode.Value{}, "", false
	}
	raw, ok := section[key]
	if !ok {
		return decode.Value{}, "", false
	}
	v, err := decode.FromAny(raw)
	if err != nil {
		return decode.Value{}, "", false
	}
	path := key
	if sectionName != "" {
		path = sectionName + "." + key
	}
	return v, path, true
}

// GetString retrieves a string value from the config.
func (c Config) GetString(sectionName, key, defaultValue string) string {
	v, path, ok := c.lookup(sectionName, key)
	if !ok {
		return defaultValue
	}
	s, err := decode.AsString(v, path)
	if err != nil {
		return defaultValue
	}
	return s
}

// GetFloat retrieves a float value from the config.
func (c Config) GetFloat(sectionName, key string, defaultValue float64) float64 {
	v, path, ok := c.lookup(sectionName, key)
	if !ok {
		return defaultValue
	}
	f, err := decode.AsFloat(v, path)
	if err != nil {
		return defaultValue
	}
	return f
}

// GetInt retrieves an integer value from the config.
func (c Config) GetInt(sectionName, key string, defaultValue int) int {
	v, path, ok := c.lookup(sectionName, key)
	if !ok {
		return defaultValue
	}
	i, err := decode.AsInt(v, path)
	if err != nil || i < math.MinInt || i > math.MaxInt {
		return defaultValue
	}
	return int(i)
}

// GetBool retrieves a boolean value from the config.
func (c Config) GetBool(sectionName, key string, defaultValue bool) bool {
	v, path, ok := c.lookup(sectionName, key)
	if !ok {
		return defaultValue
	}
	b, err := decode.AsBool(v, path)
	if err != nil {
		return defaultValue
	}
	return b
}

// GetColor retrieves a hex color from the config.
func (c Config) GetColor(sectionName, key string, defaultValue hexcolor.Color) hexcolor.Color {
	s := c.GetString(sectionName, key, "")
	if s == "" {
		return defaultValue
	}
	return hexcolor.ParseOr(s, defaultValue)
}
