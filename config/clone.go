// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/clone.go
// Summary: Deep copy helpers for config maps.

package config

// Clone returns a deep copy of cfg. Nested maps become Sections; slices are
// copied element by element. Scalars are shared.
func Clone(cfg Config) Config {
	if cfg == nil {
		return nil
	}
	clone := make(Config, len(cfg))
	for name, value := range cfg {
		clone[name] = cloneValue(value)
	}
	return clone
}

func cloneValue(value interface{}) interface{} {
	switch v := value.(type) {
	case Section:
		return cloneSection(v)
	case map[string]interface{}:
		return cloneSection(v)
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, item := range v {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}

func cloneSection(src map[string]interface{}) Section {
	out := make(Section, len(src))
	for key, value := range src {
		out[key] = cloneValue(value)
	}
	return out
}
