// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"encoding/json"
	"testing"

	"github.com/framegrace/texelkit/hexcolor"
)

func TestTypedGettersCoerce(t *testing.T) {
	var cfg Config
	if err := json.Unmarshal([]byte(`{
		"view": {
			"width": "80",
			"height": 24,
			"ratio": "1.5",
			"wrap": 1,
			"bell": "false",
			"title": "main",
			"accent": "#A3C",
			"broken": "#12",
			"bad_int": "wide"
		}
	}`), &cfg); err != nil {
		t.Fatal(err)
	}

	if got := cfg.GetInt("view", "width", 0); got != 80 {
		t.Errorf("width = %d", got)
	}
	if got := cfg.GetInt("view", "height", 0); got != 24 {
		t.Errorf("height = %d", got)
	}
	if got := cfg.GetInt("view", "bad_int", 7); got != 7 {
		t.Errorf("bad_int = %d, want default", got)
	}
	if got := cfg.GetFloat("view", "ratio", 0); got != 1.5 {
		t.Errorf("ratio = %v", got)
	}
	if !cfg.GetBool("view", "wrap", false) {
		t.Errorf("wrap should be true")
	}
	if cfg.GetBool("view", "bell", true) {
		t.Errorf("bell should be false")
	}
	if got := cfg.GetString("view", "title", ""); got != "main" {
		t.Errorf("title = %q", got)
	}
	if got := cfg.GetString("view", "width", "x"); got != "80" {
		t.Errorf("width as string = %q", got)
	}
	if got := cfg.GetString("view", "height", "x"); got != "x" {
		t.Errorf("numeric height as string should fall back, got %q", got)
	}
	if got := cfg.GetColor("view", "accent", hexcolor.Black).Hex(false); got != "#AA33CC" {
		t.Errorf("accent = %s", got)
	}
	if got := cfg.GetColor("view", "broken", hexcolor.White); got != hexcolor.White {
		t.Errorf("broken color should fall back, got %v", got)
	}
	if got := cfg.GetInt("missing", "width", 3); got != 3 {
		t.Errorf("missing section = %d", got)
	}
}

func TestKeyedSection(t *testing.T) {
	cfg := Config{"net": Section{"port": "8080"}}
	k, ok := cfg.Keyed("net")
	if !ok {
		t.Fatal("Keyed(net) not found")
	}
	port, err := k.Int("port")
	if err != nil || port != 8080 {
		t.Errorf("port = %d, %v", port, err)
	}
	if _, err := k.Int("host"); err == nil || k.KeyPath("host") != "net.host" {
		t.Errorf("missing host error = %v", err)
	}
	if _, ok := cfg.Keyed("none"); ok {
		t.Errorf("Keyed(none) should not be found")
	}
}

func TestRegisterDefaultsDoesNotOverwrite(t *testing.T) {
	cfg := Config{"a": Section{"x": 1}}
	cfg.RegisterDefaults("a", Section{"x": 2, "y": 3})
	cfg.RegisterDefaults("b", Section{"z": 4})
	cfg.RegisterDefaults("", Section{"top": true})

	if got := cfg.GetInt("a", "x", 0); got != 1 {
		t.Errorf("a.x = %d, want 1", got)
	}
	if got := cfg.GetInt("a", "y", 0); got != 3 {
		t.Errorf("a.y = %d, want 3", got)
	}
	if got := cfg.GetInt("b", "z", 0); got != 4 {
		t.Errorf("b.z = %d, want 4", got)
	}
	if !cfg.GetBool("", "top", false) {
		t.Errorf("top-level default missing")
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := Config{
		"a":    map[string]interface{}{"list": []interface{}{"x", map[string]interface{}{"k": "v"}}},
		"flat": 1,
	}
	clone := Clone(orig)

	clone.Section("a")["list"].([]interface{})[0] = "changed"
	clone.Section("a")["list"].([]interface{})[1].(Section)["k"] = "changed"

	list := orig.Section("a")["list"].([]interface{})
	if list[0] != "x" {
		t.Errorf("clone shares slice with original")
	}
	if list[1].(map[string]interface{})["k"] != "v" {
		t.Errorf("clone shares nested map with original")
	}
	if Clone(nil) != nil {
		t.Errorf("Clone(nil) should be nil")
	}
}

type level int

func TestNumbersKeepFullPrecision(t *testing.T) {
	cfg, err := parseConfig([]byte(`{"s": {"big": 9007199254740993, "huge": 9223372036854775808, "small": -5}}`))
	if err != nil {
		t.Fatal(err)
	}
	if got := cfg.GetInt("s", "big", -1); int64(got) != 9007199254740993 {
		t.Errorf("big = %d, want 9007199254740993", got)
	}
	if got := cfg.GetInt("s", "huge", -1); got != -1 {
		t.Errorf("huge = %d, want default for a value beyond int", got)
	}
	if got := cfg.GetInt("s", "small", 0); got != -5 {
		t.Errorf("small = %d", got)
	}
	if got := cfg.GetFloat("s", "big", 0); got != 9007199254740992 {
		t.Errorf("big as float = %v", got)
	}
}

func TestGettersAcceptNamedTypes(t *testing.T) {
	cfg := Config{"ui": Section{"level": level(3), "name": stringName("x")}}
	if got := cfg.GetInt("ui", "level", -1); got != 3 {
		t.Errorf("level = %d, want 3", got)
	}
	if got := cfg.GetString("ui", "name", ""); got != "x" {
		t.Errorf("name = %q", got)
	}
}

type stringName string
