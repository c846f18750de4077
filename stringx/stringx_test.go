// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package stringx

import "testing"

func TestFirstCharacterCapitalized(t *testing.T) {
	tests := map[string]string{
		"":       "",
		"a":      "A",
		"hELLO":  "Hello",
		"élan":   "Élan",
		"123abc": "123abc",
	}
	for in, want := range tests {
		if got := FirstCharacterCapitalized(in); got != want {
			t.Errorf("FirstCharacterCapitalized(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestWhitespace(t *testing.T) {
	if got := Trimmed("  \n hi there \t"); got != "hi there" {
		t.Errorf("Trimmed = %q", got)
	}
	if got := WhitespacesRemoved(" a b\tc\nd "); got != "abcd" {
		t.Errorf("WhitespacesRemoved = %q", got)
	}
}

func TestContainsFold(t *testing.T) {
	if !ContainsFold("Texelation", "XELA") {
		t.Errorf("ContainsFold should match ignoring case")
	}
	if ContainsFold("Texelation", "xyz") {
		t.Errorf("ContainsFold matched unrelated text")
	}
}

func TestIntValueAndNil(t *testing.T) {
	if IntValue("42") != 42 || IntValue("x") != 0 {
		t.Errorf("IntValue mismatch")
	}
	empty := ""
	full := "x"
	if !IsNilOrEmpty(nil) || !IsNilOrEmpty(&empty) || IsNilOrEmpty(&full) {
		t.Errorf("IsNilOrEmpty mismatch")
	}
}

func TestDisplayWidth(t *testing.T) {
	if got := Width("日本"); got != 4 {
		t.Errorf("Width(日本) = %d, want 4", got)
	}
	if got := Truncate("日本語テキスト", 7, "…"); Width(got) > 7 {
		t.Errorf("Truncate width = %d, want <= 7 (%q)", Width(got), got)
	}
	if got := Truncate("short", 10, "…"); got != "short" {
		t.Errorf("Truncate short = %q", got)
	}
	if got := PadRight("ab", 4); got != "ab  " {
		t.Errorf("PadRight = %q", got)
	}
	if got := PadRight("abcdef", 4); got != "abcdef" {
		t.Errorf("PadRight long = %q", got)
	}
}

func TestRoman(t *testing.T) {
	tests := map[int]string{
		0:    "",
		1:    "I",
		4:    "IV",
		9:    "IX",
		14:   "XIV",
		1994: "MCMXCIV",
		2025: "MMXXV",
		-3:   "",
	}
	for n, want := range tests {
		if got := Roman(n); got != want {
			t.Errorf("Roman(%d) = %q, want %q", n, got, want)
		}
	}
}
