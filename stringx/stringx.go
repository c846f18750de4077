// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: stringx/stringx.go
// Summary: Small string helpers: trimming, capitalization, display-width fitting.

// Package stringx collects string helpers shared by texelkit commands.
package stringx

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Trimmed strips leading and trailing whitespace and newlines.
func Trimmed(s string) string {
	return strings.TrimSpace(s)
}

// WhitespacesRemoved drops every whitespace rune.
func WhitespacesRemoved(s string) string {
	return strings.Join(strings.FieldsFunc(s, unicode.IsSpace), "")
}

// FirstCharacterCapitalized upper-cases the first rune and lower-cases the
// rest: "hELLO" -> "Hello".
func FirstCharacterCapitalized(s string) string {
	if s == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(s)
	// Casers are stateful, so build fresh ones per call.
	return cases.Upper(language.Und).String(s[:size]) + cases.Lower(language.Und).String(s[size:])
}

// ContainsFold reports whether substr is within s, ignoring case.
func ContainsFold(s, substr string) bool {
	lower := cases.Lower(language.Und)
	return strings.Contains(lower.String(s), lower.String(substr))
}

// IntValue parses s as a base-10 int, returning 0 when it is not one.
func IntValue(s string) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return i
}

// IsNilOrEmpty reports whether s is nil or points at "".
func IsNilOrEmpty(s *string) bool {
	return s == nil || *s == ""
}

// Width returns the number of terminal cells s occupies.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most width cells, ending with tail when cut.
func Truncate(s string, width int, tail string) string {
	return runewidth.Truncate(s, width, tail)
}

// PadRight fills s with spaces up to width cells. Longer strings are
// returned unchanged.
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

var romanTable = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// Roman formats n as a Roman numeral. Zero and negative numbers yield "".
func Roman(n int) string {
	var sb strings.Builder
	for _, entry := range romanTable {
		for n >= entry.value {
			sb.WriteString(entry.symbol)
			n -= entry.value
		}
	}
	return sb.String()
}
