// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package decode

import (
	"errors"
	"testing"
)

type status string

const (
	statusActive  status = "active"
	statusRetired status = "retired"
)

type priority int

const (
	priorityLow  priority = 1
	priorityHigh priority = 5
)

func mustKeyed(t *testing.T, doc string) Keyed {
	t.Helper()
	v, err := ParseJSON([]byte(doc))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	k, err := AsKeyed(v, "")
	if err != nil {
		t.Fatalf("AsKeyed: %v", err)
	}
	return k
}

func TestKeyedScalars(t *testing.T) {
	k := mustKeyed(t, `{
		"count": "42",
		"native": 42,
		"bad": "abc",
		"size": "7",
		"ratio": "0.25",
		"enabled": 1,
		"disabled": "0",
		"maybe": "yes",
		"name": "Ferrari",
		"nothing": null
	}`)

	if got, err := k.Int("count"); err != nil || got != 42 {
		t.Errorf(`Int("count") = %d, %v`, got, err)
	}
	if got, err := k.Int("native"); err != nil || got != 42 {
		t.Errorf(`Int("native") = %d, %v`, got, err)
	}
	if got, err := k.Int64("native"); err != nil || got != 42 {
		t.Errorf(`Int64("native") = %d, %v`, got, err)
	}
	if _, err := k.Int("bad"); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf(`Int("bad") error = %v`, err)
	}
	if got, err := k.Uint("size"); err != nil || got != 7 {
		t.Errorf(`Uint("size") = %d, %v`, got, err)
	}
	if got, err := k.Float("ratio"); err != nil || got != 0.25 {
		t.Errorf(`Float("ratio") = %v, %v`, got, err)
	}
	if got, err := k.Bool("enabled"); err != nil || !got {
		t.Errorf(`Bool("enabled") = %v, %v`, got, err)
	}
	if got, err := k.Bool("disabled"); err != nil || got {
		t.Errorf(`Bool("disabled") = %v, %v`, got, err)
	}
	if _, err := k.Bool("maybe"); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf(`Bool("maybe") error = %v`, err)
	}
	if got, err := k.String("name"); err != nil || got != "Ferrari" {
		t.Errorf(`String("name") = %q, %v`, got, err)
	}
	if _, err := k.Int("absent"); !errors.Is(err, ErrMissingKey) {
		t.Errorf(`Int("absent") error = %v`, err)
	}
	if _, err := k.Int("nothing"); !errors.Is(err, ErrValueNotFound) {
		t.Errorf(`Int("nothing") error = %v`, err)
	}
}

func TestIfPresent(t *testing.T) {
	k := mustKeyed(t, `{"a": "12", "b": "x12", "c": null, "d": 12, "e": "3.5", "f": "9"}`)

	got, err := k.IntIfPresent("a")
	if err != nil || got == nil || *got != 12 {
		t.Errorf(`IntIfPresent("a") = %v, %v`, got, err)
	}
	if got, err := k.IntIfPresent("missing"); err != nil || got != nil {
		t.Errorf(`IntIfPresent("missing") = %v, %v; want nil, nil`, got, err)
	}
	if got, err := k.IntIfPresent("c"); err != nil || got != nil {
		t.Errorf(`IntIfPresent("c") = %v, %v; want nil, nil`, got, err)
	}
	if _, err := k.IntIfPresent("b"); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf(`IntIfPresent("b") error = %v, want type mismatch`, err)
	}
	// A present value must be a string.
	if _, err := k.IntIfPresent("d"); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf(`IntIfPresent("d") error = %v, want type mismatch`, err)
	}
	if got, err := k.UintIfPresent("f"); err != nil || got == nil || *got != 9 {
		t.Errorf(`UintIfPresent("f") = %v, %v`, got, err)
	}
	if _, err := k.UintIfPresent("b"); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf(`UintIfPresent("b") error = %v`, err)
	}
	if got, err := k.FloatIfPresent("e"); err != nil || got == nil || *got != 3.5 {
		t.Errorf(`FloatIfPresent("e") = %v, %v`, got, err)
	}
	if got, err := k.FloatIfPresent("missing"); err != nil || got != nil {
		t.Errorf(`FloatIfPresent("missing") = %v, %v`, got, err)
	}
}

func TestStringOrInt(t *testing.T) {
	k := mustKeyed(t, `{"a": "a", "b": "1", "c": 2, "d": true}`)
	tests := []struct {
		key     string
		want    int
		wantErr bool
	}{
		{key: "a", want: 0},
		{key: "b", want: 1},
		{key: "c", want: 2},
		{key: "d", wantErr: true},
		{key: "missing", wantErr: true},
	}
	for _, tt := range tests {
		got, err := k.StringOrInt(tt.key)
		if tt.wantErr {
			if err == nil {
				t.Errorf("StringOrInt(%q) expected error", tt.key)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("StringOrInt(%q) = %d, %v; want %d", tt.key, got, err, tt.want)
		}
	}
}

func TestDefaults(t *testing.T) {
	k := mustKeyed(t, `{"n": "5", "f": "x", "b": "true", "s": 3}`)
	if got := k.IntOr("n", 1); got != 5 {
		t.Errorf("IntOr = %d", got)
	}
	if got := k.IntOr("missing", 9); got != 9 {
		t.Errorf("IntOr missing = %d", got)
	}
	if got := k.FloatOr("f", 1.5); got != 1.5 {
		t.Errorf("FloatOr malformed = %v", got)
	}
	if got := k.BoolOr("b", false); !got {
		t.Errorf("BoolOr = %v", got)
	}
	if got := k.StringOr("s", "def"); got != "def" {
		t.Errorf("StringOr non-string = %q", got)
	}
}

func TestEnums(t *testing.T) {
	k := mustKeyed(t, `{"status": "active", "old": "retired", "bogus": "sleeping", "prio": "5", "low": 1, "none": 3}`)

	if got, err := StringEnum(k, "status", statusActive, statusRetired); err != nil || got != statusActive {
		t.Errorf("StringEnum(status) = %q, %v", got, err)
	}
	if got, err := StringEnum(k, "old", statusActive, statusRetired); err != nil || got != statusRetired {
		t.Errorf("StringEnum(old) = %q, %v", got, err)
	}
	_, err := StringEnum(k, "bogus", statusActive, statusRetired)
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("StringEnum(bogus) error = %v", err)
	}
	if de, _ := AsError(err); de.Expected != "enum status" || de.Path != "bogus" {
		t.Errorf("StringEnum error = %+v", de)
	}

	if got, err := IntEnum(k, "prio", priorityLow, priorityHigh); err != nil || got != priorityHigh {
		t.Errorf("IntEnum(prio) = %d, %v", got, err)
	}
	if got, err := IntEnum(k, "low", priorityLow, priorityHigh); err != nil || got != priorityLow {
		t.Errorf("IntEnum(low) = %d, %v", got, err)
	}
	if _, err := IntEnum(k, "none", priorityLow, priorityHigh); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("IntEnum(none) error = %v", err)
	}
	if _, err := IntEnum(k, "status", priorityLow, priorityHigh); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("IntEnum(status) error = %v", err)
	}
}

func TestCoordinate(t *testing.T) {
	k := mustKeyed(t, `{"place": {"lat": "45.4642", "lon": 9.19}, "broken": {"lat": 1, "lon": "east"}}`)

	place, err := k.Nested("place")
	if err != nil {
		t.Fatalf("Nested: %v", err)
	}
	got, err := place.Coordinate("lat", "lon")
	if err != nil {
		t.Fatalf("Coordinate: %v", err)
	}
	if got != (Coordinate{Latitude: 45.4642, Longitude: 9.19}) {
		t.Errorf("Coordinate = %+v", got)
	}

	broken, _ := k.Nested("broken")
	_, err = broken.Coordinate("lat", "lon")
	de, ok := AsError(err)
	if !ok || de.Path != "broken.lon" || de.Expected != "float" {
		t.Errorf("Coordinate error = %v", err)
	}

	if _, err := place.Coordinate("lat", "lng"); !errors.Is(err, ErrMissingKey) {
		t.Errorf("Coordinate missing key error = %v", err)
	}
}

func TestNestedPaths(t *testing.T) {
	k := mustKeyed(t, `{"a": {"b": {"c": "x"}}, "list": [1, 2], "scalar": 3}`)
	a, err := k.Nested("a")
	if err != nil {
		t.Fatal(err)
	}
	b, err := a.Nested("b")
	if err != nil {
		t.Fatal(err)
	}
	if b.Path() != "a.b" || b.KeyPath("c") != "a.b.c" {
		t.Errorf("paths = %q, %q", b.Path(), b.KeyPath("c"))
	}
	_, err = b.Int("c")
	if de, ok := AsError(err); !ok || de.Path != "a.b.c" {
		t.Errorf("nested error = %v", err)
	}
	if _, err := k.Nested("scalar"); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("Nested(scalar) error = %v", err)
	}
	s, err := k.Seq("list")
	if err != nil {
		t.Fatal(err)
	}
	if _, p := s.At(1); p != "list[1]" {
		t.Errorf("At(1) path = %q", p)
	}
	if _, err := k.Seq("a"); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("Seq(object) error = %v", err)
	}
	if !k.Has("list") || k.Has("nope") {
		t.Errorf("Has mismatch")
	}
}
