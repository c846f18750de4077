// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: decode/fields.go
// Summary: Typed field getters on Keyed, optional variants and enum lookup.

package decode

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
)

// Int decodes key with the AsInt rules.
func (k Keyed) Int(key string) (int, error) {
	v, p, err := k.require(key, "int")
	if err != nil {
		return 0, err
	}
	i, err := AsInt(v, p)
	if err != nil {
		return 0, err
	}
	if i < math.MinInt || i > math.MaxInt {
		return 0, &Error{Kind: TypeMismatch, Path: p, Expected: "int", Detail: "value overflows int"}
	}
	return int(i), nil
}

// Int64 decodes key with the AsInt rules.
func (k Keyed) Int64(key string) (int64, error) {
	v, p, err := k.require(key, "int")
	if err != nil {
		return 0, err
	}
	return AsInt(v, p)
}

// Uint decodes key with the AsUint rules.
func (k Keyed) Uint(key string) (uint, error) {
	v, p, err := k.require(key, "uint")
	if err != nil {
		return 0, err
	}
	u, err := AsUint(v, p)
	if err != nil {
		return 0, err
	}
	if u > math.MaxUint {
		return 0, &Error{Kind: TypeMismatch, Path: p, Expected: "uint", Detail: "value overflows uint"}
	}
	return uint(u), nil
}

// Float decodes key with the AsFloat rules.
func (k Keyed) Float(key string) (float64, error) {
	v, p, err := k.require(key, "float")
	if err != nil {
		return 0, err
	}
	return AsFloat(v, p)
}

// Bool decodes key with the AsBool rules.
func (k Keyed) Bool(key string) (bool, error) {
	v, p, err := k.require(key, "bool")
	if err != nil {
		return false, err
	}
	return AsBool(v, p)
}

// String decodes key as a string.
func (k Keyed) String(key string) (string, error) {
	v, p, err := k.require(key, "string")
	if err != nil {
		return "", err
	}
	return AsString(v, p)
}

// StringOrInt reads an int that may arrive as a string. A string that is
// not a number yields 0 rather than an error; any other value goes through
// the AsInt rules.
func (k Keyed) StringOrInt(key string) (int, error) {
	v, ok := k.fields[key]
	if ok && v.kind == KindString {
		i, err := strconv.Atoi(v.text)
		if err != nil {
			return 0, nil
		}
		return i, nil
	}
	return k.Int(key)
}

// presentString implements the optional-field contract: absent or null
// means no value; anything present must be a string.
func (k Keyed) presentString(key, expected string) (string, string, bool, error) {
	p := joinKey(k.path, key)
	v, ok := k.fields[key]
	if !ok || v.kind == KindNull {
		return "", p, false, nil
	}
	if v.kind != KindString {
		return "", p, false, mismatch(p, expected, v)
	}
	return v.text, p, true, nil
}

// IntIfPresent returns nil when key is absent or null. A present value must
// be a string holding a base-10 integer; anything else is a TypeMismatch.
func (k Keyed) IntIfPresent(key string) (*int, error) {
	s, p, ok, err := k.presentString(key, "int")
	if err != nil || !ok {
		return nil, err
	}
	i, perr := strconv.Atoi(s)
	if perr != nil {
		return nil, mismatch(p, "int", String(s))
	}
	return &i, nil
}

// UintIfPresent is the unsigned form of IntIfPresent.
func (k Keyed) UintIfPresent(key string) (*uint, error) {
	s, p, ok, err := k.presentString(key, "uint")
	if err != nil || !ok {
		return nil, err
	}
	u64, perr := strconv.ParseUint(s, 10, 0)
	if perr != nil {
		return nil, mismatch(p, "uint", String(s))
	}
	u := uint(u64)
	return &u, nil
}

// FloatIfPresent is the floating point form of IntIfPresent.
func (k Keyed) FloatIfPresent(key string) (*float64, error) {
	s, p, ok, err := k.presentString(key, "float")
	if err != nil || !ok {
		return nil, err
	}
	f, perr := strconv.ParseFloat(s, 64)
	if perr != nil {
		return nil, mismatch(p, "float", String(s))
	}
	return &f, nil
}

// IntOr returns the int at key, or def when it is missing or malformed.
func (k Keyed) IntOr(key string, def int) int {
	if i, err := k.Int(key); err == nil {
		return i
	}
	return def
}

// FloatOr returns the float at key, or def when it is missing or malformed.
func (k Keyed) FloatOr(key string, def float64) float64 {
	if f, err := k.Float(key); err == nil {
		return f
	}
	return def
}

// BoolOr returns the bool at key, or def when it is missing or malformed.
func (k Keyed) BoolOr(key string, def bool) bool {
	if b, err := k.Bool(key); err == nil {
		return b
	}
	return def
}

// StringOr returns the string at key, or def when it is missing or not a string.
func (k Keyed) StringOr(key, def string) string {
	if s, err := k.String(key); err == nil {
		return s
	}
	return def
}

// StringEnum decodes key as a string and matches it against cases.
func StringEnum[T ~string](k Keyed, key string, cases ...T) (T, error) {
	var zero T
	expected := enumName[T]()
	v, p, err := k.require(key, expected)
	if err != nil {
		return zero, err
	}
	raw, err := AsString(v, p)
	if err != nil {
		return zero, err
	}
	for _, c := range cases {
		if string(c) == raw {
			return c, nil
		}
	}
	return zero, &Error{Kind: TypeMismatch, Path: p, Expected: expected, Detail: fmt.Sprintf("no case matches %q", raw)}
}

// IntEnum decodes key with the AsInt rules and matches it against cases.
func IntEnum[T ~int](k Keyed, key string, cases ...T) (T, error) {
	var zero T
	expected := enumName[T]()
	v, p, err := k.require(key, expected)
	if err != nil {
		return zero, err
	}
	raw, err := AsInt(v, p)
	if err != nil {
		return zero, err
	}
	for _, c := range cases {
		if int64(c) == raw {
			return c, nil
		}
	}
	return zero, &Error{Kind: TypeMismatch, Path: p, Expected: expected, Detail: fmt.Sprintf("no case matches %d", raw)}
}

func enumName[T any]() string {
	return "enum " + reflect.TypeFor[T]().Name()
}

// Coordinate is a latitude/longitude pair in degrees.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// Coordinate decodes both keys with the AsFloat rules. Either failure fails
// the pair.
func (k Keyed) Coordinate(latKey, lonKey string) (Coordinate, error) {
	lat, err := k.Float(latKey)
	if err != nil {
		return Coordinate{}, err
	}
	lon, err := k.Float(lonKey)
	if err != nil {
		return Coordinate{}, err
	}
	return Coordinate{Latitude: lat, Longitude: lon}, nil
}
