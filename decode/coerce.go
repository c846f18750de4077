// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: decode/coerce.go
// Summary: Scalar coercion rules applied in a fixed priority order.
// Usage: AsInt(v, "items[0].count") and friends; Keyed wraps these per field.

package decode

import (
	"math"
	"strconv"
)

// AsInt coerces v to an int64. Accepted, in order:
//   - an integer number literal
//   - a number with an integral value (e.g. 4.0, 1e3)
//   - a string holding a base-10 integer
//
// Anything else is a TypeMismatch.
func AsInt(v Value, path string) (int64, error) {
	switch v.kind {
	case KindNumber:
		if i, err := strconv.ParseInt(v.text, 10, 64); err == nil {
			return i, nil
		}
		if f, err := strconv.ParseFloat(v.text, 64); err == nil && isIntegral(f) &&
			f >= math.MinInt64 && f < math.MaxInt64 {
			return int64(f), nil
		}
	case KindString:
		if i, err := strconv.ParseInt(v.text, 10, 64); err == nil {
			return i, nil
		}
	case KindNull:
		return 0, notFound(path, "int")
	}
	return 0, mismatch(path, "int", v)
}

// AsUint coerces v to a uint64 with the same chain as AsInt.
func AsUint(v Value, path string) (uint64, error) {
	switch v.kind {
	case KindNumber:
		if u, err := strconv.ParseUint(v.text, 10, 64); err == nil {
			return u, nil
		}
		if f, err := strconv.ParseFloat(v.text, 64); err == nil && isIntegral(f) &&
			f >= 0 && f < math.MaxUint64 {
			return uint64(f), nil
		}
	case KindString:
		if u, err := strconv.ParseUint(v.text, 10, 64); err == nil {
			return u, nil
		}
	case KindNull:
		return 0, notFound(path, "uint")
	}
	return 0, mismatch(path, "uint", v)
}

// AsFloat coerces v to a float64: any number, or a string that
// strconv.ParseFloat accepts.
func AsFloat(v Value, path string) (float64, error) {
	switch v.kind {
	case KindNumber:
		if f, err := strconv.ParseFloat(v.text, 64); err == nil {
			return f, nil
		}
	case KindString:
		if f, err := strconv.ParseFloat(v.text, 64); err == nil {
			return f, nil
		}
	case KindNull:
		return 0, notFound(path, "float")
	}
	return 0, mismatch(path, "float", v)
}

// AsBool coerces v to a bool. Accepted, in order:
//   - a native boolean
//   - an integer, where nonzero is true
//   - the exact strings "true" and "false"
//   - a string holding an integer ("0", "1"), nonzero is true
func AsBool(v Value, path string) (bool, error) {
	switch v.kind {
	case KindBool:
		return v.b, nil
	case KindNumber:
		if i, err := AsInt(v, path); err == nil {
			return BoolValue(i), nil
		}
	case KindString:
		switch v.text {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
		if i, err := strconv.ParseInt(v.text, 10, 64); err == nil {
			return BoolValue(i), nil
		}
	case KindNull:
		return false, notFound(path, "bool")
	}
	return false, mismatch(path, "bool", v)
}

// AsString requires v to be a string.
func AsString(v Value, path string) (string, error) {
	switch v.kind {
	case KindString:
		return v.text, nil
	case KindNull:
		return "", notFound(path, "string")
	}
	return "", mismatch(path, "string", v)
}

// BoolValue applies the integer truth convention: zero is false.
func BoolValue(i int64) bool {
	return i != 0
}

func isIntegral(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f) && f == math.Trunc(f)
}
