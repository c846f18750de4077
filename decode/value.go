// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: decode/value.go
// Summary: Tagged document value (null, bool, number, string, array, object).
// Usage: Build with ParseJSON/ParseYAML/FromAny, then read through Keyed and Seq.

// Package decode reads loosely typed documents into strongly typed values.
//
// Documents coming from JSON, YAML or hand-built maps often carry numbers as
// strings, booleans as 0/1 and arrays with the odd broken element. The
// coercion helpers here accept those shapes in a fixed priority order and
// report failures with the path of the offending field.
package decode

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Value is one node of a document. The zero Value is null.
// Numbers keep their literal text so integers beyond float64 precision
// survive intact.
type Value struct {
	kind Kind
	b    bool
	text string // string contents or number literal
	arr  []Value
	obj  map[string]Value
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// String wraps a string.
func String(s string) Value { return Value{kind: KindString, text: s} }

// Int wraps a signed integer.
func Int(i int64) Value { return Value{kind: KindNumber, text: strconv.FormatInt(i, 10)} }

// Uint wraps an unsigned integer.
func Uint(u uint64) Value { return Value{kind: KindNumber, text: strconv.FormatUint(u, 10)} }

// Float wraps a floating point number.
func Float(f float64) Value {
	return Value{kind: KindNumber, text: strconv.FormatFloat(f, 'g', -1, 64)}
}

// Number wraps a numeric literal such as "42", "-3.5" or "1e9".
// The literal is validated with strconv.ParseFloat.
func Number(literal string) (Value, error) {
	if _, err := strconv.ParseFloat(literal, 64); err != nil {
		if ne, ok := err.(*strconv.NumError); !ok || ne.Err != strconv.ErrRange {
			return Value{}, fmt.Errorf("decode: invalid number literal %q", literal)
		}
	}
	return Value{kind: KindNumber, text: literal}, nil
}

// Array wraps a list of values.
func Array(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindArray, arr: items}
}

// Object wraps a map of values. The map is not copied.
func Object(fields map[string]Value) Value {
	if fields == nil {
		fields = map[string]Value{}
	}
	return Value{kind: KindObject, obj: fields}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Len returns the number of elements of an array or fields of an object.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return len(v.obj)
	}
	return 0
}

// Index returns the i-th array element. ok is false when v is not an array
// or i is out of range.
func (v Value) Index(i int) (Value, bool) {
	if v.kind != KindArray || i < 0 || i >= len(v.arr) {
		return Value{}, false
	}
	return v.arr[i], true
}

// Field returns an object field. ok is false when v is not an object or the
// key is absent. A present null field returns (Null(), true).
func (v Value) Field(key string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}
	f, ok := v.obj[key]
	return f, ok
}

// Keys returns the object's keys in sorted order.
func (v Value) Keys() []string {
	if v.kind != KindObject {
		return nil
	}
	keys := make([]string, 0, len(v.obj))
	for k := range v.obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Literal returns the raw text of a string or number value.
func (v Value) Literal() (string, bool) {
	if v.kind != KindString && v.kind != KindNumber {
		return "", false
	}
	return v.text, true
}

// Interface converts v back to plain Go data: nil, bool, json.Number,
// string, []any and map[string]any.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return json.Number(v.text)
	case KindString:
		return v.text
	case KindArray:
		out := make([]any, len(v.arr))
		for i, item := range v.arr {
			out[i] = item.Interface()
		}
		return out
	case KindObject:
		out := make(map[string]any, len(v.obj))
		for k, item := range v.obj {
			out[k] = item.Interface()
		}
		return out
	}
	return nil
}

// GoString renders the value for debugging and error messages.
func (v Value) GoString() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNumber:
		return v.text
	case KindString:
		return strconv.Quote(v.text)
	case KindArray:
		return fmt.Sprintf("array(len=%d)", len(v.arr))
	case KindObject:
		return fmt.Sprintf("object(len=%d)", len(v.obj))
	}
	return "?"
}
