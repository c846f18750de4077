// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: decode/keyed.go
// Summary: Keyed (object) and Seq (array) accessors with path tracking.

package decode

import (
	"iter"
	"strconv"
)

// Keyed gives field access to an object value. Every coercion failure
// reports the field's full path.
type Keyed struct {
	path   string
	fields map[string]Value
}

// Seq gives positional access to an array value.
type Seq struct {
	path  string
	items []Value
}

// AsKeyed views v as an object located at path.
func AsKeyed(v Value, path string) (Keyed, error) {
	switch v.kind {
	case KindObject:
		return Keyed{path: path, fields: v.obj}, nil
	case KindNull:
		return Keyed{}, notFound(path, "object")
	}
	return Keyed{}, mismatch(path, "object", v)
}

// AsSeq views v as an array located at path.
func AsSeq(v Value, path string) (Seq, error) {
	switch v.kind {
	case KindArray:
		return Seq{path: path, items: v.arr}, nil
	case KindNull:
		return Seq{}, notFound(path, "array")
	}
	return Seq{}, mismatch(path, "array", v)
}

// Path returns the location of the object in its document.
func (k Keyed) Path() string { return k.path }

// Has reports whether key is present, null or not.
func (k Keyed) Has(key string) bool {
	_, ok := k.fields[key]
	return ok
}

// Field returns the raw value for key.
func (k Keyed) Field(key string) (Value, bool) {
	v, ok := k.fields[key]
	return v, ok
}

// KeyPath returns the path of key inside k.
func (k Keyed) KeyPath(key string) string {
	return joinKey(k.path, key)
}

// require fetches key or returns a MissingKey error naming expected.
func (k Keyed) require(key, expected string) (Value, string, error) {
	p := joinKey(k.path, key)
	v, ok := k.fields[key]
	if !ok {
		return Value{}, p, missing(p, expected)
	}
	return v, p, nil
}

// Nested returns the object stored at key.
func (k Keyed) Nested(key string) (Keyed, error) {
	v, p, err := k.require(key, "object")
	if err != nil {
		return Keyed{}, err
	}
	return AsKeyed(v, p)
}

// Seq returns the array stored at key.
func (k Keyed) Seq(key string) (Seq, error) {
	v, p, err := k.require(key, "array")
	if err != nil {
		return Seq{}, err
	}
	return AsSeq(v, p)
}

// Path returns the location of the array in its document.
func (s Seq) Path() string { return s.path }

// Len returns the number of elements.
func (s Seq) Len() int { return len(s.items) }

// At returns element i and its path. It panics if i is out of range, like
// a slice index.
func (s Seq) At(i int) (Value, string) {
	return s.items[i], joinIndex(s.path, i)
}

// All iterates elements in document order, yielding each element's path.
func (s Seq) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for i, v := range s.items {
			if !yield(joinIndex(s.path, i), v) {
				return
			}
		}
	}
}

func joinKey(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func joinIndex(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}
