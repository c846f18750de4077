// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: decode/errors.go
// Summary: Typed decoding errors carrying the field path and target type.

package decode

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a decoding failure.
type ErrorKind int

const (
	// TypeMismatch: a present value cannot be coerced to the expected type.
	TypeMismatch ErrorKind = iota + 1
	// MissingKey: a required field is absent.
	MissingKey
	// ValueNotFound: a required field is present but null.
	ValueNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case TypeMismatch:
		return "type mismatch"
	case MissingKey:
		return "missing key"
	case ValueNotFound:
		return "value not found"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Sentinels for errors.Is.
var (
	ErrTypeMismatch  = errors.New("decode: type mismatch")
	ErrMissingKey    = errors.New("decode: missing key")
	ErrValueNotFound = errors.New("decode: value not found")
)

// Error describes a failed coercion.
type Error struct {
	Kind     ErrorKind
	Path     string // e.g. "teams[2].country"; empty for the document root
	Expected string // target type, e.g. "int", "bool", "enum Status"
	Detail   string
}

func (e *Error) Error() string {
	path := e.Path
	if path == "" {
		path = "<root>"
	}
	msg := fmt.Sprintf("decode: %s at %q", e.Kind, path)
	if e.Expected != "" {
		msg += ": expected " + e.Expected
	}
	if e.Detail != "" {
		msg += ", " + e.Detail
	}
	return msg
}

// Unwrap returns the sentinel matching e.Kind.
func (e *Error) Unwrap() error {
	switch e.Kind {
	case TypeMismatch:
		return ErrTypeMismatch
	case MissingKey:
		return ErrMissingKey
	case ValueNotFound:
		return ErrValueNotFound
	}
	return nil
}

func mismatch(path, expected string, got Value) *Error {
	return &Error{
		Kind:     TypeMismatch,
		Path:     path,
		Expected: expected,
		Detail:   "got " + describe(got),
	}
}

func describe(v Value) string {
	switch v.kind {
	case KindNull, KindArray, KindObject:
		return v.GoString()
	}
	return v.kind.String() + " " + v.GoString()
}

func missing(path, expected string) *Error {
	return &Error{Kind: MissingKey, Path: path, Expected: expected}
}

func notFound(path, expected string) *Error {
	return &Error{Kind: ValueNotFound, Path: path, Expected: expected, Detail: "got null"}
}

// AsError extracts a *Error from err's chain.
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
