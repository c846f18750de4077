// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: decode/lenient.go
// Summary: Sequence decoding that drops failing elements instead of failing.
// Usage: Lenient(seq, decodeTeam) keeps every element decodeTeam accepts.

package decode

import (
	"go.uber.org/zap"

	"github.com/framegrace/texelkit/internal/logging"
)

// SetLogger installs l as the diagnostics logger shared by texelkit packages.
// Skipped elements are reported at warn level. Nil silences them.
func SetLogger(l *zap.Logger) {
	logging.Set(l)
}

// LenientOption configures Lenient.
type LenientOption func(*lenientConfig)

type lenientConfig struct {
	onSkip func(path string, err error)
}

// OnSkip registers fn to be called for each dropped element, in order.
// Without it, skipped elements are only visible in the log.
func OnSkip(fn func(path string, err error)) LenientOption {
	return func(c *lenientConfig) {
		c.onSkip = fn
	}
}

// Lenient decodes every element of s with fn. Elements fn accepts are
// returned in source order; elements it rejects are logged and dropped, so
// the result is never longer than s. The returned slice is non-nil.
func Lenient[T any](s Seq, fn func(v Value, path string) (T, error), opts ...LenientOption) []T {
	var cfg lenientConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	out := make([]T, 0, s.Len())
	for path, v := range s.All() {
		decoded, err := fn(v, path)
		if err != nil {
			logging.L().Warn("Decode: Item skipped", zap.String("path", path), zap.Error(err))
			if cfg.onSkip != nil {
				cfg.onSkip(path, err)
			}
			continue
		}
		out = append(out, decoded)
	}
	return out
}

// LenientObjects reads the array at key and decodes each object element
// with fn, dropping elements that are not objects or that fn rejects.
// Only a missing or non-array key is an error.
func LenientObjects[T any](k Keyed, key string, fn func(Keyed) (T, error), opts ...LenientOption) ([]T, error) {
	s, err := k.Seq(key)
	if err != nil {
		return nil, err
	}
	return Lenient(s, func(v Value, path string) (T, error) {
		obj, err := AsKeyed(v, path)
		if err != nil {
			var zero T
			return zero, err
		}
		return fn(obj)
	}, opts...), nil
}

// Unmarshaler is implemented by types that decode themselves from an object.
type Unmarshaler interface {
	DecodeValue(k Keyed) error
}

// Into decodes the object v into dst.
func Into(v Value, dst Unmarshaler) error {
	k, err := AsKeyed(v, "")
	if err != nil {
		return err
	}
	return dst.DecodeValue(k)
}

// LenientInto decodes each object element of s into a fresh T through its
// Unmarshaler implementation, dropping elements that fail.
func LenientInto[T any, PT interface {
	*T
	Unmarshaler
}](s Seq, opts ...LenientOption) []T {
	return Lenient(s, func(v Value, path string) (T, error) {
		var item T
		obj, err := AsKeyed(v, path)
		if err != nil {
			return item, err
		}
		if err := PT(&item).DecodeValue(obj); err != nil {
			return item, err
		}
		return item, nil
	}, opts...)
}
